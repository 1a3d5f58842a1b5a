package player

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// FrameSink consumes frames as playback produces them.
type FrameSink interface {
	Draw(f Frame) error
}

// FrameSinkFunc adapts a plain function to a FrameSink.
type FrameSinkFunc func(f Frame) error

// Draw calls fn(f).
func (fn FrameSinkFunc) Draw(f Frame) error { return fn(f) }

// Play advances seq once per tick of delay and hands every frame to sink,
// until the sequence finishes or ctx is cancelled. A zero delay advances as
// fast as the sink accepts frames.
//
// Returns nil when the sequence finishes, ctx.Err() on cancellation, or the
// sink's error wrapped with the frame position.
func Play(ctx context.Context, seq *Sequencer, delay time.Duration, sink FrameSink) error {
	if seq == nil || sink == nil {
		panic("player.Play: nil sequencer or sink")
	}
	if delay <= 0 {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			done, err := step(seq, sink)
			if done || err != nil {
				return err
			}
		}
	}

	ticker := time.NewTicker(delay)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logrus.Debugf("player: cancelled with %d frames remaining", seq.Remaining())
			return ctx.Err()
		case <-ticker.C:
			done, err := step(seq, sink)
			if done || err != nil {
				return err
			}
		}
	}
}

// step advances once. done is true when no frames remain after it.
func step(seq *Sequencer, sink FrameSink) (done bool, err error) {
	f, ok := seq.Advance()
	if !ok {
		return true, nil
	}
	if err := sink.Draw(f); err != nil {
		return true, fmt.Errorf("drawing frame %d/%d: %w", f.Cursor, seq.Len(), err)
	}
	return seq.State() != StatePlaying, nil
}
