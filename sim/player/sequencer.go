// Package player steps through a recorded trace or a shuffle plan one frame
// at a time. The Sequencer holds no timing of its own; Play drives it from a
// ticker, and a renderer consumes the frames.
package player

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/sortsim/sortsim/sim/shuffle"
	"github.com/sortsim/sortsim/sim/trace"
)

// State represents the lifecycle state of a Sequencer.
type State string

const (
	StateIdle     State = "idle"
	StatePlaying  State = "playing"
	StateFinished State = "finished"
)

// Frame is what a renderer draws for one applied step.
// All slices are private copies.
type Frame struct {
	Cursor    int // 1-based position of the step just applied; 0 before the first
	Kind      trace.StepKind
	Values    []float64 // bar heights after the step
	Comparing []int
	Mutated   []int
	Markers   []int
}

// Highlighted returns the index set to colour for this frame.
func (f Frame) Highlighted() []int {
	return trace.Step{Kind: f.Kind, Comparing: f.Comparing, Mutated: f.Mutated, Markers: f.Markers}.Highlighted()
}

func (f Frame) clone() Frame {
	return Frame{
		Cursor:    f.Cursor,
		Kind:      f.Kind,
		Values:    slices.Clone(f.Values),
		Comparing: slices.Clone(f.Comparing),
		Mutated:   slices.Clone(f.Mutated),
		Markers:   slices.Clone(f.Markers),
	}
}

// Sequencer replays one loaded sequence. Loading a new sequence discards the
// old one at any point, including mid-playback.
//
// Thread-safety: NOT thread-safe. Must be driven from a single goroutine.
type Sequencer struct {
	state   State
	cursor  int
	current Frame

	// Exactly one of steps / plan is in use, depending on how it was loaded.
	steps  []trace.Step
	plan   []shuffle.Swap
	values []float64 // working array for plan playback
}

// New returns an idle Sequencer with nothing loaded.
func New() *Sequencer {
	return &Sequencer{state: StateIdle}
}

// Load replaces whatever is playing with the steps of t. The trace is read,
// never modified. A nil or empty trace finishes immediately.
func (s *Sequencer) Load(t *trace.Trace) {
	s.reset()
	if t != nil {
		s.steps = t.Steps
	}
	s.start("trace")
}

// LoadShuffle replaces whatever is playing with a shuffle plan applied to a
// private copy of values. Each frame shows one swap with both positions
// marked as mutated.
func (s *Sequencer) LoadShuffle(values []float64, plan []shuffle.Swap) {
	s.reset()
	s.values = slices.Clone(values)
	s.plan = slices.Clone(plan)
	s.current = Frame{Values: slices.Clone(s.values)}
	s.start("shuffle")
}

func (s *Sequencer) reset() {
	s.cursor = 0
	s.current = Frame{}
	s.steps = nil
	s.plan = nil
	s.values = nil
}

func (s *Sequencer) start(source string) {
	if s.Len() == 0 {
		s.state = StateFinished
	} else {
		s.state = StatePlaying
	}
	logrus.Debugf("player: loaded %s with %d frames", source, s.Len())
}

// Advance applies the next step and returns its frame. Once the sequence is
// exhausted, or when nothing is loaded, it returns false and changes nothing.
func (s *Sequencer) Advance() (Frame, bool) {
	if s.state != StatePlaying {
		return Frame{}, false
	}

	var f Frame
	if s.plan != nil {
		sw := s.plan[s.cursor]
		shuffle.SwapValues(s.values, sw.I, sw.J)
		mutated := []int{sw.I}
		if sw.J != sw.I {
			mutated = append(mutated, sw.J)
		}
		f = Frame{Kind: trace.KindMutate, Values: slices.Clone(s.values), Mutated: mutated}
	} else {
		step := s.steps[s.cursor]
		f = Frame{
			Kind:      step.Kind,
			Values:    slices.Clone(step.ArrayState),
			Comparing: slices.Clone(step.Comparing),
			Mutated:   slices.Clone(step.Mutated),
			Markers:   slices.Clone(step.Markers),
		}
	}
	s.cursor++
	f.Cursor = s.cursor
	s.current = f

	if s.cursor == s.Len() {
		s.state = StateFinished
	}
	return f.clone(), true
}

// Current returns the most recently applied frame. Before the first Advance
// it holds the starting values of a shuffle, or nothing for a trace.
func (s *Sequencer) Current() Frame {
	return s.current.clone()
}

// State returns the lifecycle state.
func (s *Sequencer) State() State {
	return s.state
}

// Len returns the number of frames in the loaded sequence.
func (s *Sequencer) Len() int {
	if s.plan != nil {
		return len(s.plan)
	}
	return len(s.steps)
}

// Remaining returns how many frames Advance will still produce.
func (s *Sequencer) Remaining() int {
	return s.Len() - s.cursor
}
