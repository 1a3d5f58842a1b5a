package render

import (
	"time"

	"github.com/sortsim/sortsim/sim/player"
)

// Tone mapping: a bar of height h sounds at ToneBaseHz + h/max*ToneSpanHz.
const (
	ToneBaseHz   = 200.0
	ToneSpanHz   = 500.0
	ToneDuration = 50 * time.Millisecond
)

// Frequency maps a bar height to a pitch in Hz.
func Frequency(height, maxHeight float64) float64 {
	if maxHeight <= 0 {
		return ToneBaseHz
	}
	return ToneBaseHz + height/maxHeight*ToneSpanHz
}

// Tones returns the start and end pitch of the glide for frame f: the first
// two compared bars if there are two, otherwise the first two mutated or
// marked bars. Frames highlighting fewer than two bars are silent.
func Tones(f player.Frame, maxHeight float64) (startHz, endHz float64, ok bool) {
	pair := f.Comparing
	if len(pair) < 2 {
		pair = f.Mutated
	}
	if len(pair) < 2 {
		pair = f.Markers
	}
	if len(pair) < 2 {
		return 0, 0, false
	}
	i, j := pair[0], pair[1]
	if i < 0 || j < 0 || i >= len(f.Values) || j >= len(f.Values) {
		return 0, 0, false
	}
	return Frequency(f.Values[i], maxHeight), Frequency(f.Values[j], maxHeight), true
}
