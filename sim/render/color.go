// Package render turns player frames into things a person can see or hear:
// coloured terminal bars, tone frequencies and markdown reports.
package render

import (
	"fmt"
	"math"
	"slices"

	"github.com/sortsim/sortsim/sim/player"
	"github.com/sortsim/sortsim/sim/trace"
)

// RGB is an 8-bit-per-channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Palette used for bars.
var (
	GradientStart = RGB{R: 51, G: 233, B: 255}
	GradientEnd   = RGB{R: 91, G: 51, B: 255}

	ComparingColor = RGB{R: 225, G: 115, B: 4}
	MutatedColor   = RGB{R: 238, G: 46, B: 75}
	MarkerColor    = RGB{R: 46, G: 204, B: 113}
)

// ColorForHeight interpolates linearly from start (height 0) to end
// (height maxHeight), flooring each channel. Heights outside [0, maxHeight]
// are clamped; a non-positive maxHeight yields start.
func ColorForHeight(height, maxHeight float64, start, end RGB) RGB {
	if maxHeight <= 0 {
		return start
	}
	ratio := math.Max(0, math.Min(1, height/maxHeight))
	channel := func(a, b uint8) uint8 {
		return uint8(math.Floor(float64(a) + ratio*(float64(b)-float64(a))))
	}
	return RGB{
		R: channel(start.R, end.R),
		G: channel(start.G, end.G),
		B: channel(start.B, end.B),
	}
}

// KindColor returns the highlight colour for a step kind.
func KindColor(kind trace.StepKind) (RGB, bool) {
	switch kind {
	case trace.KindCompare:
		return ComparingColor, true
	case trace.KindMutate:
		return MutatedColor, true
	case trace.KindPartition, trace.KindPivot:
		return MarkerColor, true
	default:
		return RGB{}, false
	}
}

// BarColor returns the colour of bar i in f: the kind's highlight colour if
// i is highlighted, otherwise the height gradient.
func BarColor(f player.Frame, i int, maxHeight float64) RGB {
	if c, ok := KindColor(f.Kind); ok && slices.Contains(f.Highlighted(), i) {
		return c
	}
	return ColorForHeight(f.Values[i], maxHeight, GradientStart, GradientEnd)
}
