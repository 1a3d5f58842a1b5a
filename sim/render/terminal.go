package render

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/muesli/termenv"

	"github.com/sortsim/sortsim/sim/player"
)

const barGlyph = "█"

// TerminalConfig controls how frames are drawn.
type TerminalConfig struct {
	Profile   termenv.Profile // colour capability; termenv.Ascii draws plain glyphs
	Rows      int             // height of the bar area in cells
	MaxHeight float64         // value drawn as a full column; <= 0 uses the frame's tallest bar
	Redraw    bool            // clear the screen and home the cursor before each frame
}

// Terminal draws frames as columns of coloured blocks, one column per bar,
// followed by a status line. It implements player.FrameSink.
type Terminal struct {
	out *termenv.Output
	cfg TerminalConfig
}

// NewTerminal returns a Terminal writing to w. Rows below 1 are raised to 1.
func NewTerminal(w io.Writer, cfg TerminalConfig) *Terminal {
	if cfg.Rows < 1 {
		cfg.Rows = 1
	}
	return &Terminal{
		out: termenv.NewOutput(w, termenv.WithProfile(cfg.Profile)),
		cfg: cfg,
	}
}

// Draw renders one frame.
func (t *Terminal) Draw(f player.Frame) error {
	maxHeight := t.cfg.MaxHeight
	if maxHeight <= 0 && len(f.Values) > 0 {
		maxHeight = slices.Max(f.Values)
	}

	levels := make([]int, len(f.Values))
	cells := make([]string, len(f.Values))
	for i, v := range f.Values {
		levels[i] = columnLevel(v, maxHeight, t.cfg.Rows)
		cells[i] = t.out.String(barGlyph).Foreground(t.out.Color(BarColor(f, i, maxHeight).Hex())).String()
	}

	var b strings.Builder
	for row := t.cfg.Rows; row >= 1; row-- {
		for i := range f.Values {
			if levels[i] >= row {
				b.WriteString(cells[i])
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(statusLine(f, maxHeight))
	b.WriteByte('\n')

	if t.cfg.Redraw {
		t.out.ClearScreen()
	}
	if _, err := io.WriteString(t.out, b.String()); err != nil {
		return fmt.Errorf("writing frame %d: %w", f.Cursor, err)
	}
	return nil
}

// columnLevel returns how many cells of a rows-tall column v fills.
// Any positive value fills at least one cell.
func columnLevel(v, maxHeight float64, rows int) int {
	if v <= 0 || maxHeight <= 0 {
		return 0
	}
	level := int(math.Ceil(v / maxHeight * float64(rows)))
	return min(max(level, 1), rows)
}

func statusLine(f player.Frame, maxHeight float64) string {
	if f.Cursor == 0 {
		return "ready"
	}
	line := fmt.Sprintf("%s step %d %v", f.Kind, f.Cursor, f.Highlighted())
	if start, end, ok := Tones(f, maxHeight); ok {
		line += fmt.Sprintf(" %.0f-%.0fHz", start, end)
	}
	return line
}
