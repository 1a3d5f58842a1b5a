package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/sortsim/sortsim/sim/sorting"
	"github.com/sortsim/sortsim/sim/trace"
)

// StyleAuto picks a glamour style from the terminal background.
const StyleAuto = "auto"

// RenderMarkdown renders md for a terminal. style is StyleAuto or one of
// glamour's standard style names ("dark", "light", "notty", "ascii", ...).
// A non-positive width disables word wrapping.
func RenderMarkdown(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(width, 0))}
	if style == "" || style == StyleAuto {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// AlgorithmsMarkdown lists every registered algorithm as a markdown table,
// flagging defaultName.
func AlgorithmsMarkdown(defaultName string) string {
	var b strings.Builder
	b.WriteString("# Algorithms\n\n")
	b.WriteString("| Name | Default | Description |\n")
	b.WriteString("|------|---------|-------------|\n")
	for _, name := range sorting.Names() {
		def := ""
		if name == defaultName {
			def = "yes"
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", name, def, sorting.Describe(name))
	}
	return b.String()
}

// SummaryMarkdown formats a trace summary as a markdown report.
func SummaryMarkdown(s *trace.TraceSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s on %d bars\n\n", s.Algorithm, s.Size)
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Steps | %d |\n", s.TotalSteps)
	fmt.Fprintf(&b, "| Comparisons | %d |\n", s.Comparisons)
	fmt.Fprintf(&b, "| Mutations | %d |\n", s.Mutations)
	fmt.Fprintf(&b, "| Partitions | %d |\n", s.Partitions)
	fmt.Fprintf(&b, "| Pivots | %d |\n", s.Pivots)
	fmt.Fprintf(&b, "| Writes | %d |\n", s.TotalWrites)
	fmt.Fprintf(&b, "| Touched indices | %d |\n", s.TouchedIndices)
	if s.HottestIndex >= 0 {
		fmt.Fprintf(&b, "| Hottest index | %d (%d hits) |\n", s.HottestIndex, s.HottestIndexHit)
	}
	return b.String()
}
