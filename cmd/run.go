package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sortsim/sortsim/sim"
	"github.com/sortsim/sortsim/sim/render"
	"github.com/sortsim/sortsim/sim/trace"
)

// Output formats for reports.
const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatPretty   = "pretty"
)

var validFormats = map[string]bool{formatText: true, formatMarkdown: true, formatPretty: true}

type runOptions struct {
	exportHeader string // YAML trace header path (optional)
	exportData   string // CSV trace data path (optional)
	format       string
	style        string // glamour style for formatPretty
}

// runCmd shuffles a fresh set of bars, sorts them and reports the trace
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sort a shuffled set of bars and summarize the recorded trace",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustResolveConfig(cmd)
		opts := runOptions{}
		opts.exportHeader, _ = cmd.Flags().GetString("export-header")
		opts.exportData, _ = cmd.Flags().GetString("export-data")
		opts.format, _ = cmd.Flags().GetString("format")
		opts.style, _ = cmd.Flags().GetString("style")

		if err := runSort(cmd.OutOrStdout(), cfg, opts); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func runSort(out io.Writer, cfg sim.VisualizerConfig, opts runOptions) error {
	if !validFormats[opts.format] {
		return fmt.Errorf("unknown format %q; valid: text, markdown, pretty", opts.format)
	}
	if (opts.exportHeader == "") != (opts.exportData == "") {
		return fmt.Errorf("--export-header and --export-data must be given together")
	}

	logrus.Infof("Starting %s on %d bars (seed=%d)", cfg.Algorithm, cfg.BarCount, cfg.Seed)
	v, err := sim.NewVisualizer(cfg)
	if err != nil {
		return err
	}
	initial := v.Bars()

	startTime := time.Now()
	t, sorted := v.Sort()
	if !sorted {
		fmt.Fprintln(out, "bars already sorted, nothing to do")
		return nil
	}
	logrus.Infof("Recorded %d steps in %v", t.Len(), time.Since(startTime))

	if err := t.Validate(); err != nil {
		return fmt.Errorf("recorded trace is invalid: %w", err)
	}
	replayed, err := t.Replay(initial)
	if err != nil {
		return fmt.Errorf("replaying trace: %w", err)
	}
	for i, want := range v.Bars() {
		if replayed[i] != want {
			return fmt.Errorf("replayed trace diverges from sorted bars at index %d", i)
		}
	}

	if opts.exportHeader != "" {
		header := &trace.TraceHeader{Seed: cfg.Seed, CreatedAt: time.Now().UTC().Format(time.RFC3339)}
		if err := trace.ExportTrace(t, header, opts.exportHeader, opts.exportData); err != nil {
			return err
		}
		logrus.Infof("Trace exported to %s / %s", opts.exportHeader, opts.exportData)
	}

	return printSummary(out, trace.Summarize(t), opts)
}

func printSummary(out io.Writer, s *trace.TraceSummary, opts runOptions) error {
	switch opts.format {
	case formatMarkdown:
		_, err := fmt.Fprint(out, render.SummaryMarkdown(s))
		return err
	case formatPretty:
		rendered, err := render.RenderMarkdown(render.SummaryMarkdown(s), opts.style, terminalWidth())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	}

	fmt.Fprintf(out, "=== Trace Summary ===\n")
	fmt.Fprintf(out, "Algorithm      : %s\n", s.Algorithm)
	fmt.Fprintf(out, "Bars           : %d\n", s.Size)
	fmt.Fprintf(out, "Steps          : %d\n", s.TotalSteps)
	fmt.Fprintf(out, "Comparisons    : %d\n", s.Comparisons)
	fmt.Fprintf(out, "Mutations      : %d\n", s.Mutations)
	fmt.Fprintf(out, "Partitions     : %d\n", s.Partitions)
	fmt.Fprintf(out, "Pivots         : %d\n", s.Pivots)
	fmt.Fprintf(out, "Writes         : %d\n", s.TotalWrites)
	if s.HottestIndex >= 0 {
		fmt.Fprintf(out, "Hottest index  : %d (%d steps)\n", s.HottestIndex, s.HottestIndexHit)
	}
	return nil
}

func init() {
	registerConfigFlags(runCmd)
	runCmd.Flags().String("export-header", "", "Write the trace header (YAML) to this path")
	runCmd.Flags().String("export-data", "", "Write the trace steps (CSV) to this path")
	runCmd.Flags().String("format", formatText, "Summary format: text, markdown, pretty")
	runCmd.Flags().String("style", render.StyleAuto, "Markdown style for --format pretty (auto, dark, light, notty, ...)")
}
