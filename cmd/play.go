package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sortsim/sortsim/sim"
	"github.com/sortsim/sortsim/sim/player"
	"github.com/sortsim/sortsim/sim/render"
	"github.com/sortsim/sortsim/sim/trace"
)

// Rows reserved below the bars for the status line and prompt.
const statusRows = 2

type playOptions struct {
	profile     termenv.Profile
	rows        int
	redraw      bool
	traceHeader string // replay an exported trace instead of generating bars
	traceData   string
}

// playCmd animates a shuffle followed by a sort in the terminal
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Animate a shuffle and then a sort as coloured bars in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustResolveConfig(cmd)
		opts := playOptions{profile: colorProfile(), redraw: true}
		opts.rows, _ = cmd.Flags().GetInt("rows")
		opts.traceHeader, _ = cmd.Flags().GetString("trace-header")
		opts.traceData, _ = cmd.Flags().GetString("trace-data")

		if width, height, ok := terminalSize(); ok {
			// One column per bar: fit the bar count to the terminal unless it was asked for.
			if !cmd.Flags().Changed("bars") && cfg.BarCount > width {
				logrus.Infof("Reducing bars from %d to terminal width %d", cfg.BarCount, width)
				cfg.BarCount = width
			}
			if !cmd.Flags().Changed("rows") && height > statusRows {
				opts.rows = height - statusRows
			}
		} else {
			opts.redraw = false
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := playSession(ctx, cmd.OutOrStdout(), cfg, opts); err != nil {
			if errors.Is(err, context.Canceled) {
				logrus.Info("Playback interrupted")
				return
			}
			logrus.Fatalf("%v", err)
		}
	},
}

func playSession(ctx context.Context, out io.Writer, cfg sim.VisualizerConfig, opts playOptions) error {
	if (opts.traceHeader == "") != (opts.traceData == "") {
		return fmt.Errorf("--trace-header and --trace-data must be given together")
	}
	if opts.traceHeader != "" {
		return replayTrace(ctx, out, cfg, opts)
	}

	v, err := sim.NewVisualizer(cfg)
	if err != nil {
		return err
	}
	sink := render.NewTerminal(out, render.TerminalConfig{
		Profile:   opts.profile,
		Rows:      opts.rows,
		MaxHeight: cfg.MaxBarHeight,
		Redraw:    opts.redraw,
	})

	logrus.Debugf("Shuffling %d bars", cfg.BarCount)
	if err := player.Play(ctx, v.Sequencer(), cfg.ShuffleDelay(), sink); err != nil {
		return err
	}
	t, ok := v.Sort()
	if !ok {
		logrus.Info("Bars already sorted")
		return nil
	}
	logrus.Debugf("Playing %d %s steps", t.Len(), t.Algorithm)
	return player.Play(ctx, v.Sequencer(), cfg.StepDelay(), sink)
}

func replayTrace(ctx context.Context, out io.Writer, cfg sim.VisualizerConfig, opts playOptions) error {
	t, header, err := trace.LoadTrace(opts.traceHeader, opts.traceData)
	if err != nil {
		return err
	}
	logrus.Infof("Replaying %s trace of %d bars, %d steps (seed=%d)", header.Algorithm, header.Size, header.Steps, header.Seed)

	seq := player.New()
	seq.Load(t)
	sink := render.NewTerminal(out, render.TerminalConfig{
		Profile: opts.profile,
		Rows:    opts.rows,
		Redraw:  opts.redraw,
	})
	return player.Play(ctx, seq, cfg.StepDelay(), sink)
}

func init() {
	registerConfigFlags(playCmd)
	playCmd.Flags().Int("rows", 20, "Height of the bar area in terminal rows")
	playCmd.Flags().String("trace-header", "", "Replay the trace with this YAML header instead of sorting")
	playCmd.Flags().String("trace-data", "", "CSV steps of the trace given by --trace-header")
}
