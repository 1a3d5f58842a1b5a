package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sortsim/sortsim/sim"
)

// registerConfigFlags adds the flags that override VisualizerConfig fields.
// Defaults shown in help are the built-in defaults; a --config file replaces
// them, and only flags the user actually sets override the file.
func registerConfigFlags(c *cobra.Command) {
	def := sim.DefaultVisualizerConfig()
	c.Flags().String("config", "", "YAML visualizer config file (bar_count, step_delay_ms, ...)")
	c.Flags().Int64("seed", def.Seed, "Seed for bar generation and shuffling")
	c.Flags().Int("bars", def.BarCount, "Number of bars")
	c.Flags().String("algorithm", def.Algorithm, "Sorting algorithm, one of the names listed by the algorithms command")
	c.Flags().Int("step-delay", def.StepDelayMs, "Delay between sort frames in milliseconds")
	c.Flags().Int("shuffle-delay", def.ShuffleDelayMs, "Delay between shuffle frames in milliseconds")
	c.Flags().Float64("max-height", def.MaxBarHeight, "Height of the tallest bar")
}

// resolveConfig builds the effective config: defaults, then the --config
// file, then every flag whose value was set on the command line.
func resolveConfig(c *cobra.Command) (sim.VisualizerConfig, error) {
	cfg := sim.DefaultVisualizerConfig()
	flags := c.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := sim.LoadVisualizerConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
		logrus.Infof("Loaded visualizer config from %s", path)
	}

	// Flags override file values only when explicitly set.
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("bars") {
		cfg.BarCount, _ = flags.GetInt("bars")
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm, _ = flags.GetString("algorithm")
	}
	if flags.Changed("step-delay") {
		cfg.StepDelayMs, _ = flags.GetInt("step-delay")
	}
	if flags.Changed("shuffle-delay") {
		cfg.ShuffleDelayMs, _ = flags.GetInt("shuffle-delay")
	}
	if flags.Changed("max-height") {
		cfg.MaxBarHeight, _ = flags.GetFloat64("max-height")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// mustResolveConfig is resolveConfig for command handlers.
func mustResolveConfig(c *cobra.Command) sim.VisualizerConfig {
	cfg, err := resolveConfig(c)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	return cfg
}
