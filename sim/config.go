package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sortsim/sortsim/sim/sorting"
)

// VisualizerConfig groups the knobs of one visualizer session.
type VisualizerConfig struct {
	BarCount       int     `yaml:"bar_count"`        // number of bars (must be > 0)
	StepDelayMs    int     `yaml:"step_delay_ms"`    // delay between sort frames (>= 0)
	ShuffleDelayMs int     `yaml:"shuffle_delay_ms"` // delay between shuffle frames (>= 0)
	Algorithm      string  `yaml:"algorithm"`        // registry name, e.g. "quickSort"
	Seed           int64   `yaml:"seed"`             // master seed for PartitionedRNG
	MaxBarHeight   float64 `yaml:"max_bar_height"`   // height of the tallest bar (must be > 0)
}

// DefaultVisualizerConfig returns the stock settings: 200 bars, 100ms
// between frames, quick sort.
func DefaultVisualizerConfig() VisualizerConfig {
	return VisualizerConfig{
		BarCount:       200,
		StepDelayMs:    100,
		ShuffleDelayMs: 100,
		Algorithm:      sorting.DefaultAlgorithm,
		Seed:           42,
		MaxBarHeight:   100,
	}
}

// StepDelay returns StepDelayMs as a duration.
func (c VisualizerConfig) StepDelay() time.Duration {
	return time.Duration(c.StepDelayMs) * time.Millisecond
}

// ShuffleDelay returns ShuffleDelayMs as a duration.
func (c VisualizerConfig) ShuffleDelay() time.Duration {
	return time.Duration(c.ShuffleDelayMs) * time.Millisecond
}

// Validate checks that every field is in range.
func (c VisualizerConfig) Validate() error {
	if c.BarCount <= 0 {
		return fmt.Errorf("bar_count must be > 0, got %d", c.BarCount)
	}
	if c.StepDelayMs < 0 {
		return fmt.Errorf("step_delay_ms must be >= 0, got %d", c.StepDelayMs)
	}
	if c.ShuffleDelayMs < 0 {
		return fmt.Errorf("shuffle_delay_ms must be >= 0, got %d", c.ShuffleDelayMs)
	}
	if !sorting.IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("unknown algorithm %q; valid: %v", c.Algorithm, sorting.Names())
	}
	if c.MaxBarHeight <= 0 {
		return fmt.Errorf("max_bar_height must be > 0, got %g", c.MaxBarHeight)
	}
	return nil
}

// LoadVisualizerConfig reads a YAML config file on top of the defaults, so
// omitted keys keep their default values. Uses strict parsing: unrecognized
// keys (typos) are rejected. The result is not validated.
func LoadVisualizerConfig(path string) (*VisualizerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading visualizer config: %w", err)
	}
	cfg := DefaultVisualizerConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing visualizer config: %w", err)
	}
	return &cfg, nil
}
