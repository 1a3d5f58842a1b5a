package sim

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/sortsim/sortsim/sim/player"
	"github.com/sortsim/sortsim/sim/shuffle"
	"github.com/sortsim/sortsim/sim/sorting"
	"github.com/sortsim/sortsim/sim/trace"
)

// Visualizer owns the bars of one session and feeds its Sequencer: a
// shuffle plan after the bars are generated or shuffled, and a sort trace
// when Sort is called. The bars always hold the state the last loaded
// sequence ends in.
//
// Thread-safety: NOT thread-safe. Must be driven from a single goroutine.
type Visualizer struct {
	cfg       VisualizerConfig
	rng       *PartitionedRNG
	bars      []float64
	algorithm sorting.Algorithm
	seq       *player.Sequencer
}

// NewVisualizer validates cfg, generates cfg.BarCount bars from the bars
// RNG subsystem and queues a shuffle of them.
func NewVisualizer(cfg VisualizerConfig) (*Visualizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid visualizer config: %w", err)
	}
	alg, _ := sorting.Resolve(cfg.Algorithm)
	v := &Visualizer{
		cfg:       cfg,
		rng:       NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		algorithm: alg,
		seq:       player.New(),
	}
	v.generate()
	return v, nil
}

func (v *Visualizer) generate() {
	v.bars = shuffle.Bars(v.cfg.BarCount, v.cfg.MaxBarHeight, v.rng.ForSubsystem(SubsystemBars))
	v.Shuffle()
}

// Config returns the session's current settings.
func (v *Visualizer) Config() VisualizerConfig { return v.cfg }

// Bars returns a copy of the current bar heights.
func (v *Visualizer) Bars() []float64 { return slices.Clone(v.bars) }

// Sequencer returns the sequencer the visualizer loads into.
func (v *Visualizer) Sequencer() *player.Sequencer { return v.seq }

// Algorithm returns the name of the selected algorithm.
func (v *Visualizer) Algorithm() string { return v.algorithm.Name() }

// SelectAlgorithm switches to the named algorithm. Unknown names leave the
// selection unchanged and return false.
func (v *Visualizer) SelectAlgorithm(name string) bool {
	alg, ok := sorting.Resolve(name)
	if !ok {
		return false
	}
	v.algorithm = alg
	v.cfg.Algorithm = name
	return true
}

// Shuffle plans a Fisher–Yates shuffle of the bars, loads it into the
// sequencer and applies it to the bars.
func (v *Visualizer) Shuffle() []shuffle.Swap {
	plan := shuffle.PrepareShuffle(v.bars, v.rng.ForSubsystem(SubsystemShuffle))
	v.seq.LoadShuffle(v.bars, plan)
	shuffle.Apply(v.bars, plan)
	logrus.Debugf("visualizer: shuffle of %d bars planned with %d swaps", len(v.bars), len(plan))
	return plan
}

// Sort runs the selected algorithm over a copy of the bars, loads its trace
// into the sequencer and adopts the sorted result. Bars that are already
// sorted are left alone: Sort returns (nil, false) and the sequencer is
// not touched.
func (v *Visualizer) Sort() (*trace.Trace, bool) {
	if shuffle.IsSorted(v.bars) {
		logrus.Debugf("visualizer: bars already sorted, nothing to do")
		return nil, false
	}
	sorted, t := sorting.SortCopy(v.algorithm, v.bars)
	v.seq.Load(t)
	v.bars = sorted
	logrus.Debugf("visualizer: %s recorded %d steps", t.Algorithm, t.Len())
	return t, true
}

// Resize regenerates n bars and queues a shuffle of them.
func (v *Visualizer) Resize(n int) error {
	if n <= 0 {
		return fmt.Errorf("bar count must be > 0, got %d", n)
	}
	v.cfg.BarCount = n
	v.generate()
	return nil
}

// Rescale stretches every bar so the tallest one measures maxHeight,
// keeping proportions. Used when the drawing area changes size.
func (v *Visualizer) Rescale(maxHeight float64) error {
	if maxHeight <= 0 {
		return fmt.Errorf("max bar height must be > 0, got %g", maxHeight)
	}
	tallest := slices.Max(v.bars)
	for i := range v.bars {
		v.bars[i] = v.bars[i] / tallest * maxHeight
	}
	v.cfg.MaxBarHeight = maxHeight
	return nil
}
