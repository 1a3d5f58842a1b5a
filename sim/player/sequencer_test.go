package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortsim/sortsim/sim/shuffle"
	"github.com/sortsim/sortsim/sim/sorting"
	"github.com/sortsim/sortsim/sim/trace"
)

func sortTrace(t *testing.T, name string, values ...float64) *trace.Trace {
	t.Helper()
	alg, ok := sorting.Resolve(name)
	require.True(t, ok)
	_, tr := sorting.SortCopy(alg, values)
	return tr
}

func TestSequencer_NewIsIdle(t *testing.T) {
	s := New()

	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 0, s.Len())
	f, ok := s.Advance()
	assert.False(t, ok)
	assert.Equal(t, Frame{}, f)
}

func TestSequencer_PlaysTraceToCompletion(t *testing.T) {
	// GIVEN a selection sort trace of [3,1,2]
	tr := sortTrace(t, sorting.NameSelectionSort, 3, 1, 2)
	s := New()
	s.Load(tr)
	require.Equal(t, StatePlaying, s.State())
	require.Equal(t, tr.Len(), s.Len())

	// WHEN advanced until exhausted
	var frames []Frame
	for {
		f, ok := s.Advance()
		if !ok {
			break
		}
		frames = append(frames, f)
	}

	// THEN every step was emitted in order and the last frame is sorted
	require.Len(t, frames, tr.Len())
	for i, f := range frames {
		assert.Equal(t, i+1, f.Cursor)
		assert.Equal(t, tr.Steps[i].Kind, f.Kind)
		assert.Equal(t, tr.Steps[i].ArrayState, f.Values)
		assert.Equal(t, tr.Steps[i].Highlighted(), f.Highlighted())
	}
	assert.Equal(t, []float64{1, 2, 3}, frames[len(frames)-1].Values)
	assert.Equal(t, StateFinished, s.State())
	assert.Equal(t, 0, s.Remaining())
}

func TestSequencer_LastFrameIsSortedForEveryAlgorithm(t *testing.T) {
	inputs := [][]float64{{2, 1}, {3, 1, 2}, {1, 3, 2}, {5, 1, 4, 2, 3}}
	for _, name := range sorting.Names() {
		for _, input := range inputs {
			// GIVEN a trace of sorting input
			alg, _ := sorting.Resolve(name)
			sorted, tr := sorting.SortCopy(alg, input)
			s := New()
			s.Load(tr)

			// WHEN played to the end
			for {
				if _, ok := s.Advance(); !ok {
					break
				}
			}

			// THEN the frame left on screen is the sorted array
			assert.Equal(t, StateFinished, s.State())
			assert.Equal(t, sorted, s.Current().Values, "%s on %v", name, input)
		}
	}
}

func TestSequencer_AdvanceAfterFinishIsNoOp(t *testing.T) {
	s := New()
	s.Load(sortTrace(t, sorting.NameBubbleSort, 2, 1))
	for s.State() == StatePlaying {
		s.Advance()
	}
	last := s.Current()

	f, ok := s.Advance()

	assert.False(t, ok)
	assert.Equal(t, Frame{}, f)
	assert.Equal(t, last, s.Current())
	assert.Equal(t, StateFinished, s.State())
}

func TestSequencer_EmptyTraceFinishesImmediately(t *testing.T) {
	tests := []struct {
		name string
		tr   *trace.Trace
	}{
		{"nil", nil},
		{"empty", trace.New(sorting.NameQuickSort, 0)},
		{"single element", sortTrace(t, sorting.NameQuickSort, 7)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			s.Load(tc.tr)
			assert.Equal(t, StateFinished, s.State())
			_, ok := s.Advance()
			assert.False(t, ok)
		})
	}
}

func TestSequencer_ReloadMidPlaybackDiscardsOldSequence(t *testing.T) {
	// GIVEN a sequencer part way through a long trace
	s := New()
	s.Load(sortTrace(t, sorting.NameBubbleSort, 5, 4, 3, 2, 1))
	s.Advance()
	s.Advance()

	// WHEN a different trace is loaded
	next := sortTrace(t, sorting.NameQuickSort, 3, 1, 2)
	s.Load(next)

	// THEN playback restarts on the new trace
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, next.Len(), s.Remaining())
	assert.Equal(t, Frame{}, s.Current())
	f, ok := s.Advance()
	require.True(t, ok)
	assert.Equal(t, 1, f.Cursor)
	assert.Equal(t, next.Steps[0].ArrayState, f.Values)
}

func TestSequencer_FinishedToPlayingOnLoad(t *testing.T) {
	s := New()
	s.Load(trace.New(sorting.NameQuickSort, 0))
	require.Equal(t, StateFinished, s.State())

	s.Load(sortTrace(t, sorting.NameMergeSort, 2, 1))

	assert.Equal(t, StatePlaying, s.State())
}

func TestSequencer_FramesDoNotAliasTrace(t *testing.T) {
	tr := sortTrace(t, sorting.NameBubbleSort, 2, 1)
	s := New()
	s.Load(tr)

	f, ok := s.Advance()
	require.True(t, ok)
	f.Values[0] = 99
	f.Comparing[0] = 42

	assert.Equal(t, []float64{2, 1}, tr.Steps[0].ArrayState)
	assert.Equal(t, []int{0, 1}, tr.Steps[0].Comparing)
	assert.Equal(t, []float64{2, 1}, s.Current().Values)
}

func TestSequencer_ShufflePlayback(t *testing.T) {
	// GIVEN values and a two-swap plan, one of them a self-swap
	values := []float64{1, 2, 3}
	plan := []shuffle.Swap{{I: 2, J: 0}, {I: 1, J: 1}}
	s := New()
	s.LoadShuffle(values, plan)

	// THEN the starting values are visible before any advance
	assert.Equal(t, []float64{1, 2, 3}, s.Current().Values)
	assert.Equal(t, 2, s.Len())

	// WHEN advanced
	f1, ok := s.Advance()
	require.True(t, ok)
	f2, ok := s.Advance()
	require.True(t, ok)
	_, ok = s.Advance()

	// THEN each frame marks the swapped positions as mutated
	assert.False(t, ok)
	assert.Equal(t, trace.KindMutate, f1.Kind)
	assert.Equal(t, []float64{3, 2, 1}, f1.Values)
	assert.Equal(t, []int{2, 0}, f1.Mutated)
	assert.Equal(t, []float64{3, 2, 1}, f2.Values)
	assert.Equal(t, []int{1}, f2.Mutated)
	assert.Equal(t, StateFinished, s.State())

	// AND the caller's slice was never touched
	assert.Equal(t, []float64{1, 2, 3}, values)
}

func TestSequencer_ShuffleMatchesApply(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	plan := []shuffle.Swap{{I: 7, J: 3}, {I: 6, J: 6}, {I: 5, J: 0}, {I: 4, J: 2}, {I: 3, J: 1}, {I: 2, J: 2}, {I: 1, J: 0}}
	want := append([]float64(nil), values...)
	shuffle.Apply(want, plan)

	s := New()
	s.LoadShuffle(values, plan)
	for s.State() == StatePlaying {
		s.Advance()
	}

	assert.Equal(t, want, s.Current().Values)
}

func TestSequencer_EmptyShuffleFinishesImmediately(t *testing.T) {
	s := New()
	s.LoadShuffle([]float64{1}, []shuffle.Swap{})

	assert.Equal(t, StateFinished, s.State())
	assert.Equal(t, []float64{1}, s.Current().Values)
}
