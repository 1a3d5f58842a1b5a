package sorting

import "github.com/sortsim/sortsim/sim/trace"

// SelectionSort scans the unsorted remainder for its minimum and swaps it
// into place. Changes of the running minimum are not recorded; the swap is,
// even when it is a no-op.
type SelectionSort struct{}

func (s *SelectionSort) Name() string { return NameSelectionSort }

func (s *SelectionSort) Sort(a []float64) ([]float64, *trace.Trace) {
	n := len(a)
	t := trace.New(NameSelectionSort, n)
	// The last position is sorted once every other one is.
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			t.RecordCompare(a, minIdx, j)
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		writes := swap(a, i, minIdx)
		mutated := []int{i, minIdx}
		if minIdx == i {
			mutated = []int{i}
			writes = writes[:1]
		}
		t.RecordMutate(a, mutated, writes...)
	}
	return a, t
}
