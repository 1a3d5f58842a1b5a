package sorting

import "github.com/sortsim/sortsim/sim/trace"

// BubbleSort compares adjacent pairs and swaps them when out of order.
// It always runs n-1 passes with a shrinking inner bound (no early exit).
type BubbleSort struct{}

func (b *BubbleSort) Name() string { return NameBubbleSort }

func (b *BubbleSort) Sort(a []float64) ([]float64, *trace.Trace) {
	n := len(a)
	t := trace.New(NameBubbleSort, n)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			t.RecordCompare(a, j, j+1)
			if a[j] > a[j+1] {
				writes := swap(a, j, j+1)
				t.RecordMutate(a, []int{j}, writes...)
			}
		}
	}
	return a, t
}
