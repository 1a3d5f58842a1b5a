package sorting

import "github.com/sortsim/sortsim/sim/trace"

// QuickSort uses Lomuto partitioning with the rightmost element as pivot.
type QuickSort struct{}

func (q *QuickSort) Name() string { return NameQuickSort }

func (q *QuickSort) Sort(a []float64) ([]float64, *trace.Trace) {
	t := trace.New(NameQuickSort, len(a))
	quickSort(a, 0, len(a)-1, t)
	return a, t
}

func quickSort(a []float64, left, right int, t *trace.Trace) {
	if left >= right {
		return
	}
	p := partition(a, left, right, t)
	t.RecordPivot(a, left, right, p)
	quickSort(a, left, p-1, t)
	quickSort(a, p+1, right, t)
}

// partition returns the pivot's final index. Mutation steps for the swap
// target and the partition marker are recorded before the swap they
// describe, so their snapshots show the array just before it moves. The
// caller records the pivot step that shows the array after.
func partition(a []float64, left, right int, t *trace.Trace) int {
	pivot := a[right]
	i := left - 1
	for j := left; j < right; j++ {
		t.RecordCompare(a, j, right)
		if a[j] < pivot {
			i++
			t.RecordMutate(a, []int{i}, swapWrites(a, i, j)...)
			swap(a, i, j)
		}
	}

	dest := i + 1
	t.RecordPartition(a, right, dest, swapWrites(a, dest, right)...)
	swap(a, dest, right)
	return dest
}

// swapWrites describes swapping a[i] and a[j] without performing it.
func swapWrites(a []float64, i, j int) []trace.Write {
	if i == j {
		return []trace.Write{{Index: i, Value: a[i]}}
	}
	return []trace.Write{{Index: i, Value: a[j]}, {Index: j, Value: a[i]}}
}
