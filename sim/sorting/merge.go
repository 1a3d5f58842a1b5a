package sorting

import (
	"slices"

	"github.com/sortsim/sortsim/sim/trace"
)

// MergeSort is top-down merge sort over closed ranges [left, right].
// Ties favour the left half, so equal keys keep their relative order.
type MergeSort struct{}

func (m *MergeSort) Name() string { return NameMergeSort }

func (m *MergeSort) Sort(a []float64) ([]float64, *trace.Trace) {
	t := trace.New(NameMergeSort, len(a))
	mergeSort(a, 0, len(a)-1, t)
	return a, t
}

func mergeSort(a []float64, left, right int, t *trace.Trace) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(a, left, mid, t)
	mergeSort(a, mid+1, right, t)
	merge(a, left, mid, right, t)
}

// merge combines the sorted runs a[left..mid] and a[mid+1..right].
// Every element taken is preceded by a comparison naming its candidate
// source positions and followed by a mutation naming its destination.
func merge(a []float64, left, mid, right int, t *trace.Trace) {
	leftRun := slices.Clone(a[left : mid+1])
	rightRun := slices.Clone(a[mid+1 : right+1])

	i, j, k := 0, 0, left
	for i < len(leftRun) && j < len(rightRun) {
		t.RecordCompare(a, left+i, mid+1+j)
		if leftRun[i] <= rightRun[j] {
			a[k] = leftRun[i]
			i++
		} else {
			a[k] = rightRun[j]
			j++
		}
		t.RecordMutate(a, []int{k}, trace.Write{Index: k, Value: a[k]})
		k++
	}

	for ; i < len(leftRun); i++ {
		t.RecordCompare(a, left+i)
		a[k] = leftRun[i]
		t.RecordMutate(a, []int{k}, trace.Write{Index: k, Value: a[k]})
		k++
	}
	for ; j < len(rightRun); j++ {
		t.RecordCompare(a, mid+1+j)
		a[k] = rightRun[j]
		t.RecordMutate(a, []int{k}, trace.Write{Index: k, Value: a[k]})
		k++
	}
}
