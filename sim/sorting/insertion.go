package sorting

import "github.com/sortsim/sortsim/sim/trace"

// InsertionSort grows a sorted prefix by shifting larger elements right and
// dropping the held value into the gap.
type InsertionSort struct{}

func (s *InsertionSort) Name() string { return NameInsertionSort }

func (s *InsertionSort) Sort(a []float64) ([]float64, *trace.Trace) {
	n := len(a)
	t := trace.New(NameInsertionSort, n)
	for i := 1; i < n; i++ {
		held := a[i]
		j := i - 1
		t.RecordCompare(a, i, j)

		for j >= 0 && a[j] > held {
			// The held value is named by the index it was taken from.
			t.RecordCompare(a, j, i)
			a[j+1] = a[j]
			t.RecordMutate(a, []int{j + 1}, trace.Write{Index: j + 1, Value: a[j+1]})
			j--
		}

		a[j+1] = held
		t.RecordMutate(a, []int{j + 1}, trace.Write{Index: j + 1, Value: held})
	}
	return a, t
}
