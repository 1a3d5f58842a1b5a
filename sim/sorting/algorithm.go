// Package sorting implements the instrumented comparison sorts and the
// registry that resolves them by name.
//
// Every algorithm sorts its input in place and returns it together with a
// fresh trace.Trace describing each comparison and write it performed.
// Algorithms hold no state between calls, so a single instance may be shared.
package sorting

import (
	"slices"

	"github.com/sortsim/sortsim/sim/trace"
)

// Algorithm is an instrumented in-place sort.
//
// Sort takes ownership of values: it sorts the slice in place and returns it,
// along with the trace recorded during that call. Callers that still need the
// original order must pass a copy (see SortCopy).
type Algorithm interface {
	Name() string
	Sort(values []float64) ([]float64, *trace.Trace)
}

// SortCopy sorts a copy of values, leaving the caller's slice untouched.
func SortCopy(alg Algorithm, values []float64) ([]float64, *trace.Trace) {
	return alg.Sort(slices.Clone(values))
}

// swap exchanges a[i] and a[j] and returns the two writes that describe it.
func swap(a []float64, i, j int) []trace.Write {
	a[i], a[j] = a[j], a[i]
	return []trace.Write{{Index: i, Value: a[i]}, {Index: j, Value: a[j]}}
}
