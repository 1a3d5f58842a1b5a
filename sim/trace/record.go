// Package trace provides step-trace recording for instrumented sorting runs.
// This package has no dependencies on sim/ or its other sub-packages; it stores pure data types.
package trace

// StepKind classifies what a recorded Step describes.
type StepKind string

const (
	// KindCompare records positions being read/compared.
	KindCompare StepKind = "compare"
	// KindMutate records positions just written (swapped, overwritten, placed).
	KindMutate StepKind = "mutate"
	// KindPartition marks a quicksort partition boundary: pivot origin and destination.
	KindPartition StepKind = "partition"
	// KindPivot closes a quicksort partition: range bounds and the pivot's
	// final index, snapshot taken after the pivot moved.
	KindPivot StepKind = "pivot"
)

// validStepKinds maps accepted step kind strings.
var validStepKinds = map[StepKind]bool{
	KindCompare:   true,
	KindMutate:    true,
	KindPartition: true,
	KindPivot:     true,
}

// IsValidStepKind returns true if the given kind string is a recognized step kind.
func IsValidStepKind(kind string) bool {
	return validStepKinds[StepKind(kind)]
}

// Write describes a single array write performed by a mutation or partition step.
type Write struct {
	Index int
	Value float64
}

// Step captures one instant of an algorithm run.
// ArrayState is always a private copy, never an alias of the working array.
type Step struct {
	Kind       StepKind
	ArrayState []float64
	Comparing  []int   // 0–2 indices, set only for KindCompare
	Mutated    []int   // 0–3 indices, set only for KindMutate
	Markers    []int   // partition origin/destination, or pivot range bounds and index
	Writes     []Write // writes this step stands for; nil for comparisons
}

// Highlighted returns the index set a renderer should colour for this step.
func (s Step) Highlighted() []int {
	switch s.Kind {
	case KindCompare:
		return s.Comparing
	case KindMutate:
		return s.Mutated
	case KindPartition, KindPivot:
		return s.Markers
	default:
		return nil
	}
}
