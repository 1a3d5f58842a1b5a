package trace

import (
	"fmt"
	"slices"
)

// Trace is the ordered, append-only log of Steps produced by one algorithm run.
// A Trace is complete once the producing Sort call returns and must not be
// appended to afterwards.
type Trace struct {
	Algorithm string
	Size      int // length of the sorted array; every ArrayState has this length
	Steps     []Step
}

// New creates an empty Trace ready for recording.
func New(algorithm string, size int) *Trace {
	if size < 0 {
		panic(fmt.Sprintf("trace.New: negative size %d", size))
	}
	return &Trace{
		Algorithm: algorithm,
		Size:      size,
		Steps:     make([]Step, 0),
	}
}

// Len returns the number of recorded steps. Safe on a nil trace.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Steps)
}

// RecordCompare appends a comparison step over the given positions.
func (t *Trace) RecordCompare(values []float64, indices ...int) {
	t.Steps = append(t.Steps, Step{
		Kind:       KindCompare,
		ArrayState: slices.Clone(values),
		Comparing:  slices.Clone(indices),
	})
}

// RecordMutate appends a mutation step. mutated lists the positions to
// highlight; writes lists the array writes the step stands for, which may
// touch more positions than are highlighted (e.g. both halves of a swap).
func (t *Trace) RecordMutate(values []float64, mutated []int, writes ...Write) {
	t.Steps = append(t.Steps, Step{
		Kind:       KindMutate,
		ArrayState: slices.Clone(values),
		Mutated:    slices.Clone(mutated),
		Writes:     slices.Clone(writes),
	})
}

// RecordPartition appends a partition marker for a pivot moving from origin to dest.
func (t *Trace) RecordPartition(values []float64, origin, dest int, writes ...Write) {
	markers := []int{origin}
	if dest != origin {
		markers = append(markers, dest)
	}
	t.Steps = append(t.Steps, Step{
		Kind:       KindPartition,
		ArrayState: slices.Clone(values),
		Markers:    markers,
		Writes:     slices.Clone(writes),
	})
}

// RecordPivot appends the step that closes a partition of [left, right]
// once the pivot sits at index pivot. The pivot is omitted from the markers
// when it is one of the bounds. It stands for no writes.
func (t *Trace) RecordPivot(values []float64, left, right, pivot int) {
	markers := []int{left, right}
	if pivot != left && pivot != right {
		markers = append(markers, pivot)
	}
	t.Steps = append(t.Steps, Step{
		Kind:       KindPivot,
		ArrayState: slices.Clone(values),
		Markers:    markers,
	})
}

// Validate checks the snapshot invariant: every ArrayState has length Size,
// every index lies in [0, Size), and each step populates only the index set
// matching its kind.
func (t *Trace) Validate() error {
	if t == nil {
		return fmt.Errorf("nil trace")
	}
	for i, s := range t.Steps {
		prefix := fmt.Sprintf("step[%d]", i)
		if !validStepKinds[s.Kind] {
			return fmt.Errorf("%s: unknown kind %q", prefix, s.Kind)
		}
		if len(s.ArrayState) != t.Size {
			return fmt.Errorf("%s: array state has length %d, want %d", prefix, len(s.ArrayState), t.Size)
		}
		if err := checkIndices(prefix+".comparing", s.Comparing, 2, t.Size); err != nil {
			return err
		}
		if err := checkIndices(prefix+".mutated", s.Mutated, 3, t.Size); err != nil {
			return err
		}
		maxMarkers := 2
		if s.Kind == KindPivot {
			maxMarkers = 3
		}
		if err := checkIndices(prefix+".markers", s.Markers, maxMarkers, t.Size); err != nil {
			return err
		}
		for _, w := range s.Writes {
			if w.Index < 0 || w.Index >= t.Size {
				return fmt.Errorf("%s.writes: index %d out of range [0, %d)", prefix, w.Index, t.Size)
			}
		}
		switch s.Kind {
		case KindCompare:
			if len(s.Mutated) > 0 || len(s.Markers) > 0 || len(s.Writes) > 0 {
				return fmt.Errorf("%s: comparison step carries mutation data", prefix)
			}
		case KindMutate:
			if len(s.Comparing) > 0 || len(s.Markers) > 0 {
				return fmt.Errorf("%s: mutation step carries comparison data", prefix)
			}
		case KindPartition:
			if len(s.Comparing) > 0 || len(s.Mutated) > 0 {
				return fmt.Errorf("%s: partition step carries comparison or mutation data", prefix)
			}
		case KindPivot:
			if len(s.Comparing) > 0 || len(s.Mutated) > 0 || len(s.Writes) > 0 {
				return fmt.Errorf("%s: pivot step carries comparison or mutation data", prefix)
			}
		}
	}
	return nil
}

func checkIndices(name string, indices []int, max, size int) error {
	if len(indices) > max {
		return fmt.Errorf("%s: %d indices, at most %d allowed", name, len(indices), max)
	}
	for _, idx := range indices {
		if idx < 0 || idx >= size {
			return fmt.Errorf("%s: index %d out of range [0, %d)", name, idx, size)
		}
	}
	return nil
}

// Replay applies every step's Writes, in order, to a copy of initial and
// returns the result. For a complete trace this reproduces the sorted output.
func (t *Trace) Replay(initial []float64) ([]float64, error) {
	if t == nil {
		return nil, fmt.Errorf("nil trace")
	}
	if len(initial) != t.Size {
		return nil, fmt.Errorf("initial array has length %d, trace expects %d", len(initial), t.Size)
	}
	out := slices.Clone(initial)
	for i, s := range t.Steps {
		for _, w := range s.Writes {
			if w.Index < 0 || w.Index >= len(out) {
				return nil, fmt.Errorf("step[%d]: write index %d out of range", i, w.Index)
			}
			out[w.Index] = w.Value
		}
	}
	return out, nil
}

// Clone returns a deep copy, for callers that need a trace to outlive the
// producer's ownership.
func (t *Trace) Clone() *Trace {
	if t == nil {
		return nil
	}
	c := &Trace{Algorithm: t.Algorithm, Size: t.Size, Steps: make([]Step, len(t.Steps))}
	for i, s := range t.Steps {
		c.Steps[i] = Step{
			Kind:       s.Kind,
			ArrayState: slices.Clone(s.ArrayState),
			Comparing:  slices.Clone(s.Comparing),
			Mutated:    slices.Clone(s.Mutated),
			Markers:    slices.Clone(s.Markers),
			Writes:     slices.Clone(s.Writes),
		}
	}
	return c
}
