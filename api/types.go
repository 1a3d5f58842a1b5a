package api

import "github.com/sortsim/sortsim/sim/trace"

// AlgorithmInfo describes one registry entry.
type AlgorithmInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AlgorithmsResponse is the body of GET /algorithms.
type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
	Default    string          `json:"default"`
}

// SortRequest is the body of POST /sort. An empty algorithm selects the default.
type SortRequest struct {
	Algorithm string    `json:"algorithm"`
	Values    []float64 `json:"values"`
}

// SortResponse is the body of a successful POST /sort.
type SortResponse struct {
	Algorithm string      `json:"algorithm"`
	Sorted    []float64   `json:"sorted"`
	Summary   SummaryJSON `json:"summary"`
	Trace     []StepJSON  `json:"trace"`
}

// SummaryJSON carries the step counts of a trace.
type SummaryJSON struct {
	TotalSteps  int `json:"total_steps"`
	Comparisons int `json:"comparisons"`
	Mutations   int `json:"mutations"`
	Partitions  int `json:"partitions"`
	Pivots      int `json:"pivots"`
	Writes      int `json:"writes"`
}

// StepJSON is the wire form of trace.Step.
type StepJSON struct {
	Kind       string      `json:"kind"`
	ArrayState []float64   `json:"array_state"`
	Comparing  []int       `json:"comparing,omitempty"`
	Mutated    []int       `json:"mutated,omitempty"`
	Markers    []int       `json:"markers,omitempty"`
	Writes     []WriteJSON `json:"writes,omitempty"`
}

// WriteJSON is the wire form of trace.Write.
type WriteJSON struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// ShuffleRequest is the body of POST /shuffle.
type ShuffleRequest struct {
	Size int   `json:"size"`
	Seed int64 `json:"seed"`
}

// ShuffleResponse is the body of a successful POST /shuffle: the plan's
// (i, j) swaps take Values to Shuffled when applied in order.
type ShuffleResponse struct {
	Values   []float64 `json:"values"`
	Shuffled []float64 `json:"shuffled"`
	Plan     [][2]int  `json:"plan"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newSummaryJSON(t *trace.Trace) SummaryJSON {
	s := trace.Summarize(t)
	return SummaryJSON{
		TotalSteps:  s.TotalSteps,
		Comparisons: s.Comparisons,
		Mutations:   s.Mutations,
		Partitions:  s.Partitions,
		Pivots:      s.Pivots,
		Writes:      s.TotalWrites,
	}
}

func newStepsJSON(steps []trace.Step) []StepJSON {
	out := make([]StepJSON, len(steps))
	for i, s := range steps {
		out[i] = StepJSON{
			Kind:       string(s.Kind),
			ArrayState: s.ArrayState,
			Comparing:  s.Comparing,
			Mutated:    s.Mutated,
			Markers:    s.Markers,
		}
		for _, w := range s.Writes {
			out[i].Writes = append(out[i].Writes, WriteJSON{Index: w.Index, Value: w.Value})
		}
	}
	return out
}
