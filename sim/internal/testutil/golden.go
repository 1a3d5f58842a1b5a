// Package testutil provides shared test infrastructure for the sortsim engine.
// It consolidates golden trace types and assertion helpers used across
// sim/sorting and sim/player test packages.
package testutil

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/sortsim/sortsim/sim/trace"
)

// GoldenDataset represents the structure of testdata/goldentraces.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one hand-verified algorithm run.
type GoldenTestCase struct {
	Algorithm string       `json:"algorithm"`
	Input     []float64    `json:"input"`
	Sorted    []float64    `json:"sorted"`
	Steps     []GoldenStep `json:"steps"`
}

// GoldenStep is the expected kind and highlighted index set of one step.
type GoldenStep struct {
	Kind    string `json:"kind"`
	Indices []int  `json:"indices"`
}

// LoadGoldenDataset loads the golden traces from the repo-root testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldentraces.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// Inputs returns a deterministic spread of arrays covering the degenerate,
// presorted, reversed, duplicate-heavy and random cases.
func Inputs(seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	inputs := [][]float64{
		{},
		{5},
		{1, 2},
		{2, 1},
		{3, 1, 2},
		{1, 2, 3, 4, 5, 6},
		{6, 5, 4, 3, 2, 1},
		{2, 2, 2, 2},
		{3, 1, 3, 1, 2, 2, 1},
		{-1.5, 0, 2.25, -3, 0},
	}
	for _, n := range []int{7, 16, 33, 64} {
		values := make([]float64, n)
		for i := range values {
			values[i] = float64(rng.Intn(n / 2))
		}
		inputs = append(inputs, values)
	}
	return inputs
}

// AssertSortedTrace checks the properties every algorithm run must satisfy:
// the output is the sorted input multiset, the trace passes Validate,
// replaying the trace's writes onto input reproduces the output, and the
// last snapshot shows the output.
func AssertSortedTrace(t *testing.T, input, output []float64, tr *trace.Trace) {
	t.Helper()

	want := slices.Clone(input)
	slices.Sort(want)
	if !slices.Equal(want, output) {
		t.Fatalf("sorted output = %v, want %v", output, want)
	}
	if tr == nil {
		t.Fatal("nil trace")
	}
	if tr.Size != len(input) {
		t.Errorf("trace size = %d, want %d", tr.Size, len(input))
	}
	if err := tr.Validate(); err != nil {
		t.Fatalf("trace invalid: %v", err)
	}
	replayed, err := tr.Replay(input)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !slices.Equal(replayed, output) {
		t.Errorf("replayed = %v, want %v", replayed, output)
	}
	if n := len(tr.Steps); n > 0 && !slices.Equal(tr.Steps[n-1].ArrayState, output) {
		t.Errorf("last snapshot = %v, want %v", tr.Steps[n-1].ArrayState, output)
	}
}
