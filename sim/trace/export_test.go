package trace

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrace() *Trace {
	tr := New("quickSort", 3)
	tr.RecordCompare([]float64{2, 3, 1.5}, 0, 2)
	tr.RecordMutate([]float64{2, 3, 1.5}, []int{0}, Write{0, 2}, Write{0, 2})
	tr.RecordPartition([]float64{2, 3, 1.5}, 2, 0, Write{0, 1.5}, Write{2, 2})
	tr.RecordPivot([]float64{1.5, 3, 2}, 0, 2, 0)
	return tr
}

func TestExportTrace_RoundTrip_PreservesSteps(t *testing.T) {
	// GIVEN a recorded trace
	tr := sampleTrace()
	dir := t.TempDir()
	headerPath := filepath.Join(dir, "trace.yaml")
	dataPath := filepath.Join(dir, "trace.csv")

	// WHEN exported and loaded back
	require.NoError(t, ExportTrace(tr, &TraceHeader{Seed: 7}, headerPath, dataPath))
	loaded, header, err := LoadTrace(headerPath, dataPath)
	require.NoError(t, err)

	// THEN header metadata and every step survive
	assert.Equal(t, TraceFileVersion, header.Version)
	assert.Equal(t, int64(7), header.Seed)
	assert.Equal(t, 4, header.Steps)
	assert.Equal(t, tr.Algorithm, loaded.Algorithm)
	assert.Equal(t, tr.Size, loaded.Size)
	require.Len(t, loaded.Steps, len(tr.Steps))
	for i := range tr.Steps {
		assert.Equal(t, tr.Steps[i].Kind, loaded.Steps[i].Kind, "step %d kind", i)
		assert.Equal(t, tr.Steps[i].ArrayState, loaded.Steps[i].ArrayState, "step %d state", i)
		assert.Equal(t, tr.Steps[i].Writes, loaded.Steps[i].Writes, "step %d writes", i)
		assert.Equal(t, tr.Steps[i].Highlighted(), loaded.Steps[i].Highlighted(), "step %d highlight", i)
	}
}

func TestLoadTrace_StepCountMismatch_Errors(t *testing.T) {
	dir := t.TempDir()
	headerPath := filepath.Join(dir, "trace.yaml")
	dataPath := filepath.Join(dir, "trace.csv")
	require.NoError(t, ExportTrace(sampleTrace(), nil, headerPath, dataPath))

	// Header claims more steps than the data file holds
	require.NoError(t, os.WriteFile(headerPath, []byte("trace_version: 1\nalgorithm: quickSort\nsize: 3\nsteps: 9\n"), 0644))

	_, _, err := LoadTrace(headerPath, dataPath)
	assert.Error(t, err)
}

func TestLoadTrace_UnsupportedVersion_Errors(t *testing.T) {
	dir := t.TempDir()
	headerPath := filepath.Join(dir, "trace.yaml")
	dataPath := filepath.Join(dir, "trace.csv")
	require.NoError(t, ExportTrace(sampleTrace(), nil, headerPath, dataPath))
	require.NoError(t, os.WriteFile(headerPath, []byte("trace_version: 2\nsteps: 3\n"), 0644))

	_, _, err := LoadTrace(headerPath, dataPath)
	assert.ErrorContains(t, err, "unsupported trace_version")
}

func TestReadSteps_UnknownKind_Errors(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("step,kind,comparing,mutated,markers,writes,array_state\n")
	buf.WriteString("0,swap,0;1,,,,1;2\n")

	_, err := ReadSteps(&buf)
	assert.ErrorContains(t, err, "unknown kind")
}

func TestReadSteps_MalformedWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("step,kind,comparing,mutated,markers,writes,array_state\n")
	buf.WriteString("0,mutate,,0,,0-1,1;2\n")

	_, err := ReadSteps(&buf)
	assert.ErrorContains(t, err, "malformed write")
}

func TestExportTrace_WriteFailureIsReported(t *testing.T) {
	// GIVEN a data path whose writes fail with ENOSPC
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	headerPath := filepath.Join(t.TempDir(), "trace.yaml")

	// WHEN exported
	err := ExportTrace(sampleTrace(), nil, headerPath, "/dev/full")

	// THEN the failure reaches the caller
	assert.Error(t, err)
}

func TestExportTrace_DataFileCompleteOnReturn(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "trace.csv")
	require.NoError(t, ExportTrace(sampleTrace(), nil, filepath.Join(dir, "trace.yaml"), dataPath))

	data, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	steps, err := ReadSteps(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, steps, 4)
	assert.Equal(t, KindPivot, steps[3].Kind)
	assert.Equal(t, []int{0, 2}, steps[3].Markers)
}
