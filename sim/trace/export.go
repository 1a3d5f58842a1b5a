package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TraceFileVersion is the current on-disk trace format version.
const TraceFileVersion = 1

// TraceHeader captures metadata for exported trace files.
type TraceHeader struct {
	Version   int    `yaml:"trace_version"`
	Algorithm string `yaml:"algorithm"`
	Size      int    `yaml:"size"`
	Steps     int    `yaml:"steps"`
	Seed      int64  `yaml:"seed,omitempty"`
	CreatedAt string `yaml:"created_at,omitempty"`
}

// CSV column headers for the trace data file.
var traceColumns = []string{
	"step", "kind", "comparing", "mutated", "markers", "writes", "array_state",
}

// ExportTrace writes the trace header (YAML) and steps (CSV) to separate files.
// header may be nil; Algorithm, Size and Steps are always taken from t.
func ExportTrace(t *Trace, header *TraceHeader, headerPath, dataPath string) error {
	if t == nil {
		return fmt.Errorf("exporting trace: nil trace")
	}
	h := TraceHeader{}
	if header != nil {
		h = *header
	}
	h.Version = TraceFileVersion
	h.Algorithm = t.Algorithm
	h.Size = t.Size
	h.Steps = len(t.Steps)

	headerData, err := yaml.Marshal(&h)
	if err != nil {
		return fmt.Errorf("marshaling trace header: %w", err)
	}
	if err := os.WriteFile(headerPath, headerData, 0644); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}

	file, err := os.Create(dataPath)
	if err != nil {
		return fmt.Errorf("creating trace data file: %w", err)
	}

	if err := WriteSteps(file, t.Steps); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing trace data file: %w", err)
	}
	return nil
}

// WriteSteps encodes steps as CSV (with a header row) to w.
func WriteSteps(w io.Writer, steps []Step) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(traceColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, s := range steps {
		row := []string{
			strconv.Itoa(i),
			string(s.Kind),
			formatInts(s.Comparing),
			formatInts(s.Mutated),
			formatInts(s.Markers),
			formatWrites(s.Writes),
			formatFloats(s.ArrayState),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// LoadTrace reads a trace header (YAML) and steps (CSV) and validates the result.
func LoadTrace(headerPath, dataPath string) (*Trace, *TraceHeader, error) {
	headerData, err := os.ReadFile(headerPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading trace header: %w", err)
	}
	var header TraceHeader
	if err := yaml.Unmarshal(headerData, &header); err != nil {
		return nil, nil, fmt.Errorf("parsing trace header: %w", err)
	}
	if header.Version != TraceFileVersion {
		return nil, nil, fmt.Errorf("unsupported trace_version %d, want %d", header.Version, TraceFileVersion)
	}

	file, err := os.Open(dataPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening trace data: %w", err)
	}
	defer func() { _ = file.Close() }()

	steps, err := ReadSteps(file)
	if err != nil {
		return nil, nil, err
	}
	if len(steps) != header.Steps {
		return nil, nil, fmt.Errorf("trace data has %d steps, header declares %d", len(steps), header.Steps)
	}

	t := &Trace{Algorithm: header.Algorithm, Size: header.Size, Steps: steps}
	if err := t.Validate(); err != nil {
		return nil, nil, fmt.Errorf("validating loaded trace: %w", err)
	}
	return t, &header, nil
}

// ReadSteps decodes CSV produced by WriteSteps.
func ReadSteps(r io.Reader) ([]Step, error) {
	reader := csv.NewReader(r)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	steps := make([]Step, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		if len(row) < len(traceColumns) {
			return nil, fmt.Errorf("CSV row has %d columns, expected %d", len(row), len(traceColumns))
		}
		s, err := parseStep(row)
		if err != nil {
			return nil, fmt.Errorf("CSV row %s: %w", row[0], err)
		}
		steps = append(steps, *s)
	}
	return steps, nil
}

func parseStep(row []string) (*Step, error) {
	if !IsValidStepKind(row[1]) {
		return nil, fmt.Errorf("unknown kind %q", row[1])
	}
	comparing, err := parseInts(row[2])
	if err != nil {
		return nil, fmt.Errorf("comparing: %w", err)
	}
	mutated, err := parseInts(row[3])
	if err != nil {
		return nil, fmt.Errorf("mutated: %w", err)
	}
	markers, err := parseInts(row[4])
	if err != nil {
		return nil, fmt.Errorf("markers: %w", err)
	}
	writes, err := parseWrites(row[5])
	if err != nil {
		return nil, fmt.Errorf("writes: %w", err)
	}
	state, err := parseFloats(row[6])
	if err != nil {
		return nil, fmt.Errorf("array_state: %w", err)
	}
	return &Step{
		Kind:       StepKind(row[1]),
		ArrayState: state,
		Comparing:  comparing,
		Mutated:    mutated,
		Markers:    markers,
		Writes:     writes,
	}, nil
}

func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ";")
}

func formatFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ";")
}

func formatWrites(ws []Write) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = strconv.Itoa(w.Index) + ":" + strconv.FormatFloat(w.Value, 'g', -1, 64)
	}
	return strings.Join(parts, ";")
}

func parseInts(field string) ([]int, error) {
	if field == "" {
		return nil, nil
	}
	parts := strings.Split(field, ";")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(field string) ([]float64, error) {
	if field == "" {
		return []float64{}, nil
	}
	parts := strings.Split(field, ";")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseWrites(field string) ([]Write, error) {
	if field == "" {
		return nil, nil
	}
	parts := strings.Split(field, ";")
	out := make([]Write, len(parts))
	for i, p := range parts {
		idx, val, ok := strings.Cut(p, ":")
		if !ok {
			return nil, fmt.Errorf("malformed write %q", p)
		}
		index, err := strconv.Atoi(idx)
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, err
		}
		out[i] = Write{Index: index, Value: value}
	}
	return out, nil
}
