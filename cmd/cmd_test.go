package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortsim/sortsim/sim"
	"github.com/sortsim/sortsim/sim/sorting"
	"github.com/sortsim/sortsim/sim/trace"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	registerConfigFlags(c)
	return c
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sortsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func smallConfig() sim.VisualizerConfig {
	cfg := sim.DefaultVisualizerConfig()
	cfg.BarCount = 16
	cfg.StepDelayMs = 0
	cfg.ShuffleDelayMs = 0
	return cfg
}

func TestResolveConfig_DefaultsWithoutFlags(t *testing.T) {
	cfg, err := resolveConfig(newConfigCmd())

	require.NoError(t, err)
	assert.Equal(t, sim.DefaultVisualizerConfig(), cfg)
}

func TestResolveConfig_FlagOverridesOnlyWhenChanged(t *testing.T) {
	// GIVEN a config file setting bars and seed
	c := newConfigCmd()
	require.NoError(t, c.Flags().Set("config", writeConfig(t, "bar_count: 50\nseed: 9\nalgorithm: mergeSort\n")))

	// WHEN only --bars is set on the command line
	require.NoError(t, c.Flags().Set("bars", "12"))
	cfg, err := resolveConfig(c)

	// THEN --bars wins, and the file's seed is not clobbered by the flag default
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BarCount)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "mergeSort", cfg.Algorithm)
}

func TestResolveConfig_AllFlags(t *testing.T) {
	c := newConfigCmd()
	for name, value := range map[string]string{
		"seed": "3", "bars": "7", "algorithm": "bubbleSort",
		"step-delay": "1", "shuffle-delay": "2", "max-height": "50",
	} {
		require.NoError(t, c.Flags().Set(name, value))
	}

	cfg, err := resolveConfig(c)

	require.NoError(t, err)
	assert.Equal(t, sim.VisualizerConfig{
		BarCount: 7, StepDelayMs: 1, ShuffleDelayMs: 2,
		Algorithm: "bubbleSort", Seed: 3, MaxBarHeight: 50,
	}, cfg)
}

func TestResolveConfig_Errors(t *testing.T) {
	t.Run("unknown algorithm", func(t *testing.T) {
		c := newConfigCmd()
		require.NoError(t, c.Flags().Set("algorithm", "bogoSort"))
		_, err := resolveConfig(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
	t.Run("unknown config key", func(t *testing.T) {
		c := newConfigCmd()
		require.NoError(t, c.Flags().Set("config", writeConfig(t, "bars: 5\n")))
		_, err := resolveConfig(c)
		assert.Error(t, err)
	})
}

func TestRunSort_TextSummary(t *testing.T) {
	var out bytes.Buffer

	err := runSort(&out, smallConfig(), runOptions{format: formatText})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "=== Trace Summary ===")
	assert.Contains(t, out.String(), "Algorithm      : quickSort")
	assert.Contains(t, out.String(), "Bars           : 16")
}

func TestRunSort_MarkdownSummary(t *testing.T) {
	var out bytes.Buffer
	cfg := smallConfig()
	cfg.Algorithm = sorting.NameInsertionSort

	require.NoError(t, runSort(&out, cfg, runOptions{format: formatMarkdown}))

	assert.True(t, strings.HasPrefix(out.String(), "# insertionSort on 16 bars"))
}

func TestRunSort_ExportRoundTrip(t *testing.T) {
	// GIVEN export paths
	dir := t.TempDir()
	header := filepath.Join(dir, "trace.yaml")
	data := filepath.Join(dir, "trace.csv")
	cfg := smallConfig()
	cfg.Algorithm = sorting.NameMergeSort

	// WHEN run with export
	require.NoError(t, runSort(&bytes.Buffer{}, cfg, runOptions{format: formatText, exportHeader: header, exportData: data}))

	// THEN the exported trace loads back and replays to sorted bars
	tr, h, err := trace.LoadTrace(header, data)
	require.NoError(t, err)
	assert.Equal(t, "mergeSort", h.Algorithm)
	assert.Equal(t, cfg.Seed, h.Seed)
	assert.Equal(t, 16, tr.Size)
	assert.Equal(t, h.Steps, tr.Len())
}

func TestRunSort_RejectsBadOptions(t *testing.T) {
	assert.Error(t, runSort(&bytes.Buffer{}, smallConfig(), runOptions{format: "html"}))
	assert.Error(t, runSort(&bytes.Buffer{}, smallConfig(), runOptions{format: formatText, exportHeader: "only-header.yaml"}))
}

func TestPlaySession_DrawsShuffleThenSort(t *testing.T) {
	var out bytes.Buffer
	cfg := smallConfig()
	cfg.BarCount = 8

	err := playSession(context.Background(), &out, cfg, playOptions{profile: termenv.Ascii, rows: 4})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	// Every frame is 4 bar rows plus a status line; 7 shuffle frames come first.
	require.Zero(t, len(lines)%5)
	assert.Greater(t, len(lines)/5, 7)
	assert.True(t, strings.HasPrefix(lines[4], "mutate step 1 "), "first frame is a shuffle swap: %q", lines[4])
	assert.Equal(t, "████████", lines[len(lines)-2], "sorted bars all reach the bottom row")
}

func TestPlaySession_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := playSession(ctx, &bytes.Buffer{}, smallConfig(), playOptions{profile: termenv.Ascii, rows: 2})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlaySession_ReplaysExportedTrace(t *testing.T) {
	// GIVEN an exported bubble sort trace
	dir := t.TempDir()
	header := filepath.Join(dir, "trace.yaml")
	data := filepath.Join(dir, "trace.csv")
	alg, _ := sorting.Resolve(sorting.NameBubbleSort)
	_, tr := sorting.SortCopy(alg, []float64{3, 1, 2})
	require.NoError(t, trace.ExportTrace(tr, nil, header, data))

	// WHEN replayed
	var out bytes.Buffer
	err := playSession(context.Background(), &out, smallConfig(), playOptions{
		profile: termenv.Ascii, rows: 3, traceHeader: header, traceData: data,
	})

	// THEN one frame per step is drawn
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, tr.Len()*4)
	assert.Equal(t, "█  ", lines[0], "only the bar of height 3 reaches the top row")
}

func TestPlaySession_TracePathsMustPair(t *testing.T) {
	err := playSession(context.Background(), &bytes.Buffer{}, smallConfig(), playOptions{traceData: "x.csv"})
	assert.Error(t, err)
}

func TestPrintShufflePlan(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, printShufflePlan(&out, 4, 42))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "3 "))
	assert.True(t, strings.HasPrefix(lines[1], "2 "))
	assert.True(t, strings.HasPrefix(lines[2], "1 "))
	assert.True(t, strings.HasPrefix(lines[3], "result: ["))
	assert.Error(t, printShufflePlan(&out, -1, 42))
}

func TestListAlgorithms(t *testing.T) {
	var plain bytes.Buffer
	require.NoError(t, listAlgorithms(&plain, false, ""))
	assert.Equal(t, strings.Join(sorting.Names(), "\n")+"\n", plain.String())

	var md bytes.Buffer
	require.NoError(t, listAlgorithms(&md, true, "notty"))
	assert.Contains(t, md.String(), sorting.NameQuickSort)
}
