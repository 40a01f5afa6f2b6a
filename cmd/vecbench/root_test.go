package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootTextOutput(t *testing.T) {
	out, _, err := execute(t, "--size", "5", "--color", "never")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "C[:5] = [2. 2. 2. 2. 2.]", lines[0])
	assert.Equal(t, "C[-5:] = [2. 2. 2. 2. 2.]", lines[1])
	assert.Regexp(t, `^VectorAdd took \d+\.\d{6} seconds$`, lines[2])
	assert.Equal(t, "G[:5] = [1. 1. 1. 1. 1.]", lines[3])
	assert.Equal(t, "G[-5:] = [1. 1. 1. 1. 1.]", lines[4])
	assert.Regexp(t, `^VectorMultiply took \d+\.\d{6} seconds$`, lines[5])
}

func TestRootRepeatPrintsSummary(t *testing.T) {
	out, _, err := execute(t, "--size", "16", "--op", "add", "--repeat", "3", "--color", "never", "--verify")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "VectorAdd took"))
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "stddev(s)")
}

func TestRootJSONOutput(t *testing.T) {
	out, _, err := execute(t, "--size", "8", "--format", "json", "--workers", "1")
	require.NoError(t, err)

	var doc struct {
		RunID  string `json:"run_id"`
		Size   int    `json:"size"`
		Trials []struct {
			Op   string    `json:"op"`
			Head []float32 `json:"head"`
		} `json:"trials"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.RunID)
	assert.Equal(t, 8, doc.Size)
	require.Len(t, doc.Trials, 2)
	assert.Equal(t, "add", doc.Trials[0].Op)
	assert.Equal(t, []float32{2, 2, 2, 2, 2}, doc.Trials[0].Head)
	assert.Equal(t, "multiply", doc.Trials[1].Op)
}

func TestRootMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vecbench.prom")
	_, _, err := execute(t, "--size", "8", "--color", "never", "--metrics-file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `vecbench_trials_total{op="multiply",status="ok"} 1`)
}

func TestRootAllocationFailureExitsWithError(t *testing.T) {
	out, _, err := execute(t, "--size", "1000", "--memory-limit", "64", "--op", "add", "--color", "never")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 trials failed")
	assert.Contains(t, out, "VectorAdd failed")
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--size", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: invalid")

	_, _, err = execute(t, "--op", "add,add")
	require.Error(t, err)
}

func TestBackendsCommand(t *testing.T) {
	out, _, err := execute(t, "backends")
	require.NoError(t, err)

	assert.Contains(t, out, "CPU features:")
	assert.Contains(t, out, "generic")
	assert.Contains(t, out, "scalar Go")
	assert.Contains(t, out, "Requires")
	assert.Contains(t, out, "no hand-written assembly")
	assert.Contains(t, out, "*")
}
