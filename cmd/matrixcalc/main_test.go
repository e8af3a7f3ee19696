// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixlab/log"
	"github.com/katalvlaran/matrixlab/matrix"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	defer log.SetLogger(nil)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "matrixcalc dev\n", out)
}

func TestRun(t *testing.T) {
	path := writeFile(t, "ws.yaml", `
matrices:
  a: [[1, 2], [3, 4]]
steps:
  - {op: det, args: [a], save: d}
  - {op: inverse, args: [a]}
`)
	out, _, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Equal(t, "[0] det -> d\n-2\n\n[1] inverse\n       -2          1\n 1.500000  -0.500000\n\n", out)
}

func TestRun_LUSolverAndLogs(t *testing.T) {
	path := writeFile(t, "ws.yaml", "matrices: {a: [[2, 0], [0, 3]]}\nsteps:\n  - {op: det, args: [a]}\n")
	out, errOut, err := execute(t, "run", path, "--solver", "lu", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "[0] det\n6")
	assert.Contains(t, errOut, "solver=lu")
	assert.Contains(t, errOut, "completed 1 steps")
}

func TestRun_StepFailureKeepsEarlierOutput(t *testing.T) {
	path := writeFile(t, "ws.yaml", "matrices: {s: [[1, 2], [2, 4]]}\nsteps:\n  - {op: show, args: [s]}\n  - {op: inverse, args: [s]}\n")
	out, _, err := execute(t, "run", path, "--log-level", "error")
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Contains(t, out, "[0] show\n1  2\n2  4\n")
}

func TestRun_ConfigFileAndInvalidFlag(t *testing.T) {
	ws := writeFile(t, "ws.yaml", "matrices: {a: [[1, 0, 0], [0, 1, 0], [0, 0, 1]]}\nsteps:\n  - {op: det, args: [a]}\n")
	cfg := writeFile(t, "cfg.yaml", "max_determinant_size: 2\nlog_level: error\n")

	_, _, err := execute(t, "run", ws, "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")

	_, _, err = execute(t, "run", ws, "--solver", "gauss")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRun_Args(t *testing.T) {
	_, _, err := execute(t, "run")
	require.Error(t, err)

	_, _, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
