package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSweep(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_PrintsProductToStdout(t *testing.T) {
	t.Parallel()

	path := writeSweep(t, `
param "kernel" {
  values = ["gauss", "imq"]
}

param "kparams" {
  values = [1, 2, 3.2]
}
`)

	var out, logs bytes.Buffer
	require.NoError(t, run(&out, &logs, []string{path}))

	assert.Equal(t,
		"--kernel gauss --kparams 1\n"+
			"--kernel gauss --kparams 2\n"+
			"--kernel gauss --kparams 3.2\n"+
			"--kernel imq --kparams 1\n"+
			"--kernel imq --kparams 2\n"+
			"--kernel imq --kparams 3.2\n",
		out.String())
}

func TestRun_WritesScripts(t *testing.T) {
	t.Parallel()

	path := writeSweep(t, `
param "a" {
  values = [1, 2]
}
`)
	outDir := filepath.Join(t.TempDir(), "jobs")

	var out, logs bytes.Buffer
	require.NoError(t, run(&out, &logs, []string{"-out", outDir, "-run-token", path}))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	content, err := os.ReadFile(filepath.Join(outDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), "if [ ! -f ")
	assert.Empty(t, out.String(), "script mode prints nothing to stdout")
}

func TestRun_InvalidSweepFileFails(t *testing.T) {
	t.Parallel()

	path := writeSweep(t, `
param "a" {
  values =
`)

	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load sweep configuration")
}

func TestRun_MissingPathShowsUsage(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	require.NoError(t, run(&out, &logs, nil))
	assert.Contains(t, logs.String(), "Usage:")
}

func TestRun_NonexistentPathFails(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{filepath.Join(t.TempDir(), "missing.hcl")})
	require.Error(t, err)
}
