package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SweepPath(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "positional", args: []string{"sweep.hcl"}, want: "sweep.hcl"},
		{name: "long flag", args: []string{"-sweep", "sweep.hcl"}, want: "sweep.hcl"},
		{name: "short flag", args: []string{"-s", "sweep.hcl"}, want: "sweep.hcl"},
		{name: "long flag wins over positional", args: []string{"-sweep", "a.hcl", "b.hcl"}, want: "a.hcl"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			config, shouldExit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			require.False(t, shouldExit)
			assert.Equal(t, tc.want, config.SweepPath)
		})
	}
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	_, shouldExit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
}

func TestParse_OutputOptions(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := Parse([]string{"-out", "jobs", "-run-token", "sweep.hcl"}, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "jobs", config.OutDir)
	assert.True(t, config.RunToken)
}

func TestParse_InvalidOptions(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "bad log format", args: []string{"-log-format", "xml", "sweep.hcl"}},
		{name: "bad log level", args: []string{"-log-level", "verbose", "sweep.hcl"}},
		{name: "unknown flag", args: []string{"-bogus", "sweep.hcl"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	config, _, err := Parse([]string{"sweep.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "", config.OutDir)
	assert.False(t, config.RunToken)
}
