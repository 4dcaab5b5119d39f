package hclspec

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeplab/sweepgrid/internal/sweep"
)

func writeSweepFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func loadModel(t *testing.T, content string) *Model {
	t.Helper()
	path := writeSweepFile(t, "sweep.hcl", content)
	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	return model
}

// renderAll formats every instance of the model's spec with the model's
// formatter.
func renderAll(t *testing.T, model *Model) []string {
	t.Helper()
	var out []string
	cur := model.Spec.Open()
	for cur.Next() {
		line, err := model.Formatter.Format(cur.Instance())
		require.NoError(t, err)
		out = append(out, line)
	}
	require.NoError(t, cur.Err())
	return out
}

func TestLoader_ParamsAndProduct(t *testing.T) {
	model := loadModel(t, `
param "kernel" {
  values = ["gauss", "imq"]
}

param "kparams" {
  values = [1, 2, 3.2]
}
`)

	assert.Equal(t, []string{
		"--kernel gauss --kparams 1",
		"--kernel gauss --kparams 2",
		"--kernel gauss --kparams 3.2",
		"--kernel imq --kparams 1",
		"--kernel imq --kparams 2",
		"--kernel imq --kparams 3.2",
	}, renderAll(t, model))
}

func TestLoader_GroupVariesJointly(t *testing.T) {
	model := loadModel(t, `
group {
  keys    = ["lr", "momentum"]
  values  = [[0.1, 0.9], [0.01, 0.99]]
  outputs = ["--lr", "--mom"]
}
`)

	assert.Equal(t, []string{
		"--lr 0.1 --mom 0.9",
		"--lr 0.01 --mom 0.99",
	}, renderAll(t, model))
}

func TestLoader_UnitOrderIsFileOrder(t *testing.T) {
	model := loadModel(t, `
param "a" {
  values = [1]
}

group {
  keys   = ["x", "y"]
  values = [[1, 2]]
}

param "b" {
  values = [1]
}
`)

	assert.Equal(t, []string{"--a 1 --x 1 --y 2 --b 1"}, renderAll(t, model))
}

func TestLoader_FormatBlock(t *testing.T) {
	model := loadModel(t, `
param "w" {
  values = [[1, 2, 3]]
}

param "rate" {
  values = [1.5]
}

format {
  float_format   = "%.2f"
  list_open      = "("
  list_close     = ")"
  list_separator = ", "
}
`)

	assert.Equal(t, []string{"--w (1, 2, 3) --rate 1.50"}, renderAll(t, model))
}

func TestLoader_ScriptsBlock(t *testing.T) {
	model := loadModel(t, `
param "a" {
  values = [1]
}

scripts {
  dir              = "jobs"
  create_run_token = true
  prologue         = "#!/bin/bash"
}
`)

	require.NotNil(t, model.Scripts)
	assert.Equal(t, "jobs", model.Scripts.Dir)
	assert.True(t, model.Scripts.CreateRunToken)
	assert.Equal(t, "#!/bin/bash", model.Scripts.Prologue)
}

func TestLoader_NoScriptsBlock(t *testing.T) {
	model := loadModel(t, `
param "a" {
  values = [1]
}
`)
	assert.Nil(t, model.Scripts)
}

func TestLoader_OutputOverride(t *testing.T) {
	model := loadModel(t, `
param "kernel" {
  values = ["gauss"]
  output = "-k"
}
`)

	assert.Equal(t, []string{"-k gauss"}, renderAll(t, model))
}

func TestLoader_PartialGroupOutputs(t *testing.T) {
	model := loadModel(t, `
group {
  keys    = ["lr", "momentum"]
  values  = [[0.1, 0.9]]
  outputs = [null, "--mom"]
}
`)

	assert.Equal(t, []string{"--lr 0.1 --mom 0.9"}, renderAll(t, model))
}

func TestLoader_Directory(t *testing.T) {
	dir := t.TempDir()
	// Sorted path order: 01_... before 02_...
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02_b.hcl"), []byte(`
param "b" {
  values = [2]
}
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01_a.hcl"), []byte(`
param "a" {
  values = [1]
}
`), 0o600))

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"--a 1 --b 2"}, renderAll(t, model))
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantIn  string
	}{
		{
			name:    "malformed hcl",
			content: `param "a" { values = `,
			wantIn:  "",
		},
		{
			name: "values not a list",
			content: `
param "a" {
  values = "gauss"
}
`,
			wantIn: "values",
		},
		{
			name: "empty group keys",
			content: `
group {
  keys   = []
  values = [[1]]
}
`,
			wantIn: "keys cannot be empty",
		},
		{
			name: "outputs length mismatch",
			content: `
group {
  keys    = ["a", "b"]
  values  = [[1, 2]]
  outputs = ["--a"]
}
`,
			wantIn: "outputs",
		},
		{
			name:    "no units",
			content: `format {}`,
			wantIn:  "no param or group blocks",
		},
		{
			name: "duplicate format block",
			content: `
param "a" {
  values = [1]
}
format {}
format {}
`,
			wantIn: "Duplicate format block",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSweepFile(t, "sweep.hcl", tc.content)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			if tc.wantIn != "" {
				assert.Contains(t, err.Error(), tc.wantIn)
			}
		})
	}
}

func TestLoader_LazyShapeMismatchSurvivesLoading(t *testing.T) {
	// The loader cannot reject a wrong-arity tuple: shape checking is an
	// iteration-time concern.
	model := loadModel(t, `
group {
  keys   = ["a", "b"]
  values = [[1, 2], [1, 2, 3]]
}
`)

	cur := model.Spec.Open()
	require.True(t, cur.Next())
	require.False(t, cur.Next())

	var shapeErr *sweep.ShapeMismatchError
	require.ErrorAs(t, cur.Err(), &shapeErr)
}
