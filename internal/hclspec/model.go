package hclspec

import (
	"github.com/sweeplab/sweepgrid/internal/format"
	"github.com/sweeplab/sweepgrid/internal/sweep"
)

// Model is the fully translated content of one sweep configuration: the
// core specification, the configured formatter, and the optional script
// sink settings.
type Model struct {
	Spec      *sweep.Spec
	Formatter *format.ArgFormatter
	// Scripts is nil when the sweep file has no scripts block, in which
	// case commands are streamed to stdout.
	Scripts *ScriptsConfig
}

// ScriptsConfig mirrors the scripts block of a sweep file.
type ScriptsConfig struct {
	Dir            string
	CreateRunToken bool
	Prologue       string
	Epilogue       string
	LinePrefix     string
	LineSuffix     string
}
