package hclspec

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/sweeplab/sweepgrid/internal/ctxlog"
	"github.com/sweeplab/sweepgrid/internal/format"
	"github.com/sweeplab/sweepgrid/internal/fsutil"
	"github.com/sweeplab/sweepgrid/internal/sweep"
)

// Loader parses sweep files and translates them into a Model.
type Loader struct{}

// NewLoader creates a new sweep-file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the sweep configuration at path, which may be a single .hcl
// file or a directory searched recursively for .hcl files (concatenated in
// sorted path order). All parse and translation problems are reported as
// hcl.Diagnostics so the user sees file and line context.
func (l *Loader) Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.CollectByExtension(path, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl sweep files found under %s", path)
	}
	logger.Debug("Discovered sweep files.", "count", len(files))

	parser := hclparse.NewParser()
	var diags hcl.Diagnostics
	var units []sweep.Unit
	formatter := format.NewArgFormatter()
	var scripts *ScriptsConfig
	seenFormat := false

	for _, file := range files {
		f, parseDiags := parser.ParseHCLFile(file)
		diags = append(diags, parseDiags...)
		if parseDiags.HasErrors() {
			continue
		}

		content, contentDiags := f.Body.Content(rootSchema)
		diags = append(diags, contentDiags...)

		// content.Blocks preserves source order, so params and groups
		// interleave exactly as written.
		for _, block := range content.Blocks {
			switch block.Type {
			case "param":
				unit, unitDiags := decodeParam(block)
				diags = append(diags, unitDiags...)
				if unit != nil {
					units = append(units, unit)
				}
			case "group":
				unit, unitDiags := decodeGroup(block)
				diags = append(diags, unitDiags...)
				if unit != nil {
					units = append(units, unit)
				}
			case "format":
				if seenFormat {
					diags = append(diags, duplicateBlock(block))
					continue
				}
				seenFormat = true
				diags = append(diags, decodeFormat(block, formatter)...)
			case "scripts":
				if scripts != nil {
					diags = append(diags, duplicateBlock(block))
					continue
				}
				cfg, scriptsDiags := decodeScripts(block)
				diags = append(diags, scriptsDiags...)
				scripts = cfg
			}
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("sweep configuration at %s defines no param or group blocks", path)
	}
	logger.Debug("Sweep configuration loaded.", "units", len(units), "scripts", scripts != nil)

	return &Model{
		Spec:      sweep.NewSpec(units...),
		Formatter: formatter,
		Scripts:   scripts,
	}, nil
}

func duplicateBlock(block *hcl.Block) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Duplicate %s block", block.Type),
		Detail:   fmt.Sprintf("Only one %s block is allowed across all sweep files.", block.Type),
		Subject:  &block.DefRange,
	}
}
