package hclspec

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/sweeplab/sweepgrid/internal/format"
	"github.com/sweeplab/sweepgrid/internal/sweep"
)

// decodeParam translates a param block into a core Param.
func decodeParam(block *hcl.Block) (sweep.Unit, hcl.Diagnostics) {
	content, diags := block.Body.Content(paramSchema)

	values, valuesDiags := listAttr(content.Attributes, "values")
	diags = append(diags, valuesDiags...)

	output, _, outputDiags := stringAttr(content.Attributes, "output")
	diags = append(diags, outputDiags...)

	if diags.HasErrors() {
		return nil, diags
	}

	var opts []sweep.ParamOption
	if output != "" {
		opts = append(opts, sweep.WithOutput(output))
	}
	param, err := sweep.NewParam(block.Labels[0], values, opts...)
	if err != nil {
		return nil, append(diags, constructionDiag(block, err))
	}
	return param, diags
}

// decodeGroup translates a group block into a core Group.
func decodeGroup(block *hcl.Block) (sweep.Unit, hcl.Diagnostics) {
	content, diags := block.Body.Content(groupSchema)

	keys, keysDiags := stringListAttr(content.Attributes, "keys")
	diags = append(diags, keysDiags...)

	values, valuesDiags := listAttr(content.Attributes, "values")
	diags = append(diags, valuesDiags...)

	var opts []sweep.GroupOption
	if attr, ok := content.Attributes["outputs"]; ok {
		outputs, outputsDiags := stringListValue(attr)
		diags = append(diags, outputsDiags...)
		if !outputsDiags.HasErrors() {
			opts = append(opts, sweep.WithOutputs(outputs))
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}

	group, err := sweep.NewGroup(keys, values, opts...)
	if err != nil {
		return nil, append(diags, constructionDiag(block, err))
	}
	return group, diags
}

// decodeFormat applies the format block's attributes over the formatter's
// defaults.
func decodeFormat(block *hcl.Block, f *format.ArgFormatter) hcl.Diagnostics {
	content, diags := block.Body.Content(formatSchema)

	assign := func(name string, dst *string) {
		s, ok, attrDiags := stringAttr(content.Attributes, name)
		diags = append(diags, attrDiags...)
		if ok {
			*dst = s
		}
	}
	assign("pair_separator", &f.PairSep)
	assign("pair_prefix", &f.PairPrefix)
	assign("pair_suffix", &f.PairSuffix)
	assign("float_format", &f.Values.FloatFormat)
	assign("list_open", &f.Values.ListOpen)
	assign("list_close", &f.Values.ListClose)
	assign("list_separator", &f.Values.ListSep)

	return diags
}

// decodeScripts translates a scripts block.
func decodeScripts(block *hcl.Block) (*ScriptsConfig, hcl.Diagnostics) {
	content, diags := block.Body.Content(scriptsSchema)

	cfg := &ScriptsConfig{}

	dir, _, dirDiags := stringAttr(content.Attributes, "dir")
	diags = append(diags, dirDiags...)
	cfg.Dir = dir

	token, tokenDiags := boolAttr(content.Attributes, "create_run_token")
	diags = append(diags, tokenDiags...)
	cfg.CreateRunToken = token

	assign := func(name string, dst *string) {
		s, ok, attrDiags := stringAttr(content.Attributes, name)
		diags = append(diags, attrDiags...)
		if ok {
			*dst = s
		}
	}
	assign("prologue", &cfg.Prologue)
	assign("epilogue", &cfg.Epilogue)
	assign("line_prefix", &cfg.LinePrefix)
	assign("line_suffix", &cfg.LineSuffix)

	if diags.HasErrors() {
		return nil, diags
	}
	return cfg, diags
}

// constructionDiag wraps a core construction error with the block's source
// location.
func constructionDiag(block *hcl.Block, err error) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid %s block", block.Type),
		Detail:   err.Error(),
		Subject:  &block.DefRange,
	}
}

// --- attribute helpers ---
//
// Sweep files are pure literals, so every expression is evaluated with a
// nil EvalContext.

func stringAttr(attrs hcl.Attributes, name string) (string, bool, hcl.Diagnostics) {
	attr, ok := attrs[name]
	if !ok {
		return "", false, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", false, diags
	}
	if val.IsNull() || val.Type() != cty.String {
		return "", false, hcl.Diagnostics{attrTypeDiag(attr, "a string")}
	}
	return val.AsString(), true, nil
}

func boolAttr(attrs hcl.Attributes, name string) (bool, hcl.Diagnostics) {
	attr, ok := attrs[name]
	if !ok {
		return false, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return false, diags
	}
	if val.IsNull() || val.Type() != cty.Bool {
		return false, hcl.Diagnostics{attrTypeDiag(attr, "a bool")}
	}
	return val.True(), nil
}

// listAttr evaluates an attribute that must be a list or tuple and returns
// its elements.
func listAttr(attrs hcl.Attributes, name string) ([]cty.Value, hcl.Diagnostics) {
	attr, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	ty := val.Type()
	if val.IsNull() || (!ty.IsListType() && !ty.IsTupleType()) {
		return nil, hcl.Diagnostics{attrTypeDiag(attr, "a list")}
	}
	elems := make([]cty.Value, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		elems = append(elems, ev)
	}
	return elems, nil
}

func stringListAttr(attrs hcl.Attributes, name string) ([]string, hcl.Diagnostics) {
	attr, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	return stringListValue(attr)
}

// stringListValue decodes a list of strings. Null elements decode as "",
// which keeps partial output overrides expressible.
func stringListValue(attr *hcl.Attribute) ([]string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	ty := val.Type()
	if val.IsNull() || (!ty.IsListType() && !ty.IsTupleType()) {
		return nil, hcl.Diagnostics{attrTypeDiag(attr, "a list of strings")}
	}
	out := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.IsNull() {
			out = append(out, "")
			continue
		}
		if ev.Type() != cty.String {
			return nil, hcl.Diagnostics{attrTypeDiag(attr, "a list of strings")}
		}
		out = append(out, ev.AsString())
	}
	return out, nil
}

func attrTypeDiag(attr *hcl.Attribute, want string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid %s value", attr.Name),
		Detail:   fmt.Sprintf("The %s attribute must be %s.", attr.Name, want),
		Subject:  attr.Expr.Range().Ptr(),
	}
}
