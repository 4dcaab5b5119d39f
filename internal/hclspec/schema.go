package hclspec

import "github.com/hashicorp/hcl/v2"

// rootSchema describes the top level of a sweep file. param and group
// blocks are consumed in source order, which defines the unit order of the
// resulting specification.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "param", LabelNames: []string{"key"}},
		{Type: "group"},
		{Type: "format"},
		{Type: "scripts"},
	},
}

var paramSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "values", Required: true},
		{Name: "output"},
	},
}

var groupSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "keys", Required: true},
		{Name: "values", Required: true},
		{Name: "outputs"},
	},
}

var formatSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "pair_separator"},
		{Name: "pair_prefix"},
		{Name: "pair_suffix"},
		{Name: "float_format"},
		{Name: "list_open"},
		{Name: "list_close"},
		{Name: "list_separator"},
	},
}

var scriptsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "dir", Required: true},
		{Name: "create_run_token"},
		{Name: "prologue"},
		{Name: "epilogue"},
		{Name: "line_prefix"},
		{Name: "line_suffix"},
	},
}
