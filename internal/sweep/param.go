package sweep

import "github.com/zclconf/go-cty/cty"

// Param is a single named, independently varying argument slot bound to a
// value source.
type Param struct {
	key    string
	source Source
	output string
}

// ParamOption customizes a Param at construction time.
type ParamOption func(*Param)

// WithOutput overrides the name a formatter emits for the parameter. When
// unset, formatters derive a flag-style name from the key.
func WithOutput(name string) ParamOption {
	return func(p *Param) {
		p.output = name
	}
}

// NewParam builds a parameter named key over the given candidate values.
// values may be a Source, or a []cty.Value which is wrapped in a
// FixedSource. Anything else, or an empty key, is a validation error.
func NewParam(key string, values any, opts ...ParamOption) (*Param, error) {
	if key == "" {
		return nil, errValidation("param key cannot be empty")
	}
	src, err := normalizeSource(values)
	if err != nil {
		return nil, err
	}
	p := &Param{key: key, source: src}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// normalizeSource is the single coercion point from user-supplied candidate
// values to a Source.
func normalizeSource(values any) (Source, error) {
	switch v := values.(type) {
	case Source:
		return v, nil
	case []cty.Value:
		return NewFixedSource(v), nil
	default:
		return nil, errValidation("values must be a sweep.Source or []cty.Value, got %T", values)
	}
}

// Key returns the parameter's identity.
func (p *Param) Key() string {
	return p.key
}

// Output returns the output-name override, or "" when none is set.
func (p *Param) Output() string {
	return p.output
}

// Open implements Unit. Each step yields the singleton binding list for the
// next candidate value.
func (p *Param) Open() UnitCursor {
	return &paramCursor{param: p, values: p.source.Open()}
}

type paramCursor struct {
	param  *Param
	values Cursor
}

func (c *paramCursor) Next() bool {
	return c.values.Next()
}

func (c *paramCursor) Bindings() []Binding {
	return []Binding{{Param: c.param, Value: c.values.Value()}}
}

func (c *paramCursor) Err() error {
	return c.values.Err()
}
