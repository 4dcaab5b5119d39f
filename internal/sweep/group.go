package sweep

// Group is a set of named slots whose values are supplied jointly, as
// tuples, by one value source. Members vary in lock-step and are never
// permuted against each other; the group's cardinality is the number of
// tuples its source yields.
type Group struct {
	keys    []string
	source  Source
	outputs []string
}

// GroupOption customizes a Group at construction time.
type GroupOption func(*Group)

// WithOutputs overrides the names a formatter emits for the group's
// members, index-aligned with the keys. Empty entries keep the default
// flag-style name for that member, so partial overrides are allowed.
func WithOutputs(names []string) GroupOption {
	return func(g *Group) {
		g.outputs = append([]string(nil), names...)
	}
}

// NewGroup builds a jointly-varying parameter group. values may be a Source
// or a []cty.Value of tuples; each tuple must have exactly len(keys)
// elements, which is checked lazily during iteration because the source is
// lazy. An empty keys list or a mis-sized outputs override is a validation
// error.
func NewGroup(keys []string, values any, opts ...GroupOption) (*Group, error) {
	if len(keys) == 0 {
		return nil, errValidation("group keys cannot be empty")
	}
	src, err := normalizeSource(values)
	if err != nil {
		return nil, err
	}
	g := &Group{keys: append([]string(nil), keys...), source: src}
	for _, opt := range opts {
		opt(g)
	}
	if g.outputs != nil && len(g.outputs) != len(g.keys) {
		return nil, errValidation("group outputs has %d entries, want %d (one per key)", len(g.outputs), len(g.keys))
	}
	return g, nil
}

// Keys returns the group's member names in order.
func (g *Group) Keys() []string {
	return append([]string(nil), g.keys...)
}

// Open implements Unit. Each step decomposes the next tuple into one
// binding per key. The synthesized member params wrap projections over the
// group's source, so each member remains individually addressable (and
// re-iterable) downstream while joint variation is preserved.
func (g *Group) Open() UnitCursor {
	return &groupCursor{group: g, values: g.source.Open()}
}

type groupCursor struct {
	group    *Group
	values   Cursor
	bindings []Binding
	err      error
}

func (c *groupCursor) Next() bool {
	if c.err != nil {
		return false
	}
	if !c.values.Next() {
		c.err = c.values.Err()
		return false
	}
	g := c.group
	elems, ok := tupleElements(c.values.Value())
	if !ok {
		c.err = &ShapeMismatchError{Want: len(g.keys), Got: -1}
		return false
	}
	if len(elems) != len(g.keys) {
		c.err = &ShapeMismatchError{Want: len(g.keys), Got: len(elems)}
		return false
	}
	bindings := make([]Binding, len(elems))
	for i, v := range elems {
		member := &Param{key: g.keys[i], source: NewProjectedSource(g.source, i)}
		if g.outputs != nil {
			member.output = g.outputs[i]
		}
		bindings[i] = Binding{Param: member, Value: v}
	}
	c.bindings = bindings
	return true
}

func (c *groupCursor) Bindings() []Binding {
	return c.bindings
}

func (c *groupCursor) Err() error {
	return c.err
}
