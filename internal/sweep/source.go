package sweep

import "github.com/zclconf/go-cty/cty"

// Source produces a lazy, restartable sequence of candidate values for one
// logical parameter slot. Opening a cursor always begins a fresh traversal;
// a Source is never mutated by iteration.
type Source interface {
	Open() Cursor
}

// Cursor walks one traversal of a Source. It follows the database-rows
// shape: Next advances and reports whether a value is available, Value
// returns the current value, and Err reports the first failure encountered.
// Stopping early is always safe.
type Cursor interface {
	Next() bool
	Value() cty.Value
	Err() error
}

// FixedSource is a Source backed by an explicit, ordered slice of values.
// It is immutable once constructed.
type FixedSource struct {
	values []cty.Value
}

// NewFixedSource copies values into a new FixedSource.
func NewFixedSource(values []cty.Value) *FixedSource {
	return &FixedSource{values: append([]cty.Value(nil), values...)}
}

// Open implements Source.
func (s *FixedSource) Open() Cursor {
	return &fixedCursor{values: s.values, pos: -1}
}

// Len returns the number of values the source yields.
func (s *FixedSource) Len() int {
	return len(s.values)
}

type fixedCursor struct {
	values []cty.Value
	pos    int
}

func (c *fixedCursor) Next() bool {
	if c.pos+1 >= len(c.values) {
		return false
	}
	c.pos++
	return true
}

func (c *fixedCursor) Value() cty.Value {
	return c.values[c.pos]
}

func (c *fixedCursor) Err() error {
	return nil
}

// ProjectedSource extracts one coordinate from a tuple-valued Source. A
// group member's individual value stream is a projection over the group's
// joint source.
type ProjectedSource struct {
	source Source
	index  int
}

// NewProjectedSource wraps src so that iteration yields element index of
// each tuple src produces.
func NewProjectedSource(src Source, index int) *ProjectedSource {
	return &ProjectedSource{source: src, index: index}
}

// Open implements Source.
func (s *ProjectedSource) Open() Cursor {
	return &projectedCursor{inner: s.source.Open(), index: s.index}
}

type projectedCursor struct {
	inner Cursor
	index int
	value cty.Value
	err   error
}

func (c *projectedCursor) Next() bool {
	if c.err != nil {
		return false
	}
	if !c.inner.Next() {
		c.err = c.inner.Err()
		return false
	}
	elems, ok := tupleElements(c.inner.Value())
	if !ok {
		c.err = &IndexError{Index: c.index, Len: -1}
		return false
	}
	if c.index >= len(elems) {
		c.err = &IndexError{Index: c.index, Len: len(elems)}
		return false
	}
	c.value = elems[c.index]
	return true
}

func (c *projectedCursor) Value() cty.Value {
	return c.value
}

func (c *projectedCursor) Err() error {
	return c.err
}

// tupleElements returns the ordered elements of a list or tuple value. The
// second result is false when the value is null, unknown, or not an ordered
// collection.
func tupleElements(v cty.Value) ([]cty.Value, bool) {
	if v.IsNull() || !v.IsKnown() {
		return nil, false
	}
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return nil, false
	}
	elems := make([]cty.Value, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		elems = append(elems, ev)
	}
	return elems, true
}
