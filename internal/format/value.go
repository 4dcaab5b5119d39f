package format

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// UnsupportedValueError reports a value whose kind has no sensible
// command-line string form (objects, maps, nulls, unknowns).
type UnsupportedValueError struct {
	Type cty.Type
}

// Error implements the error interface.
func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("cannot render value of type %s on a command line", e.Type.FriendlyName())
}

// valueKind is the closed set of value shapes the renderer understands.
// Everything else falls through to the unsupported case.
type valueKind int

const (
	kindNumber valueKind = iota
	kindString
	kindBool
	kindList
	kindUnsupported
)

func kindOf(v cty.Value) valueKind {
	if v.IsNull() || !v.IsKnown() {
		return kindUnsupported
	}
	ty := v.Type()
	switch {
	case ty == cty.Number:
		return kindNumber
	case ty == cty.String:
		return kindString
	case ty == cty.Bool:
		return kindBool
	case ty.IsListType() || ty.IsTupleType():
		return kindList
	default:
		return kindUnsupported
	}
}

// ValueRenderer turns a single cty value into its command-line string form.
// The zero value renders numbers canonically and lists bare, separated by
// ", "; use NewValueRenderer for those defaults.
type ValueRenderer struct {
	// FloatFormat is an fmt verb (for example "%.2f") applied to
	// non-integral numbers. Empty means canonical rendering. Whole numbers
	// always keep the canonical form, since cty does not distinguish 2
	// from 2.0.
	FloatFormat string
	// ListOpen and ListClose delimit a rendered list. Both default empty.
	ListOpen  string
	ListClose string
	// ListSep separates rendered list elements.
	ListSep string
}

// NewValueRenderer returns a renderer with the default configuration.
func NewValueRenderer() *ValueRenderer {
	return &ValueRenderer{ListSep: ", "}
}

// Render dispatches on the value's kind and returns its string form.
func (r *ValueRenderer) Render(v cty.Value) (string, error) {
	switch kindOf(v) {
	case kindNumber:
		return r.renderNumber(v), nil
	case kindString:
		return v.AsString(), nil
	case kindBool:
		if v.True() {
			return "true", nil
		}
		return "false", nil
	case kindList:
		return r.renderList(v)
	default:
		return "", &UnsupportedValueError{Type: v.Type()}
	}
}

func (r *ValueRenderer) renderNumber(v cty.Value) string {
	bf := v.AsBigFloat()
	if r.FloatFormat != "" && !bf.IsInt() {
		f, _ := bf.Float64()
		return fmt.Sprintf(r.FloatFormat, f)
	}
	return bf.Text('f', -1)
}

func (r *ValueRenderer) renderList(v cty.Value) (string, error) {
	parts := make([]string, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		s, err := r.Render(ev)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return r.ListOpen + strings.Join(parts, r.ListSep) + r.ListClose, nil
}
