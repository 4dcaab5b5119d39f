package sweep

import "github.com/zclconf/go-cty/cty"

// Binding pairs one parameter slot with one concrete candidate value.
type Binding struct {
	Param *Param
	Value cty.Value
}

// Instance is one fully bound point of the sweep: an ordered list of
// bindings, one per leaf parameter slot, in specification-flattened order.
// Instances are immutable; the specification produces them one at a time
// and does not retain them.
type Instance struct {
	bindings []Binding
}

func newInstance(bindings []Binding) *Instance {
	return &Instance{bindings: bindings}
}

// Bindings returns a copy of the instance's bindings in order.
func (in *Instance) Bindings() []Binding {
	return append([]Binding(nil), in.bindings...)
}

// Len returns the number of bound parameter slots.
func (in *Instance) Len() int {
	return len(in.bindings)
}
