package sweep

// Unit is the smallest element of a sweep specification. A Param yields one
// binding per step; a Group yields one binding per key, varied in lock-step.
// The product algorithm in Spec depends only on this interface, never on the
// concrete variant.
type Unit interface {
	// Open begins a fresh traversal over the unit's candidate selections.
	Open() UnitCursor
}

// UnitCursor walks one traversal of a Unit, yielding one binding list per
// step.
type UnitCursor interface {
	Next() bool
	Bindings() []Binding
	Err() error
}
