package sweep

import "fmt"

// ValidationError reports a contract violation that is checkable at
// construction time, such as an empty parameter key or a mismatched
// outputs override.
type ValidationError struct {
	Msg string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Msg
}

func errValidation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ShapeMismatchError reports a group whose value source yielded a tuple of
// the wrong arity. It can only be detected during iteration, because value
// sources are lazy.
type ShapeMismatchError struct {
	// Want is the number of keys declared by the group.
	Want int
	// Got is the number of elements in the offending value, or -1 when the
	// value is not a tuple at all.
	Got int
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	if e.Got < 0 {
		return fmt.Sprintf("group value is not a tuple (want %d elements)", e.Want)
	}
	return fmt.Sprintf("group tuple has %d elements, want %d", e.Got, e.Want)
}

// IndexError reports a projection over a tuple that is too short for the
// projected index. Like shape mismatches, it surfaces during iteration.
type IndexError struct {
	// Index is the coordinate the projection was asked for.
	Index int
	// Len is the length of the offending tuple, or -1 when the value is not
	// a tuple at all.
	Len int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Len < 0 {
		return fmt.Sprintf("projected value is not a tuple (want index %d)", e.Index)
	}
	return fmt.Sprintf("projected index %d out of range for tuple of length %d", e.Index, e.Len)
}
