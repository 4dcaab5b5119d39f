// Package sweep is the combinatorial core of the application. It composes
// parameter units (single parameters and jointly-varying parameter groups)
// into a sweep specification, and lazily enumerates the cartesian product of
// their candidate values as fully bound argument sets.
//
// Every traversal is restartable: opening a cursor on a source, a unit, or a
// whole specification always begins a fresh enumeration, so the same
// specification can be consumed any number of times with identical results.
// The package performs no I/O; formatting and output live in the format and
// sink packages.
package sweep
