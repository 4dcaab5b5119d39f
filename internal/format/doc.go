// Package format renders bound argument sets into command-line strings. It
// is an adapter over the sweep core: the reference ArgFormatter emits
// argparse-style "--name value" pairs, and value rendering dispatches on a
// closed set of value kinds derived from the cty type system.
package format
