// Package hclspec loads sweep files written in HCL and translates them into
// the core sweep model. The core itself defines no file format; this package
// is the declarative surface in front of it.
//
// A sweep file contains param and group blocks (unit order is file order),
// an optional format block configuring the command-line rendering, and an
// optional scripts block selecting the per-invocation file sink.
package hclspec
