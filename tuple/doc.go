// Package tuple a collection of generic struct types
// that hold a specific number of values.
//
// Each tuple type TN converts to and from its list form
// (see the hlist package), can have a value prepended to it
// (ConsN) and, when non-empty, split into its first value
// and the remaining tuple (Uncons).
//
// All per-arity code is generated. To support larger tuples,
// run tuplegen with a larger -n.
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple

//go:generate go run ../cmd/tuplegen -root ..
