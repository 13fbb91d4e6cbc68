// Package frontend lowers a validated region of source code into the
// affine intermediate representation: a scope tree of symbol tables,
// scalar and array-like identifiers, and the collector that walks
// candidate outermost for loops, rejecting anything that is not a
// perfect loop nest and building an affineir.Nest for what survives.
package frontend
