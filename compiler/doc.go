// Package compiler is the driver that ties every other package together:
// for each top-level function in a translation unit, it collects
// candidate outermost for loops, lowers and analyzes each one, plans and
// applies a transformation, and renders the replacement code, catching
// any failure along the way as a diagnostic rather than aborting the
// rest of the unit.
//
// Functions never share mutable state with one another (separate scope
// trees, separate affine IR), so analyzing them is fanned out with
// golang.org/x/sync/errgroup; nests within one function stay
// source-ordered and are never parallelized against each other.
package compiler
