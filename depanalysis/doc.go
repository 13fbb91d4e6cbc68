// Package depanalysis decides, for a pair of array references sharing a
// nest's loop indices, whether they can ever address the same memory
// location within the nest's bounds, and if so with what distance,
// direction (sign), and level. It implements the two dependence tests of
// the original dependence model: a general linear test usable for any
// pair of affine references, and a specialized uniform test for the
// common case of two references sharing the same coefficient matrix
// inside a regular or rectangular nest. Analyze runs the right test for
// every same-array reference pair a nest's depmodel.Model exposes.
package depanalysis
