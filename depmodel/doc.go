// Package depmodel converts a validated perfect loop nest's affine IR
// into the integer matrix/vector form the dependence analyzer and the
// transformation planner both operate on: a pair of bound matrices for
// the nest's loop headers, and a coefficient-matrix/constant-vector
// pair per array subscript of every assignment statement.
package depmodel
