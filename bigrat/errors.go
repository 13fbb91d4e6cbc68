// SPDX-License-Identifier: MIT
package bigrat

import "errors"

// Sentinel errors returned by bigrat for invalid constructor shapes,
// out-of-range indices and failed reductions, per the error-priority
// convention: shape/index -> dimension mismatch -> structural violations.
// Operand-shape mismatches in Add, Sub, Mul and CompareLex panic instead.
var (
	// ErrBadShape is returned when a requested matrix shape is invalid
	// (rows <= 0 or cols <= 0).
	ErrBadShape = errors.New("bigrat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("bigrat: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes for an
	// operation that reports them as an error (e.g. GCDColumn given a
	// non-column, or fm.Eliminate and the diophantine solvers given
	// mismatched operands).
	ErrDimensionMismatch = errors.New("bigrat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("bigrat: matrix is not square")

	// ErrSingular is returned when a matrix expected to be invertible
	// (e.g. a claimed unimodular transform) is not.
	ErrSingular = errors.New("bigrat: singular matrix")

	// ErrEmptyMatrix is returned by reductions given a matrix with zero
	// rows, where the algorithm requires at least one row to pivot on.
	ErrEmptyMatrix = errors.New("bigrat: matrix has no rows")
)
