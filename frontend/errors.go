package frontend

import "errors"

var (
	// ErrUnsupportedLoopHeader is returned when a for loop's init,
	// condition, or increment does not match the narrow canonical shape
	// the analyzer accepts.
	ErrUnsupportedLoopHeader = errors.New("frontend: unsupported loop header shape")

	// ErrOuterBoundNotConstant is returned when the outermost header's
	// bounds reference any variable at all.
	ErrOuterBoundNotConstant = errors.New("frontend: outermost loop bound is not a constant")

	// ErrInnerBoundNotEnclosingIndex is returned when an inner header's
	// bound references a variable that is not an index of one of its
	// enclosing headers.
	ErrInnerBoundNotEnclosingIndex = errors.New("frontend: inner loop bound references a variable outside the enclosing index set")

	// ErrNotPerfect is returned when a candidate nest has a statement
	// between two loop headers, or a non-assignment statement in the
	// innermost body.
	ErrNotPerfect = errors.New("frontend: loop nest is not perfect")

	// ErrScalarLhs is returned when an innermost-body assignment's
	// target is a scalar rather than an array subscript.
	ErrScalarLhs = errors.New("frontend: assignment target is a scalar, not a subscript")

	// ErrSubscriptTypeMismatch is returned when a subscript's
	// dimensionality does not match its array's declared dimensionality.
	ErrSubscriptTypeMismatch = errors.New("frontend: subscript dimensionality does not match array declaration")

	// ErrSizeUnknown is returned when a nest references an array whose
	// size is unknown in some dimension.
	ErrSizeUnknown = errors.New("frontend: array size is unknown in some dimension")
)
