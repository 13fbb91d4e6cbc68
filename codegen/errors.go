package codegen

import "errors"

// ErrUnboundedBound is returned by Generate when one of the rewritten
// nest's loop bounds has no candidates on one side. NewBounds running
// Fourier-Motzkin over a properly rectangular, feasible system should
// never leave a side unbounded; surfacing it here rather than silently
// emitting nonsense code treats it as the same kind of program-invariant
// violation bigrat's panics are for, just recoverable at this boundary.
var ErrUnboundedBound = errors.New("codegen: loop bound has no candidates on one side")

// ErrTooManyParallelLoops is returned when a Transform exposes more than
// three dependence-free loops: CUDA's launch configuration has only
// three thread/block dimensions, so parallelizable sub-nests deeper
// than that are not currently supported (matching the original's own
// "currently supported" cap in BuildGridDimVarDecl).
var ErrTooManyParallelLoops = errors.New("codegen: parallel sub-nest deeper than 3 is not supported")
