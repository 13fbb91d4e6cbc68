// SPDX-License-Identifier: MIT
package fm

import "errors"

// ErrInfeasible is returned by Eliminate when no real assignment satisfies
// the system: some residual constant inequality, reached only after every
// variable has been eliminated, evaluates to a negative constant.
var ErrInfeasible = errors.New("fm: system has no real solution")

// ErrInfiniteSolutionSet is surfaced by a ChunkIterator (via Err, after
// Next returns false) when a variable's lower or upper side has no
// candidates at all, making the integer solution set along that direction
// unbounded. Dependence analysis must treat this as a failure to prove
// independence, not as "no dependence".
var ErrInfiniteSolutionSet = errors.New("fm: unbounded side, cannot enumerate finitely")
