// SPDX-License-Identifier: MIT
package transform

import "errors"

// ErrNotParallelizable is returned by Plan when neither the inner-par nor
// the outer-par construction can produce a legal transform: this only
// happens below depth 2, where the hyperplane method has no room to
// operate.
var ErrNotParallelizable = errors.New("transform: nest cannot be parallelized")

// ErrEmptyDistances is returned when Plan is given no distance vectors at
// all; a nest with no dependences at all is handled by the caller before
// ever reaching Plan (see depanalysis.Analyze returning no records), so an
// empty set reaching here signals a caller bug.
var ErrEmptyDistances = errors.New("transform: distance vector set is empty")
