// SPDX-License-Identifier: MIT
package depanalysis

import "errors"

// ErrCannotProveIndependence is returned when the feasibility system built
// from the free components of a witness vector turns out to have an
// unbounded side (fm.ErrInfiniteSolutionSet): the analyzer cannot finitely
// enumerate candidate index pairs, so it cannot say whether the two
// references are independent. Unlike "no dependence", this must not be
// silently treated as proof of independence.
var ErrCannotProveIndependence = errors.New("depanalysis: cannot prove independence, unbounded free component")
