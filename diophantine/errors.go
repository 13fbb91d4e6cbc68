// SPDX-License-Identifier: MIT
package diophantine

import "errors"

// ErrNoSolution is returned when the Diophantine equation or system has no
// integer solution. Benign: it means the two array references in question
// provably cannot address the same memory location, not that anything went
// wrong.
var ErrNoSolution = errors.New("diophantine: no integer solution")
