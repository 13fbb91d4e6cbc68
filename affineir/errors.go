package affineir

import "errors"

// ErrNotAffine is returned when a source expression cannot be lowered
// to a LinearForm: the expression tree contains something other than
// a compile-time-constant, a bare variable reference, or +/-/* combining
// them under the single-unknown-operand rule.
var ErrNotAffine = errors.New("affineir: expression is not affine")
