package fm

import "github.com/dbajgoric/gap2cuda/bigrat"

// BoundSide is one side (lower or upper) of the bound description Eliminate
// produces for a single eliminated variable: a set of candidate linear
// forms over the enclosing, not-yet-eliminated variables. The true bound
// is the max of the lower side's candidates, or the min of the upper
// side's, evaluated at a concrete assignment of the enclosing variables.
//
// Matrix has one row per enclosing variable plus one trailing zero row (so
// that the caller can always pass a zero-padded point of uniform length
// without special-casing the last, about-to-be-assigned coordinate); its
// columns are the candidates. Vector holds the matching constant term per
// candidate. Unbounded means there were no candidates on this side at all
// (the variable is unconstrained from this direction), in which case
// Matrix and Vector are unset and must not be read.
type BoundSide struct {
	Matrix    bigrat.RatMatrix
	Vector    bigrat.RatMatrix
	Unbounded bool
}

// Bound is the pair of bound descriptions Eliminate produces for one
// variable: the collection of lower-bound candidates and the collection
// of upper-bound candidates.
type Bound struct {
	Lower BoundSide
	Upper BoundSide
}

// Evaluate returns side's candidate values at point, a 1 x depth row where
// depth equals side.Matrix's row count (the enclosing-variable assignment,
// zero-padded in its last slot). Panics if side is Unbounded; callers must
// check that first.
func (s BoundSide) Evaluate(point bigrat.RatMatrix) bigrat.RatMatrix {
	if s.Unbounded {
		panic("fm: Evaluate called on an unbounded bound side")
	}
	terms := point.Mul(s.Matrix)
	out, _ := bigrat.NewRatMatrix(1, terms.Cols())
	for j := 0; j < terms.Cols(); j++ {
		t, _ := terms.At(0, j)
		c, _ := s.Vector.At(0, j)
		_ = out.Set(0, j, t.Add(c))
	}
	return out
}

// collectSide builds the BoundSide for one direction (P for upper, N for
// lower) out of the post-normalization working matrix: candidate j's
// coefficients over the row enclosing variables are the negation of
// curA's column j (rows 0..row-1), and its constant term is curC[j]. The
// two directions share this formula: P columns keep the inequality's
// "<=" sense (an upper bound) while N columns were divided by a negative
// pivot and so keep the same algebraic form but now bound from below.
func collectSide(curA, curC bigrat.RatMatrix, row int, idxs []int) BoundSide {
	if len(idxs) == 0 {
		return BoundSide{Unbounded: true}
	}
	depth := row + 1
	mat, _ := bigrat.NewRatMatrix(depth, len(idxs))
	vec, _ := bigrat.NewRatMatrix(1, len(idxs))
	for col, j := range idxs {
		for i := 0; i < row; i++ {
			t, _ := curA.At(i, j)
			_ = mat.Set(i, col, t.Neg())
		}
		c, _ := curC.At(0, j)
		_ = vec.Set(0, col, c)
	}
	return BoundSide{Matrix: mat, Vector: vec}
}
