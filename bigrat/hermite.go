package bigrat

import "math/big"

// Hermite computes a unimodular U and row-echelon S such that U*A = S, by
// bottom-up Euclidean-style row reduction.
//
// Stage 1 (Prepare): S starts as a clone of A, U as the identity.
// Stage 2 (Execute): maintain pivot row i0, initially -1. For each column j
// left to right, if the sub-column S[i0+1:, j] is entirely zero, the column
// contributes no new pivot and is skipped; otherwise i0 advances and, for i
// from rows-1 down to i0+1, rows i-1 and i are repeatedly combined by a
// skew (row i-1 += q*row i, with q chosen to shrink |S[i-1,j]| modulo
// |S[i,j]|) followed by an interchange of the two rows, until S[i,j]
// reaches zero — the classic matrix form of the Euclidean algorithm.
// Every row operation applied to S is mirrored on U.
// Stage 3 (Return): rank is i0+1 once all columns are processed.
func Hermite(a IntMatrix) (u IntMatrix, s IntMatrix, rank int, err error) {
	if a.rows == 0 {
		return IntMatrix{}, IntMatrix{}, 0, ErrEmptyMatrix
	}
	s = a.Clone()
	u = Identity(a.rows)
	i0 := -1
	for j := 0; j < a.cols; j++ {
		if columnZeroBelow(s, i0+1, j) {
			continue
		}
		i0++
		for i := s.rows - 1; i > i0; i-- {
			for s.data[i][j].Sign() != 0 {
				q := hermiteQuotient(s.data[i-1][j], s.data[i][j])
				s.SkewRows(i-1, i, q)
				u.SkewRows(i-1, i, q)
				s.InterchangeRows(i-1, i)
				u.InterchangeRows(i-1, i)
			}
		}
	}
	return u, s, i0 + 1, nil
}

// HermiteModified computes a unimodular V and column-echelon S such that
// A*V = S: the column-operation counterpart of Hermite, scanning rows top
// to bottom and combining columns j-1 and j by skew-then-interchange,
// each column operation mirrored onto V. It gives a right-multiplying
// transform; the outer-par planner does not use it (see
// findOuterLoopTransformMatrix, which uses Hermite plus Inverse).
func HermiteModified(a IntMatrix) (v IntMatrix, s IntMatrix, rank int, err error) {
	if a.cols == 0 {
		return IntMatrix{}, IntMatrix{}, 0, ErrEmptyMatrix
	}
	s = a.Clone()
	v = Identity(a.cols)
	j0 := -1
	for i := 0; i < a.rows; i++ {
		if rowZeroRight(s, i, j0+1) {
			continue
		}
		j0++
		for j := s.cols - 1; j > j0; j-- {
			for s.data[i][j].Sign() != 0 {
				q := hermiteQuotient(s.data[i][j-1], s.data[i][j])
				s.SkewCols(j-1, j, q)
				v.SkewCols(j-1, j, q)
				s.InterchangeCols(j-1, j)
				v.InterchangeCols(j-1, j)
			}
		}
	}
	return v, s, j0 + 1, nil
}

// columnZeroBelow reports whether every entry of column j at row >= from is
// zero.
func columnZeroBelow(s IntMatrix, from, j int) bool {
	for i := from; i < s.rows; i++ {
		if s.data[i][j].Sign() != 0 {
			return false
		}
	}
	return true
}

// rowZeroRight reports whether every entry of row i at column >= from is
// zero.
func rowZeroRight(s IntMatrix, i, from int) bool {
	for j := from; j < s.cols; j++ {
		if s.data[i][j].Sign() != 0 {
			return false
		}
	}
	return true
}

// hermiteQuotient computes q = -sign(a*b) * floor(|a|/|b|), the multiplier
// used by the skew step of Hermite reduction so that a + q*b has the
// smallest possible magnitude. b must be nonzero.
func hermiteQuotient(a, b *big.Int) *big.Int {
	absA := new(big.Int).Abs(a)
	absB := new(big.Int).Abs(b)
	q := new(big.Int).Quo(absA, absB)
	sign := a.Sign() * b.Sign()
	if sign > 0 {
		q.Neg(q)
	}
	return q
}

// GCDColumn returns the GCD of the entries of an integer column vector via
// its Hermite reduction: GCD = |S[0]|.
func GCDColumn(col IntMatrix) (*big.Int, error) {
	if col.cols != 1 {
		return nil, ErrDimensionMismatch
	}
	_, s, _, err := Hermite(col)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Abs(s.data[0][0]), nil
}

// IsEchelon reports whether s is in row-echelon form: the column index of
// the first nonzero entry (the "level", see Level) strictly increases from
// one nonzero row to the next, and all zero rows (if any) trail the
// nonzero ones.
func (m IntMatrix) IsEchelon() bool {
	lastLevel := -1
	seenZero := false
	for i := 0; i < m.rows; i++ {
		lvl := rowLevel(m, i)
		if lvl == m.cols {
			seenZero = true
			continue
		}
		if seenZero {
			return false
		}
		if lvl <= lastLevel {
			return false
		}
		lastLevel = lvl
	}
	return true
}

func rowLevel(m IntMatrix, i int) int {
	for j := 0; j < m.cols; j++ {
		if m.data[i][j].Sign() != 0 {
			return j
		}
	}
	return m.cols
}
