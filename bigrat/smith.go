package bigrat

import "math/big"

// Smith computes unimodular U, V and diagonal D such that U*A*V = D.
//
// Stage 1 (Prepare): D starts as a clone of A, U and V as identities.
// Stage 2 (Execute): for each pivot position k, repeatedly (a) interchange
// rows/columns to bring the minimum-magnitude nonzero entry of row k or
// column k to (k,k) itself, mirroring the interchange on U/V, then (b)
// skew-reduce every other entry of row k and column k modulo D[k,k],
// mirroring on U/V. If any of those entries is still nonzero after the
// modulo reduction, its magnitude is now strictly smaller than the old
// D[k,k], so the sweep repeats with the same k; otherwise k advances.
// When row k and column k (including D[k,k] itself) are entirely zero, a
// nonzero entry of the trailing minor (rows and columns beyond k) is
// interchanged into (k,k) and the sweep goes on; only when that minor is
// zero too does the remaining diagonal stay zero and reduction stop.
// Stage 3 (Return): D, already diagonal, plus the accumulated U and V.
func Smith(a IntMatrix) (u IntMatrix, v IntMatrix, d IntMatrix, err error) {
	if a.rows == 0 || a.cols == 0 {
		return IntMatrix{}, IntMatrix{}, IntMatrix{}, ErrEmptyMatrix
	}
	d = a.Clone()
	u = Identity(a.rows)
	v = Identity(a.cols)

	lim := a.rows
	if a.cols < lim {
		lim = a.cols
	}
	for k := 0; k < lim; k++ {
		for {
			pr, pc, found := findMinNonzero(d, k)
			for i := k + 1; i < d.rows && !found; i++ {
				for j := k + 1; j < d.cols; j++ {
					if d.data[i][j].Sign() != 0 {
						pr, pc, found = i, j, true
						break
					}
				}
			}
			if !found {
				return u, v, d, nil
			}
			d.InterchangeRows(k, pr)
			u.InterchangeRows(k, pr)
			d.InterchangeCols(k, pc)
			v.InterchangeCols(k, pc)
			if d.data[k][k].Sign() < 0 {
				d.ReverseRow(k)
				u.ReverseRow(k)
			}

			changed := false
			for i := k + 1; i < d.rows; i++ {
				if d.data[i][k].Sign() == 0 {
					continue
				}
				q := hermiteQuotient(d.data[i][k], d.data[k][k])
				d.SkewRows(i, k, q)
				u.SkewRows(i, k, q)
				if d.data[i][k].Sign() != 0 {
					changed = true
				}
			}
			for j := k + 1; j < d.cols; j++ {
				if d.data[k][j].Sign() == 0 {
					continue
				}
				q := hermiteQuotient(d.data[k][j], d.data[k][k])
				d.SkewCols(j, k, q)
				v.SkewCols(j, k, q)
				if d.data[k][j].Sign() != 0 {
					changed = true
				}
			}
			if !changed {
				break
			}
		}
	}
	return u, v, d, nil
}

// findMinNonzero returns the position (row, col) of the minimum-magnitude
// nonzero entry among d[from][from], d[from+1:][from] (the rest of column
// from) and d[from][from+1:] (the rest of row from) — never an entry with
// both indices strictly greater than from. found is false when all three
// of those are zero.
func findMinNonzero(d IntMatrix, from int) (row, col int, found bool) {
	row, col = from, from
	var best *big.Int

	consider := func(i, j int) {
		v := d.data[i][j]
		if v.Sign() == 0 {
			return
		}
		abs := new(big.Int).Abs(v)
		if best == nil || abs.Cmp(best) < 0 {
			best, row, col, found = abs, i, j, true
		}
	}

	consider(from, from)
	for i := from + 1; i < d.rows; i++ {
		consider(i, from)
	}
	for j := from + 1; j < d.cols; j++ {
		consider(from, j)
	}
	return row, col, found
}

// IsDiagonal reports whether every off-diagonal entry of m is zero.
func (m IntMatrix) IsDiagonal() bool {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if i != j && m.data[i][j].Sign() != 0 {
				return false
			}
		}
	}
	return true
}
