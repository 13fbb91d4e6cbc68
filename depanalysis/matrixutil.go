package depanalysis

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/bigrat"
)

// negate returns -m element-wise.
func negate(m bigrat.IntMatrix) bigrat.IntMatrix {
	out, _ := bigrat.NewIntMatrix(m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			_ = out.Set(i, j, new(big.Int).Neg(v))
		}
	}
	return out
}

// vstack stacks bottom below top; both must share column count.
func vstack(top, bottom bigrat.IntMatrix) bigrat.IntMatrix {
	out, _ := bigrat.NewIntMatrix(top.Rows()+bottom.Rows(), top.Cols())
	for i := 0; i < top.Rows(); i++ {
		for j := 0; j < top.Cols(); j++ {
			v, _ := top.At(i, j)
			_ = out.Set(i, j, v)
		}
	}
	for i := 0; i < bottom.Rows(); i++ {
		for j := 0; j < bottom.Cols(); j++ {
			v, _ := bottom.At(i, j)
			_ = out.Set(top.Rows()+i, j, v)
		}
	}
	return out
}

// colSlice returns columns [lo, hi) of m as a new matrix.
func colSlice(m bigrat.IntMatrix, lo, hi int) bigrat.IntMatrix {
	out, _ := bigrat.NewIntMatrix(m.Rows(), hi-lo)
	for i := 0; i < m.Rows(); i++ {
		for j := lo; j < hi; j++ {
			v, _ := m.At(i, j)
			_ = out.Set(i, j-lo, v)
		}
	}
	return out
}

// rowSlice returns rows [lo, hi) of m as a new matrix.
func rowSlice(m bigrat.IntMatrix, lo, hi int) bigrat.IntMatrix {
	out, _ := bigrat.NewIntMatrix(hi-lo, m.Cols())
	for i := lo; i < hi; i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			_ = out.Set(i-lo, j, v)
		}
	}
	return out
}

// setCols writes src into dst's columns [lo, lo+src.Cols()), all rows.
func setCols(dst, src bigrat.IntMatrix, lo int) {
	for i := 0; i < src.Rows(); i++ {
		for j := 0; j < src.Cols(); j++ {
			v, _ := src.At(i, j)
			_ = dst.Set(i, lo+j, v)
		}
	}
}

// setRowCols writes src (a 1 x n row) into dst's row 0, columns [lo, lo+n).
func setRowCols(dst, src bigrat.IntMatrix, lo int) {
	for j := 0; j < src.Cols(); j++ {
		v, _ := src.At(0, j)
		_ = dst.Set(0, lo+j, v)
	}
}

// boundsSatisfied checks the trivial inequalities p0 <= i*P, i*Q <= q0,
// p0 <= j*P, j*Q <= q0 for fully-determined index vectors i, j.
func boundsSatisfied(i, j, P, p0, Q, q0 bigrat.IntMatrix) bool {
	atLeast := func(v, lo bigrat.IntMatrix) bool {
		for k := 0; k < v.Cols(); k++ {
			vk, _ := v.At(0, k)
			lk, _ := lo.At(0, k)
			if vk.Cmp(lk) < 0 {
				return false
			}
		}
		return true
	}
	atMost := func(v, hi bigrat.IntMatrix) bool {
		for k := 0; k < v.Cols(); k++ {
			vk, _ := v.At(0, k)
			hk, _ := hi.At(0, k)
			if vk.Cmp(hk) > 0 {
				return false
			}
		}
		return true
	}
	return atLeast(i.Mul(P), p0) && atMost(i.Mul(Q), q0) && atLeast(j.Mul(P), p0) && atMost(j.Mul(Q), q0)
}

// fillT returns a full 1 x n witness vector built from t's first rank
// determined entries and free's entries filling the remainder.
func fillT(t bigrat.IntMatrix, rank int, free bigrat.IntMatrix) bigrat.IntMatrix {
	out, _ := bigrat.NewIntMatrix(1, t.Cols())
	for j := 0; j < rank; j++ {
		v, _ := t.At(0, j)
		_ = out.Set(0, j, v)
	}
	for j := 0; j < free.Cols(); j++ {
		v, _ := free.At(0, j)
		_ = out.Set(0, rank+j, v)
	}
	return out
}
