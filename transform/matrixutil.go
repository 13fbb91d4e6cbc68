package transform

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/bigrat"
)

// setCol writes src (an n x 1 column) into dst's column j, all rows.
func setCol(dst, src bigrat.IntMatrix, j int) {
	for i := 0; i < src.Rows(); i++ {
		v, _ := src.At(i, 0)
		_ = dst.Set(i, j, v)
	}
}

// columnVector builds an n x 1 matrix from a plain big.Int slice.
func columnVector(vals []*big.Int) bigrat.IntMatrix {
	out, _ := bigrat.NewIntMatrix(len(vals), 1)
	for i, v := range vals {
		_ = out.Set(i, 0, v)
	}
	return out
}

// insertZeroRow returns an (m.Rows()+1) x m.Cols() matrix equal to m with
// an all-zero row inserted at position at, shifting m's rows at.. down by
// one.
func insertZeroRow(m bigrat.IntMatrix, at int) bigrat.IntMatrix {
	out, _ := bigrat.NewIntMatrix(m.Rows()+1, m.Cols())
	src := 0
	for dst := 0; dst < out.Rows(); dst++ {
		if dst == at {
			continue
		}
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(src, j)
			_ = out.Set(dst, j, v)
		}
		src++
	}
	return out
}

// prependColumn returns an m.Rows() x (m.Cols()+1) matrix with col as its
// first column and m's columns shifted right by one.
func prependColumn(m bigrat.IntMatrix, col []*big.Int) bigrat.IntMatrix {
	out, _ := bigrat.NewIntMatrix(m.Rows(), m.Cols()+1)
	setCol(out, columnVector(col), 0)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			_ = out.Set(i, j+1, v)
		}
	}
	return out
}

// negateColumn negates matrix m's column j in place.
func negateColumn(m bigrat.IntMatrix, j int) {
	for i := 0; i < m.Rows(); i++ {
		v, _ := m.At(i, j)
		_ = m.Set(i, j, new(big.Int).Neg(v))
	}
}
