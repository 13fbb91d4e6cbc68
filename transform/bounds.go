package transform

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/bigrat"
	"github.com/dbajgoric/gap2cuda/fm"
)

// NewBounds derives the transformed nest's new loop limits from the
// original bound matrices (P, p0)/(Q, q0) (a nest's depmodel.Model.L/L0
// and U/U0) and a planned transform's unimodular matrix u: index vector I
// of the old nest relates to the new index vector K by I = K . U^-1, so
// the old bounds p0 <= I.P, I.Q <= q0 become a system over K that
// Fourier-Motzkin turns into one Bound per new index.
func NewBounds(u, P, p0, Q, q0 bigrat.IntMatrix) ([]fm.Bound, error) {
	m := u.Rows()

	uInv, err := u.Inverse()
	if err != nil {
		return nil, err
	}
	v := uInv.Mul(P)
	w := uInv.Mul(Q)

	a, err := bigrat.NewIntMatrix(m, 2*m)
	if err != nil {
		return nil, err
	}
	c, err := bigrat.NewIntMatrix(1, 2*m)
	if err != nil {
		return nil, err
	}

	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			vij, _ := v.At(i, j)
			_ = a.Set(i, j, new(big.Int).Neg(vij))
			wij, _ := w.At(i, j)
			_ = a.Set(i, m+j, wij)
		}
	}
	for j := 0; j < m; j++ {
		p0j, _ := p0.At(0, j)
		_ = c.Set(0, j, new(big.Int).Neg(p0j))
		q0j, _ := q0.At(0, j)
		_ = c.Set(0, m+j, q0j)
	}

	return fm.Eliminate(a.ToRat(), c.ToRat())
}
