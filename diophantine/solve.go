// Package diophantine solves systems of linear Diophantine equations
// xA = c over the integers by reducing the coefficient matrix A to Hermite
// (echelon) form and forward-substituting across the resulting triangular
// system.
package diophantine

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/bigrat"
)

// SolveEquation solves the single equation x*A = c for an m-row coefficient
// column vector A and scalar c.
//
// Stage 1: reduce A to echelon form, producing unimodular U and echelon
// column S with U*A = S. Theorem: |S[0]| = GCD(A's entries).
// Stage 2: the equation has a solution iff S[0] divides c; when it does,
// t1 = c / S[0] is the first (and, since A has one column, only
// determined) component of the witness vector t, and any integer solution
// is x = (t1, t2, ..., tm) * U for arbitrary t2..tm.
//
// Returns ErrNoSolution when S[0] does not divide c.
func SolveEquation(a bigrat.IntMatrix, c *big.Int) (u bigrat.IntMatrix, t1 *big.Int, err error) {
	if a.Cols() != 1 {
		return bigrat.IntMatrix{}, nil, bigrat.ErrDimensionMismatch
	}
	u, s, _, err := bigrat.Hermite(a)
	if err != nil {
		return bigrat.IntMatrix{}, nil, err
	}
	s0, _ := s.At(0, 0)
	if s0.Sign() == 0 {
		if c.Sign() == 0 {
			return u, big.NewInt(0), nil
		}
		return bigrat.IntMatrix{}, nil, ErrNoSolution
	}
	q, r := new(big.Int).QuoRem(c, s0, new(big.Int))
	if r.Sign() != 0 {
		return bigrat.IntMatrix{}, nil, ErrNoSolution
	}
	return u, q, nil
}

// SolveSystem solves x*A = c for an m x n coefficient matrix A and 1 x n
// right-hand-side row c.
//
// Stage 1: reduce A to echelon S with unimodular U, U*A = S, rank r of S.
// Stage 2: solve t*S = c by forward substitution across columns 0..n-1: at
// column j, accumulate sum = sum_{k<component} S[k,j]*t[k]; if component
// has already exhausted S's rank, or S[component,j] == 0, the column
// contributes no new unknown and must already balance (c[j] == sum) or the
// system has no solution; otherwise (c[j]-sum) must be divisible by
// S[component,j], giving t[component], and component advances.
// Stage 3: the first r entries of t are determined; the caller fills the
// remaining m-r freely (this function leaves them 0, matching the "default
// to zero" convention of the original). x = t*U is any integer solution
// the caller derives.
func SolveSystem(a bigrat.IntMatrix, c bigrat.IntMatrix) (u bigrat.IntMatrix, t bigrat.IntMatrix, rank int, err error) {
	if a.Cols() != c.Cols() || c.Rows() != 1 {
		return bigrat.IntMatrix{}, bigrat.IntMatrix{}, 0, bigrat.ErrDimensionMismatch
	}
	u, s, rank, err := bigrat.Hermite(a)
	if err != nil {
		return bigrat.IntMatrix{}, bigrat.IntMatrix{}, 0, err
	}
	m := a.Rows()
	n := a.Cols()
	t, _ = bigrat.NewIntMatrix(1, m)
	component := 0
	for j := 0; j < n; j++ {
		sum := big.NewInt(0)
		for k := 0; k < component; k++ {
			skj, _ := s.At(k, j)
			tk, _ := t.At(0, k)
			sum.Add(sum, new(big.Int).Mul(skj, tk))
		}
		cj, _ := c.At(0, j)

		var pivot *big.Int
		if component < rank {
			pivot, _ = s.At(component, j)
		}
		if component >= rank || pivot.Sign() == 0 {
			if cj.Cmp(sum) != 0 {
				return bigrat.IntMatrix{}, bigrat.IntMatrix{}, 0, ErrNoSolution
			}
			continue
		}

		diff := new(big.Int).Sub(cj, sum)
		q, r := new(big.Int).QuoRem(diff, pivot, new(big.Int))
		if r.Sign() != 0 {
			return bigrat.IntMatrix{}, bigrat.IntMatrix{}, 0, ErrNoSolution
		}
		_ = t.Set(0, component, q)
		component++
	}
	return u, t, rank, nil
}
