package depanalysis

import (
	"errors"
	"math/big"

	"github.com/dbajgoric/gap2cuda/bigrat"
	"github.com/dbajgoric/gap2cuda/diophantine"
	"github.com/dbajgoric/gap2cuda/fm"
)

// Uniform runs the specialized dependence test usable when both
// references share the same subscript coefficient matrix A inside a
// regular or rectangular nest (bound matrix P serves as both lower and
// upper coefficient matrix, per the caller's regular/rectangular check).
// It solves for the distance k = j - i directly instead of for i and j
// separately, which collapses the loop-bound constraints to a single
// system p0 - q0 <= k*P <= q0 - p0.
func Uniform(A, a0, b0, P, p0, q0 bigrat.IntMatrix, distinct bool) (tOnS, sOnT []Record, err error) {
	m := A.Rows()

	u, t, rank, err := diophantine.SolveSystem(A, a0.Sub(b0))
	if err != nil {
		if errors.Is(err, diophantine.ErrNoSolution) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	up := u.Mul(P)
	free := m - rank

	if free == 0 {
		if !uniformTrivialFeasible(t, up, p0, q0, m) {
			return nil, nil, nil
		}
		k := t.Mul(u)
		zero, _ := bigrat.NewIntMatrix(1, m)
		addUniformPair(&tOnS, &sOnT, k, zero, distinct)
		return tOnS, sOnT, nil
	}

	z, v := uniformFreeSystem(t, rank, m, up, p0, q0)

	bounds, err := fm.Eliminate(z.ToRat(), v.ToRat())
	if err != nil {
		if errors.Is(err, fm.ErrInfeasible) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	sols, err := fm.EnumerateAll(bounds, 256)
	if err != nil {
		if errors.Is(err, fm.ErrInfiniteSolutionSet) {
			return nil, nil, ErrCannotProveIndependence
		}
		return nil, nil, err
	}

	for _, sol := range sols {
		full := fillT(t, rank, sol)
		k := full.Mul(u)
		zero, _ := bigrat.NewIntMatrix(1, m)
		addUniformPair(&tOnS, &sOnT, k, zero, distinct)
	}

	return tOnS, sOnT, nil
}

// uniformTrivialFeasible verifies 0 <= tUP + q0 - p0 and 0 <= -tUP + q0 -
// p0 for the fully-determined case (no free components to eliminate).
func uniformTrivialFeasible(t, up, p0, q0 bigrat.IntMatrix, m int) bool {
	tup := t.Mul(up)
	diff := q0.Sub(p0)
	for j := 0; j < m; j++ {
		tv, _ := tup.At(0, j)
		dv, _ := diff.At(0, j)
		lhs1 := new(big.Int).Add(tv, dv)
		lhs2 := new(big.Int).Sub(dv, tv)
		if lhs1.Sign() < 0 || lhs2.Sign() < 0 {
			return false
		}
	}
	return true
}

// addUniformPair buckets distance candidate k (compared lexicographically
// against the zero vector) into tOnS or sOnT.
func addUniformPair(tOnS, sOnT *[]Record, k, zero bigrat.IntMatrix, distinct bool) {
	switch bigrat.CompareLex(k, zero) {
	case bigrat.LeftGreater: // k > 0
		*tOnS = append(*tOnS, newRecord(nil, nil, rowToVector(k)))
	case bigrat.RightGreater: // k < 0
		*sOnT = append(*sOnT, newRecord(nil, nil, rowToVector(negate(k))))
	default: // k == 0
		if distinct {
			*tOnS = append(*tOnS, newRecord(nil, nil, rowToVector(k)))
		}
	}
}

// uniformFreeSystem builds the (free x 2m) coefficient matrix and (1 x
// 2m) constant row of the Fourier-Motzkin problem constraining k's free
// components, from p0 - q0 <= k*P <= q0 - p0 rewritten over t via k = t*U.
func uniformFreeSystem(t bigrat.IntMatrix, rank, m int, up, p0, q0 bigrat.IntMatrix) (bigrat.IntMatrix, bigrat.IntMatrix) {
	z, _ := bigrat.NewIntMatrix(m-rank, 2*m)
	v, _ := bigrat.NewIntMatrix(1, 2*m)

	bottom := rowSlice(up, rank, m)
	setCols(z, bottom, 0)
	setCols(z, negate(bottom), m)

	var tup bigrat.IntMatrix
	if rank == 0 {
		tup, _ = bigrat.NewIntMatrix(1, m)
	} else {
		tDet := colSlice(t, 0, rank)
		top := rowSlice(up, 0, rank)
		tup = tDet.Mul(top)
	}

	qMinusP := q0.Sub(p0)
	setRowCols(v, qMinusP.Sub(tup), 0)
	setRowCols(v, qMinusP.Add(tup), m)

	return z, v
}
