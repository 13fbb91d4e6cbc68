package depanalysis

import (
	"errors"

	"github.com/dbajgoric/gap2cuda/bigrat"
	"github.com/dbajgoric/gap2cuda/diophantine"
	"github.com/dbajgoric/gap2cuda/fm"
)

// General runs the general linear dependence test between reference
// X(i*A + a0) of statement S and reference X(j*B + b0) of statement T,
// within a nest whose lower/upper bound matrices are (P, p0)/(Q, q0).
// distinct indicates whether S and T are different statements (S = T
// instances never depend on themselves at i = j).
//
// A (i,j) pair represents the same memory location iff i*A - j*B = b0 -
// a0; stacking A atop -B gives a single Diophantine system solved by
// diophantine.SolveSystem. Every witness vector's determined part fixes
// i and j outright; any remaining free components are constrained by the
// loop bounds via Fourier-Motzkin and enumerated.
func General(A, a0, B, b0, P, p0, Q, q0 bigrat.IntMatrix, distinct bool) (tOnS, sOnT []Record, err error) {
	m := A.Rows()

	w := vstack(A, negate(B))
	c := b0.Sub(a0)

	u, t, rank, err := diophantine.SolveSystem(w, c)
	if err != nil {
		if errors.Is(err, diophantine.ErrNoSolution) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	u1 := colSlice(u, 0, m)
	u2 := colSlice(u, m, 2*m)
	twoM := 2 * m
	free := twoM - rank

	if free == 0 {
		i := t.Mul(u1)
		j := t.Mul(u2)
		if !boundsSatisfied(i, j, P, p0, Q, q0) {
			return nil, nil, nil
		}
		addGeneralPair(&tOnS, &sOnT, i, j, distinct)
		return tOnS, sOnT, nil
	}

	ip := u1.Mul(P)
	iq := u1.Mul(Q)
	jp := u2.Mul(P)
	jq := u2.Mul(Q)

	z, v := generalFreeSystem(t, rank, m, ip, jp, iq, jq, p0, q0)

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
		i := full.Mul(u1)
		j := full.Mul(u2)
		addGeneralPair(&tOnS, &sOnT, i, j, distinct)
	}

	return tOnS, sOnT, nil
}

// addGeneralPair buckets one fully-determined (i, j) pair into tOnS or
// sOnT by lexicographic comparison, appending a Record with the concrete
// index vectors attached.
func addGeneralPair(tOnS, sOnT *[]Record, i, j bigrat.IntMatrix, distinct bool) {
	switch bigrat.CompareLex(i, j) {
	case bigrat.RightGreater: // i < j lexicographically
		*tOnS = append(*tOnS, newRecord(rowToVector(i), rowToVector(j), rowToVector(j.Sub(i))))
	case bigrat.LeftGreater: // i > j lexicographically
		*sOnT = append(*sOnT, newRecord(rowToVector(i), rowToVector(j), rowToVector(i.Sub(j))))
	default: // i == j
		if distinct {
			*tOnS = append(*tOnS, newRecord(rowToVector(i), rowToVector(j), rowToVector(j.Sub(i))))
		}
	}
}

// generalFreeSystem builds the (free x 4m) coefficient matrix and (1 x
// 4m) constant row of the Fourier-Motzkin problem constraining the
// witness vector's free components: p0 <= iP becomes
// free*(-IP_bottom) <= t_det*IP_top - p0, iQ <= q0 becomes
// free*(IQ_bottom) <= q0 - t_det*IQ_top, and symmetrically for j via
// JP/JQ.
func generalFreeSystem(t bigrat.IntMatrix, rank, m int, ip, jp, iq, jq bigrat.IntMatrix, p0, q0 bigrat.IntMatrix) (bigrat.IntMatrix, bigrat.IntMatrix) {
	twoM := t.Cols()
	free := twoM - rank

	z, _ := bigrat.NewIntMatrix(free, 4*m)
	v, _ := bigrat.NewIntMatrix(1, 4*m)

	// detContribution is t's determined prefix dotted with mat's top
	// rank rows, or the zero row when nothing is determined yet.
	detContribution := func(mat bigrat.IntMatrix) bigrat.IntMatrix {
		if rank == 0 {
			zero, _ := bigrat.NewIntMatrix(1, m)
			return zero
		}
		tDet := colSlice(t, 0, rank)
		top := rowSlice(mat, 0, rank)
		return tDet.Mul(top)
	}

	segment := func(col int, mat bigrat.IntMatrix, lower bool, bound bigrat.IntMatrix) {
		bottom := rowSlice(mat, rank, twoM)
		contrib := detContribution(mat)
		if lower {
			setCols(z, negate(bottom), col)
			setRowCols(v, contrib.Sub(bound), col)
		} else {
			setCols(z, bottom, col)
			setRowCols(v, bound.Sub(contrib), col)
		}
	}

	segment(0, ip, true, p0)
	segment(m, jp, true, p0)
	segment(2*m, iq, false, q0)
	segment(3*m, jq, false, q0)

	return z, v
}
