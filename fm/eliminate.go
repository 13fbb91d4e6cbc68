package fm

import "github.com/dbajgoric/gap2cuda/bigrat"

// Eliminate decides the real feasibility of x*a <= c and, when feasible,
// returns the per-variable bound description used by EnumerateChunks and
// by dependence analysis's feasibility tests. bounds[i] describes the
// variable associated with row i of a; its Matrix/Vector pair is a
// function of the variables associated with rows 0..i-1 only (see
// BoundSide), so bounds can be evaluated in row order to build up a point
// one coordinate at a time.
//
// Variables are eliminated from the last row to the first: at each step
// the current row's column signs partition the remaining inequalities
// into those giving an upper bound on that row's variable (positive
// coefficient, P), a lower bound (negative coefficient, N), and those
// that do not mention it at all (zero coefficient, Z, carried over
// untouched). Every P/N column is first divided by its own pivot so the
// eliminated variable's coefficient is 1 (dividing an N column by its
// negative pivot turns it into a lower bound); replacing the variable with a
// fresh inequality for every (lower, upper) pair plus every Z column
// yields the system for the remaining rows. Once row 0 is processed, no
// variables remain: the pairwise/Z values built at that step must all be
// non-negative constants, which is the final feasibility test.
func Eliminate(a bigrat.RatMatrix, c bigrat.RatMatrix) ([]Bound, error) {
	if a.Cols() != c.Cols() || c.Rows() != 1 {
		return nil, bigrat.ErrDimensionMismatch
	}
	m := a.Rows()
	if m == 0 {
		for j := 0; j < c.Cols(); j++ {
			v, _ := c.At(0, j)
			if v.Sign() < 0 {
				return nil, ErrInfeasible
			}
		}
		return nil, nil
	}

	bounds := make([]Bound, m)
	curA := a.Clone()
	curC := c.Clone()

	for row := m - 1; row >= 0; row-- {
		s := curA.Cols()
		var p, n, z []int
		for j := 0; j < s; j++ {
			v, _ := curA.At(row, j)
			switch v.Sign() {
			case 1:
				p = append(p, j)
			case -1:
				n = append(n, j)
			default:
				z = append(z, j)
			}
		}
		for _, j := range p {
			scalePivotColumn(curA, curC, row, j)
		}
		for _, j := range n {
			scalePivotColumn(curA, curC, row, j)
		}

		bounds[row].Upper = collectSide(curA, curC, row, p)
		bounds[row].Lower = collectSide(curA, curC, row, n)

		if row == 0 {
			for _, pj := range p {
				for _, nj := range n {
					if pairConst(curC, pj, nj).Sign() < 0 {
						return nil, ErrInfeasible
					}
				}
			}
			for _, zj := range z {
				v, _ := curC.At(0, zj)
				if v.Sign() < 0 {
					return nil, ErrInfeasible
				}
			}
			break
		}

		newCols := len(p)*len(n) + len(z)
		if newCols == 0 {
			for i := 0; i < row; i++ {
				bounds[i].Lower.Unbounded = true
				bounds[i].Upper.Unbounded = true
			}
			break
		}

		nextA, _ := bigrat.NewRatMatrix(row, newCols)
		nextC, _ := bigrat.NewRatMatrix(1, newCols)
		col := 0
		for _, pj := range p {
			for _, nj := range n {
				for i := 0; i < row; i++ {
					tp, _ := curA.At(i, pj)
					tn, _ := curA.At(i, nj)
					_ = nextA.Set(i, col, tp.Sub(tn))
				}
				_ = nextC.Set(0, col, pairConst(curC, pj, nj))
				col++
			}
		}
		for _, zj := range z {
			for i := 0; i < row; i++ {
				t, _ := curA.At(i, zj)
				_ = nextA.Set(i, col, t)
			}
			v, _ := curC.At(0, zj)
			_ = nextC.Set(0, col, v)
			col++
		}

		curA, curC = nextA, nextC
	}

	return bounds, nil
}

// scalePivotColumn divides column j's enclosing-variable rows (0..row) and
// its constant by the pivot at (row, j), normalizing the eliminated
// variable's coefficient in that column to 1.
func scalePivotColumn(curA, curC bigrat.RatMatrix, row, j int) {
	pivot, _ := curA.At(row, j)
	for i := 0; i <= row; i++ {
		v, _ := curA.At(i, j)
		_ = curA.Set(i, j, v.Div(pivot))
	}
	c, _ := curC.At(0, j)
	_ = curC.Set(0, j, c.Div(pivot))
}

// pairConst is the constant term of the inequality formed by combining an
// upper-bound candidate (column pj of P) with a lower-bound candidate
// (column nj of N): the upper candidate's constant minus the lower
// candidate's, matching the coefficient combination tp - tn used to build
// the next system's matching column.
func pairConst(curC bigrat.RatMatrix, pj, nj int) bigrat.Rat {
	cp, _ := curC.At(0, pj)
	cn, _ := curC.At(0, nj)
	return cp.Sub(cn)
}
