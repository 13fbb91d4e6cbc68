package bigrat

import "math/big"

// ReverseRow multiplies row i of m by -1, in place.
func (m IntMatrix) ReverseRow(i int) {
	for j := 0; j < m.cols; j++ {
		m.data[i][j].Neg(m.data[i][j])
	}
}

// ReverseCol multiplies column j of m by -1, in place.
func (m IntMatrix) ReverseCol(j int) {
	for i := 0; i < m.rows; i++ {
		m.data[i][j].Neg(m.data[i][j])
	}
}

// InterchangeRows swaps two distinct rows of m, in place. A no-op when
// i == j.
func (m IntMatrix) InterchangeRows(i, j int) {
	if i == j {
		return
	}
	m.data[i], m.data[j] = m.data[j], m.data[i]
}

// InterchangeCols swaps two distinct columns of m, in place.
func (m IntMatrix) InterchangeCols(i, j int) {
	if i == j {
		return
	}
	for r := 0; r < m.rows; r++ {
		m.data[r][i], m.data[r][j] = m.data[r][j], m.data[r][i]
	}
}

// SkewRows adds q times row src to row dst, in place: row[dst] += q*row[src].
// src and dst must differ.
func (m IntMatrix) SkewRows(dst, src int, q *big.Int) {
	if dst == src {
		panic("bigrat: SkewRows requires distinct rows")
	}
	for j := 0; j < m.cols; j++ {
		m.data[dst][j].Add(m.data[dst][j], new(big.Int).Mul(q, m.data[src][j]))
	}
}

// SkewCols adds q times column src to column dst, in place.
func (m IntMatrix) SkewCols(dst, src int, q *big.Int) {
	if dst == src {
		panic("bigrat: SkewCols requires distinct columns")
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][dst].Add(m.data[i][dst], new(big.Int).Mul(q, m.data[i][src]))
	}
}

// ReversalMatrix returns the n x n elementary matrix that, premultiplying
// some A, negates row k of A (postmultiplying negates column k).
func ReversalMatrix(n, k int) IntMatrix {
	e := Identity(n)
	e.data[k][k] = big.NewInt(-1)
	return e
}

// InterchangeMatrix returns the n x n elementary matrix that, premultiplying
// some A, swaps rows x and y of A (postmultiplying swaps columns x and y).
func InterchangeMatrix(n, x, y int) IntMatrix {
	e := Identity(n)
	if x == y {
		return e
	}
	e.data[x][x] = big.NewInt(0)
	e.data[y][y] = big.NewInt(0)
	e.data[x][y] = big.NewInt(1)
	e.data[y][x] = big.NewInt(1)
	return e
}

// SkewMatrix returns the n x n elementary matrix that, premultiplying some
// A, adds q times row src to row dst (postmultiplying adds q times column
// dst to column src).
func SkewMatrix(n, dst, src int, q *big.Int) IntMatrix {
	e := Identity(n)
	e.data[dst][src] = new(big.Int).Set(q)
	return e
}
