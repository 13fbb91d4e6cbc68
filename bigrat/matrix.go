package bigrat

import (
	"fmt"
	"math/big"
)

// IntMatrix is a dense row-major matrix of arbitrary-precision integers.
//
// Stage 1 (Validate) of every constructor rejects non-positive shapes with
// ErrBadShape; out-of-range At/Set return ErrOutOfRange rather than panic,
// since callers may legitimately probe shapes at runtime. Shape mismatches
// between two matrix operands (Add, Mul, ...) panic: combining
// incompatible shapes is always a caller/programmer bug inside this
// package's closed set of callers (diophantine, fm, depanalysis,
// transform), never a condition arising from untrusted input.
type IntMatrix struct {
	rows, cols int
	data       [][]*big.Int
}

// NewIntMatrix allocates a zero-filled rows x cols integer matrix.
func NewIntMatrix(rows, cols int) (IntMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return IntMatrix{}, ErrBadShape
	}
	data := make([][]*big.Int, rows)
	for i := range data {
		row := make([]*big.Int, cols)
		for j := range row {
			row[j] = big.NewInt(0)
		}
		data[i] = row
	}
	return IntMatrix{rows: rows, cols: cols, data: data}, nil
}

// IntMatrixFromRows builds an IntMatrix from literal int64 rows. All rows
// must share the same length; panics otherwise (a fixture-construction
// bug, never runtime data).
func IntMatrixFromRows(rows [][]int64) IntMatrix {
	if len(rows) == 0 {
		panic("bigrat: IntMatrixFromRows requires at least one row")
	}
	cols := len(rows[0])
	m, err := NewIntMatrix(len(rows), cols)
	if err != nil {
		panic(err)
	}
	for i, row := range rows {
		if len(row) != cols {
			panic("bigrat: IntMatrixFromRows: ragged input")
		}
		for j, v := range row {
			m.data[i][j] = big.NewInt(v)
		}
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) IntMatrix {
	m, err := NewIntMatrix(n, n)
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		m.data[i][i] = big.NewInt(1)
	}
	return m
}

// Rows reports the number of rows.
func (m IntMatrix) Rows() int { return m.rows }

// Cols reports the number of columns.
func (m IntMatrix) Cols() int { return m.cols }

// At returns a copy of the (i, j) entry.
func (m IntMatrix) At(i, j int) (*big.Int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return nil, ErrOutOfRange
	}
	return new(big.Int).Set(m.data[i][j]), nil
}

// Set writes v into (i, j), copying v.
func (m IntMatrix) Set(i, j int, v *big.Int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrOutOfRange
	}
	m.data[i][j] = new(big.Int).Set(v)
	return nil
}

// Clone returns a deep copy.
func (m IntMatrix) Clone() IntMatrix {
	out, _ := NewIntMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[i][j] = new(big.Int).Set(m.data[i][j])
		}
	}
	return out
}

// Row returns a copy of row i as a 1 x cols matrix.
func (m IntMatrix) Row(i int) IntMatrix {
	out, _ := NewIntMatrix(1, m.cols)
	for j := 0; j < m.cols; j++ {
		out.data[0][j] = new(big.Int).Set(m.data[i][j])
	}
	return out
}

// Col returns a copy of column j as a rows x 1 matrix.
func (m IntMatrix) Col(j int) IntMatrix {
	out, _ := NewIntMatrix(m.rows, 1)
	for i := 0; i < m.rows; i++ {
		out.data[i][0] = new(big.Int).Set(m.data[i][j])
	}
	return out
}

// Transpose returns the transpose of m.
func (m IntMatrix) Transpose() IntMatrix {
	out, _ := NewIntMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j][i] = new(big.Int).Set(m.data[i][j])
		}
	}
	return out
}

// Mul returns m * n. Panics on dimension mismatch (see type doc).
func (m IntMatrix) Mul(n IntMatrix) IntMatrix {
	if m.cols != n.rows {
		panic(fmt.Sprintf("bigrat: Mul dimension mismatch %dx%d * %dx%d", m.rows, m.cols, n.rows, n.cols))
	}
	out, _ := NewIntMatrix(m.rows, n.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < n.cols; j++ {
			sum := big.NewInt(0)
			for k := 0; k < m.cols; k++ {
				sum.Add(sum, new(big.Int).Mul(m.data[i][k], n.data[k][j]))
			}
			out.data[i][j] = sum
		}
	}
	return out
}

// Add returns m + n. Panics on dimension mismatch.
func (m IntMatrix) Add(n IntMatrix) IntMatrix {
	if m.rows != n.rows || m.cols != n.cols {
		panic("bigrat: Add dimension mismatch")
	}
	out, _ := NewIntMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[i][j] = new(big.Int).Add(m.data[i][j], n.data[i][j])
		}
	}
	return out
}

// Sub returns m - n. Panics on dimension mismatch.
func (m IntMatrix) Sub(n IntMatrix) IntMatrix {
	if m.rows != n.rows || m.cols != n.cols {
		panic("bigrat: Sub dimension mismatch")
	}
	out, _ := NewIntMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[i][j] = new(big.Int).Sub(m.data[i][j], n.data[i][j])
		}
	}
	return out
}

// Equal reports whether m and n have equal shape and entries.
func (m IntMatrix) Equal(n IntMatrix) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.data[i][j].Cmp(n.data[i][j]) != 0 {
				return false
			}
		}
	}
	return true
}

// IsZeroRow reports whether row i is entirely zero.
func (m IntMatrix) IsZeroRow(i int) bool {
	for j := 0; j < m.cols; j++ {
		if m.data[i][j].Sign() != 0 {
			return false
		}
	}
	return true
}

// Rank returns the number of nonzero rows of m, meaningful when m is
// already in echelon form (see Hermite).
func (m IntMatrix) Rank() int {
	r := 0
	for i := 0; i < m.rows; i++ {
		if !m.IsZeroRow(i) {
			r++
		}
	}
	return r
}

// Det returns the determinant of a square integer matrix via fraction-free
// Bareiss elimination (exact, no rational intermediate values).
func (m IntMatrix) Det() (*big.Int, error) {
	if m.rows != m.cols {
		return nil, ErrNonSquare
	}
	n := m.rows
	a := m.Clone()
	prevPivot := big.NewInt(1)
	sign := 1
	for k := 0; k < n-1; k++ {
		if a.data[k][k].Sign() == 0 {
			swapped := false
			for i := k + 1; i < n; i++ {
				if a.data[i][k].Sign() != 0 {
					a.data[k], a.data[i] = a.data[i], a.data[k]
					sign = -sign
					swapped = true
					break
				}
			}
			if !swapped {
				return big.NewInt(0), nil
			}
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				num := new(big.Int).Sub(
					new(big.Int).Mul(a.data[k][k], a.data[i][j]),
					new(big.Int).Mul(a.data[i][k], a.data[k][j]),
				)
				a.data[i][j] = new(big.Int).Quo(num, prevPivot)
			}
		}
		prevPivot = new(big.Int).Set(a.data[k][k])
	}
	det := new(big.Int).Set(a.data[n-1][n-1])
	if sign < 0 {
		det.Neg(det)
	}
	return det, nil
}

// IsUnimodular reports whether m is square with determinant +-1.
func (m IntMatrix) IsUnimodular() bool {
	if m.rows != m.cols {
		return false
	}
	d, err := m.Det()
	if err != nil {
		return false
	}
	return d.CmpAbs(bigOne) == 0
}

// Inverse returns m's exact integer inverse via the classical adjugate
// (cofactor) construction: adj(m)[j][i] is the (i,j) cofactor, and
// inverse = adj(m) / det(m). This only ever divides evenly when det is
// +-1, so Inverse rejects anything but a unimodular matrix with
// ErrSingular rather than returning a RatMatrix for the general case -
// every caller in this module (transform's outer-par and bounds
// construction, rewriter's index back-substitution) only ever needs the
// inverse of a transform matrix, which is unimodular by construction.
func (m IntMatrix) Inverse() (IntMatrix, error) {
	det, err := m.Det()
	if err != nil {
		return IntMatrix{}, err
	}
	if det.CmpAbs(bigOne) != 0 {
		return IntMatrix{}, ErrSingular
	}
	n := m.rows
	out, err := NewIntMatrix(n, n)
	if err != nil {
		return IntMatrix{}, err
	}
	if n == 1 {
		out.data[0][0] = new(big.Int).Set(det)
		return out, nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			minor, err := m.minor(i, j)
			if err != nil {
				return IntMatrix{}, err
			}
			cof, err := minor.Det()
			if err != nil {
				return IntMatrix{}, err
			}
			if (i+j)%2 != 0 {
				cof.Neg(cof)
			}
			// adj(m)[j][i] = cofactor(i,j); dividing by det multiplies
			// by it since det is +-1.
			out.data[j][i] = cof.Mul(cof, det)
		}
	}
	return out, nil
}

// minor returns m with row i and column j removed.
func (m IntMatrix) minor(i, j int) (IntMatrix, error) {
	out, err := NewIntMatrix(m.rows-1, m.cols-1)
	if err != nil {
		return IntMatrix{}, err
	}
	r := 0
	for a := 0; a < m.rows; a++ {
		if a == i {
			continue
		}
		c := 0
		for b := 0; b < m.cols; b++ {
			if b == j {
				continue
			}
			out.data[r][c] = new(big.Int).Set(m.data[a][b])
			c++
		}
		r++
	}
	return out, nil
}

// ToRat lifts an integer matrix to a rational matrix.
func (m IntMatrix) ToRat() RatMatrix {
	out, _ := NewRatMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(i, j, NewRatBigInt(m.data[i][j]))
		}
	}
	return out
}

// RatMatrix is a dense row-major matrix of exact rationals. See IntMatrix
// doc for the shape-error/panic split this package follows throughout.
type RatMatrix struct {
	rows, cols int
	data       [][]Rat
}

// NewRatMatrix allocates a zero-filled rows x cols rational matrix.
func NewRatMatrix(rows, cols int) (RatMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return RatMatrix{}, ErrBadShape
	}
	data := make([][]Rat, rows)
	for i := range data {
		data[i] = make([]Rat, cols)
		for j := range data[i] {
			data[i][j] = ZeroRat
		}
	}
	return RatMatrix{rows: rows, cols: cols, data: data}, nil
}

// Rows reports the number of rows.
func (m RatMatrix) Rows() int { return m.rows }

// Cols reports the number of columns.
func (m RatMatrix) Cols() int { return m.cols }

// At returns the (i, j) entry.
func (m RatMatrix) At(i, j int) (Rat, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return Rat{}, ErrOutOfRange
	}
	return m.data[i][j], nil
}

// Set writes v into (i, j).
func (m RatMatrix) Set(i, j int, v Rat) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrOutOfRange
	}
	m.data[i][j] = v
	return nil
}

// Clone returns a deep copy (Rat is immutable, so this is a shallow slice
// copy that is safe to treat as deep).
func (m RatMatrix) Clone() RatMatrix {
	out, _ := NewRatMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		copy(out.data[i], m.data[i])
	}
	return out
}

// Mul returns m * n. Panics on dimension mismatch.
func (m RatMatrix) Mul(n RatMatrix) RatMatrix {
	if m.cols != n.rows {
		panic("bigrat: Mul dimension mismatch")
	}
	out, _ := NewRatMatrix(m.rows, n.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < n.cols; j++ {
			sum := ZeroRat
			for k := 0; k < m.cols; k++ {
				sum = sum.Add(m.data[i][k].Mul(n.data[k][j]))
			}
			out.data[i][j] = sum
		}
	}
	return out
}

// Row returns row i as a 1 x cols matrix.
func (m RatMatrix) Row(i int) RatMatrix {
	out, _ := NewRatMatrix(1, m.cols)
	copy(out.data[0], m.data[i])
	return out
}
