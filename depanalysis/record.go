package depanalysis

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/bigrat"
)

// Record is one confirmed dependence between two references: the
// distance vector d, its sign (direction) vector, and its level (the
// 1-indexed first nonzero component, or one past the nest's depth for a
// zero distance). I and J, the concrete source/sink index vectors, are
// populated by the general test and left nil by the uniform test, which
// only ever derives the distance itself.
type Record struct {
	I, J     affineir.Vector
	Distance affineir.Vector
	Sign     []int
	Level    int
}

// newRecord builds a Record from a distance vector.
func newRecord(i, j, d affineir.Vector) Record {
	return Record{I: i, J: j, Distance: d, Sign: d.Sign(), Level: d.Level()}
}

// rowToVector copies row 0 of a 1 x n integer matrix into a Vector.
func rowToVector(m bigrat.IntMatrix) affineir.Vector {
	v := make(affineir.Vector, m.Cols())
	for j := range v {
		c, _ := m.At(0, j)
		v[j] = new(big.Int).Set(c)
	}
	return v
}
