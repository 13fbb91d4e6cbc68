package depanalysis_test

import (
	"testing"

	"github.com/dbajgoric/gap2cuda/bigrat"
	"github.com/dbajgoric/gap2cuda/depanalysis"
	"github.com/stretchr/testify/require"
)

// TestUniform_FlowDependenceDistanceOne models a[i] = a[i-1] + 1 for
// i in [0, 9]: both references share coefficient matrix [[1]], so the
// uniform test solves directly for the distance k = j - i = 1. Since the
// statement is not distinct from itself, only k != 0 pairs produce a
// record; k = 1 > 0 so it lands in tOnS.
func TestUniform_FlowDependenceDistanceOne(t *testing.T) {
	t.Parallel()
	A := bigrat.IntMatrixFromRows([][]int64{{1}})
	a0 := bigrat.IntMatrixFromRows([][]int64{{0}})
	b0 := bigrat.IntMatrixFromRows([][]int64{{-1}})
	P := bigrat.IntMatrixFromRows([][]int64{{1}})
	p0 := bigrat.IntMatrixFromRows([][]int64{{0}})
	q0 := bigrat.IntMatrixFromRows([][]int64{{9}})

	tOnS, sOnT, err := depanalysis.Uniform(A, a0, b0, P, p0, q0, false)
	require.NoError(t, err)
	require.Empty(t, sOnT)
	require.Len(t, tOnS, 1)
	require.Equal(t, int64(1), tOnS[0].Distance[0].Int64())
	require.Equal(t, 1, tOnS[0].Level)
}

// TestUniform_OutOfRangeDistanceIsInfeasible checks that a distance which
// would place the dependent iteration outside the loop bounds is rejected
// even though it satisfies the equation k*A = a0 - b0.
func TestUniform_OutOfRangeDistanceIsInfeasible(t *testing.T) {
	t.Parallel()
	A := bigrat.IntMatrixFromRows([][]int64{{1}})
	a0 := bigrat.IntMatrixFromRows([][]int64{{0}})
	b0 := bigrat.IntMatrixFromRows([][]int64{{-20}})
	P := bigrat.IntMatrixFromRows([][]int64{{1}})
	p0 := bigrat.IntMatrixFromRows([][]int64{{0}})
	q0 := bigrat.IntMatrixFromRows([][]int64{{9}})

	tOnS, sOnT, err := depanalysis.Uniform(A, a0, b0, P, p0, q0, false)
	require.NoError(t, err)
	require.Empty(t, tOnS)
	require.Empty(t, sOnT)
}

// TestUniform_SelfDependenceNotDistinctIsExcluded checks that a zero
// distance from a non-distinct statement produces no record: the same
// statement instance trivially depends on itself, which carries no
// ordering information.
func TestUniform_SelfDependenceNotDistinctIsExcluded(t *testing.T) {
	t.Parallel()
	A := bigrat.IntMatrixFromRows([][]int64{{1}})
	a0 := bigrat.IntMatrixFromRows([][]int64{{0}})
	b0 := bigrat.IntMatrixFromRows([][]int64{{0}})
	P := bigrat.IntMatrixFromRows([][]int64{{1}})
	p0 := bigrat.IntMatrixFromRows([][]int64{{0}})
	q0 := bigrat.IntMatrixFromRows([][]int64{{9}})

	tOnS, sOnT, err := depanalysis.Uniform(A, a0, b0, P, p0, q0, false)
	require.NoError(t, err)
	require.Empty(t, tOnS)
	require.Empty(t, sOnT)
}
