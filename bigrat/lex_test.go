package bigrat_test

import (
	"testing"

	"github.com/dbajgoric/gap2cuda/bigrat"
	"github.com/stretchr/testify/require"
)

// TestCompareLex_Properties exercises §8 property 3.
func TestCompareLex_Properties(t *testing.T) {
	t.Parallel()

	x := bigrat.IntMatrixFromRows([][]int64{{0, 1, -2}})
	y := bigrat.IntMatrixFromRows([][]int64{{0, 1, -2}})
	require.Equal(t, bigrat.Equal, bigrat.CompareLex(x, y))

	a := bigrat.IntMatrixFromRows([][]int64{{1, 0}})
	b := bigrat.IntMatrixFromRows([][]int64{{0, 100}})
	require.Equal(t, bigrat.LeftGreater, bigrat.CompareLex(a, b))
	require.Equal(t, bigrat.RightGreater, bigrat.CompareLex(b, a))
	require.True(t, bigrat.LexLess(b, a))
	require.True(t, bigrat.LexGreater(a, b))
}

func TestLevel(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0, bigrat.Level(bigrat.IntMatrixFromRows([][]int64{{1, 0, 0}})))
	require.Equal(t, 1, bigrat.Level(bigrat.IntMatrixFromRows([][]int64{{0, 2, 0}})))
	require.Equal(t, 3, bigrat.Level(bigrat.IntMatrixFromRows([][]int64{{0, 0, 0}})))
}

func TestCompareLex_PanicsOnShapeMismatch(t *testing.T) {
	t.Parallel()
	x := bigrat.IntMatrixFromRows([][]int64{{1, 2}})
	y := bigrat.IntMatrixFromRows([][]int64{{1, 2, 3}})
	require.Panics(t, func() { bigrat.CompareLex(x, y) })
}
