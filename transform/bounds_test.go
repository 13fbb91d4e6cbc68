package transform_test

import (
	"math/big"
	"testing"

	"github.com/dbajgoric/gap2cuda/bigrat"
	"github.com/dbajgoric/gap2cuda/transform"
	"github.com/stretchr/testify/require"
)

func mat1x1(v int64) bigrat.IntMatrix {
	m, _ := bigrat.NewIntMatrix(1, 1)
	_ = m.Set(0, 0, big.NewInt(v))
	return m
}

// TestNewBounds_IdentityTransformReproducesOriginalLimits checks the
// degenerate case where U is the identity: the new nest's single loop
// must reproduce the original bound 0 <= K <= 9 exactly, since I = K.
func TestNewBounds_IdentityTransformReproducesOriginalLimits(t *testing.T) {
	t.Parallel()
	u := bigrat.Identity(1)
	P := mat1x1(1)
	p0 := mat1x1(0)
	Q := mat1x1(1)
	q0 := mat1x1(9)

	bounds, err := transform.NewBounds(u, P, p0, Q, q0)
	require.NoError(t, err)
	require.Len(t, bounds, 1)

	b := bounds[0]
	require.False(t, b.Lower.Unbounded)
	require.False(t, b.Upper.Unbounded)

	lowerVal, err := b.Lower.Vector.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), lowerVal.Num().Int64())

	upperVal, err := b.Upper.Vector.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(9), upperVal.Num().Int64())
}
