package affineir_test

import (
	"math/big"
	"testing"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/stretchr/testify/require"
)

func bigs(vs ...int64) affineir.Vector {
	out := make(affineir.Vector, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestVector_LevelAndSign(t *testing.T) {
	t.Parallel()
	require.Equal(t, 2, bigs(0, 3, -1).Level())
	require.Equal(t, 4, bigs(0, 0, 0).Level())
	require.Equal(t, []int{0, 1, -1}, bigs(0, 3, -1).Sign())
}

func TestVector_LessAndEqual(t *testing.T) {
	t.Parallel()
	require.True(t, bigs(0, 1).Less(bigs(0, 2)))
	require.False(t, bigs(1, 0).Less(bigs(0, 9)))
	require.True(t, bigs(1, 2).Equal(bigs(1, 2)))
}

func TestVector_SubAndNegate(t *testing.T) {
	t.Parallel()
	d := bigs(5, 3).Sub(bigs(2, 1))
	require.True(t, d.Equal(bigs(3, 2)))
	require.True(t, d.Negate().Equal(bigs(-3, -2)))
}

func TestVector_IsZero(t *testing.T) {
	t.Parallel()
	require.True(t, bigs(0, 0).IsZero())
	require.False(t, bigs(0, 1).IsZero())
}
