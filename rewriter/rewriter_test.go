package rewriter_test

import (
	"math/big"
	"testing"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/astiface"
	"github.com/dbajgoric/gap2cuda/bigrat"
	"github.com/dbajgoric/gap2cuda/rewriter"
	"github.com/dbajgoric/gap2cuda/transform"
	"github.com/stretchr/testify/require"
)

type fakeDecl struct {
	handle astiface.NodeHandle
	name   string
}

func (d fakeDecl) Handle() astiface.NodeHandle { return d.handle }
func (d fakeDecl) Kind() astiface.DeclKind     { return astiface.DeclArray }
func (d fakeDecl) Name() string                { return d.name }
func (d fakeDecl) Location() astiface.Location { return astiface.Location{} }
func (d fakeDecl) ElemType() string            { return "int" }
func (d fakeDecl) StaticSizes() []int          { return []int{10, 10} }
func (d fakeDecl) Initializer() astiface.Expr  { return nil }

func linForm(constant int64, coeffs map[astiface.NodeHandle]int64) *affineir.LinearForm {
	f := affineir.NewLinearForm()
	f.AddConstant(big.NewInt(constant))
	for v, c := range coeffs {
		f.AddCoeff(v, big.NewInt(c))
	}
	return f
}

// buildNest assembles the two-level nest
//
//	for (i = 0; i <= 9; i++)
//	  for (j = 0; j <= 9; j++)
//	    a[i][j] = a[i-1][j] + a[i][j-1];
//
// whose two flow dependences carry exactly the distance set
// {(1,0), (0,1)} that transform.Plan skews with U = [[1,1],[1,0]].
func buildNest() (*affineir.Nest, fakeDecl, fakeDecl) {
	i := fakeDecl{handle: 1, name: "i"}
	j := fakeDecl{handle: 2, name: "j"}
	arr := fakeDecl{handle: 3, name: "a"}

	inner := &affineir.LoopHeader{Index: j, Lower: linForm(0, nil), Upper: linForm(9, nil)}
	outer := &affineir.LoopHeader{Index: i, Lower: linForm(0, nil), Upper: linForm(9, nil), Child: inner}

	lhs := affineir.Subscript{
		Array: arr,
		Forms: []*affineir.LinearForm{
			linForm(0, map[astiface.NodeHandle]int64{i.Handle(): 1}),
			linForm(0, map[astiface.NodeHandle]int64{j.Handle(): 1}),
		},
	}
	rhs1 := affineir.Subscript{
		Array: arr,
		Forms: []*affineir.LinearForm{
			linForm(-1, map[astiface.NodeHandle]int64{i.Handle(): 1}),
			linForm(0, map[astiface.NodeHandle]int64{j.Handle(): 1}),
		},
	}
	rhs2 := affineir.Subscript{
		Array: arr,
		Forms: []*affineir.LinearForm{
			linForm(0, map[astiface.NodeHandle]int64{i.Handle(): 1}),
			linForm(-1, map[astiface.NodeHandle]int64{j.Handle(): 1}),
		},
	}

	nest := &affineir.Nest{Outermost: outer, Indices: []astiface.Decl{i, j}}
	nest.AddAssignment(affineir.Assignment{LHS: lhs, RHS: []affineir.Subscript{rhs1, rhs2}})
	return nest, i, j
}

func TestRewrite_SkewsSubscriptsOntoFreshIndices(t *testing.T) {
	t.Parallel()
	nest, i, j := buildNest()

	tr, err := transform.Plan([]affineir.Vector{{big.NewInt(1), big.NewInt(0)}, {big.NewInt(0), big.NewInt(1)}}, 2)
	require.NoError(t, err)
	require.Equal(t, transform.InnerPar, tr.Kind)

	rw, err := rewriter.Rewrite(nest, tr)
	require.NoError(t, err)
	require.Len(t, rw.Indices, 2)
	require.Equal(t, "k0", rw.Indices[0].Name)
	require.Equal(t, "k1", rw.Indices[1].Name)
	require.Len(t, rw.Bounds, 2)

	require.Len(t, rw.Assignments, 1)
	a := rw.Assignments[0]

	// Neither original index variable may still appear anywhere in the
	// rewritten assignment.
	for _, sub := range append([]affineir.Subscript{a.LHS}, a.RHS...) {
		for _, f := range sub.Forms {
			_, ok := f.Coeff(i.Handle())
			require.False(t, ok)
			_, ok = f.Coeff(j.Handle())
			require.False(t, ok)
		}
	}

	k0, k1 := rw.Indices[0].Handle, rw.Indices[1].Handle

	// a[i-1][j] substituted via I = K.U^-1 with U^-1 = [[0,1],[1,-1]]:
	// dimension 0 (old form i-1) becomes k1 - 1, dimension 1 (old form j)
	// becomes k0 - k1.
	dim0 := a.RHS[0].Forms[0]
	c, ok := dim0.Coeff(k1)
	require.True(t, ok)
	require.Equal(t, int64(1), c.Int64())
	_, ok = dim0.Coeff(k0)
	require.False(t, ok)
	require.Equal(t, int64(-1), dim0.Constant().Int64())

	dim1 := a.RHS[0].Forms[1]
	c0, ok := dim1.Coeff(k0)
	require.True(t, ok)
	require.Equal(t, int64(1), c0.Int64())
	c1, ok := dim1.Coeff(k1)
	require.True(t, ok)
	require.Equal(t, int64(-1), c1.Int64())
	require.Equal(t, int64(0), dim1.Constant().Int64())
}

func TestRewrite_DepthMismatchRejected(t *testing.T) {
	t.Parallel()
	nest, _, _ := buildNest()
	tr := &transform.Transform{Kind: transform.None, U: bigrat.Identity(3), K: 3}
	_, err := rewriter.Rewrite(nest, tr)
	require.ErrorIs(t, err, rewriter.ErrDepthMismatch)
}
