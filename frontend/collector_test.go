package frontend_test

import (
	"testing"

	"github.com/dbajgoric/gap2cuda/astiface"
	"github.com/dbajgoric/gap2cuda/frontend"
	"github.com/stretchr/testify/require"
)

func TestCollect_SingleLoopAssignment(t *testing.T) {
	t.Parallel()

	i := fakeDecl{handle: 1, name: "i", kind: astiface.DeclInt, elemType: "int"}
	a := fakeDecl{handle: 2, name: "a", kind: astiface.DeclArray, elemType: "int", staticDims: []int{10}}
	b := fakeDecl{handle: 3, name: "b", kind: astiface.DeclArray, elemType: "int", staticDims: []int{10}}

	body := fakeCompound{stmts: []astiface.Stmt{
		fakeAssign{
			target: sub(a, fakeDRE{decl: i}),
			value:  fakeBin{op: astiface.OpAdd, lhs: sub(b, fakeDRE{decl: i}), rhs: fakeIntLit{1}},
		},
	}}

	header := fakeFor{
		index: i,
		init:  fakeIntLit{0},
		cond:  fakeBin{op: astiface.OpLess, lhs: fakeDRE{decl: i}, rhs: fakeIntLit{10}},
		inc:   preInc(i),
		body:  body,
	}

	tree := frontend.NewScopeTree(astiface.InvalidNodeHandle)
	c := frontend.NewNestCollector(tree)

	nest, err := c.Collect(tree.Root().Handle(), header)
	require.NoError(t, err)
	require.Equal(t, 1, nest.Depth())
	require.Len(t, nest.Assignments, 1)

	asn := nest.Assignments[0]
	require.Equal(t, a.Handle(), asn.LHS.Array.Handle())
	require.Len(t, asn.LHS.Forms, 1)
	c0, ok := asn.LHS.Forms[0].Coeff(i.Handle())
	require.True(t, ok)
	require.Equal(t, "1", c0.String())

	require.Len(t, asn.RHS, 1)
	require.Equal(t, b.Handle(), asn.RHS[0].Array.Handle())

	require.Contains(t, nest.InputArrays, b.Handle())
	require.Contains(t, nest.OutputArrays, a.Handle())

	// Outermost bound must be constant.
	require.True(t, nest.Outermost.Lower.IsConstant())
	require.True(t, nest.Outermost.Upper.IsConstant())
	require.Equal(t, "9", nest.Outermost.Upper.Constant().String())
}

func TestCollect_ScalarLhsRejected(t *testing.T) {
	t.Parallel()

	i := fakeDecl{handle: 1, name: "i", kind: astiface.DeclInt}
	s := fakeDecl{handle: 2, name: "s", kind: astiface.DeclOther}

	body := fakeCompound{stmts: []astiface.Stmt{
		fakeAssign{target: fakeDRE{decl: s}, value: fakeIntLit{1}},
	}}
	header := fakeFor{
		index: i,
		init:  fakeIntLit{0},
		cond:  fakeBin{op: astiface.OpLess, lhs: fakeDRE{decl: i}, rhs: fakeIntLit{10}},
		inc:   preInc(i),
		body:  body,
	}

	tree := frontend.NewScopeTree(astiface.InvalidNodeHandle)
	c := frontend.NewNestCollector(tree)
	_, err := c.Collect(tree.Root().Handle(), header)
	require.ErrorIs(t, err, frontend.ErrScalarLhs)
}

func TestCollect_NonAssignStmtRejected(t *testing.T) {
	t.Parallel()

	i := fakeDecl{handle: 1, name: "i", kind: astiface.DeclInt}
	body := fakeCompound{stmts: []astiface.Stmt{fakeCompound{}}}
	header := fakeFor{
		index: i,
		init:  fakeIntLit{0},
		cond:  fakeBin{op: astiface.OpLess, lhs: fakeDRE{decl: i}, rhs: fakeIntLit{10}},
		inc:   preInc(i),
		body:  body,
	}

	tree := frontend.NewScopeTree(astiface.InvalidNodeHandle)
	c := frontend.NewNestCollector(tree)
	_, err := c.Collect(tree.Root().Handle(), header)
	require.ErrorIs(t, err, frontend.ErrNotPerfect)
}

func TestCollectCandidates_SkipsNestedFor(t *testing.T) {
	t.Parallel()

	i := fakeDecl{handle: 1, name: "i", kind: astiface.DeclInt}
	inner := fakeFor{index: i, init: fakeIntLit{0}, cond: fakeBin{op: astiface.OpLess, lhs: fakeDRE{decl: i}, rhs: fakeIntLit{1}}, inc: preInc(i), body: fakeCompound{}}
	outer := fakeFor{index: i, init: fakeIntLit{0}, cond: fakeBin{op: astiface.OpLess, lhs: fakeDRE{decl: i}, rhs: fakeIntLit{1}}, inc: preInc(i), body: fakeCompound{stmts: []astiface.Stmt{inner}}}

	tu := fakeTU{fns: []astiface.Function{fakeFunc{body: fakeCompound{stmts: []astiface.Stmt{outer}}}}}
	candidates := frontend.CollectCandidates(tu)
	require.Len(t, candidates, 1)
}

type fakeFunc struct {
	body astiface.CompoundStmt
}

func (f fakeFunc) Handle() astiface.NodeHandle { return astiface.InvalidNodeHandle }
func (f fakeFunc) Name() string                { return "f" }
func (f fakeFunc) Body() astiface.CompoundStmt { return f.body }

type fakeTU struct {
	fns []astiface.Function
}

func (tu fakeTU) FileName() string               { return "fake.c" }
func (tu fakeTU) Functions() []astiface.Function { return tu.fns }
