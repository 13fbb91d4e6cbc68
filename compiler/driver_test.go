package compiler_test

import (
	"math/big"
	"testing"

	"github.com/dbajgoric/gap2cuda/astiface"
	"github.com/dbajgoric/gap2cuda/compiler"
	"github.com/stretchr/testify/require"
)

// Minimal astiface fakes, duplicated per the repo's established
// per-package test convention (see frontend/astfakes_test.go for the
// fuller original set).

type fakeDecl struct {
	handle     astiface.NodeHandle
	name       string
	kind       astiface.DeclKind
	elemType   string
	staticDims []int
}

func (d fakeDecl) Handle() astiface.NodeHandle { return d.handle }
func (d fakeDecl) Kind() astiface.DeclKind     { return d.kind }
func (d fakeDecl) Name() string                { return d.name }
func (d fakeDecl) Location() astiface.Location { return astiface.Location{} }
func (d fakeDecl) ElemType() string            { return d.elemType }
func (d fakeDecl) StaticSizes() []int          { return d.staticDims }
func (d fakeDecl) Initializer() astiface.Expr  { return nil }

type fakeIntLit struct{ v int64 }

func (e fakeIntLit) Handle() astiface.NodeHandle    { return astiface.InvalidNodeHandle }
func (e fakeIntLit) Kind() astiface.ExprKind        { return astiface.ExprIntLiteral }
func (e fakeIntLit) Location() astiface.Location    { return astiface.Location{} }
func (e fakeIntLit) EvalConstInt() (*big.Int, bool) { return big.NewInt(e.v), true }
func (e fakeIntLit) Value() *big.Int                { return big.NewInt(e.v) }

type fakeDRE struct{ decl astiface.Decl }

func (e fakeDRE) Handle() astiface.NodeHandle    { return astiface.InvalidNodeHandle }
func (e fakeDRE) Kind() astiface.ExprKind        { return astiface.ExprDeclRef }
func (e fakeDRE) Location() astiface.Location    { return astiface.Location{} }
func (e fakeDRE) EvalConstInt() (*big.Int, bool) { return nil, false }
func (e fakeDRE) Decl() astiface.Decl            { return e.decl }

type fakeBin struct {
	op  astiface.BinaryOp
	lhs astiface.Expr
	rhs astiface.Expr
}

func (e fakeBin) Handle() astiface.NodeHandle { return astiface.InvalidNodeHandle }
func (e fakeBin) Kind() astiface.ExprKind     { return astiface.ExprBinaryOp }
func (e fakeBin) Location() astiface.Location { return astiface.Location{} }
func (e fakeBin) Op() astiface.BinaryOp       { return e.op }
func (e fakeBin) LHS() astiface.Expr          { return e.lhs }
func (e fakeBin) RHS() astiface.Expr          { return e.rhs }
func (e fakeBin) EvalConstInt() (*big.Int, bool) {
	lv, lok := e.lhs.EvalConstInt()
	rv, rok := e.rhs.EvalConstInt()
	if !lok || !rok {
		return nil, false
	}
	out := new(big.Int)
	switch e.op {
	case astiface.OpAdd:
		out.Add(lv, rv)
	case astiface.OpSub:
		out.Sub(lv, rv)
	case astiface.OpMul:
		out.Mul(lv, rv)
	default:
		return nil, false
	}
	return out, true
}

type fakeUnary struct {
	op      astiface.UnaryOp
	operand astiface.Expr
}

func (e fakeUnary) Handle() astiface.NodeHandle    { return astiface.InvalidNodeHandle }
func (e fakeUnary) Kind() astiface.ExprKind        { return astiface.ExprUnaryOp }
func (e fakeUnary) Location() astiface.Location    { return astiface.Location{} }
func (e fakeUnary) EvalConstInt() (*big.Int, bool) { return nil, false }
func (e fakeUnary) Op() astiface.UnaryOp           { return e.op }
func (e fakeUnary) Operand() astiface.Expr         { return e.operand }

type fakeSubscript struct {
	base  astiface.Expr
	index astiface.Expr
}

func (e fakeSubscript) Handle() astiface.NodeHandle    { return astiface.InvalidNodeHandle }
func (e fakeSubscript) Kind() astiface.ExprKind        { return astiface.ExprArraySubscript }
func (e fakeSubscript) Location() astiface.Location    { return astiface.Location{} }
func (e fakeSubscript) EvalConstInt() (*big.Int, bool) { return nil, false }
func (e fakeSubscript) Base() astiface.Expr            { return e.base }
func (e fakeSubscript) Index() astiface.Expr           { return e.index }

type fakeCompound struct{ stmts []astiface.Stmt }

func (s fakeCompound) Handle() astiface.NodeHandle { return astiface.InvalidNodeHandle }
func (s fakeCompound) Kind() astiface.StmtKind     { return astiface.StmtCompound }
func (s fakeCompound) Location() astiface.Location { return astiface.Location{} }
func (s fakeCompound) Stmts() []astiface.Stmt      { return s.stmts }

type fakeFor struct {
	index astiface.Decl
	init  astiface.Expr
	cond  astiface.Expr
	inc   astiface.Expr
	body  astiface.Stmt
}

func (s fakeFor) Handle() astiface.NodeHandle { return astiface.InvalidNodeHandle }
func (s fakeFor) Kind() astiface.StmtKind     { return astiface.StmtFor }
func (s fakeFor) Location() astiface.Location { return astiface.Location{File: "flow.c", Line: 1} }
func (s fakeFor) IndexDecl() astiface.Decl    { return s.index }
func (s fakeFor) Init() astiface.Expr         { return s.init }
func (s fakeFor) Cond() astiface.Expr         { return s.cond }
func (s fakeFor) Inc() astiface.Expr          { return s.inc }
func (s fakeFor) Body() astiface.Stmt         { return s.body }

type fakeAssign struct {
	target astiface.Expr
	value  astiface.Expr
}

func (s fakeAssign) Handle() astiface.NodeHandle { return astiface.InvalidNodeHandle }
func (s fakeAssign) Kind() astiface.StmtKind     { return astiface.StmtAssign }
func (s fakeAssign) Location() astiface.Location { return astiface.Location{} }
func (s fakeAssign) Target() astiface.Expr       { return s.target }
func (s fakeAssign) Value() astiface.Expr        { return s.value }

type fakeFunc struct {
	name string
	body astiface.CompoundStmt
}

func (f fakeFunc) Handle() astiface.NodeHandle { return astiface.InvalidNodeHandle }
func (f fakeFunc) Name() string                { return f.name }
func (f fakeFunc) Body() astiface.CompoundStmt { return f.body }

type fakeTU struct {
	file string
	fns  []astiface.Function
}

func (tu fakeTU) FileName() string              { return tu.file }
func (tu fakeTU) Functions() []astiface.Function { return tu.fns }

func preInc(index astiface.Decl) astiface.Expr {
	return fakeUnary{op: astiface.OpPreInc, operand: fakeDRE{decl: index}}
}

func sub2(arr astiface.Decl, idx0, idx1 astiface.Expr) astiface.Expr {
	return fakeSubscript{base: fakeSubscript{base: fakeDRE{decl: arr}, index: idx0}, index: idx1}
}

// buildFlowFunction assembles one function body:
//
//	for (i = 0; i < 10; i++)
//	  for (j = 0; j < 10; j++)
//	    a[i][j] = a[i-1][j] + a[i][j-1];
//
// whose two flow dependences carry distance set {(1,0), (0,1)}, the same
// recurrence transform/rewriter/codegen's own tests hand-verify.
func buildFlowFunction(name string) astiface.Function {
	i := fakeDecl{handle: 1, name: "i", kind: astiface.DeclInt, elemType: "int"}
	j := fakeDecl{handle: 2, name: "j", kind: astiface.DeclInt, elemType: "int"}
	a := fakeDecl{handle: 3, name: "a", kind: astiface.DeclArray, elemType: "int", staticDims: []int{10, 10}}

	iMinus1 := fakeBin{op: astiface.OpSub, lhs: fakeDRE{decl: i}, rhs: fakeIntLit{1}}
	jMinus1 := fakeBin{op: astiface.OpSub, lhs: fakeDRE{decl: j}, rhs: fakeIntLit{1}}

	assign := fakeAssign{
		target: sub2(a, fakeDRE{decl: i}, fakeDRE{decl: j}),
		value: fakeBin{
			op:  astiface.OpAdd,
			lhs: sub2(a, iMinus1, fakeDRE{decl: j}),
			rhs: sub2(a, fakeDRE{decl: i}, jMinus1),
		},
	}

	inner := fakeFor{
		index: j,
		init:  fakeIntLit{0},
		cond:  fakeBin{op: astiface.OpLess, lhs: fakeDRE{decl: j}, rhs: fakeIntLit{10}},
		inc:   preInc(j),
		body:  fakeCompound{stmts: []astiface.Stmt{assign}},
	}
	outer := fakeFor{
		index: i,
		init:  fakeIntLit{0},
		cond:  fakeBin{op: astiface.OpLess, lhs: fakeDRE{decl: i}, rhs: fakeIntLit{10}},
		inc:   preInc(i),
		body:  fakeCompound{stmts: []astiface.Stmt{inner}},
	}

	return fakeFunc{name: name, body: fakeCompound{stmts: []astiface.Stmt{outer}}}
}

func TestRun_TransformsFlowRecurrence(t *testing.T) {
	t.Parallel()
	tu := fakeTU{file: "dir/flow.c", fns: []astiface.Function{buildFlowFunction("flow")}}

	res, err := compiler.Run(tu, compiler.WithSequential())
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)
	require.True(t, res.Transformed)

	require.Equal(t, "dir/__flow_c2cuda.cu", res.HostFileName)
	require.Equal(t, "dir/__flow_kernel_decl_c2cuda.cuh", res.KernelDeclFileName)
	require.Equal(t, "dir/__flow_kernel_def_c2cuda.cu", res.KernelDefFileName)

	require.Contains(t, res.KernelDeclFile, "#ifndef FLOW_KERNEL_DECL_C2CUDA_H")
	require.Contains(t, res.KernelDeclFile, "__global__ void __flow_c2cuda_kernel(int* d_a, int k0);")
	require.Contains(t, res.KernelDefFile, "__global__ void __flow_c2cuda_kernel(int* d_a, int k0)")
	require.Contains(t, res.HostFile, "__flow_c2cuda_kernel<<<__grid_dim, __block_dim>>>(d_a, k0);")
}

func TestRun_NoCandidatesLeavesResultEmpty(t *testing.T) {
	t.Parallel()
	tu := fakeTU{file: "empty.c", fns: []astiface.Function{fakeFunc{name: "noop", body: fakeCompound{}}}}

	res, err := compiler.Run(tu)
	require.NoError(t, err)
	require.False(t, res.Transformed)
	require.Empty(t, res.Diagnostics)
	require.Empty(t, res.HostFile)
}

func TestRun_ParallelAndSequentialAgree(t *testing.T) {
	t.Parallel()
	tu := fakeTU{file: "dir/flow.c", fns: []astiface.Function{buildFlowFunction("flow")}}

	seq, err := compiler.Run(tu, compiler.WithSequential())
	require.NoError(t, err)
	par, err := compiler.Run(tu)
	require.NoError(t, err)

	require.Equal(t, seq.HostFile, par.HostFile)
	require.Equal(t, seq.KernelDefFile, par.KernelDefFile)
}
