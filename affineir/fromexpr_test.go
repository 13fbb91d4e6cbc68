package affineir_test

import (
	"math/big"
	"testing"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/astiface"
	"github.com/stretchr/testify/require"
)

// The fakes below are the minimal astiface.Expr/Decl implementations
// needed to exercise FromExpr without a real parser; compiler/driver_test.go
// carries a fuller fake for end-to-end tests.

type fakeDecl struct {
	handle astiface.NodeHandle
	name   string
}

func (d fakeDecl) Handle() astiface.NodeHandle  { return d.handle }
func (d fakeDecl) Kind() astiface.DeclKind      { return astiface.DeclInt }
func (d fakeDecl) Name() string                 { return d.name }
func (d fakeDecl) Location() astiface.Location  { return astiface.Location{} }
func (d fakeDecl) ElemType() string             { return "int" }
func (d fakeDecl) StaticSizes() []int           { return nil }
func (d fakeDecl) Initializer() astiface.Expr   { return nil }

type fakeIntLit struct{ v int64 }

func (e fakeIntLit) Handle() astiface.NodeHandle           { return astiface.InvalidNodeHandle }
func (e fakeIntLit) Kind() astiface.ExprKind               { return astiface.ExprIntLiteral }
func (e fakeIntLit) Location() astiface.Location            { return astiface.Location{} }
func (e fakeIntLit) EvalConstInt() (*big.Int, bool)         { return big.NewInt(e.v), true }
func (e fakeIntLit) Value() *big.Int                        { return big.NewInt(e.v) }

type fakeDRE struct{ decl fakeDecl }

func (e fakeDRE) Handle() astiface.NodeHandle   { return astiface.InvalidNodeHandle }
func (e fakeDRE) Kind() astiface.ExprKind       { return astiface.ExprDeclRef }
func (e fakeDRE) Location() astiface.Location   { return astiface.Location{} }
func (e fakeDRE) EvalConstInt() (*big.Int, bool) { return nil, false }
func (e fakeDRE) Decl() astiface.Decl           { return e.decl }

type fakeBin struct {
	op   astiface.BinaryOp
	lhs  astiface.Expr
	rhs  astiface.Expr
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

func TestFromExpr_ConstantPlusScaledVar(t *testing.T) {
	t.Parallel()
	// 3*i - 2
	i := fakeDecl{handle: 1, name: "i"}
	expr := fakeBin{
		op:  astiface.OpSub,
		lhs: fakeBin{op: astiface.OpMul, lhs: fakeIntLit{3}, rhs: fakeDRE{i}},
		rhs: fakeIntLit{2},
	}

	f, err := affineir.FromExpr(expr)
	require.NoError(t, err)

	c, ok := f.Coeff(i.Handle())
	require.True(t, ok)
	require.Equal(t, "3", c.String())
	require.Equal(t, "-2", f.Constant().String())
}

func TestFromExpr_SubtractedVariable(t *testing.T) {
	t.Parallel()
	// 10 - j
	j := fakeDecl{handle: 2, name: "j"}
	expr := fakeBin{op: astiface.OpSub, lhs: fakeIntLit{10}, rhs: fakeDRE{j}}

	f, err := affineir.FromExpr(expr)
	require.NoError(t, err)

	c, ok := f.Coeff(j.Handle())
	require.True(t, ok)
	require.Equal(t, "-1", c.String())
	require.Equal(t, "10", f.Constant().String())
}

func TestFromExpr_RejectsVarTimesVar(t *testing.T) {
	t.Parallel()
	i := fakeDecl{handle: 1, name: "i"}
	j := fakeDecl{handle: 2, name: "j"}
	expr := fakeBin{op: astiface.OpMul, lhs: fakeDRE{i}, rhs: fakeDRE{j}}

	_, err := affineir.FromExpr(expr)
	require.ErrorIs(t, err, affineir.ErrNotAffine)
}

func TestFromExpr_RejectsDivision(t *testing.T) {
	t.Parallel()
	expr := fakeBin{op: astiface.BinaryOp(99), lhs: fakeIntLit{4}, rhs: fakeIntLit{2}}
	_, err := affineir.FromExpr(expr)
	require.ErrorIs(t, err, affineir.ErrNotAffine)
}
