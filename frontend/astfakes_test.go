package frontend_test

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/astiface"
)

// Minimal astiface fakes shared by this package's tests;
// compiler/driver_test.go carries a fuller fake for end-to-end tests.

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

func (e fakeIntLit) Handle() astiface.NodeHandle   { return astiface.InvalidNodeHandle }
func (e fakeIntLit) Kind() astiface.ExprKind       { return astiface.ExprIntLiteral }
func (e fakeIntLit) Location() astiface.Location   { return astiface.Location{} }
func (e fakeIntLit) EvalConstInt() (*big.Int, bool) { return big.NewInt(e.v), true }
func (e fakeIntLit) Value() *big.Int               { return big.NewInt(e.v) }

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

func (e fakeUnary) Handle() astiface.NodeHandle   { return astiface.InvalidNodeHandle }
func (e fakeUnary) Kind() astiface.ExprKind       { return astiface.ExprUnaryOp }
func (e fakeUnary) Location() astiface.Location   { return astiface.Location{} }
func (e fakeUnary) EvalConstInt() (*big.Int, bool) { return nil, false }
func (e fakeUnary) Op() astiface.UnaryOp           { return e.op }
func (e fakeUnary) Operand() astiface.Expr         { return e.operand }

type fakeSubscript struct {
	base  astiface.Expr
	index astiface.Expr
}

func (e fakeSubscript) Handle() astiface.NodeHandle   { return astiface.InvalidNodeHandle }
func (e fakeSubscript) Kind() astiface.ExprKind       { return astiface.ExprArraySubscript }
func (e fakeSubscript) Location() astiface.Location   { return astiface.Location{} }
func (e fakeSubscript) EvalConstInt() (*big.Int, bool) { return nil, false }
func (e fakeSubscript) Base() astiface.Expr            { return e.base }
func (e fakeSubscript) Index() astiface.Expr           { return e.index }

type fakeCompound struct {
	stmts []astiface.Stmt
}

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
func (s fakeFor) Location() astiface.Location { return astiface.Location{} }
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

// preInc builds the canonical `++index` increment expression.
func preInc(index astiface.Decl) astiface.Expr {
	return fakeUnary{op: astiface.OpPreInc, operand: fakeDRE{decl: index}}
}

// sub builds a one-dimensional a[idx] subscript over array decl arr.
func sub(arr astiface.Decl, idx astiface.Expr) astiface.Expr {
	return fakeSubscript{base: fakeDRE{decl: arr}, index: idx}
}

type fakeCall struct {
	callee string
	args   []astiface.Expr
}

func (c fakeCall) Handle() astiface.NodeHandle    { return astiface.InvalidNodeHandle }
func (c fakeCall) Kind() astiface.ExprKind        { return astiface.ExprCall }
func (c fakeCall) Location() astiface.Location    { return astiface.Location{} }
func (c fakeCall) EvalConstInt() (*big.Int, bool) { return nil, false }
func (c fakeCall) Callee() string                 { return c.callee }
func (c fakeCall) Args() []astiface.Expr          { return c.args }
