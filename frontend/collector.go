package frontend

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/astiface"
	"github.com/google/uuid"
)

// NestCollector walks a translation unit looking for candidate
// outermost for loops, then validates and lowers each candidate into
// an affineir.Nest. It replaces the original's hidden process-wide
// traversal counters with an explicit struct carried through the walk.
type NestCollector struct {
	tree *ScopeTree
}

// NewNestCollector returns a collector that records scopes into tree.
func NewNestCollector(tree *ScopeTree) *NestCollector {
	return &NestCollector{tree: tree}
}

// CollectCandidates returns every ForStmt in tu that is not itself
// nested inside another ForStmt: each is a candidate outermost header
// for Collect. A for loop nested inside another is reached by Collect
// while it walks the outer candidate's body, not returned here.
func CollectCandidates(tu astiface.TranslationUnit) []astiface.ForStmt {
	var out []astiface.ForStmt
	for _, fn := range tu.Functions() {
		collectCandidatesInStmt(fn.Body(), &out)
	}
	return out
}

func collectCandidatesInStmt(s astiface.Stmt, out *[]astiface.ForStmt) {
	if s == nil {
		return
	}
	switch v := s.(type) {
	case astiface.ForStmt:
		*out = append(*out, v)
	case astiface.CompoundStmt:
		for _, child := range v.Stmts() {
			collectCandidatesInStmt(child, out)
		}
	case astiface.WhileStmt:
		collectCandidatesInStmt(v.Body(), out)
	case astiface.DoStmt:
		collectCandidatesInStmt(v.Body(), out)
	case astiface.SwitchStmt:
		collectCandidatesInStmt(v.Body(), out)
	case astiface.IfElseStmt:
		collectCandidatesInStmt(v.Then(), out)
		collectCandidatesInStmt(v.Else(), out)
	}
}

// Collect validates that header begins a perfect loop nest and, if so,
// lowers it into an affineir.Nest rooted at the given scope. scope is
// the scope header's enclosing statement was declared in; Collect adds
// one child scope per nesting level.
func (c *NestCollector) Collect(scope uuid.UUID, header astiface.ForStmt) (*affineir.Nest, error) {
	var indices []astiface.Decl
	var headers []*affineir.LoopHeader
	cur := header
	curScope := scope

	for {
		lh, err := lowerHeader(cur, indices)
		if err != nil {
			return nil, err
		}
		headers = append(headers, lh)
		indices = append(indices, cur.IndexDecl())
		curScope = c.tree.AddChild(curScope, ScopeFor, cur.Handle()).Handle()

		var stmts []astiface.Stmt
		if compound, ok := cur.Body().(astiface.CompoundStmt); ok {
			stmts = compound.Stmts()
		} else {
			// A single bare statement body between two headers; treat it
			// as a one-statement compound.
			stmts = []astiface.Stmt{cur.Body()}
		}

		next, assigns, err := descend(stmts)
		if err != nil {
			return nil, err
		}
		if next != nil {
			cur = next
			continue
		}
		return finishNest(headers, indices, assigns)
	}
}

// descend inspects one loop body's statement list. A perfect nest body
// is either exactly one nested ForStmt (continue descending) or a list
// of nothing but AssignStmt (the innermost body). Anything else is not
// perfect.
func descend(stmts []astiface.Stmt) (astiface.ForStmt, []astiface.AssignStmt, error) {
	if len(stmts) == 1 {
		if inner, ok := stmts[0].(astiface.ForStmt); ok {
			return inner, nil, nil
		}
	}

	assigns := make([]astiface.AssignStmt, 0, len(stmts))
	for _, s := range stmts {
		a, ok := s.(astiface.AssignStmt)
		if !ok {
			return nil, nil, ErrNotPerfect
		}
		assigns = append(assigns, a)
	}
	return nil, assigns, nil
}

// lowerHeader validates and lowers a single ForStmt into a LoopHeader.
// enclosing is the index-variable set of every already-lowered
// enclosing header (empty for the outermost).
func lowerHeader(fs astiface.ForStmt, enclosing []astiface.Decl) (*affineir.LoopHeader, error) {
	if !isUnitStride(fs.Inc(), fs.IndexDecl()) {
		return nil, ErrUnsupportedLoopHeader
	}

	lower, upper, err := loopBounds(fs)
	if err != nil {
		return nil, err
	}

	if len(enclosing) == 0 {
		if !lower.IsConstant() || !upper.IsConstant() {
			return nil, ErrOuterBoundNotConstant
		}
	} else {
		enclosingSet := make(map[astiface.NodeHandle]struct{}, len(enclosing))
		for _, d := range enclosing {
			enclosingSet[d.Handle()] = struct{}{}
		}
		for _, v := range append(lower.Variables(), upper.Variables()...) {
			if _, ok := enclosingSet[v]; !ok {
				return nil, ErrInnerBoundNotEnclosingIndex
			}
		}
	}

	return &affineir.LoopHeader{Index: fs.IndexDecl(), Lower: lower, Upper: upper}, nil
}

// loopBounds lowers the for statement's init and condition expressions
// into (lower, upper) linear forms, normalizing the strict `<`
// condition to an inclusive upper bound by subtracting 1.
func loopBounds(fs astiface.ForStmt) (lower, upper *affineir.LinearForm, err error) {
	cond, ok := fs.Cond().(astiface.BinaryOpExpr)
	if !ok || cond.Op() != astiface.OpLess {
		return nil, nil, ErrUnsupportedLoopHeader
	}

	lower, err = affineir.FromExpr(fs.Init())
	if err != nil {
		return nil, nil, ErrUnsupportedLoopHeader
	}

	upper, err = affineir.FromExpr(cond.RHS())
	if err != nil {
		return nil, nil, ErrUnsupportedLoopHeader
	}
	upper.AddConstant(big.NewInt(-1))
	return lower, upper, nil
}

// isUnitStride reports whether inc is one of ++i, i++, i = i+1, i = 1+i
// for the given index declaration. The compound form i += 1 is not
// recognized: astiface has no compound-assignment operator.
func isUnitStride(inc astiface.Expr, index astiface.Decl) bool {
	switch v := inc.(type) {
	case astiface.UnaryOpExpr:
		if v.Op() != astiface.OpPreInc && v.Op() != astiface.OpPostInc {
			return false
		}
		dre, ok := v.Operand().(astiface.DeclRefExpr)
		return ok && dre.Decl().Handle() == index.Handle()

	case astiface.BinaryOpExpr:
		if v.Op() != astiface.OpAssign {
			return false
		}
		target, ok := v.LHS().(astiface.DeclRefExpr)
		if !ok || target.Decl().Handle() != index.Handle() {
			return false
		}
		rhs, ok := v.RHS().(astiface.BinaryOpExpr)
		if !ok || rhs.Op() != astiface.OpAdd {
			return false
		}
		return isIndexPlusOne(rhs.LHS(), rhs.RHS(), index) || isIndexPlusOne(rhs.RHS(), rhs.LHS(), index)
	}
	return false
}

func isIndexPlusOne(a, b astiface.Expr, index astiface.Decl) bool {
	dre, ok := a.(astiface.DeclRefExpr)
	if !ok || dre.Decl().Handle() != index.Handle() {
		return false
	}
	v, ok := b.EvalConstInt()
	return ok && v.IsInt64() && v.Int64() == 1
}

// finishNest builds the Nest once the innermost body has yielded its
// assignment list.
func finishNest(headers []*affineir.LoopHeader, indices []astiface.Decl, assigns []astiface.AssignStmt) (*affineir.Nest, error) {
	for i := len(headers) - 1; i > 0; i-- {
		headers[i-1].Child = headers[i]
	}

	nest := &affineir.Nest{Outermost: headers[0], Indices: indices}
	for _, a := range assigns {
		lhs, err := buildSubscript(a.Target())
		if err != nil {
			return nil, err
		}
		var rhs []affineir.Subscript
		collectSubscripts(a.Value(), &rhs)
		nest.AddAssignment(affineir.Assignment{LHS: lhs, RHS: rhs})
	}
	return nest, nil
}

// buildSubscript lowers an lvalue/rvalue array-element reference into a
// Subscript: it unwinds the chain of ArraySubscriptExpr nodes (a[i][j]
// parses as Subscript(Subscript(a, i), j)) down to the base DeclRefExpr,
// collecting one linear form per dimension in outermost-first order.
func buildSubscript(e astiface.Expr) (affineir.Subscript, error) {
	var reversed []*affineir.LinearForm
	cur := e
	for {
		sub, ok := cur.(astiface.ArraySubscriptExpr)
		if !ok {
			break
		}
		form, err := affineir.FromExpr(sub.Index())
		if err != nil {
			return affineir.Subscript{}, err
		}
		reversed = append(reversed, form)
		cur = sub.Base()
	}

	dre, ok := cur.(astiface.DeclRefExpr)
	if !ok || len(reversed) == 0 {
		return affineir.Subscript{}, ErrScalarLhs
	}

	forms := make([]*affineir.LinearForm, len(reversed))
	for i, f := range reversed {
		forms[len(reversed)-1-i] = f
	}

	arr := dre.Decl()
	if arr.Kind() == astiface.DeclArray && len(forms) != len(arr.StaticSizes()) {
		return affineir.Subscript{}, ErrSubscriptTypeMismatch
	}
	return affineir.Subscript{Array: arr, Forms: forms}, nil
}

// collectSubscripts flattens every ArraySubscriptExpr reachable from e,
// regardless of how deeply the surrounding expression nests its
// operators, appending each to out.
func collectSubscripts(e astiface.Expr, out *[]affineir.Subscript) {
	if e == nil {
		return
	}
	switch v := e.(type) {
	case astiface.ArraySubscriptExpr:
		if sub, err := buildSubscript(v); err == nil {
			*out = append(*out, sub)
		}
	case astiface.BinaryOpExpr:
		collectSubscripts(v.LHS(), out)
		collectSubscripts(v.RHS(), out)
	case astiface.UnaryOpExpr:
		collectSubscripts(v.Operand(), out)
	case astiface.CastExpr:
		collectSubscripts(v.Operand(), out)
	case astiface.CallExpr:
		for _, arg := range v.Args() {
			collectSubscripts(arg, out)
		}
	}
}
