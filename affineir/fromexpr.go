package affineir

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/astiface"
)

// FromExpr lowers a source expression to a LinearForm. It accepts
// exactly: a compile-time-evaluable constant, a DeclRefExpr of an
// unknown variable (coefficient +/-1), and +/-/* combinations of the
// above where every multiplication has at least one compile-time-
// evaluable operand and the other is a DeclRefExpr. Anything else
// returns ErrNotAffine.
func FromExpr(e astiface.Expr) (*LinearForm, error) {
	f := NewLinearForm()
	if err := deserialize(f, e, astiface.OpAdd); err != nil {
		return nil, err
	}
	return f, nil
}

// deserialize walks e under the sign implied by parentOp (OpAdd keeps
// e's natural sign, OpSub negates it) accumulating into f. It mirrors
// the recursive descent of a Deserialize routine that walks the same
// grammar over a Clang expression tree.
func deserialize(f *LinearForm, e astiface.Expr, parentOp astiface.BinaryOp) error {
	neg := parentOp == astiface.OpSub

	if v, ok := e.EvalConstInt(); ok {
		f.AddConstant(signed(v, neg))
		return nil
	}

	if dre, ok := e.(astiface.DeclRefExpr); ok {
		f.AddCoeff(dre.Decl().Handle(), signed(big.NewInt(1), neg))
		return nil
	}

	bin, ok := e.(astiface.BinaryOpExpr)
	if !ok {
		return ErrNotAffine
	}

	switch bin.Op() {
	case astiface.OpMul:
		lhs, rhs := bin.LHS(), bin.RHS()
		if v, ok := lhs.EvalConstInt(); ok {
			dre, ok := rhs.(astiface.DeclRefExpr)
			if !ok {
				return ErrNotAffine
			}
			f.AddCoeff(dre.Decl().Handle(), signed(v, neg))
			return nil
		}
		if v, ok := rhs.EvalConstInt(); ok {
			dre, ok := lhs.(astiface.DeclRefExpr)
			if !ok {
				return ErrNotAffine
			}
			f.AddCoeff(dre.Decl().Handle(), signed(v, neg))
			return nil
		}
		return ErrNotAffine

	case astiface.OpAdd, astiface.OpSub:
		lhsOp := astiface.OpAdd
		if neg {
			lhsOp = astiface.OpSub
		}
		if err := deserialize(f, bin.LHS(), lhsOp); err != nil {
			return err
		}
		rhsOp := bin.Op()
		if neg {
			rhsOp = flip(rhsOp)
		}
		return deserialize(f, bin.RHS(), rhsOp)

	default:
		return ErrNotAffine
	}
}

func signed(v *big.Int, neg bool) *big.Int {
	if !neg {
		return new(big.Int).Set(v)
	}
	return new(big.Int).Neg(v)
}

func flip(op astiface.BinaryOp) astiface.BinaryOp {
	if op == astiface.OpAdd {
		return astiface.OpSub
	}
	return astiface.OpAdd
}
