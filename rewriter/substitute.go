package rewriter

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/astiface"
	"github.com/dbajgoric/gap2cuda/bigrat"
)

// substitute rewrites old, a linear form over oldIndices, as a linear
// form over newIndices given the original index vector relates to the
// new one by I = K . U^-1 (uInv): substituting that relation into
// old's terms and collecting by new variable yields, for each new index
// a, the coefficient sum_r old[r] * uInv[a][r].
func substitute(old *affineir.LinearForm, oldIndices []astiface.Decl, newIndices []Index, uInv bigrat.IntMatrix) (*affineir.LinearForm, error) {
	depth := len(oldIndices)
	out := affineir.NewLinearForm()
	out.AddConstant(old.Constant())

	for a := 0; a < depth; a++ {
		coeff := big.NewInt(0)
		for r := 0; r < depth; r++ {
			ar, ok := old.Coeff(oldIndices[r].Handle())
			if !ok {
				continue
			}
			uar, err := uInv.At(a, r)
			if err != nil {
				return nil, err
			}
			coeff.Add(coeff, new(big.Int).Mul(ar, uar))
		}
		out.AddCoeff(newIndices[a].Handle, coeff)
	}
	return out, nil
}

// rewriteSubscript rebuilds s's per-dimension linear forms over
// newIndices, leaving the array declaration itself untouched.
func rewriteSubscript(s affineir.Subscript, oldIndices []astiface.Decl, newIndices []Index, uInv bigrat.IntMatrix) (affineir.Subscript, error) {
	forms := make([]*affineir.LinearForm, len(s.Forms))
	for i, f := range s.Forms {
		nf, err := substitute(f, oldIndices, newIndices, uInv)
		if err != nil {
			return affineir.Subscript{}, err
		}
		forms[i] = nf
	}
	return affineir.Subscript{Array: s.Array, Forms: forms}, nil
}
