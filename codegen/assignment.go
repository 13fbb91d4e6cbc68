package codegen

import (
	"fmt"
	"strings"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/rewriter"
)

// renderSubscriptElement renders s's flattened device-buffer element
// expression: d_<array>[<flat index>].
func renderSubscriptElement(s affineir.Subscript, idx []rewriter.Index) string {
	forms := make([]string, s.Dim())
	for i, f := range s.Forms {
		forms[i] = renderLinearForm(f, idx)
	}
	flat := flatSubscriptExpr(forms, s.Array.StaticSizes())
	return fmt.Sprintf("%s[%s]", deviceName(s.Array), flat)
}

// renderAssignment renders one innermost-body statement. affineir
// flattens every RHS array reference into one list regardless of the
// operator tree the source used to combine them, so a single subscript
// is copied straight through and more than one is summed with `+` - the
// most that can be reconstructed without the operator structure
// dependence analysis deliberately discards.
func renderAssignment(a affineir.Assignment, idx []rewriter.Index) (string, error) {
	lhs := renderSubscriptElement(a.LHS, idx)
	if len(a.RHS) == 0 {
		return "", fmt.Errorf("codegen: assignment to %s has no right-hand side", lhs)
	}
	rhsTerms := make([]string, len(a.RHS))
	for i, s := range a.RHS {
		rhsTerms[i] = renderSubscriptElement(s, idx)
	}
	return fmt.Sprintf("%s = %s;", lhs, strings.Join(rhsTerms, " + ")), nil
}
