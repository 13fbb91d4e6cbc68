package rewriter

import (
	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/depmodel"
	"github.com/dbajgoric/gap2cuda/fm"
	"github.com/dbajgoric/gap2cuda/transform"
)

// Rewritten is the transformed nest: a fresh index variable per level
// (outermost first), its bound description in the same order, and every
// assignment's subscripts rewritten over the new indices. Nest is kept
// around purely so codegen can read the original array declarations and
// the nest depth; every index-variable reference in Assignments
// has already moved off of Nest.Indices.
type Rewritten struct {
	Nest        *affineir.Nest
	Indices     []Index
	Bounds      []fm.Bound
	Assignments []affineir.Assignment
}

// Rewrite applies t to nest: it substitutes every subscript's linear
// forms from the original index variables to a freshly allocated set
// via I = K . U^-1, and reconstructs the new loop limits by running
// Fourier-Motzkin over the bound matrices transformed the same way
// (transform.NewBounds). Index substitution and bound reconstruction
// happen algebraically over a detached Rewritten value rather than by
// mutating any original AST in place.
func Rewrite(nest *affineir.Nest, t *transform.Transform) (*Rewritten, error) {
	depth := nest.Depth()
	if t.U.Rows() != depth {
		return nil, ErrDepthMismatch
	}

	model, err := depmodel.Build(nest)
	if err != nil {
		return nil, err
	}

	bounds, err := transform.NewBounds(t.U, model.L, model.L0, model.U, model.U0)
	if err != nil {
		return nil, err
	}

	uInv, err := t.U.Inverse()
	if err != nil {
		return nil, err
	}

	indices := freshIndices(depth)

	assigns := make([]affineir.Assignment, 0, len(nest.Assignments))
	for _, a := range nest.Assignments {
		lhs, err := rewriteSubscript(a.LHS, nest.Indices, indices, uInv)
		if err != nil {
			return nil, err
		}
		rhs := make([]affineir.Subscript, 0, len(a.RHS))
		for _, s := range a.RHS {
			rs, err := rewriteSubscript(s, nest.Indices, indices, uInv)
			if err != nil {
				return nil, err
			}
			rhs = append(rhs, rs)
		}
		assigns = append(assigns, affineir.Assignment{LHS: lhs, RHS: rhs})
	}

	return &Rewritten{Nest: nest, Indices: indices, Bounds: bounds, Assignments: assigns}, nil
}
