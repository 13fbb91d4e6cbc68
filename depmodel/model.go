package depmodel

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/astiface"
	"github.com/dbajgoric/gap2cuda/bigrat"
)

// SubscriptModel is one array subscript's linear forms converted to
// matrix/vector form: row i column j is the coefficient of the i-th
// enclosing loop index in the j-th dimension's linear form, and column
// j of Const is that dimension's constant term.
type SubscriptModel struct {
	Array astiface.Decl
	Coeff bigrat.IntMatrix
	Const bigrat.IntMatrix
}

// AssignModel is one assignment statement's LHS and RHS subscripts,
// each converted via SubscriptModel.
type AssignModel struct {
	LHS SubscriptModel
	RHS []SubscriptModel
}

// Model is a nest's full dependence model: the lower/upper bound
// matrices (L, L0)/(U, U0), and one AssignModel per assignment.
type Model struct {
	Nest *affineir.Nest

	// L, L0 hold the nest's m loop headers' lower bounds: L is m x m,
	// row i column j the negated coefficient of the i-th loop index in
	// header j's lower-bound form; L0 is 1 x m, column j that header's
	// constant term.
	L, L0 bigrat.IntMatrix

	// U, U0 are the corresponding upper-bound matrices.
	U, U0 bigrat.IntMatrix

	Assignments []AssignModel
}

// Build converts nest into its dependence model.
func Build(nest *affineir.Nest) (*Model, error) {
	m := nest.Depth()

	l, l0, err := boundMatrix(nest, m, func(h *affineir.LoopHeader) *affineir.LinearForm { return h.Lower })
	if err != nil {
		return nil, err
	}
	u, u0, err := boundMatrix(nest, m, func(h *affineir.LoopHeader) *affineir.LinearForm { return h.Upper })
	if err != nil {
		return nil, err
	}

	assigns := make([]AssignModel, 0, len(nest.Assignments))
	for _, a := range nest.Assignments {
		lhs, err := subscriptMatrix(nest, m, a.LHS)
		if err != nil {
			return nil, err
		}
		rhs := make([]SubscriptModel, 0, len(a.RHS))
		for _, s := range a.RHS {
			sm, err := subscriptMatrix(nest, m, s)
			if err != nil {
				return nil, err
			}
			rhs = append(rhs, sm)
		}
		assigns = append(assigns, AssignModel{LHS: lhs, RHS: rhs})
	}

	return &Model{Nest: nest, L: l, L0: l0, U: u, U0: u0, Assignments: assigns}, nil
}

// boundMatrix builds one of the (L, L0)/(U, U0) pairs: select picks
// the lower or upper bound form out of each header. Coefficients are
// negated (the header's "index >= bound" / "index <= bound" inequality
// becomes the canonical "x . P <= c" shape Fourier-Motzkin expects once
// the planner assembles the full system). The matrix starts as the
// identity (a header's own index never appears in its own bound form,
// so that diagonal entry is never otherwise written) and only the
// off-diagonal entries coming from outer indices get overwritten.
func boundMatrix(nest *affineir.Nest, m int, selectForm func(*affineir.LoopHeader) *affineir.LinearForm) (bigrat.IntMatrix, bigrat.IntMatrix, error) {
	mat, err := bigrat.NewIntMatrix(m, m)
	if err != nil {
		return bigrat.IntMatrix{}, bigrat.IntMatrix{}, err
	}
	for d := 0; d < m; d++ {
		if err := mat.Set(d, d, big.NewInt(1)); err != nil {
			return bigrat.IntMatrix{}, bigrat.IntMatrix{}, err
		}
	}
	vec, err := bigrat.NewIntMatrix(1, m)
	if err != nil {
		return bigrat.IntMatrix{}, bigrat.IntMatrix{}, err
	}

	col := 0
	for h := nest.Outermost; h != nil; h = h.Child {
		form := selectForm(h)
		for row, idx := range nest.Indices {
			if c, ok := form.Coeff(idx.Handle()); ok {
				if err := mat.Set(row, col, new(big.Int).Neg(c)); err != nil {
					return bigrat.IntMatrix{}, bigrat.IntMatrix{}, err
				}
			}
		}
		if err := vec.Set(0, col, form.Constant()); err != nil {
			return bigrat.IntMatrix{}, bigrat.IntMatrix{}, err
		}
		col++
	}
	return mat, vec, nil
}

// subscriptMatrix converts one array subscript into SubscriptModel.
// Coefficients are carried as-is (no sign flip — only bound matrices
// are negated, per the original dependence-model builder).
func subscriptMatrix(nest *affineir.Nest, m int, s affineir.Subscript) (SubscriptModel, error) {
	dim := s.Dim()
	mat, err := bigrat.NewIntMatrix(m, dim)
	if err != nil {
		return SubscriptModel{}, err
	}
	vec, err := bigrat.NewIntMatrix(1, dim)
	if err != nil {
		return SubscriptModel{}, err
	}

	for col, form := range s.Forms {
		for row, idx := range nest.Indices {
			if c, ok := form.Coeff(idx.Handle()); ok {
				if err := mat.Set(row, col, c); err != nil {
					return SubscriptModel{}, err
				}
			}
		}
		if err := vec.Set(0, col, form.Constant()); err != nil {
			return SubscriptModel{}, err
		}
	}
	return SubscriptModel{Array: s.Array, Coeff: mat, Const: vec}, nil
}
