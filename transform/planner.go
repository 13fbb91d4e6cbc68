package transform

import (
	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/bigrat"
)

// Kind identifies which parallelization strategy a Transform represents.
type Kind int

const (
	// None means the nest carries no loop-carried dependences at all: U
	// is the identity and every transformed loop is parallel.
	None Kind = iota
	// InnerPar means only the outermost transformed loop may carry a
	// dependence (U's first column takes on all of the distance
	// vectors' weight); the remaining K inner loops are parallel.
	InnerPar
	// OuterPar means the outermost K transformed loops are free of
	// loop-carried dependences.
	OuterPar
)

// Transform is the result of Plan: a unimodular matrix U, the kind of
// parallelism it exposes, and the count K of dependence-free loops it
// produces (see Kind's doc for which end of the nest those loops occupy).
type Transform struct {
	Kind Kind
	U    bigrat.IntMatrix
	K    int
}

// Plan computes the unimodular transformation matrix for a nest of the
// given depth, given its confirmed dependence distance vectors dist. It
// tries the outer-par construction first and falls back to inner-par,
// preferring outer-par whenever it clears the minimum depth configured by
// WithMinOuterParDepth (2 by default). Plan returns ErrNotParallelizable
// when neither construction yields a usable k, which only happens for a
// single-level nest carrying a dependence.
func Plan(dist []affineir.Vector, depth int, opts ...Option) (*Transform, error) {
	if len(dist) == 0 {
		return nil, ErrEmptyDistances
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if depth <= 1 {
		u, firstNonzero := distanceMultiplier(dist, depth)
		if firstNonzero == depth {
			return &Transform{Kind: None, U: bigrat.Identity(depth), K: depth}, nil
		}
		_ = u
		return nil, ErrNotParallelizable
	}

	outerU, outerK, err := findOuterLoopTransformMatrix(dist, depth)
	if err != nil {
		return nil, err
	}
	if outerK == depth {
		return &Transform{Kind: None, U: outerU, K: depth}, nil
	}
	if outerK >= cfg.minOuterPar {
		return &Transform{Kind: OuterPar, U: outerU, K: outerK}, nil
	}

	innerU, innerK, err := findInnerLoopTransformMatrix(dist, depth)
	if err != nil {
		return nil, err
	}
	if innerK == depth {
		return &Transform{Kind: None, U: innerU, K: depth}, nil
	}
	return &Transform{Kind: InnerPar, U: innerU, K: innerK}, nil
}

// findInnerLoopTransformMatrix builds the inner-par transform matrix: the
// (depth-1)x(depth-1) identity with a zero row inserted at the first
// nonzero hyperplane-vector position and the hyperplane vector u
// prepended as column 0. Returns k = depth when there are no loop-carried
// dependences at all (u irrelevant, U = identity), else k = depth - 1.
func findInnerLoopTransformMatrix(dist []affineir.Vector, depth int) (bigrat.IntMatrix, int, error) {
	u, firstNonzero := distanceMultiplier(dist, depth)
	if firstNonzero == depth {
		return bigrat.Identity(depth), depth, nil
	}

	inner := bigrat.Identity(depth - 1)
	withZeroRow := insertZeroRow(inner, firstNonzero)
	full := prependColumn(withZeroRow, u)
	return full, depth - 1, nil
}

// findOuterLoopTransformMatrix builds the outer-par transform matrix: row-
// reduce the transposed distance-vector matrix to find how many
// dimensions are linearly independent (n = depth - rank), assemble a
// matrix from the non-pivot rows of that reduction plus the hyperplane
// vector, and row-reduce that to recover a unimodular U with A = U*T
// (via Hermite plus its matrix inverse - see bigrat.Inverse's doc for why
// this stands in for the original's direct "reduce to echelon with
// inverse accumulation" step). Returns k = 0 when the distance vectors
// already span every dimension (no outer loop can be parallelized) and
// k = depth when there are no loop-carried dependences at all.
func findOuterLoopTransformMatrix(dist []affineir.Vector, depth int) (bigrat.IntMatrix, int, error) {
	dT, err := distanceTranspose(dist, depth)
	if err != nil {
		return bigrat.IntMatrix{}, 0, err
	}

	v, _, rankD, err := bigrat.Hermite(dT)
	if err != nil {
		return bigrat.IntMatrix{}, 0, err
	}
	if rankD == depth {
		return bigrat.Identity(depth), 0, nil
	}
	n := depth - rankD

	u, firstNonzero := distanceMultiplier(dist, depth)
	if firstNonzero == depth {
		return bigrat.Identity(depth), depth, nil
	}

	a, err := bigrat.NewIntMatrix(depth, n+1)
	if err != nil {
		return bigrat.IntMatrix{}, 0, err
	}
	for i := 0; i < n; i++ {
		col := v.Row(rankD + i).Transpose()
		setCol(a, col, i)
	}
	setCol(a, columnVector(u), n)

	uStd, t, _, err := bigrat.Hermite(a)
	if err != nil {
		return bigrat.IntMatrix{}, 0, err
	}
	uFinal, err := uStd.Inverse()
	if err != nil {
		return bigrat.IntMatrix{}, 0, err
	}

	pivot, err := t.At(n, n)
	if err != nil {
		return bigrat.IntMatrix{}, 0, err
	}
	if pivot.Sign() < 0 {
		negateColumn(uFinal, n)
	}

	return uFinal, n, nil
}

// distanceTranspose builds the depth x len(dist) matrix whose i-th column
// is the i-th distance vector.
func distanceTranspose(dist []affineir.Vector, depth int) (bigrat.IntMatrix, error) {
	out, err := bigrat.NewIntMatrix(depth, len(dist))
	if err != nil {
		return bigrat.IntMatrix{}, err
	}
	for col, d := range dist {
		setCol(out, columnVector(d), col)
	}
	return out, nil
}
