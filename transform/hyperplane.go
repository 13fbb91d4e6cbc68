package transform

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/bigrat"
)

// distanceMultiplier finds a column vector u of length depth such that
// d.u >= 1 for every nonzero distance vector d in dist (the hyperplane
// method, Algorithm 3.1 of Loop Transformations for Restructuring
// Compilers / Loop Parallelization). Vectors are partitioned by level (the
// 1-indexed position of their first nonzero component); u's components
// are solved outermost-last, each against the partition sharing its
// level, folding in the components already fixed at deeper levels.
//
// firstNonzero reports the deepest level (largest index) at which a
// partition was nonempty, i.e. the first nonzero component of u counting
// from the back, or depth when every partition was empty (no
// loop-carried dependences at all, in which case u is meaningless and
// callers must special-case this return value exactly as Plan does).
func distanceMultiplier(dist []affineir.Vector, depth int) (u []*big.Int, firstNonzero int) {
	partitions := make([][]affineir.Vector, depth)
	for _, d := range dist {
		lvl := d.Level()
		if lvl > depth {
			continue // zero distance vector carries no constraint
		}
		partitions[lvl-1] = append(partitions[lvl-1], d)
	}

	u = make([]*big.Int, depth)
	firstNonzero = depth
	for i := depth - 1; i >= 0; i-- {
		part := partitions[i]
		if len(part) == 0 {
			u[i] = big.NewInt(0)
			continue
		}
		if firstNonzero == depth {
			firstNonzero = i
		}

		var maxBound *big.Int
		for _, d := range part {
			rest := big.NewInt(0)
			for s := i + 1; s < depth; s++ {
				rest.Add(rest, new(big.Int).Mul(d[s], u[s]))
			}
			num := bigrat.NewRatBigInt(new(big.Int).Sub(big.NewInt(1), rest))
			bound := num.Div(bigrat.NewRatBigInt(d[i])).Ceil()
			if maxBound == nil || bound.Cmp(maxBound) > 0 {
				maxBound = bound
			}
		}
		if maxBound.Cmp(big.NewInt(1)) <= 0 {
			u[i] = big.NewInt(1)
		} else {
			u[i] = maxBound
		}
	}

	return u, firstNonzero
}
