package fm

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/bigrat"
)

// ChunkIterator is a pull iterator over the integer points of a feasible
// bound set, produced by EnumerateChunks. It walks the bound set
// depth-first, one coordinate at a time, materializing only as many
// solutions as the caller asks for via Next, so the full solution set
// never has to be held in memory at once.
type ChunkIterator struct {
	bounds    []Bound
	m         int
	chunkSize int

	point     []*big.Int
	hi        []*big.Int
	exhausted bool
	err       error
}

// EnumerateChunks returns a ChunkIterator over the integer points
// satisfying bounds, the output of a feasible Eliminate call. Each call to
// Next yields up to chunkSize solutions, in depth-first order over
// variables 0..len(bounds)-1.
func EnumerateChunks(bounds []Bound, chunkSize int) *ChunkIterator {
	return &ChunkIterator{bounds: bounds, m: len(bounds), chunkSize: chunkSize}
}

// Next returns the next chunk of solutions, or (nil, false) once the
// solution set is exhausted or iteration had to stop early because some
// bound was unbounded. Callers must call Err after a false result to tell
// the two apart.
func (it *ChunkIterator) Next() ([]bigrat.IntMatrix, bool) {
	if it.chunkSize <= 0 || it.exhausted {
		return nil, false
	}
	chunk := make([]bigrat.IntMatrix, 0, it.chunkSize)
	for len(chunk) < it.chunkSize {
		sol, ok := it.advance()
		if !ok {
			break
		}
		chunk = append(chunk, sol)
	}
	if len(chunk) == 0 {
		return nil, false
	}
	return chunk, true
}

// Err returns the error that stopped iteration (ErrInfiniteSolutionSet),
// or nil if the solution set was simply exhausted.
func (it *ChunkIterator) Err() error { return it.err }

// advance produces exactly one more solution by depth-first search over
// the remaining search tree, or reports exhaustion/failure.
func (it *ChunkIterator) advance() (bigrat.IntMatrix, bool) {
	for {
		if it.exhausted {
			return bigrat.IntMatrix{}, false
		}
		if len(it.point) == it.m {
			sol := it.solution()
			if !it.retreat() {
				it.exhausted = true
			}
			return sol, true
		}

		depth := len(it.point)
		b := it.bounds[depth]
		if b.Lower.Unbounded || b.Upper.Unbounded {
			it.err = ErrInfiniteSolutionSet
			it.exhausted = true
			return bigrat.IntMatrix{}, false
		}

		padded := it.paddedPoint(depth + 1)
		lo := rowMax(b.Lower.Evaluate(padded)).Ceil()
		hi := rowMin(b.Upper.Evaluate(padded)).Floor()
		if lo.Cmp(hi) > 0 {
			if !it.retreat() {
				it.exhausted = true
				return bigrat.IntMatrix{}, false
			}
			continue
		}
		it.point = append(it.point, lo)
		it.hi = append(it.hi, hi)
	}
}

// retreat advances the search to the next untried branch: it increments
// the last committed coordinate and, if that exceeds its upper bound,
// pops it and retries the coordinate below. Returns false once the whole
// tree is exhausted.
func (it *ChunkIterator) retreat() bool {
	for len(it.point) > 0 {
		last := len(it.point) - 1
		next := new(big.Int).Add(it.point[last], big.NewInt(1))
		if next.Cmp(it.hi[last]) <= 0 {
			it.point[last] = next
			return true
		}
		it.point = it.point[:last]
		it.hi = it.hi[:last]
	}
	return false
}

// paddedPoint returns the committed coordinates as a 1 x length row, with
// a trailing zero for the not-yet-assigned slot a BoundSide's Matrix
// expects.
func (it *ChunkIterator) paddedPoint(length int) bigrat.RatMatrix {
	row, _ := bigrat.NewRatMatrix(1, length)
	for i, v := range it.point {
		_ = row.Set(0, i, bigrat.NewRatBigInt(v))
	}
	return row
}

func (it *ChunkIterator) solution() bigrat.IntMatrix {
	out, _ := bigrat.NewIntMatrix(1, it.m)
	for j, v := range it.point {
		_ = out.Set(0, j, v)
	}
	return out
}

func rowMax(row bigrat.RatMatrix) bigrat.Rat {
	best, _ := row.At(0, 0)
	for j := 1; j < row.Cols(); j++ {
		v, _ := row.At(0, j)
		best = bigrat.Max(best, v)
	}
	return best
}

func rowMin(row bigrat.RatMatrix) bigrat.Rat {
	best, _ := row.At(0, 0)
	for j := 1; j < row.Cols(); j++ {
		v, _ := row.At(0, j)
		best = bigrat.Min(best, v)
	}
	return best
}

// EnumerateAll drains a ChunkIterator fully, returning every solution as a
// flat slice. Intended for tests and small cases; large enumerations
// should use EnumerateChunks directly to bound memory use.
func EnumerateAll(bounds []Bound, chunkSize int) ([]bigrat.IntMatrix, error) {
	it := EnumerateChunks(bounds, chunkSize)
	var all []bigrat.IntMatrix
	for {
		chunk, ok := it.Next()
		if !ok {
			break
		}
		all = append(all, chunk...)
	}
	return all, it.Err()
}
