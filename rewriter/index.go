package rewriter

import (
	"fmt"

	"github.com/dbajgoric/gap2cuda/astiface"
)

// Index is one index variable of a rewritten nest: a synthesized
// declaration standing in for a level of the original nest once it has
// been skewed/permuted by a Transform. It is addressed the same way
// every other affineir value is, by NodeHandle, so substituted
// LinearForms can key off it without astiface needing to know anything
// about rewriting.
type Index struct {
	Handle astiface.NodeHandle
	Name   string
}

// freshIndices allocates depth handles clear of any an astiface
// provider would ever issue (providers hand out non-negative arena
// indices; InvalidNodeHandle is -1), named k0..k{depth-1}, outermost
// first.
func freshIndices(depth int) []Index {
	out := make([]Index, depth)
	for i := 0; i < depth; i++ {
		out[i] = Index{
			Handle: astiface.NodeHandle(-2 - int64(i)),
			Name:   fmt.Sprintf("k%d", i),
		}
	}
	return out
}
