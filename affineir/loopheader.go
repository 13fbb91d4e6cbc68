package affineir

import "github.com/dbajgoric/gap2cuda/astiface"

// LoopHeader is one level of a perfect loop nest: its index variable,
// its lower-bound linear form, and its upper-bound linear form already
// normalized from the source's strict `<` condition to an inclusive
// bound (the collector subtracts 1 at construction time, so nothing
// downstream needs to remember the nest used `<` rather than `<=`).
//
// The outermost header's bounds reference no variables at all (they are
// pure constants); every inner header's bound variables are a subset of
// the index variables of its enclosing headers. Child is nil for the
// innermost header.
type LoopHeader struct {
	Index astiface.Decl
	Lower *LinearForm
	Upper *LinearForm
	Child *LoopHeader
}

// Depth returns the number of nested headers starting at h, inclusive.
func (h *LoopHeader) Depth() int {
	d := 0
	for cur := h; cur != nil; cur = cur.Child {
		d++
	}
	return d
}

// Indices returns the index variables of h and every descendant header,
// outermost first.
func (h *LoopHeader) Indices() []astiface.Decl {
	var out []astiface.Decl
	for cur := h; cur != nil; cur = cur.Child {
		out = append(out, cur.Index)
	}
	return out
}
