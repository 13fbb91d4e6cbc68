package affineir

import "github.com/dbajgoric/gap2cuda/astiface"

// Nest is a validated perfect loop nest: between any two headers there
// are no statements, and only assignments appear in the innermost body.
type Nest struct {
	Outermost   *LoopHeader
	Indices     []astiface.Decl // outermost first, one per nesting level
	Assignments []Assignment
	InputArrays  map[astiface.NodeHandle]astiface.Decl
	OutputArrays map[astiface.NodeHandle]astiface.Decl
}

// Depth is the nesting depth, i.e. len(Indices).
func (n *Nest) Depth() int {
	return len(n.Indices)
}

// addArrays records every array touched by stmt into the nest's
// input/output sets, keyed by declaration handle so repeated references
// to the same array collapse to one entry.
func (n *Nest) addArrays(a Assignment) {
	if n.OutputArrays == nil {
		n.OutputArrays = make(map[astiface.NodeHandle]astiface.Decl)
	}
	if n.InputArrays == nil {
		n.InputArrays = make(map[astiface.NodeHandle]astiface.Decl)
	}
	n.OutputArrays[a.LHS.Array.Handle()] = a.LHS.Array
	for _, sub := range a.RHS {
		n.InputArrays[sub.Array.Handle()] = sub.Array
	}
}

// AddAssignment appends a to the nest's assignment list and updates its
// input/output array sets.
func (n *Nest) AddAssignment(a Assignment) {
	n.Assignments = append(n.Assignments, a)
	n.addArrays(a)
}
