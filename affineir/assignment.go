package affineir

// Assignment is one innermost-body statement of a nest: an LHS
// subscript (the array element written) and the ordered list of every
// subscript reachable from the RHS expression tree, flattened
// regardless of how deeply the source nests its operators.
type Assignment struct {
	LHS Subscript
	RHS []Subscript
}
