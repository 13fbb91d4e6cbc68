package affineir

import "github.com/dbajgoric/gap2cuda/astiface"

// Subscript is an array reference: the declaration of the array being
// indexed, plus one linear form per dimension, outermost dimension
// first. Its dimensionality is len(Forms).
type Subscript struct {
	Array astiface.Decl
	Forms []*LinearForm
}

// Dim returns the subscript's dimensionality.
func (s Subscript) Dim() int {
	return len(s.Forms)
}
