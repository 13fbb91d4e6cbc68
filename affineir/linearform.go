package affineir

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/astiface"
)

// LinearForm is a finite mapping from variables (identified by the
// astiface.NodeHandle of their declaration) to integer coefficients,
// plus a constant term: a1*v1 + ... + ak*vk + a0. No variable is ever
// stored with a zero coefficient — AddCoeff deletes a key the moment
// its running coefficient returns to zero, keeping the map a faithful,
// minimal representation of the form.
type LinearForm struct {
	coeffs   map[astiface.NodeHandle]*big.Int
	constant *big.Int
}

// NewLinearForm returns the zero linear form (the constant 0).
func NewLinearForm() *LinearForm {
	return &LinearForm{
		coeffs:   make(map[astiface.NodeHandle]*big.Int),
		constant: big.NewInt(0),
	}
}

// Insert sets v's coefficient to c outright, replacing any prior value.
// A zero c removes v from the map entirely.
func (f *LinearForm) Insert(v astiface.NodeHandle, c *big.Int) {
	if c.Sign() == 0 {
		delete(f.coeffs, v)
		return
	}
	f.coeffs[v] = new(big.Int).Set(c)
}

// AddCoeff adds c to v's current coefficient (0 if v is absent).
func (f *LinearForm) AddCoeff(v astiface.NodeHandle, c *big.Int) {
	cur, ok := f.coeffs[v]
	sum := new(big.Int)
	if ok {
		sum.Add(cur, c)
	} else {
		sum.Set(c)
	}
	f.Insert(v, sum)
}

// AddConstant adds c to the form's constant term.
func (f *LinearForm) AddConstant(c *big.Int) {
	f.constant.Add(f.constant, c)
}

// Coeff returns v's coefficient and true, or (nil, false) if v does not
// appear in the form.
func (f *LinearForm) Coeff(v astiface.NodeHandle) (*big.Int, bool) {
	c, ok := f.coeffs[v]
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(c), true
}

// Constant returns the form's constant term.
func (f *LinearForm) Constant() *big.Int {
	return new(big.Int).Set(f.constant)
}

// Variables returns the variables with a non-zero coefficient, in no
// particular order; callers that need a stable order must sort.
func (f *LinearForm) Variables() []astiface.NodeHandle {
	vars := make([]astiface.NodeHandle, 0, len(f.coeffs))
	for v := range f.coeffs {
		vars = append(vars, v)
	}
	return vars
}

// IsConstant reports whether the form has no variables at all.
func (f *LinearForm) IsConstant() bool {
	return len(f.coeffs) == 0
}
