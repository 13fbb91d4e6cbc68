package frontend

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/astiface"
)

// IdentifierKind discriminates the concrete type behind an Identifier,
// per the tagged-variants-over-inheritance convention: a Kind() switch
// replaces downcasting through a base/derived identifier hierarchy.
type IdentifierKind int

const (
	IdentifierScalar IdentifierKind = iota
	IdentifierArrayLike
)

// Identifier is any symbol the scope tree tracks: a scalar variable or
// an array-like (array or pointer) one.
type Identifier interface {
	Kind() IdentifierKind
	Name() string
	Decl() astiface.Decl
}

// Scalar is a plain, non-array, non-pointer variable.
type Scalar struct {
	name string
	decl astiface.Decl
}

// NewScalar returns a Scalar identifier bound to decl.
func NewScalar(name string, decl astiface.Decl) *Scalar {
	return &Scalar{name: name, decl: decl}
}

func (s *Scalar) Kind() IdentifierKind { return IdentifierScalar }
func (s *Scalar) Name() string         { return s.name }
func (s *Scalar) Decl() astiface.Decl  { return s.decl }

// Size is one dimension's size, either a compile-time constant (a
// static array declaration) or a source expression that computes it at
// run time (the size argument of an enclosing malloc/calloc call, as
// returned by DeriveAllocSize, not scaled by element size). The zero
// Size is unknown.
type Size struct {
	Const *big.Int
	Expr  astiface.Expr
}

// Known reports whether the size has been determined by either means.
func (s Size) Known() bool {
	return s.Const != nil || s.Expr != nil
}

// Arrayish is an array or pointer identifier that may carry a per-
// dimension size, recovered from a static array declaration or from an
// enclosing malloc/calloc call. An unknown Size marks that dimension's
// size as not yet known.
type Arrayish struct {
	name       string
	decl       astiface.Decl
	elemType   string
	dimensions int
	sizes      []Size
}

// NewArrayish returns an Arrayish identifier of the given dimensionality
// with every dimension initially unknown.
func NewArrayish(name string, decl astiface.Decl, elemType string, dimensions int) *Arrayish {
	return &Arrayish{
		name:       name,
		decl:       decl,
		elemType:   elemType,
		dimensions: dimensions,
		sizes:      make([]Size, dimensions),
	}
}

func (a *Arrayish) Kind() IdentifierKind { return IdentifierArrayLike }
func (a *Arrayish) Name() string         { return a.name }
func (a *Arrayish) Decl() astiface.Decl  { return a.decl }
func (a *Arrayish) ElemType() string     { return a.elemType }
func (a *Arrayish) Dimensionality() int  { return a.dimensions }

// HasSizeForEachDim reports whether every dimension has a known size.
func (a *Arrayish) HasSizeForEachDim() bool {
	for _, s := range a.sizes {
		if !s.Known() {
			return false
		}
	}
	return true
}

// SetConstSize records a compile-time-constant size for one dimension.
func (a *Arrayish) SetConstSize(dim int, n *big.Int) {
	a.sizes[dim] = Size{Const: n}
}

// SetExprSize records a run-time size expression for one dimension.
func (a *Arrayish) SetExprSize(dim int, e astiface.Expr) {
	a.sizes[dim] = Size{Expr: e}
}

// Size returns the size recorded for one dimension.
func (a *Arrayish) Size(dim int) Size {
	return a.sizes[dim]
}

// ResetFrom clears every dimension at or beyond dimStart back to
// unknown. A later `p[i1]...[ik] = alloc(...)` assignment re-derives
// dimension k onward from the new allocation, so its prior sizes (if
// any) must be discarded first.
func (a *Arrayish) ResetFrom(dimStart int) {
	for d := dimStart; d < len(a.sizes); d++ {
		a.sizes[d] = Size{}
	}
}
