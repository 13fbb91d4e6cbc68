package frontend

import (
	"math/big"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/astiface"
)

// FromDecl builds an Identifier for d: a Scalar for a plain int decl,
// or an Arrayish for an array/pointer decl with its statically-known
// sizes (if any) filled in. A pointer decl's dimension-0 size is left
// unknown here; DeriveAllocSize fills it in once the enclosing
// allocation call is found.
func FromDecl(d astiface.Decl) Identifier {
	switch d.Kind() {
	case astiface.DeclArray:
		sizes := d.StaticSizes()
		a := NewArrayish(d.Name(), d, d.ElemType(), len(sizes))
		for dim, n := range sizes {
			a.SetConstSize(dim, big.NewInt(int64(n)))
		}
		return a

	case astiface.DeclPointer:
		// Dimensionality for a pointer decl is discovered incrementally:
		// it starts at 1 (dimension 0, from the nearest enclosing alloc
		// call) and grows as deeper `p[i1]...[ik] = alloc(...)`
		// assignments are found.
		return NewArrayish(d.Name(), d, d.ElemType(), 1)

	default:
		return NewScalar(d.Name(), d)
	}
}

// DeriveAllocSize extracts a size expression from a malloc/calloc call
// expression: malloc(bytes) yields its bytes argument, calloc(n, bytes)
// yields its second argument, each returned as is. It builds no new
// expression: the result is not divided by sizeof(elem), and calloc's n
// is not multiplied in. Anything else is not a recognized allocator and
// leaves the dimension unknown.
func DeriveAllocSize(call astiface.CallExpr) (astiface.Expr, bool) {
	switch call.Callee() {
	case "malloc":
		args := call.Args()
		if len(args) != 1 {
			return nil, false
		}
		return args[0], true

	case "calloc":
		args := call.Args()
		if len(args) != 2 {
			return nil, false
		}
		return args[1], true
	}
	return nil, false
}

// ApplyAlloc records the size derived from a `p[i1]...[ik] = alloc(...)`
// assignment onto id: it resets every dimension at or beyond depth and
// sets dimension depth's size from the allocation call, growing id's
// tracked dimensionality if depth had not been reached before.
func ApplyAlloc(id *Arrayish, depth int, call astiface.CallExpr) {
	sizeExpr, ok := DeriveAllocSize(call)
	if !ok {
		return
	}
	id.ResetFrom(depth)
	if depth >= id.dimensions {
		grown := make([]Size, depth+1)
		copy(grown, id.sizes)
		id.sizes = grown
		id.dimensions = depth + 1
	}
	id.SetExprSize(depth, sizeExpr)
}

// ValidateArraySizes rejects a nest referencing any array whose size is
// unknown in some dimension. identifiers maps each array declaration's
// handle to its Arrayish, built up from FromDecl/ApplyAlloc while
// walking the declarations in scope; an array with no entry is treated
// as a static declaration and is not subject to this check (its
// dimensionality/sizes come straight from StaticSizes).
func ValidateArraySizes(nest *affineir.Nest, identifiers map[astiface.NodeHandle]*Arrayish) error {
	check := func(arrays map[astiface.NodeHandle]astiface.Decl) error {
		for h := range arrays {
			id, ok := identifiers[h]
			if !ok {
				continue
			}
			if !id.HasSizeForEachDim() {
				return ErrSizeUnknown
			}
		}
		return nil
	}
	if err := check(nest.InputArrays); err != nil {
		return err
	}
	return check(nest.OutputArrays)
}
