package frontend_test

import (
	"testing"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/astiface"
	"github.com/dbajgoric/gap2cuda/frontend"
	"github.com/stretchr/testify/require"
)

func TestFromDecl_StaticArraySizesKnown(t *testing.T) {
	t.Parallel()
	d := fakeDecl{handle: 1, name: "a", kind: astiface.DeclArray, staticDims: []int{4, 8}}
	id := frontend.FromDecl(d).(*frontend.Arrayish)
	require.True(t, id.HasSizeForEachDim())
	require.Equal(t, 2, id.Dimensionality())
}

func TestFromDecl_PointerSizeUnknownUntilAlloc(t *testing.T) {
	t.Parallel()
	d := fakeDecl{handle: 1, name: "p", kind: astiface.DeclPointer}
	id := frontend.FromDecl(d).(*frontend.Arrayish)
	require.False(t, id.HasSizeForEachDim())
}

func TestValidateArraySizes_UnknownRejected(t *testing.T) {
	t.Parallel()
	arrDecl := fakeDecl{handle: 5, name: "p", kind: astiface.DeclPointer}
	id := frontend.FromDecl(arrDecl).(*frontend.Arrayish)

	nest := &affineir.Nest{
		InputArrays: map[astiface.NodeHandle]astiface.Decl{arrDecl.Handle(): arrDecl},
	}
	identifiers := map[astiface.NodeHandle]*frontend.Arrayish{arrDecl.Handle(): id}

	err := frontend.ValidateArraySizes(nest, identifiers)
	require.ErrorIs(t, err, frontend.ErrSizeUnknown)
}

func TestApplyAlloc_MallocFillsDimZero(t *testing.T) {
	t.Parallel()
	d := fakeDecl{handle: 1, name: "p", kind: astiface.DeclPointer}
	id := frontend.FromDecl(d).(*frontend.Arrayish)

	bytes := fakeIntLit{400}
	frontend.ApplyAlloc(id, 0, fakeCall{callee: "malloc", args: []astiface.Expr{bytes}})
	require.True(t, id.HasSizeForEachDim())
	require.Equal(t, bytes, id.Size(0).Expr)
}

func TestApplyAlloc_DeeperDimGrowsAndResets(t *testing.T) {
	t.Parallel()
	d := fakeDecl{handle: 1, name: "p", kind: astiface.DeclPointer}
	id := frontend.FromDecl(d).(*frontend.Arrayish)

	frontend.ApplyAlloc(id, 0, fakeCall{callee: "calloc", args: []astiface.Expr{fakeIntLit{10}, fakeIntLit{4}}})
	require.True(t, id.HasSizeForEachDim())

	frontend.ApplyAlloc(id, 1, fakeCall{callee: "malloc", args: []astiface.Expr{fakeIntLit{40}}})
	require.Equal(t, 2, id.Dimensionality())
	require.True(t, id.HasSizeForEachDim())
}

func TestDeriveAllocSize_UnrecognizedCallee(t *testing.T) {
	t.Parallel()
	_, ok := frontend.DeriveAllocSize(fakeCall{callee: "free", args: nil})
	require.False(t, ok)
}
