package astiface

// DeclKind discriminates the concrete type behind a Decl.
type DeclKind int

const (
	// DeclInt is a scalar int/long/etc declaration.
	DeclInt DeclKind = iota
	// DeclArray is a statically-sized array declaration (int a[10][20]).
	DeclArray
	// DeclPointer is a pointer declaration, commonly the parameter form
	// of an array that is later sized by a malloc/calloc call reachable
	// through the same scope.
	DeclPointer
	// DeclOther covers everything the analyzer does not need to reason
	// about structurally (structs, other scalar types, etc).
	DeclOther
)

// Decl is a source-language variable declaration.
type Decl interface {
	Handle() NodeHandle
	Kind() DeclKind
	Name() string
	Location() Location

	// ElemType names the element type backing an array or pointer decl
	// (e.g. "int", "float"); meaningless for DeclOther.
	ElemType() string

	// StaticSizes returns the compile-time-known dimension sizes for a
	// DeclArray. Empty for every other kind, and for a DeclArray whose
	// sizes were not all constant.
	StaticSizes() []int

	// Initializer is the declaration's initializer expression, or nil
	// if the declaration has none.
	Initializer() Expr
}
