package astiface

// NodeHandle is an opaque index into a source AST provider's own node
// arena. It carries no meaning outside the provider that issued it, and
// is comparable so it can key maps and appear in dependence records
// without the analyzer ever dereferencing provider memory directly.
type NodeHandle int64

// InvalidNodeHandle is the value -1, which no provider ever issues,
// reserved for "no node" (e.g. an absent else-branch or initializer).
const InvalidNodeHandle NodeHandle = -1

// Valid reports whether h was actually issued by a provider.
func (h NodeHandle) Valid() bool { return h != InvalidNodeHandle }
