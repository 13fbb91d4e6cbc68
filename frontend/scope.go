package frontend

import (
	"github.com/dbajgoric/gap2cuda/astiface"
	"github.com/google/uuid"
)

// ScopeKind discriminates the statement kind that owns a Scope, plus
// the SyntheticBranch variant synthesized for a conditional's
// non-compound branch.
type ScopeKind int

const (
	ScopeCompound ScopeKind = iota
	ScopeFor
	ScopeWhile
	ScopeDo
	ScopeSwitch
	ScopeIfElse
	// ScopeSyntheticBranch replaces the fake-compound-scope ordering
	// hack: a conditional whose then/else body is a single statement
	// (not a CompoundStmt) still gets a scope of its own, explicitly
	// tagged as synthetic rather than silently pretending the statement
	// was wrapped in braces.
	ScopeSyntheticBranch
)

// BranchSide names which arm of an IfElseStmt a SyntheticBranch scope
// was synthesized for.
type BranchSide int

const (
	BranchThen BranchSide = iota
	BranchElse
)

// Scope is one node of the M-ary scope tree: a symbol table keyed by
// the statement that owns it, plus parent/child links stored as
// uuid-keyed handles rather than back-pointers, per the
// pointer-heavy-AST-cross-references design note.
type Scope struct {
	handle       uuid.UUID
	parent       uuid.UUID
	hasParent    bool
	kind         ScopeKind
	branchSide   BranchSide
	ownerStmt    astiface.NodeHandle
	symbols      map[string]Identifier
	children     []uuid.UUID
}

func newScope(kind ScopeKind, owner astiface.NodeHandle) *Scope {
	return &Scope{
		handle:    uuid.New(),
		kind:      kind,
		ownerStmt: owner,
		symbols:   make(map[string]Identifier),
	}
}

func (s *Scope) Handle() uuid.UUID             { return s.handle }
func (s *Scope) Kind() ScopeKind               { return s.kind }
func (s *Scope) OwnerStmt() astiface.NodeHandle { return s.ownerStmt }
func (s *Scope) BranchSide() BranchSide        { return s.branchSide }

// Declare adds id to this scope's symbol table, keyed by its name.
func (s *Scope) Declare(id Identifier) {
	s.symbols[id.Name()] = id
}

// Lookup returns the identifier named name declared directly in s,
// without consulting ancestors.
func (s *Scope) Lookup(name string) (Identifier, bool) {
	id, ok := s.symbols[name]
	return id, ok
}

// ScopeTree is the full M-ary tree of scopes built while walking one
// function body; lifetime coincides with that function's analysis.
type ScopeTree struct {
	scopes map[uuid.UUID]*Scope
	root   uuid.UUID
}

// NewScopeTree returns a tree containing a single root Compound scope
// owned by the given function-body statement.
func NewScopeTree(bodyOwner astiface.NodeHandle) *ScopeTree {
	root := newScope(ScopeCompound, bodyOwner)
	t := &ScopeTree{scopes: map[uuid.UUID]*Scope{root.handle: root}}
	t.root = root.handle
	return t
}

// Root returns the tree's root scope.
func (t *ScopeTree) Root() *Scope {
	return t.scopes[t.root]
}

// Scope looks up a scope by handle.
func (t *ScopeTree) Scope(h uuid.UUID) (*Scope, bool) {
	s, ok := t.scopes[h]
	return s, ok
}

// AddChild creates a new scope of the given kind owned by owner, links
// it as a child of parent, and returns it.
func (t *ScopeTree) AddChild(parent uuid.UUID, kind ScopeKind, owner astiface.NodeHandle) *Scope {
	child := newScope(kind, owner)
	child.parent = parent
	child.hasParent = true
	t.scopes[child.handle] = child
	if p, ok := t.scopes[parent]; ok {
		p.children = append(p.children, child.handle)
	}
	return child
}

// AddSyntheticBranch creates a SyntheticBranch child of parent for the
// named side of an IfElseStmt with a non-compound body.
func (t *ScopeTree) AddSyntheticBranch(parent uuid.UUID, owner astiface.NodeHandle, side BranchSide) *Scope {
	child := t.AddChild(parent, ScopeSyntheticBranch, owner)
	child.branchSide = side
	return child
}

// Lookup walks from scope h up through its ancestors (inclusive),
// returning the first declaration of name found.
func (t *ScopeTree) Lookup(h uuid.UUID, name string) (Identifier, bool) {
	for cur, ok := t.scopes[h]; ok; cur, ok = t.scopes[cur.parent] {
		if id, found := cur.Lookup(name); found {
			return id, true
		}
		if !cur.hasParent {
			break
		}
	}
	return nil, false
}
