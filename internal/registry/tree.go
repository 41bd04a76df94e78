// Package registry implements the namespace tree and type/function/
// global registry (spec §4.1): name-based lookup with lexical scoping
// and using-directive expansion, hash-based lookup for the emitter,
// and duplicate detection at registration time.
package registry

import (
	"github.com/alexparlett/angelscript-go/internal/ffi"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/orderedmap"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// Reserved top-level namespace names for multi-unit isolation (spec
// §3.2).
const (
	NamespaceFFI    = "$ffi"
	NamespaceShared = "$shared"
)

// node is one vertex of the namespace tree.
type node struct {
	ref      ident.NodeRef
	parent   ident.NodeRef
	hasParent bool
	name     string // this node's own simple name ("" for root)

	children *orderedmap.Map[string, ident.NodeRef] // Contains edges, keyed by child simple name
	uses     []ident.NodeRef                        // Uses edges, in the order added

	typesMap     *orderedmap.Map[string, *types.TypeEntry]
	functions    *orderedmap.Map[string, []*types.FunctionDef]
	globals      *orderedmap.Map[string, *types.GlobalEntry]
	typeAliases  *orderedmap.Map[string, ident.TypeHash]

	// mirrorsFFI is never set: no code path creates Mirrors edges.
	mirrorsFFI bool
}

func newNode(ref, parent ident.NodeRef, hasParent bool, name string) *node {
	return &node{
		ref: ref, parent: parent, hasParent: hasParent, name: name,
		children:    orderedmap.New[string, ident.NodeRef](),
		typesMap:    orderedmap.New[string, *types.TypeEntry](),
		functions:   orderedmap.New[string, []*types.FunctionDef](),
		globals:     orderedmap.New[string, *types.GlobalEntry](),
		typeAliases: orderedmap.New[string, ident.TypeHash](),
	}
}

// Tree is the mutable namespace tree and registry: the primary storage
// through all three passes (spec §2, §3.2).
type Tree struct {
	nodes []*node // indexed by ident.NodeRef; index 0 is unused (ident.Invalid)
	root  ident.NodeRef

	ffi ffi.HostRegistry

	typeHashIndex map[ident.TypeHash]hashedType
	funcHashIndex map[ident.TypeHash]hashedFunc
	hashIndexBuilt bool
}

type hashedType struct {
	Node ident.NodeRef
	Name string
}

type hashedFunc struct {
	Node          ident.NodeRef
	Name          string
	OverloadIndex int
}

// New creates a namespace tree with a root node and the reserved
// `$ffi`/`$shared` children pre-created (spec §3.2). host may be nil,
// in which case ffi.Empty{} is used.
func New(host ffi.HostRegistry) *Tree {
	if host == nil {
		host = ffi.Empty{}
	}
	t := &Tree{ffi: host}
	// nodes[0] is reserved/unused so NodeRef zero value (ident.Invalid)
	// never aliases a real node.
	t.nodes = append(t.nodes, nil)
	rootRef := ident.NodeRef(len(t.nodes))
	t.nodes = append(t.nodes, newNode(rootRef, ident.Invalid, false, ""))
	t.root = rootRef

	t.GetOrCreatePath([]string{NamespaceFFI})
	t.GetOrCreatePath([]string{NamespaceShared})
	t.registerPrimitives()
	return t
}

// registerPrimitives seeds the root namespace with every built-in
// scalar type (spec §3.3: "PrimitiveNames ... registered at the root
// namespace before any pass runs").
func (t *Tree) registerPrimitives() {
	for _, name := range types.PrimitiveNames {
		qn := ident.Root(name)
		entry := &types.TypeEntry{
			Kind: types.KindPrimitive, Name: qn, Hash: ident.HashName(qn), Primitive: &types.PrimitiveType{},
		}
		_ = t.RegisterType(t.root, name, entry)
	}
}

// Root returns the root node's NodeRef.
func (t *Tree) Root() ident.NodeRef { return t.root }

// FFINode returns the reserved `$ffi` node's NodeRef.
func (t *Tree) FFINode() ident.NodeRef {
	ref, _ := t.GetOrCreatePath([]string{NamespaceFFI})
	return ref
}

func (t *Tree) node(ref ident.NodeRef) *node {
	if ref == ident.Invalid || int(ref) >= len(t.nodes) || t.nodes[ref] == nil {
		panic("registry: invalid NodeRef")
	}
	return t.nodes[ref]
}

// GetOrCreatePath creates any missing Contains edges along path
// (segments relative to root) and returns the final node. Idempotent.
func (t *Tree) GetOrCreatePath(path []string) (ident.NodeRef, bool) {
	cur := t.root
	created := false
	for _, seg := range path {
		n := t.node(cur)
		if existing, ok := n.children.Load(seg); ok {
			cur = existing
			continue
		}
		newRef := ident.NodeRef(len(t.nodes))
		t.nodes = append(t.nodes, newNode(newRef, cur, true, seg))
		n.children.Store(seg, newRef)

		// No Mirrors edge is created: a segment named like a reserved
		// top-level child is an ordinary child node, and at depth 1
		// under root it is the reserved node itself.
		if cur == t.root && (seg == NamespaceFFI || seg == NamespaceShared) {
			// the reserved node itself, not a shadow - no mirror needed
		}
		cur = newRef
		created = true
	}
	return cur, created
}

// LookupPath walks path from root without creating missing segments,
// reporting whether every segment existed.
func (t *Tree) LookupPath(path []string) (ident.NodeRef, bool) {
	cur := t.root
	for _, seg := range path {
		child, ok := t.node(cur).children.Load(seg)
		if !ok {
			return ident.Invalid, false
		}
		cur = child
	}
	return cur, true
}

// PathOf reconstructs a node's namespace path by walking incoming
// Contains edges to root (spec §3.7 invariant).
func (t *Tree) PathOf(ref ident.NodeRef) []string {
	var segs []string
	n := t.node(ref)
	for n.hasParent {
		segs = append([]string{n.name}, segs...)
		n = t.node(n.parent)
	}
	return segs
}

// QualifiedNameIn builds the QualifiedName for simple declared in ref's
// namespace.
func (t *Tree) QualifiedNameIn(ref ident.NodeRef, simple string) ident.QualifiedName {
	return ident.New(simple, t.PathOf(ref))
}

// AddUsingEdge adds a Uses edge from `from` to `to`. Idempotent:
// silently skips if the edge is already present (spec §4.1).
func (t *Tree) AddUsingEdge(from, to ident.NodeRef) {
	n := t.node(from)
	for _, u := range n.uses {
		if u == to {
			return
		}
	}
	n.uses = append(n.uses, to)
}

// UsesOf returns the Uses targets of ref, in the order they were added.
func (t *Tree) UsesOf(ref ident.NodeRef) []ident.NodeRef {
	return append([]ident.NodeRef(nil), t.node(ref).uses...)
}
