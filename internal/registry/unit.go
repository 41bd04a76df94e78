package registry

import (
	"fmt"

	"github.com/alexparlett/angelscript-go/internal/ident"
)

// UnitNamespace returns (creating if necessary) the `$unit_N` top-level
// node reserved for compilation unit id (spec §3.2, §3.8). `$ffi` and
// `$shared` persist across units; `$unit_N` subtrees are meant to be
// created and dropped per compilation.
func (t *Tree) UnitNamespace(id ident.UnitID) ident.NodeRef {
	ref, _ := t.GetOrCreatePath([]string{fmt.Sprintf("$unit_%d", id)})
	return ref
}

// DropUnit detaches and discards the `$unit_N` subtree for id (spec
// §3.8: "On unit drop, the $unit_N subtree is removed; $ffi and
// $shared persist."). The hash indexes, if built, are stale afterward
// and must be rebuilt via BuildHashIndexes before further GetByHash
// calls.
func (t *Tree) DropUnit(id ident.UnitID) {
	name := fmt.Sprintf("$unit_%d", id)
	root := t.node(t.root)
	ref, ok := root.children.Load(name)
	if !ok {
		return
	}
	root.children.Delete(name)
	t.detach(ref)
	t.hashIndexBuilt = false
}

// detach marks ref and its descendants as removed. Entries remain
// allocated in t.nodes (NodeRef stability within one compilation is an
// invariant, spec §3.1) but are unreachable from root, so they drop out
// of PathOf/ResolveType/hash-index traversal.
func (t *Tree) detach(ref ident.NodeRef) {
	n := t.node(ref)
	n.hasParent = false
	for _, child := range n.children.Values() {
		t.detach(child)
	}
}
