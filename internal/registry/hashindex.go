package registry

import "github.com/alexparlett/angelscript-go/internal/ident"
import "github.com/alexparlett/angelscript-go/internal/types"

// BuildHashIndexes populates the TypeHash -> node and func_hash ->
// (node, name, overload_index) reverse indexes (spec §4.1, to be
// invoked once at the end of Completion).
func (t *Tree) BuildHashIndexes() {
	t.typeHashIndex = map[ident.TypeHash]hashedType{}
	t.funcHashIndex = map[ident.TypeHash]hashedFunc{}

	var walk func(ref ident.NodeRef)
	walk = func(ref ident.NodeRef) {
		n := t.node(ref)
		for _, p := range n.typesMap.Pairs {
			t.typeHashIndex[p.Value.Hash] = hashedType{Node: ref, Name: p.Key}
		}
		for _, p := range n.functions.Pairs {
			for i, fn := range p.Value {
				t.funcHashIndex[fn.Hash] = hashedFunc{Node: ref, Name: p.Key, OverloadIndex: i}
			}
		}
		for _, childRef := range n.children.Values() {
			walk(childRef)
		}
	}
	walk(t.root)
	t.hashIndexBuilt = true
}

// GetByHash resolves hash to its TypeEntry via the reverse index. It
// panics if BuildHashIndexes has not been called (spec §4.1: "asserts
// index built").
func (t *Tree) GetByHash(hash ident.TypeHash) (*types.TypeEntry, bool) {
	if !t.hashIndexBuilt {
		panic("registry: GetByHash called before BuildHashIndexes")
	}
	h, ok := t.typeHashIndex[hash]
	if !ok {
		if e, ok := t.ffi.GetByHash(hash); ok {
			return &e, true
		}
		return nil, false
	}
	return t.TypeIn(h.Node, h.Name)
}

// GetFunctionByHash resolves a func_hash via the reverse index.
func (t *Tree) GetFunctionByHash(hash ident.TypeHash) (*types.FunctionDef, bool) {
	if !t.hashIndexBuilt {
		panic("registry: GetFunctionByHash called before BuildHashIndexes")
	}
	h, ok := t.funcHashIndex[hash]
	if !ok {
		return nil, false
	}
	fns, ok := t.FunctionsIn(h.Node, h.Name)
	if !ok || h.OverloadIndex >= len(fns) {
		return nil, false
	}
	return fns[h.OverloadIndex], true
}
