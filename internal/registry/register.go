package registry

import (
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// RegisterType inserts entry under (node, simpleName). Fails with
// *DuplicateTypeError if simpleName is already defined in that node
// (spec §4.1).
func (t *Tree) RegisterType(ref ident.NodeRef, simpleName string, entry *types.TypeEntry) error {
	n := t.node(ref)
	if n.typesMap.Has(simpleName) {
		return &DuplicateTypeError{Namespace: t.PathOf(ref), Name: simpleName}
	}
	n.typesMap.Store(simpleName, entry)
	return nil
}

// RegisterFunction appends fn to the overload set for simpleName in
// ref. Fails with *DuplicateOverloadError if an existing entry shares
// fn's func_hash (spec §4.1).
func (t *Tree) RegisterFunction(ref ident.NodeRef, simpleName string, fn *types.FunctionDef) error {
	n := t.node(ref)
	existing, _ := n.functions.Load(simpleName)
	for _, e := range existing {
		if e.Hash == fn.Hash {
			return &DuplicateOverloadError{Namespace: t.PathOf(ref), Name: simpleName, Hash: fn.Hash}
		}
	}
	n.functions.Store(simpleName, append(existing, fn))
	return nil
}

// RegisterGlobal inserts a global variable entry. Fails with
// *DuplicateTypeError (reusing the same error shape; globals and types
// share a namespace's simple-name space is not assumed, they have
// independent maps, but the spec's duplicate check is per-kind) if the
// simple name already has a global.
func (t *Tree) RegisterGlobal(ref ident.NodeRef, simpleName string, g *types.GlobalEntry) error {
	n := t.node(ref)
	if n.globals.Has(simpleName) {
		return &DuplicateTypeError{Namespace: t.PathOf(ref), Name: simpleName}
	}
	n.globals.Store(simpleName, g)
	return nil
}

// RegisterAlias records a `typedef` alias hash under simpleName.
func (t *Tree) RegisterAlias(ref ident.NodeRef, simpleName string, target ident.TypeHash) error {
	n := t.node(ref)
	if n.typeAliases.Has(simpleName) {
		return &DuplicateTypeError{Namespace: t.PathOf(ref), Name: simpleName}
	}
	n.typeAliases.Store(simpleName, target)
	return nil
}

// TypeIn returns the TypeEntry registered under simpleName in ref's own
// map (no namespace walk), and whether it exists.
func (t *Tree) TypeIn(ref ident.NodeRef, simpleName string) (*types.TypeEntry, bool) {
	return t.node(ref).typesMap.Load(simpleName)
}

// FunctionsIn returns the overload set registered under simpleName in
// ref's own map (no namespace walk).
func (t *Tree) FunctionsIn(ref ident.NodeRef, simpleName string) ([]*types.FunctionDef, bool) {
	return t.node(ref).functions.Load(simpleName)
}

// GlobalIn returns the global registered under simpleName in ref's own
// map (no namespace walk).
func (t *Tree) GlobalIn(ref ident.NodeRef, simpleName string) (*types.GlobalEntry, bool) {
	return t.node(ref).globals.Load(simpleName)
}

// AllTypes returns every type entry registered directly in ref, in
// insertion order.
func (t *Tree) AllTypes(ref ident.NodeRef) []*types.TypeEntry {
	return t.node(ref).typesMap.Values()
}
