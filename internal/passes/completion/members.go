package completion

import (
	"sort"

	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// topoSortClasses orders every class so a base/mixin is always visited
// before anything that depends on it, tie-broken by lexicographic
// qualified name for determinism (spec §3.7, §4.3 phase 7).
func (c *completer) topoSortClasses() []*classRecord {
	all := make([]*classRecord, 0, len(c.classEntry))
	for _, rec := range c.classEntry {
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].unit.Name.String() < all[j].unit.Name.String() })

	visited := map[ident.TypeHash]bool{}
	visiting := map[ident.TypeHash]bool{}
	var order []*classRecord

	var visit func(rec *classRecord)
	visit = func(rec *classRecord) {
		h := rec.entry.Hash
		if visited[h] || visiting[h] {
			return
		}
		visiting[h] = true
		deps := c.classDeps(rec)
		for _, d := range deps {
			visit(d)
		}
		visiting[h] = false
		visited[h] = true
		order = append(order, rec)
	}
	for _, rec := range all {
		visit(rec)
	}
	return order
}

func (c *completer) classDeps(rec *classRecord) []*classRecord {
	var deps []*classRecord
	add := func(ref *types.InheritanceRef) {
		if ref == nil || !ref.IsResolved() {
			return
		}
		if dep, ok := c.classEntry[ident.HashName(ref.Target())]; ok {
			deps = append(deps, dep)
		}
	}
	add(rec.entry.Class.Base)
	for i := range rec.entry.Class.Mixins {
		add(&rec.entry.Class.Mixins[i])
	}
	return deps
}

// completeMembers is Completion phase 7 (spec §4.3): registers each
// class's own fields, then flattens in every mixin's properties and
// methods (textual-inclusion semantics - a mixin has no storage of its
// own, so its members become the including class's), and checks
// `override` methods against the base chain.
func (c *completer) completeMembers(order []*classRecord) {
	for _, rec := range order {
		c.addOwnFields(rec)
		for _, mixinRef := range rec.entry.Class.Mixins {
			if !mixinRef.IsResolved() {
				continue
			}
			if mixin, ok := c.classEntry[ident.HashName(mixinRef.Target())]; ok {
				c.mergeMixin(rec, mixin)
			}
		}
		c.checkOverrides(rec)
	}
}

func (c *completer) addOwnFields(rec *classRecord) {
	for _, f := range rec.unit.Fields {
		field := types.FieldDef{
			Name: f.Name, Type: c.resolveTypeRef(f.Type), Offset: len(rec.entry.Class.Properties),
			IsPrivate: f.Visibility == types.VisPrivate, IsProtected: f.Visibility == types.VisProtected,
		}
		rec.entry.Class.Properties = append(rec.entry.Class.Properties, field)
	}
}

// mergeMixin copies mixin's properties and methods into rec, re-keying
// each method's func_hash to rec's own qualified name since a mixin
// method's identity belongs to whichever class includes it.
func (c *completer) mergeMixin(rec, mixin *classRecord) {
	for _, f := range mixin.entry.Class.Properties {
		dup := false
		for _, existing := range rec.entry.Class.Properties {
			if existing.Name == f.Name {
				dup = true
				break
			}
		}
		if dup {
			c.diags.Addf(diag.DuplicateDeclaration, rec.unit.Span, "field %q already declared (via mixin %q)", f.Name, mixin.unit.Name)
			continue
		}
		f.Offset = len(rec.entry.Class.Properties)
		rec.entry.Class.Properties = append(rec.entry.Class.Properties, f)
	}

	for _, simpleName := range mixin.entry.Class.MethodOrder {
		for _, srcHash := range mixin.entry.Class.Methods[simpleName] {
			src := mixin.entry.Class.MethodDefs[srcHash]
			qn := rec.unit.Name.Child(simpleName)
			def := &types.FunctionDef{
				Name: qn, Object: &rec.unit.Name, Kind: src.Kind,
				Params: src.Params, ReturnType: src.ReturnType, Traits: src.Traits, Visibility: src.Visibility,
			}
			def.Hash = ident.HashFunction(qn, def.ParamHashes())
			c.addClassMethod(rec, simpleName, def)
		}
	}
}

// checkOverrides validates every method marked `override` names a
// matching virtual signature somewhere in the base chain (spec §7
// UndeclaredOverride).
func (c *completer) checkOverrides(rec *classRecord) {
	for _, hashes := range rec.entry.Class.Methods {
		for _, h := range hashes {
			def := rec.entry.Class.MethodDefs[h]
			if !def.Traits.Override {
				continue
			}
			sig := methodSignature(def)
			if !c.findInBaseChain(rec, sig) {
				c.diags.Addf(diag.UndeclaredOverride, rec.unit.Span, "method %q marked override but no matching base method found", def.Name)
			}
		}
	}
}

func methodSignature(def *types.FunctionDef) types.MethodSignature {
	params := make([]types.DataType, len(def.Params))
	for i, p := range def.Params {
		params[i] = p.Type
	}
	return types.MethodSignature{Name: def.Name.Simple, Params: params, ReturnType: def.ReturnType, IsConst: def.Traits.Const}
}

func (c *completer) findInBaseChain(rec *classRecord, sig types.MethodSignature) bool {
	base := rec.entry.Class.Base
	for base != nil && base.IsResolved() {
		parent, ok := c.classEntry[ident.HashName(base.Target())]
		if !ok {
			return false
		}
		for _, hashes := range parent.entry.Class.Methods {
			for _, h := range hashes {
				if methodSignature(parent.entry.Class.MethodDefs[h]).Equal(sig) {
					return true
				}
			}
		}
		base = parent.entry.Class.Base
	}
	return false
}
