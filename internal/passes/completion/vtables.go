package completion

import (
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// buildITables is Completion phase 8 (spec §4.3, glossary "itable"):
// for each interface a class implements, matches every flattened
// interface method (including inherited base-interface methods) to a
// concrete implementation reachable from the class or its base chain.
func (c *completer) buildITables() {
	for _, rec := range c.classEntry {
		for _, ifaceRef := range rec.entry.Class.Interfaces {
			if !ifaceRef.IsResolved() {
				continue
			}
			iface, ok := c.interfaceEntry[ident.HashName(ifaceRef.Target())]
			if !ok {
				continue
			}
			flat := iface.entry.Interface.FlattenedMethods(c.lookupInterfaceType)
			var slots []ident.TypeHash
			for _, sig := range flat {
				hash, found := c.findMethodImpl(rec, sig)
				if !found {
					c.diags.Addf(diag.InterfaceNotImplemented, rec.unit.Span,
						"class %q does not implement %q.%s", rec.unit.Name, iface.unit.Name, sig.Name)
					continue
				}
				slots = append(slots, hash)
			}
			rec.entry.Class.ITables[iface.entry.Hash] = types.ITable{Slots: slots}
		}
	}
}

func (c *completer) lookupInterfaceType(qn ident.QualifiedName) *types.InterfaceType {
	if rec, ok := c.interfaceEntry[ident.HashName(qn)]; ok {
		return rec.entry.Interface
	}
	return nil
}

// findMethodImpl searches rec's own methods, then walks its base
// chain, for a signature match.
func (c *completer) findMethodImpl(rec *classRecord, sig types.MethodSignature) (ident.TypeHash, bool) {
	for cur := rec; cur != nil; {
		for _, hashes := range cur.entry.Class.Methods {
			for _, h := range hashes {
				if methodSignature(cur.entry.Class.MethodDefs[h]).Equal(sig) {
					return h, true
				}
			}
		}
		base := cur.entry.Class.Base
		if base == nil || !base.IsResolved() {
			break
		}
		next, ok := c.classEntry[ident.HashName(base.Target())]
		if !ok {
			break
		}
		cur = next
	}
	return 0, false
}

// buildVTables is Completion phase 9 (spec §4.3, glossary "vtable"):
// for each class in dependency order, starts from its base's vtable
// (inherited slots first, spec's declared ordering) and appends or
// overrides slots for its own virtual methods.
func (c *completer) buildVTables(order []*classRecord) {
	for _, rec := range order {
		var slots []types.VTableSlot
		if base := rec.entry.Class.Base; base != nil && base.IsResolved() {
			if parent, ok := c.classEntry[ident.HashName(base.Target())]; ok {
				slots = append(slots, parent.entry.Class.VTable.Slots...)
			}
		}
		vt := types.VTable{Slots: slots}

		for _, simpleName := range rec.entry.Class.MethodOrder {
			for _, h := range rec.entry.Class.Methods[simpleName] {
				def := rec.entry.Class.MethodDefs[h]
				if def.Kind != types.MethodRegular {
					continue
				}
				if def.Traits.Final && !def.Traits.Virtual && !def.Traits.Override {
					continue
				}
				sig := methodSignature(def)
				if idx := vt.SlotOf(sig); idx >= 0 {
					vt.Slots[idx].Func = h
				} else {
					vt.Slots = append(vt.Slots, types.VTableSlot{Signature: sig, Func: h})
				}
			}
		}
		rec.entry.Class.VTable = vt
		c.result.VTablesBuilt++
	}
}
