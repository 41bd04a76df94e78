package completion

import (
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// resolveInheritance is Completion phase 6 (spec §4.3): classifies
// each class's raw inheritance-list entries into base class, mixins,
// and interfaces by inspecting the resolved target's Kind, and links
// each interface's own base-interface list.
func (c *completer) resolveInheritance() {
	for _, rec := range c.classEntry {
		c.resolveClassInheritance(rec)
	}
	for _, rec := range c.interfaceEntry {
		c.resolveInterfaceBases(rec)
	}
	c.detectInheritanceCycles()
}

func (c *completer) resolveClassInheritance(rec *classRecord) {
	for _, inh := range rec.unit.Inheritance {
		qn, entry, ok := c.lookupType(inh.Ref.Name, inh.Ref.ContextNamespace, inh.Ref.Span)
		if !ok {
			continue
		}
		ref := types.NewUnresolvedInheritance(inh.Ref.AsInheritanceSource())
		ref.Resolve(qn)

		switch {
		case entry.Kind == types.KindInterface:
			rec.entry.Class.Interfaces = append(rec.entry.Class.Interfaces, ref)
		case entry.Kind == types.KindClass && entry.Class.IsMixin:
			rec.entry.Class.Mixins = append(rec.entry.Class.Mixins, ref)
		case entry.Kind == types.KindClass:
			if rec.entry.Class.Base != nil {
				c.diags.Addf(diag.MultipleInheritance, inh.Ref.Span, "class %q already has a base class", rec.unit.Name)
				continue
			}
			if entry.Class.IsFinal {
				c.diags.Addf(diag.FinalInherited, inh.Ref.Span, "cannot inherit from final class %q", qn)
			}
			b := ref
			rec.entry.Class.Base = &b
		default:
			c.diags.Addf(diag.IncompatibleTypes, inh.Ref.Span, "%q cannot be used as a base class, mixin, or interface", qn)
		}
	}
}

func (c *completer) resolveInterfaceBases(rec *interfaceRecord) {
	for _, b := range rec.unit.Bases {
		qn, entry, ok := c.lookupType(b.Ref.Name, b.Ref.ContextNamespace, b.Ref.Span)
		if !ok {
			continue
		}
		if entry.Kind != types.KindInterface {
			c.diags.Addf(diag.IncompatibleTypes, b.Ref.Span, "%q is not an interface", qn)
			continue
		}
		ref := types.NewUnresolvedInheritance(b.Ref.AsInheritanceSource())
		ref.Resolve(qn)
		rec.entry.Interface.Bases = append(rec.entry.Interface.Bases, ref)
	}
}

// detectInheritanceCycles walks each class's base-class chain and each
// interface's base-interface graph for a revisit, raising
// InheritanceCycle (spec §7) without descending infinitely.
func (c *completer) detectInheritanceCycles() {
	for _, rec := range c.classEntry {
		seen := map[ident.TypeHash]bool{rec.entry.Hash: true}
		cur := rec.entry.Class.Base
		for cur != nil && cur.IsResolved() {
			h := ident.HashName(cur.Target())
			if seen[h] {
				c.diags.Addf(diag.InheritanceCycle, rec.unit.Span, "inheritance cycle involving %q", rec.unit.Name)
				break
			}
			seen[h] = true
			next, ok := c.classEntry[h]
			if !ok {
				break
			}
			cur = next.entry.Class.Base
		}
	}

	for _, rec := range c.interfaceEntry {
		visiting := map[ident.TypeHash]bool{}
		var walk func(r *interfaceRecord) bool
		walk = func(r *interfaceRecord) bool {
			h := r.entry.Hash
			if visiting[h] {
				return true
			}
			visiting[h] = true
			for _, b := range r.entry.Interface.Bases {
				if !b.IsResolved() {
					continue
				}
				if dep, ok := c.interfaceEntry[ident.HashName(b.Target())]; ok {
					if walk(dep) {
						return true
					}
				}
			}
			visiting[h] = false
			return false
		}
		if walk(rec) {
			c.diags.Addf(diag.InheritanceCycle, rec.unit.Span, "inheritance cycle involving %q", rec.unit.Name)
		}
	}
}
