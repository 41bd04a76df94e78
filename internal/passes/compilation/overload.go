package compilation

import (
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// conversionCost extends types.PrimitiveConversionCost with the
// class/interface-handle rules that need inheritance data only the
// registry has (spec §4.5: handle upcast cost 3, class->interface cost
// 5), falling back to CostImpossible when no route exists.
func (fc *funcCompiler) conversionCost(from, to types.DataType) types.Cost {
	if cost, _, ok := types.PrimitiveConversionCost(from, to); ok {
		return cost
	}
	if from.Hash == to.Hash {
		if from.IsHandle != to.IsHandle {
			return types.CostImpossible
		}
		if from.IsHandle && !types.HandleCompatible(from, to) {
			return types.CostImpossible
		}
		if from.IsConst && !to.IsConst {
			return types.CostImpossible
		}
		if !from.IsConst && to.IsConst {
			return types.CostAddConst
		}
		return types.CostIdentity
	}
	if from.IsHandle && to.IsHandle {
		if fc.isAncestorClass(from.Hash, to.Hash) {
			return types.CostHandleUpcast
		}
		if fc.implementsInterface(from.Hash, to.Hash) {
			return types.CostClassToInterface
		}
	}
	return types.CostImpossible
}

func (fc *funcCompiler) isAncestorClass(fromHash, toHash ident.TypeHash) bool {
	entry, ok := fc.tree.GetByHash(fromHash)
	if !ok || entry.Kind != types.KindClass {
		return false
	}
	base := entry.Class.Base
	for base != nil && base.IsResolved() {
		h := ident.HashName(base.Target())
		if h == toHash {
			return true
		}
		next, ok := fc.tree.GetByHash(h)
		if !ok || next.Kind != types.KindClass {
			return false
		}
		base = next.Class.Base
	}
	return false
}

func (fc *funcCompiler) implementsInterface(fromHash, toHash ident.TypeHash) bool {
	entry, ok := fc.tree.GetByHash(fromHash)
	if !ok || entry.Kind != types.KindClass {
		return false
	}
	for cur := entry; cur != nil; {
		for _, iref := range cur.Class.Interfaces {
			if iref.IsResolved() && ident.HashName(iref.Target()) == toHash {
				return true
			}
		}
		base := cur.Class.Base
		if base == nil || !base.IsResolved() {
			break
		}
		next, ok := fc.tree.GetByHash(ident.HashName(base.Target()))
		if !ok {
			break
		}
		cur = next
	}
	return false
}

// resolveOverload picks the cheapest viable candidate for args among
// overloads, raising NoMatchingOverload or AmbiguousOverload as
// appropriate (spec §4.4.3); an arity mismatch is reported as
// NoMatchingOverload.
func (fc *funcCompiler) resolveOverload(name string, overloads []*types.FunctionDef, args []exprInfo, span ident.Span) *types.FunctionDef {
	var best *types.FunctionDef
	bestCost := types.CostImpossible
	tie := false

	for _, def := range overloads {
		if len(args) > len(def.Params) {
			continue
		}
		missing := false
		for i := len(args); i < len(def.Params); i++ {
			if !def.Params[i].HasDefault {
				missing = true
				break
			}
		}
		if missing {
			continue
		}
		total := types.Cost(0)
		viable := true
		for i, a := range args {
			cost := fc.conversionCost(a.Type, def.Params[i].Type)
			if cost == types.CostImpossible {
				viable = false
				break
			}
			total += cost
		}
		if !viable {
			continue
		}
		switch {
		case best == nil || total < bestCost:
			best, bestCost, tie = def, total, false
		case total == bestCost:
			tie = true
		}
	}

	if best == nil {
		fc.diags.Addf(diag.NoMatchingOverload, span, "no matching overload for %q", name)
		return nil
	}
	if tie {
		fc.diags.Addf(diag.AmbiguousOverload, span, "ambiguous call to %q", name)
		return nil
	}
	return best
}
