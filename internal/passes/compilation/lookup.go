package compilation

import (
	"strings"

	"github.com/alexparlett/angelscript-go/internal/ast"
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/alexparlett/angelscript-go/internal/types"
)

func voidType() types.DataType { return types.DataType{Hash: types.HashVoid} }

// lookupField searches classHash's own properties, then its base
// chain, for name.
func (fc *funcCompiler) lookupField(classHash ident.TypeHash, name string) (types.FieldDef, bool) {
	for cur, ok := fc.tree.GetByHash(classHash); ok && cur.Kind == types.KindClass; {
		for _, f := range cur.Class.Properties {
			if f.Name == name {
				return f, true
			}
		}
		base := cur.Class.Base
		if base == nil || !base.IsResolved() {
			return types.FieldDef{}, false
		}
		cur, ok = fc.tree.GetByHash(ident.HashName(base.Target()))
	}
	return types.FieldDef{}, false
}

// methodOverloads searches classHash's own methods, then its base
// chain, for name's overload set.
func (fc *funcCompiler) methodOverloads(classHash ident.TypeHash, name string) []*types.FunctionDef {
	for cur, ok := fc.tree.GetByHash(classHash); ok && cur.Kind == types.KindClass; {
		if hashes, has := cur.Class.Methods[name]; has {
			out := make([]*types.FunctionDef, 0, len(hashes))
			for _, h := range hashes {
				out = append(out, cur.Class.MethodDefs[h])
			}
			return out
		}
		base := cur.Class.Base
		if base == nil || !base.IsResolved() {
			return nil
		}
		cur, ok = fc.tree.GetByHash(ident.HashName(base.Target()))
	}
	return nil
}

// defsFromHashes resolves a behavior slot (constructors, factories, ...)
// to its FunctionDefs via entry's own MethodDefs map.
func defsFromHashes(entry *types.TypeEntry, hashes []ident.TypeHash) []*types.FunctionDef {
	out := make([]*types.FunctionDef, 0, len(hashes))
	for _, h := range hashes {
		if def := entry.Class.MethodDefs[h]; def != nil {
			out = append(out, def)
		}
	}
	return out
}

// isVirtualSlot reports whether def occupies a vtable slot of the
// class at classHash (spec §3.3, §4.4: virtual dispatch uses
// OpCallVirtual, everything else uses a direct OpCall).
func (fc *funcCompiler) isVirtualSlot(classHash ident.TypeHash, def *types.FunctionDef) bool {
	entry, ok := fc.tree.GetByHash(classHash)
	if !ok || entry.Kind != types.KindClass {
		return false
	}
	sig := methodSig(def)
	return entry.Class.VTable.SlotOf(sig) >= 0
}

func methodSig(def *types.FunctionDef) types.MethodSignature {
	params := make([]types.DataType, len(def.Params))
	for i, p := range def.Params {
		params[i] = p.Type
	}
	return types.MethodSignature{Name: def.Name.Simple, Params: params, ReturnType: def.ReturnType, IsConst: def.Traits.Const}
}

// lookupTypeByName resolves a bare type name against fc's context.
func (fc *funcCompiler) lookupTypeByName(name string, span ident.Span) (ident.QualifiedName, *types.TypeEntry, bool) {
	ctx := registry.Context{Current: fc.ctxNode}
	res := fc.tree.ResolveType(name, ctx)
	switch res.Status {
	case registry.NotFound:
		fc.diags.Addf(diag.UnknownType, span, "unknown type %q", name)
		return ident.QualifiedName{}, nil, false
	case registry.Ambiguous:
		names := make([]string, len(res.Candidates))
		for i, cand := range res.Candidates {
			names[i] = cand.Name.String()
		}
		fc.diags.Addf(diag.AmbiguousType, span, "ambiguous type %q; %s", name, diag.Candidates(names))
		return ident.QualifiedName{}, nil, false
	}
	return res.Entry.Name, res.Entry, true
}

// resolveAstType resolves a raw ast.TypeExpr (as seen in a Cast or
// VarDecl) to a DataType, using the same three-stage algorithm as the
// Completion pass, but operating directly on the AST's textual shape
// since the Compilation pass never builds an unresolved.TypeRef.
func (fc *funcCompiler) resolveAstType(t ast.TypeExpr) types.DataType {
	if t.Ty.Kind == ast.TypeVoid {
		return types.DataType{Hash: types.HashVoid}
	}
	name := strings.Join(t.Ty.Path, "::")
	_, entry, ok := fc.lookupTypeByName(name, t.Span)
	if !ok {
		return voidType()
	}
	dt := types.DataType{
		Hash: entry.Hash, IsConst: t.IsConst, IsHandle: t.IsHandle, IsHandleToConst: t.IsHandleToConst,
		Ref: t.RefModifier, IsInterface: entry.Kind == types.KindInterface, IsEnum: entry.Kind == types.KindEnum,
		IsMixin: entry.Kind == types.KindClass && entry.Class.IsMixin,
	}
	for _, a := range t.Ty.Args {
		dt.TemplateArgs = append(dt.TemplateArgs, fc.resolveAstType(a))
	}
	return dt
}
