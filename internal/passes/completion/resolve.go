package completion

import (
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/alexparlett/angelscript-go/internal/types"
	"github.com/alexparlett/angelscript-go/internal/unresolved"
)

// resolveTypeRef resolves one unresolved.TypeRef against the tree
// using the three-stage algorithm (spec §4.1), reporting UnknownType
// or AmbiguousType on failure. A failed resolution degrades to a void
// placeholder so later phases can proceed without re-deriving the same
// failure (spec §4.3: emits a placeholder as necessary to avoid
// cascades).
func (c *completer) resolveTypeRef(ref unresolved.TypeRef) types.DataType {
	_, entry, ok := c.lookupType(ref.Name, ref.ContextNamespace, ref.Span)
	if !ok {
		return voidPlaceholder()
	}

	dt := types.DataType{
		Hash: entry.Hash, IsConst: ref.IsConst, IsHandle: ref.IsHandle,
		IsHandleToConst: ref.IsHandleToConst, Ref: ref.RefModifier,
		IsInterface: entry.Kind == types.KindInterface,
		IsEnum:      entry.Kind == types.KindEnum,
		IsMixin:     entry.Kind == types.KindClass && entry.Class.IsMixin,
	}
	if len(ref.TemplateArgs) > 0 {
		dt.TemplateArgs = make([]types.DataType, len(ref.TemplateArgs))
		for i, a := range ref.TemplateArgs {
			dt.TemplateArgs[i] = c.resolveTypeRef(a)
		}
	}
	return dt
}

// lookupType runs the three-stage algorithm for name within ctxPath,
// reporting its own diagnostics on failure.
func (c *completer) lookupType(name string, ctxPath []string, span ident.Span) (ident.QualifiedName, *types.TypeEntry, bool) {
	ctx := registry.Context{Current: c.node(ctxPath)}
	res := c.tree.ResolveType(name, ctx)
	switch res.Status {
	case registry.NotFound:
		c.diags.Addf(diag.UnknownType, span, "unknown type %q", name)
		return ident.QualifiedName{}, nil, false
	case registry.Ambiguous:
		names := make([]string, len(res.Candidates))
		for i, cand := range res.Candidates {
			names[i] = cand.Name.String()
		}
		c.diags.Addf(diag.AmbiguousType, span, "ambiguous type %q; %s", name, diag.Candidates(names))
		return ident.QualifiedName{}, nil, false
	}
	return res.Entry.Name, res.Entry, true
}

func voidPlaceholder() types.DataType {
	return types.DataType{Hash: types.HashVoid}
}
