package registry

import (
	"strings"

	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// Status is the outcome of a name resolution (spec §4.1).
type Status int

const (
	NotFound Status = iota
	Found
	Ambiguous
)

// Context is the lexical context a resolution is performed in: which
// namespace node "current" expressions are considered relative to.
type Context struct {
	Current ident.NodeRef
}

// TypeResolution is the result of resolve_type.
type TypeResolution struct {
	Status     Status
	Entry      *types.TypeEntry
	Node       ident.NodeRef
	Candidates []TypeCandidate
}

// TypeCandidate names one of several ambiguous matches, for diagnostics
// (spec §7: "AmbiguousType ... must list all candidates with their
// qualified names").
type TypeCandidate struct {
	Name  ident.QualifiedName
	Entry *types.TypeEntry
}

// ResolveType implements spec §4.1's resolve_type algorithm.
func (t *Tree) ResolveType(name string, ctx Context) TypeResolution {
	if strings.Contains(name, "::") {
		return t.resolveQualifiedType(name)
	}

	// Stage 1: walk from ctx.Current up through parents to root.
	for n := ctx.Current; ; {
		if e, ok := t.TypeIn(n, name); ok {
			return TypeResolution{Status: Found, Entry: e, Node: n}
		}
		nd := t.node(n)
		if !nd.hasParent {
			break
		}
		n = nd.parent
	}

	// Stage 2: collect via exactly one Uses edge out of any visited
	// node (current + ancestors), de-duplicated by TypeHash. Uses is
	// non-transitive (stage 3 below is just "don't do it again").
	var candidates []TypeCandidate
	seen := map[ident.TypeHash]bool{}
	for n := ctx.Current; ; {
		for _, target := range t.UsesOf(n) {
			if e, ok := t.TypeIn(target, name); ok {
				if !seen[e.Hash] {
					seen[e.Hash] = true
					candidates = append(candidates, TypeCandidate{Name: t.QualifiedNameIn(target, name), Entry: e})
				}
			}
		}
		nd := t.node(n)
		if !nd.hasParent {
			break
		}
		n = nd.parent
	}

	// Fall back to the host FFI registry for names not found locally.
	if len(candidates) == 0 {
		if e, ok := t.ffi.ResolveTypeName(name, t.PathOf(ctx.Current), nil); ok {
			return TypeResolution{Status: Found, Entry: &e}
		}
		return TypeResolution{Status: NotFound}
	}
	if len(candidates) == 1 {
		return TypeResolution{Status: Found, Entry: candidates[0].Entry, Node: ident.Invalid, Candidates: candidates}
	}
	return TypeResolution{Status: Ambiguous, Candidates: candidates}
}

func (t *Tree) resolveQualifiedType(name string) TypeResolution {
	path := strings.TrimPrefix(name, "::")
	parts := strings.Split(path, "::")
	simple := parts[len(parts)-1]
	nsPath := parts[:len(parts)-1]

	cur := t.root
	for _, seg := range nsPath {
		child, ok := t.node(cur).children.Load(seg)
		if !ok {
			return TypeResolution{Status: NotFound}
		}
		cur = child
	}
	if e, ok := t.TypeIn(cur, simple); ok {
		return TypeResolution{Status: Found, Entry: e, Node: cur}
	}
	return TypeResolution{Status: NotFound}
}

// FunctionResolution is the result of resolving a name to an overload
// set (spec §4.1: "Function ... resolution follow the same three-stage
// algorithm").
type FunctionResolution struct {
	Status     Status
	Overloads  []*types.FunctionDef
	Candidates []ident.QualifiedName // populated only when Ambiguous
}

// ResolveFunction resolves name to an overload set using the same
// three-stage walk as ResolveType. Step 2 returns the overload vector
// at the first matching Uses target; any subsequent Uses target with
// the same name makes the resolution Ambiguous.
func (t *Tree) ResolveFunction(name string, ctx Context) FunctionResolution {
	if strings.Contains(name, "::") {
		return t.resolveQualifiedFunction(name)
	}

	for n := ctx.Current; ; {
		if fns, ok := t.FunctionsIn(n, name); ok {
			return FunctionResolution{Status: Found, Overloads: fns}
		}
		nd := t.node(n)
		if !nd.hasParent {
			break
		}
		n = nd.parent
	}

	var found []ident.QualifiedName
	var overloads []*types.FunctionDef
	for n := ctx.Current; ; {
		for _, target := range t.UsesOf(n) {
			if fns, ok := t.FunctionsIn(target, name); ok {
				found = append(found, t.QualifiedNameIn(target, name))
				if overloads == nil {
					overloads = fns
				}
			}
		}
		nd := t.node(n)
		if !nd.hasParent {
			break
		}
		n = nd.parent
	}

	switch len(found) {
	case 0:
		if fns := t.ffi.GetFunctionsByName(ident.Root(name)); len(fns) > 0 {
			return FunctionResolution{Status: Found, Overloads: fns}
		}
		return FunctionResolution{Status: NotFound}
	case 1:
		return FunctionResolution{Status: Found, Overloads: overloads}
	default:
		return FunctionResolution{Status: Ambiguous, Candidates: found}
	}
}

func (t *Tree) resolveQualifiedFunction(name string) FunctionResolution {
	path := strings.TrimPrefix(name, "::")
	parts := strings.Split(path, "::")
	simple := parts[len(parts)-1]
	nsPath := parts[:len(parts)-1]

	cur := t.root
	for _, seg := range nsPath {
		child, ok := t.node(cur).children.Load(seg)
		if !ok {
			return FunctionResolution{Status: NotFound}
		}
		cur = child
	}
	if fns, ok := t.FunctionsIn(cur, simple); ok {
		return FunctionResolution{Status: Found, Overloads: fns}
	}
	return FunctionResolution{Status: NotFound}
}

// GlobalResolution is the result of resolving a bare name to a global
// variable.
type GlobalResolution struct {
	Status     Status
	Entry      *types.GlobalEntry
	Candidates []ident.QualifiedName
}

// ResolveGlobal resolves name to a GlobalEntry using the same
// three-stage walk.
func (t *Tree) ResolveGlobal(name string, ctx Context) GlobalResolution {
	for n := ctx.Current; ; {
		if g, ok := t.GlobalIn(n, name); ok {
			return GlobalResolution{Status: Found, Entry: g}
		}
		nd := t.node(n)
		if !nd.hasParent {
			break
		}
		n = nd.parent
	}

	var found []ident.QualifiedName
	var entry *types.GlobalEntry
	seen := map[ident.NodeRef]bool{}
	for n := ctx.Current; ; {
		for _, target := range t.UsesOf(n) {
			if seen[target] {
				continue
			}
			if g, ok := t.GlobalIn(target, name); ok {
				seen[target] = true
				found = append(found, t.QualifiedNameIn(target, name))
				if entry == nil {
					entry = g
				}
			}
		}
		nd := t.node(n)
		if !nd.hasParent {
			break
		}
		n = nd.parent
	}

	switch len(found) {
	case 0:
		return GlobalResolution{Status: NotFound}
	case 1:
		return GlobalResolution{Status: Found, Entry: entry}
	default:
		return GlobalResolution{Status: Ambiguous, Candidates: found}
	}
}
