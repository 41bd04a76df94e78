package registry_test

import (
	"testing"

	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/alexparlett/angelscript-go/internal/types"
	"github.com/stretchr/testify/require"
)

func registerClass(t *testing.T, tree *registry.Tree, ns ident.NodeRef, simple string) *types.TypeEntry {
	t.Helper()
	qn := tree.QualifiedNameIn(ns, simple)
	entry := &types.TypeEntry{Kind: types.KindClass, Name: qn, Hash: ident.HashName(qn), Class: &types.ClassType{}}
	require.NoError(t, tree.RegisterType(ns, simple, entry))
	return entry
}

func TestResolveTypeStage1WalksAncestors(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	a, _ := tree.GetOrCreatePath([]string{"A"})
	b, _ := tree.GetOrCreatePath([]string{"A", "B"})
	registerClass(t, tree, a, "Foo")

	res := tree.ResolveType("Foo", registry.Context{Current: b})
	require.Equal(t, registry.Found, res.Status)
	require.Equal(t, "A::Foo", res.Entry.Name.String())
}

func TestResolveTypeNotFound(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	res := tree.ResolveType("Nope", registry.Context{Current: tree.Root()})
	require.Equal(t, registry.NotFound, res.Status)
}

func TestResolveTypeStage2SingleUsesMatch(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	a, _ := tree.GetOrCreatePath([]string{"A"})
	b, _ := tree.GetOrCreatePath([]string{"B"})
	registerClass(t, tree, a, "Foo")
	tree.AddUsingEdge(b, a)

	res := tree.ResolveType("Foo", registry.Context{Current: b})
	require.Equal(t, registry.Found, res.Status)
}

func TestResolveTypeStage2AmbiguousAcrossTwoUses(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	a, _ := tree.GetOrCreatePath([]string{"A"})
	b, _ := tree.GetOrCreatePath([]string{"B"})
	c, _ := tree.GetOrCreatePath([]string{"C"})
	registerClass(t, tree, a, "Foo")
	registerClass(t, tree, b, "Foo")
	tree.AddUsingEdge(c, a)
	tree.AddUsingEdge(c, b)

	res := tree.ResolveType("Foo", registry.Context{Current: c})
	require.Equal(t, registry.Ambiguous, res.Status)
	require.Len(t, res.Candidates, 2)
}

func TestResolveTypeQualifiedNameBypassesUses(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	a, _ := tree.GetOrCreatePath([]string{"A"})
	registerClass(t, tree, a, "Foo")

	res := tree.ResolveType("A::Foo", registry.Context{Current: tree.Root()})
	require.Equal(t, registry.Found, res.Status)
}

func TestResolveTypeFallsBackToPrimitivesAtRoot(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	a, _ := tree.GetOrCreatePath([]string{"A"})
	res := tree.ResolveType("int", registry.Context{Current: a})
	require.Equal(t, registry.Found, res.Status)
	require.Equal(t, types.KindPrimitive, res.Entry.Kind)
}

func TestResolveFunctionOverloadSetAndAmbiguity(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	a, _ := tree.GetOrCreatePath([]string{"A"})
	b, _ := tree.GetOrCreatePath([]string{"B"})
	c, _ := tree.GetOrCreatePath([]string{"C"})

	qnA := tree.QualifiedNameIn(a, "Do")
	qnB := tree.QualifiedNameIn(b, "Do")
	require.NoError(t, tree.RegisterFunction(a, "Do", &types.FunctionDef{Name: qnA, Hash: ident.HashFunction(qnA, nil)}))
	require.NoError(t, tree.RegisterFunction(a, "Do", &types.FunctionDef{Name: qnA, Hash: ident.HashFunction(qnA, []ident.TypeHash{0}), Params: []types.Param{{Name: "x"}}}))
	require.NoError(t, tree.RegisterFunction(b, "Do", &types.FunctionDef{Name: qnB, Hash: ident.HashFunction(qnB, nil)}))

	res := tree.ResolveFunction("Do", registry.Context{Current: a})
	require.Equal(t, registry.Found, res.Status)
	require.Len(t, res.Overloads, 2)

	tree.AddUsingEdge(c, a)
	tree.AddUsingEdge(c, b)
	amb := tree.ResolveFunction("Do", registry.Context{Current: c})
	require.Equal(t, registry.Ambiguous, amb.Status)
}

func TestResolveGlobalStage1AndAmbiguity(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	a, _ := tree.GetOrCreatePath([]string{"A"})
	b, _ := tree.GetOrCreatePath([]string{"B"})
	c, _ := tree.GetOrCreatePath([]string{"C"})

	require.NoError(t, tree.RegisterGlobal(a, "g", &types.GlobalEntry{Name: tree.QualifiedNameIn(a, "g")}))
	res := tree.ResolveGlobal("g", registry.Context{Current: a})
	require.Equal(t, registry.Found, res.Status)

	require.NoError(t, tree.RegisterGlobal(b, "g", &types.GlobalEntry{Name: tree.QualifiedNameIn(b, "g")}))
	tree.AddUsingEdge(c, a)
	tree.AddUsingEdge(c, b)
	amb := tree.ResolveGlobal("g", registry.Context{Current: c})
	require.Equal(t, registry.Ambiguous, amb.Status)
}
