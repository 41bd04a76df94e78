package registration_test

import (
	"testing"

	"github.com/alexparlett/angelscript-go/internal/ast"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/passes/registration"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/alexparlett/angelscript-go/internal/types"
	"github.com/alexparlett/angelscript-go/internal/unresolved"
	"github.com/stretchr/testify/require"
)

func namedType(path ...string) ast.TypeExpr {
	return ast.TypeExpr{Ty: ast.Type{Kind: ast.TypeNamed, Path: path}}
}

func TestRunCollectsClassAndFunction(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	script := &ast.Script{Items: []ast.Item{
		&ast.Class{Name: "Widget", Fields: []ast.FieldItem{
			{Name: "count", Type: namedType("int")},
		}},
		&ast.Function{Name: "main", ReturnType: ast.TypeExpr{Ty: ast.Type{Kind: ast.TypeVoid}}},
	}}

	res := registration.Run(tree, ident.UnitID(0), tree.Root(), script)
	require.Len(t, res.Classes, 1)
	require.Equal(t, "Widget", res.Classes[0].Name.Simple)
	require.Len(t, res.Classes[0].Fields, 1)
	require.Equal(t, "int", res.Classes[0].Fields[0].Type.Name)

	require.Len(t, res.Functions, 1)
	require.Equal(t, "main", res.Functions[0].Name.Simple)
	require.Empty(t, res.Errors)
}

func TestRunDetectsDuplicateDeclaration(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	script := &ast.Script{Items: []ast.Item{
		&ast.Class{Name: "Widget"},
		&ast.Class{Name: "Widget"},
	}}

	res := registration.Run(tree, ident.UnitID(0), tree.Root(), script)
	require.Len(t, res.Classes, 1, "the second declaration is rejected, not appended")
	require.Len(t, res.Errors, 1)
	require.Equal(t, unresolved.ErrDuplicateDeclaration, res.Errors[0].Kind)
}

func TestRunNestsNamespaceItems(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	script := &ast.Script{Items: []ast.Item{
		&ast.Namespace{Segments: []string{"Game"}, Items: []ast.Item{
			&ast.Class{Name: "Player"},
		}},
	}}

	res := registration.Run(tree, ident.UnitID(0), tree.Root(), script)
	require.Len(t, res.Classes, 1)
	require.Equal(t, "Game::Player", res.Classes[0].Name.String())
}

func TestRunCollectsUsingDirective(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	script := &ast.Script{Items: []ast.Item{
		&ast.UsingNamespace{Path: []string{"Game", "Util"}},
	}}

	res := registration.Run(tree, ident.UnitID(0), tree.Root(), script)
	require.Len(t, res.Usings, 1)
	require.Equal(t, []string{"Game", "Util"}, res.Usings[0].TargetNamespace)
	require.Empty(t, res.Usings[0].SourceNamespace)
}

func TestRunRejectsConstructorsOnMixins(t *testing.T) {
	t.Parallel()

	tree := registry.New(nil)
	script := &ast.Script{Items: []ast.Item{
		&ast.Class{Name: "Mix", IsMixin: true, Methods: []ast.MethodItem{
			{Name: "Mix", Kind: types.MethodConstructor},
		}},
	}}

	res := registration.Run(tree, ident.UnitID(0), tree.Root(), script)
	require.Len(t, res.Classes, 1)
	require.Empty(t, res.Classes[0].Methods, "the constructor must be rejected, not registered")
	require.Len(t, res.Errors, 1)
	require.Equal(t, unresolved.ErrInvalidMixinMember, res.Errors[0].Kind)
}
