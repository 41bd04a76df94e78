package compiler_test

import (
	"fmt"
	"testing"

	"github.com/alexparlett/angelscript-go/compiler"
	"github.com/alexparlett/angelscript-go/internal/ast"
	"github.com/alexparlett/angelscript-go/internal/config"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/stretchr/testify/require"
)

// voidUnit builds a single-function unit named name, the function
// itself also named fn, with an empty void body.
func voidUnit(name, fn string) compiler.Unit {
	script := &ast.Script{Items: []ast.Item{
		&ast.Function{
			Name:       fn,
			ReturnType: ast.TypeExpr{Ty: ast.Type{Kind: ast.TypeVoid}},
			Body:       &ast.Block{},
		},
	}}
	return compiler.Unit{Name: name, Size: 1, Script: script}
}

// TestCompileUnitsConcurrentIsolation runs many units through
// CompileUnits with a bounded worker pool and isolated namespaces
// (spec §5, §3.2): every unit must compile its own "main" function
// independently, with no result crossing over into another unit's
// slot, regardless of the goroutine interleaving the pool schedules.
func TestCompileUnitsConcurrentIsolation(t *testing.T) {
	t.Parallel()

	const n = 16
	units := make([]compiler.Unit, n)
	for i := range units {
		units[i] = voidUnit(fmt.Sprintf("unit_%d.as", i), "main")
	}

	tree := registry.New(nil)
	fset := ident.NewFileSet()
	opts := config.Default()
	opts.MaxParallelUnits = 8

	results := compiler.CompileUnits(tree, fset, opts, units)
	require.Len(t, results, n)
	for i, r := range results {
		require.Equal(t, units[i].Name, r.Unit, "result %d must stay paired with its own unit", i)
		require.Empty(t, r.Diagnostics)
		require.Len(t, r.Module.Functions, 1)
	}
}
