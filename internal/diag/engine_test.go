package diag_test

import (
	"testing"

	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/stretchr/testify/require"
)

func TestEngineDiagnosticsSortedByFileThenOffset(t *testing.T) {
	t.Parallel()

	fset := ident.NewFileSet()
	unitA, fileA := fset.AddUnit("a.as", 100)
	unitB, fileB := fset.AddUnit("b.as", 100)

	e := diag.NewEngine(fset)
	e.Add(diag.Diagnostic{Kind: diag.UnknownType, Message: "b late", Primary: ident.Span{Unit: unitB, Start: fileB.Pos(50)}})
	e.Add(diag.Diagnostic{Kind: diag.UnknownType, Message: "a late", Primary: ident.Span{Unit: unitA, Start: fileA.Pos(50)}})
	e.Add(diag.Diagnostic{Kind: diag.UnknownType, Message: "a early", Primary: ident.Span{Unit: unitA, Start: fileA.Pos(5)}})

	out := e.Diagnostics()
	require.Len(t, out, 3)
	require.Equal(t, "a early", out[0].Message)
	require.Equal(t, "a late", out[1].Message)
	require.Equal(t, "b late", out[2].Message)
}

func TestEngineHasErrorsIgnoresWarnings(t *testing.T) {
	t.Parallel()

	fset := ident.NewFileSet()
	unit, file := fset.AddUnit("a.as", 10)
	e := diag.NewEngine(fset)
	require.False(t, e.HasErrors())

	e.Addf(diag.UnreachableCode, ident.Span{Unit: unit, Start: file.Pos(0)}, "unreachable")
	require.False(t, e.HasErrors(), "a warning alone must not gate commit")

	e.Addf(diag.TypeMismatch, ident.Span{Unit: unit, Start: file.Pos(1)}, "mismatch: %s vs %s", "int", "string")
	require.True(t, e.HasErrors())
}

func TestEngineAddfFormatsMessage(t *testing.T) {
	t.Parallel()

	fset := ident.NewFileSet()
	unit, file := fset.AddUnit("a.as", 10)
	e := diag.NewEngine(fset)
	e.Addf(diag.UnknownName, ident.Span{Unit: unit, Start: file.Pos(0)}, "unknown name %q", "foo")

	out := e.Diagnostics()
	require.Len(t, out, 1)
	require.Equal(t, `unknown name "foo"`, out[0].Message)
}

func TestKindIsWarningOnlyForUnreachableCode(t *testing.T) {
	t.Parallel()

	require.True(t, diag.UnreachableCode.IsWarning())
	require.False(t, diag.TypeMismatch.IsWarning())
	require.False(t, diag.InternalError.IsWarning())
}

func TestKindStringCoversKnownKinds(t *testing.T) {
	t.Parallel()

	require.Equal(t, "AmbiguousType", diag.AmbiguousType.String())
	require.Equal(t, "InternalError", diag.InternalError.String())
	require.Equal(t, "Unknown", diag.Kind(9999).String())
}

func TestCandidatesFormatsCommaList(t *testing.T) {
	t.Parallel()

	require.Equal(t, "candidates: A::Foo, B::Foo", diag.Candidates([]string{"A::Foo", "B::Foo"}))
	require.Equal(t, "candidates: ", diag.Candidates(nil))
}
