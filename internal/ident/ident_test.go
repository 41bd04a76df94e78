package ident_test

import (
	"testing"

	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/stretchr/testify/require"
)

func TestQualifiedNameString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Foo", ident.Root("Foo").String())
	require.Equal(t, "A::B::Foo", ident.New("Foo", []string{"A", "B"}).String())
}

func TestQualifiedNameChild(t *testing.T) {
	t.Parallel()

	parent := ident.New("Outer", []string{"A"})
	child := parent.Child("Inner")
	require.Equal(t, "A::Outer::Inner", child.String())
}

func TestQualifiedNameEqual(t *testing.T) {
	t.Parallel()

	a := ident.New("Foo", []string{"A", "B"})
	b := ident.New("Foo", []string{"A", "B"})
	c := ident.New("Foo", []string{"A", "C"})
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestFromString(t *testing.T) {
	t.Parallel()

	qn := ident.FromString("A::B::Foo")
	require.Equal(t, "Foo", qn.Simple)
	require.Equal(t, []string{"A", "B"}, qn.Namespace)

	root := ident.FromString("Foo")
	require.Equal(t, "Foo", root.Simple)
	require.Empty(t, root.Namespace)

	// A leading "::" denotes an absolute path, but QualifiedName itself
	// carries no relative/absolute distinction.
	abs := ident.FromString("::A::Foo")
	require.Equal(t, qn.Simple, abs.Simple)
}

func TestHashNameIsStableAndNamespaceSensitive(t *testing.T) {
	t.Parallel()

	a := ident.HashName(ident.New("Foo", []string{"A"}))
	b := ident.HashName(ident.New("Foo", []string{"A"}))
	c := ident.HashName(ident.New("Foo", []string{"B"}))
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestHashFunctionEncodesOverloadIdentity(t *testing.T) {
	t.Parallel()

	qn := ident.Root("Foo")
	noArgs := ident.HashFunction(qn, nil)
	oneArg := ident.HashFunction(qn, []ident.TypeHash{1})
	sameOneArg := ident.HashFunction(qn, []ident.TypeHash{1})
	differentArg := ident.HashFunction(qn, []ident.TypeHash{2})

	require.NotEqual(t, noArgs, oneArg)
	require.Equal(t, oneArg, sameOneArg)
	require.NotEqual(t, oneArg, differentArg)
}

func TestQualifiedNameKeyDistinguishesSimpleFromNamespace(t *testing.T) {
	t.Parallel()

	a := ident.New("Foo", []string{"A"})
	b := ident.New("Foo", []string{"A"})
	c := ident.New("AFoo", nil)
	require.Equal(t, a.Key(), b.Key())
	require.NotEqual(t, a.Key(), c.Key())
}
