package bytecode_test

import (
	"testing"

	"github.com/alexparlett/angelscript-go/internal/bytecode"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/stretchr/testify/require"
)

func TestConstantPoolInterns(t *testing.T) {
	t.Parallel()

	p := bytecode.NewConstantPool(0)
	i1 := p.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: 42})
	i2 := p.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: 42})
	i3 := p.Intern(bytecode.Constant{Kind: bytecode.ConstString, Str: "hi"})

	require.Equal(t, i1, i2, "interning the same constant twice must return the same index")
	require.NotEqual(t, i1, i3)
	require.Equal(t, 2, p.Len())

	c, err := p.Get(i3)
	require.NoError(t, err)
	require.Equal(t, "hi", c.Str)
}

func TestConstantPoolGetOutOfRange(t *testing.T) {
	t.Parallel()

	p := bytecode.NewConstantPool(0)
	p.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: 1})
	_, err := p.Get(5)
	require.Error(t, err)
}

func TestConstantPoolCompactRoundTrips(t *testing.T) {
	t.Parallel()

	p := bytecode.NewConstantPool(1) // compact immediately
	iInt := p.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: -7})
	iFloat := p.Intern(bytecode.Constant{Kind: bytecode.ConstFloat, Float: 3.5})
	iStr := p.Intern(bytecode.Constant{Kind: bytecode.ConstString, Str: "hello world"})
	iHash := p.Intern(bytecode.Constant{Kind: bytecode.ConstTypeHash, Hash: ident.TypeHash(123456)})

	// Get decompresses transparently on first access after a threshold
	// crossing triggered Compact.
	got, err := p.Get(iInt)
	require.NoError(t, err)
	require.Equal(t, int64(-7), got.Int)

	got, err = p.Get(iFloat)
	require.NoError(t, err)
	require.InDelta(t, 3.5, got.Float, 0.0001)

	got, err = p.Get(iStr)
	require.NoError(t, err)
	require.Equal(t, "hello world", got.Str)

	got, err = p.Get(iHash)
	require.NoError(t, err)
	require.Equal(t, ident.TypeHash(123456), got.Hash)
}

func TestConstantPoolInternPanicsAfterCompact(t *testing.T) {
	t.Parallel()

	p := bytecode.NewConstantPool(0)
	p.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: 1})
	p.Compact()
	require.Panics(t, func() {
		p.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: 2})
	})
}
