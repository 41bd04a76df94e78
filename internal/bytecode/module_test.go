package bytecode_test

import (
	"testing"

	"github.com/alexparlett/angelscript-go/internal/bytecode"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/stretchr/testify/require"
)

func TestNewModuleStartsEmpty(t *testing.T) {
	t.Parallel()

	pool := bytecode.NewConstantPool(0)
	mod := bytecode.NewModule(pool)
	require.Empty(t, mod.Functions)
	require.Same(t, pool, mod.ConstantPool)

	mod.Functions[ident.TypeHash(1)] = &bytecode.CompiledFunction{Code: []byte{0x01}, NumLocals: 2}
	require.Len(t, mod.Functions, 1)
}
