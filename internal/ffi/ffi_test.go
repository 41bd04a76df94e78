package ffi_test

import (
	"testing"

	"github.com/alexparlett/angelscript-go/internal/ffi"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/stretchr/testify/require"
)

func TestEmptyHostRegistryResolvesNothing(t *testing.T) {
	t.Parallel()

	var reg ffi.HostRegistry = ffi.Empty{}

	_, ok := reg.ResolveTypeName("int", nil, nil)
	require.False(t, ok)

	_, ok = reg.GetByHash(ident.TypeHash(1))
	require.False(t, ok)

	require.Nil(t, reg.GetFunctionsByName(ident.Root("print")))
}
