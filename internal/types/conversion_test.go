package types_test

import (
	"fmt"
	"testing"

	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
	"github.com/stretchr/testify/require"
)

func dt(hash ident.TypeHash) types.DataType { return types.DataType{Hash: hash} }

func TestPrimitiveConversionCostTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to types.DataType
		wantCost types.Cost
		wantKind types.ConvKind
	}{
		{dt(types.HashInt32), dt(types.HashInt32), types.CostIdentity, types.ConvImplicit},
		{dt(types.HashInt8), dt(types.HashInt32), types.CostPrimitiveWidening, types.ConvImplicit},
		{dt(types.HashInt32), dt(types.HashInt8), types.CostPrimitiveNarrowing, types.ConvExplicit},
		{dt(types.HashInt32), dt(types.HashUint32), types.CostSignednessChange, types.ConvExplicit},
		{dt(types.HashInt8), dt(types.HashUint32), types.CostSignednessChange, types.ConvImplicit},
		{dt(types.HashInt32), dt(types.HashFloat), types.CostPrimitiveWidening, types.ConvImplicit},
		{dt(types.HashFloat), dt(types.HashInt32), types.CostFloatToInt, types.ConvExplicit},
		{dt(types.HashFloat), dt(types.HashDouble), types.CostPrimitiveWidening, types.ConvImplicit},
		{dt(types.HashDouble), dt(types.HashFloat), types.CostPrimitiveNarrowing, types.ConvExplicit},
		{dt(types.HashBool), dt(types.HashBool), types.CostIdentity, types.ConvImplicit},
		{dt(types.HashBool), dt(types.HashInt32), types.CostPrimitiveNarrowing, types.ConvExplicit},
	}

	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			t.Parallel()
			cost, kind, ok := types.PrimitiveConversionCost(tt.from, tt.to)
			require.True(t, ok)
			require.Equal(t, tt.wantCost, cost)
			require.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestPrimitiveConversionCostIdentityRespectsConst(t *testing.T) {
	t.Parallel()

	plain := dt(types.HashInt32)
	asConst := plain.AsConst()

	cost, kind, ok := types.PrimitiveConversionCost(plain, asConst)
	require.True(t, ok)
	require.Equal(t, types.CostAddConst, cost)
	require.Equal(t, types.ConvImplicit, kind)

	cost, _, ok = types.PrimitiveConversionCost(asConst, asConst)
	require.True(t, ok)
	require.Equal(t, types.CostIdentity, cost)
}

func TestPrimitiveConversionCostRejectsNonPrimitive(t *testing.T) {
	t.Parallel()

	classHash := ident.HashName(ident.Root("MyClass"))
	_, _, ok := types.PrimitiveConversionCost(dt(classHash), dt(types.HashInt32))
	require.False(t, ok)
}

func TestDataTypeEqualComparesTemplateArgs(t *testing.T) {
	t.Parallel()

	a := types.DataType{Hash: ident.HashName(ident.Root("array")), TemplateArgs: []types.DataType{dt(types.HashInt32)}}
	b := types.DataType{Hash: ident.HashName(ident.Root("array")), TemplateArgs: []types.DataType{dt(types.HashInt32)}}
	c := types.DataType{Hash: ident.HashName(ident.Root("array")), TemplateArgs: []types.DataType{dt(types.HashFloat)}}

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestDataTypeAsHandleAndAsConst(t *testing.T) {
	t.Parallel()

	base := dt(types.HashInt32)
	handle := base.AsHandle()
	require.True(t, handle.IsHandle)
	require.False(t, base.IsHandle, "AsHandle must not mutate the receiver")

	constVal := base.AsConst()
	require.True(t, constVal.IsConst)
	require.False(t, base.IsConst)
}
