package bytecode_test

import (
	"testing"

	"github.com/alexparlett/angelscript-go/internal/bytecode"
	"github.com/stretchr/testify/require"
)

func TestEmitterPatchHere(t *testing.T) {
	t.Parallel()

	em := bytecode.NewEmitter()
	jump := em.Emit(bytecode.OpJumpIfFalse, 0)
	em.Emit(bytecode.OpLoadConst, 1)
	em.PatchHere(jump)

	code := bytecode.Decode(em.Finalize())
	require.Len(t, code, 2)
	require.Equal(t, int64(2), code[0].Operand)
}

func TestEmitterPatchTo(t *testing.T) {
	t.Parallel()

	em := bytecode.NewEmitter()
	loopStart := em.Len()
	em.Emit(bytecode.OpNop, 0)
	back := em.Emit(bytecode.OpJump, 0)
	em.PatchTo(back, loopStart)

	code := bytecode.Decode(em.Finalize())
	require.Equal(t, int64(loopStart), code[back].Operand)
}

func TestEmitterReserveLocal(t *testing.T) {
	t.Parallel()

	em := bytecode.NewEmitter()
	require.Equal(t, 0, em.ReserveLocal())
	require.Equal(t, 1, em.ReserveLocal())
	require.Equal(t, 2, em.NumLocals())
}

func TestFinalizeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	em := bytecode.NewEmitter()
	em.Emit(bytecode.OpLoadConst, 5)
	em.Emit(bytecode.OpAdd, 0)
	em.Emit(bytecode.OpNeg, -1)
	em.Emit(bytecode.OpReturn, 0)

	code := bytecode.Decode(em.Finalize())
	require.Len(t, code, 4)
	require.Equal(t, bytecode.OpLoadConst, code[0].Op)
	require.Equal(t, int64(5), code[0].Operand)
	require.Equal(t, bytecode.OpNeg, code[2].Op)
	require.Equal(t, int64(-1), code[2].Operand)
}
