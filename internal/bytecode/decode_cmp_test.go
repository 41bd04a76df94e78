package bytecode_test

import (
	"testing"

	"github.com/alexparlett/angelscript-go/internal/bytecode"
	"github.com/google/go-cmp/cmp"
)

// TestFinalizeDecodeStructuralDiff runs the Finalize/Decode round trip
// across several instruction streams and reports full structural diffs
// on mismatch, rather than just the first failing field.
func TestFinalizeDecodeStructuralDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		emit func(em *bytecode.Emitter)
		want []bytecode.Instruction
	}{
		{
			name: "empty",
			emit: func(em *bytecode.Emitter) {},
			want: nil,
		},
		{
			name: "arithmetic",
			emit: func(em *bytecode.Emitter) {
				em.Emit(bytecode.OpLoadConst, 5)
				em.Emit(bytecode.OpLoadConst, 7)
				em.Emit(bytecode.OpAdd, 0)
				em.Emit(bytecode.OpReturn, 0)
			},
			want: []bytecode.Instruction{
				{Op: bytecode.OpLoadConst, Operand: 5},
				{Op: bytecode.OpLoadConst, Operand: 7},
				{Op: bytecode.OpAdd, Operand: 0},
				{Op: bytecode.OpReturn, Operand: 0},
			},
		},
		{
			name: "negative and patched operands",
			emit: func(em *bytecode.Emitter) {
				jump := em.Emit(bytecode.OpJumpIfFalse, 0)
				em.Emit(bytecode.OpNeg, -1)
				em.PatchHere(jump)
			},
			want: []bytecode.Instruction{
				{Op: bytecode.OpJumpIfFalse, Operand: 2},
				{Op: bytecode.OpNeg, Operand: -1},
			},
		},
		{
			name: "backward jump",
			emit: func(em *bytecode.Emitter) {
				loopStart := em.Len()
				em.Emit(bytecode.OpNop, 0)
				back := em.Emit(bytecode.OpJump, 0)
				em.PatchTo(back, loopStart)
			},
			want: []bytecode.Instruction{
				{Op: bytecode.OpNop, Operand: 0},
				{Op: bytecode.OpJump, Operand: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			em := bytecode.NewEmitter()
			tt.emit(em)
			got := bytecode.Decode(em.Finalize())

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("decoded instructions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
