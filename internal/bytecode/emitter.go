package bytecode

import "encoding/binary"

// Emitter builds one function's instruction stream. Jumps are emitted
// with a placeholder operand and patched once their target is known
// (spec §4.6: a linear patch-list per open jump, not a CFG of basic
// blocks), mirroring nenuphar's compiler.go jump-patching style.
type Emitter struct {
	code      []Instruction
	numLocals int
}

// NewEmitter creates an empty instruction builder.
func NewEmitter() *Emitter { return &Emitter{} }

// Emit appends one instruction and returns its index.
func (e *Emitter) Emit(op Op, operand int64) int {
	e.code = append(e.code, Instruction{Op: op, Operand: operand})
	return len(e.code) - 1
}

// Len returns the number of instructions emitted so far - the address
// a forward jump should target if patched "here".
func (e *Emitter) Len() int { return len(e.code) }

// PatchTo sets the operand of the jump instruction at pos to target,
// an absolute instruction index.
func (e *Emitter) PatchTo(pos, target int) {
	e.code[pos].Operand = int64(target)
}

// PatchHere patches the jump at pos to the current end of the stream
// (the common "jump past this block" case).
func (e *Emitter) PatchHere(pos int) {
	e.PatchTo(pos, e.Len())
}

// ReserveLocal allocates the next local variable slot and returns it.
func (e *Emitter) ReserveLocal() int {
	slot := e.numLocals
	e.numLocals++
	return slot
}

// NumLocals reports how many local slots this function uses.
func (e *Emitter) NumLocals() int { return e.numLocals }

// Finalize serializes the instruction stream to a varint-encoded byte
// string: each instruction is one opcode byte followed by a
// zigzag-varint operand, the same compact encoding nenuphar's
// compiler.go uses for its own instruction stream.
func (e *Emitter) Finalize() []byte {
	buf := make([]byte, 0, len(e.code)*3)
	var scratch [binary.MaxVarintLen64]byte
	for _, in := range e.code {
		buf = append(buf, byte(in.Op))
		n := binary.PutVarint(scratch[:], in.Operand)
		buf = append(buf, scratch[:n]...)
	}
	return buf
}

// Decode reverses Finalize, for tests and the bytecode printer.
func Decode(b []byte) []Instruction {
	var out []Instruction
	for len(b) > 0 {
		op := Op(b[0])
		b = b[1:]
		operand, n := binary.Varint(b)
		b = b[n:]
		out = append(out, Instruction{Op: op, Operand: operand})
	}
	return out
}
