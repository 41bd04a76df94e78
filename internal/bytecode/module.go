package bytecode

import (
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// CompiledFunction is one function's finished bytecode (spec §6.3).
type CompiledFunction struct {
	Def       *types.FunctionDef
	Code      []byte
	NumLocals int
}

// Module is the Compilation pass's outbound artifact for one unit
// (spec §6.3 "CompiledModule"): every compiled function plus the
// shared constant pool. Diagnostics travel separately through
// internal/diag.Engine.
type Module struct {
	Functions    map[ident.TypeHash]*CompiledFunction
	ConstantPool *ConstantPool
}

// NewModule creates an empty Module backed by pool.
func NewModule(pool *ConstantPool) *Module {
	return &Module{Functions: map[ident.TypeHash]*CompiledFunction{}, ConstantPool: pool}
}
