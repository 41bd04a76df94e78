package compilation

import (
	"github.com/alexparlett/angelscript-go/internal/ast"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// inferType computes an expression's static type without emitting any
// bytecode. It exists solely so call-argument overload resolution can
// see every argument's type before committing to which overload's
// parameter types the real, emitting compileExpr pass should convert
// against - argument codegen always happens exactly once, in
// compileCall, after the overload is chosen.
func (fc *funcCompiler) inferType(sc *scope, e ast.Expr) types.DataType {
	switch n := e.(type) {
	case *ast.Literal:
		return literalType(n)
	case *ast.Ident:
		return fc.inferName(sc, n.Name)
	case *ast.Binary:
		return fc.inferBinary(sc, n)
	case *ast.Unary:
		return fc.inferType(sc, n.Operand)
	case *ast.Assign:
		return fc.inferType(sc, n.Target)
	case *ast.Member:
		obj := fc.inferType(sc, n.Object)
		if f, ok := fc.lookupField(obj.Hash, n.Name); ok {
			return f.Type
		}
		return voidType()
	case *ast.Index:
		return fc.inferType(sc, n.Object)
	case *ast.Call:
		return fc.inferCall(sc, n)
	case *ast.Cast:
		return fc.resolveAstType(n.Target)
	case *ast.Ternary:
		return fc.inferType(sc, n.Then)
	}
	return voidType()
}

func literalType(n *ast.Literal) types.DataType {
	switch n.Kind {
	case ast.LitInt:
		return types.DataType{Hash: types.HashInt32}
	case ast.LitInt64:
		return types.DataType{Hash: types.HashInt64}
	case ast.LitFloat:
		return types.DataType{Hash: types.HashFloat}
	case ast.LitDouble:
		return types.DataType{Hash: types.HashDouble}
	case ast.LitString:
		return types.DataType{Hash: types.HashString, IsHandle: true}
	case ast.LitBool:
		return types.DataType{Hash: types.HashBool}
	case ast.LitNull:
		return types.DataType{Hash: types.HashNullPtr, IsHandle: true}
	}
	return voidType()
}

func (fc *funcCompiler) inferName(sc *scope, name string) types.DataType {
	if l, ok := sc.lookup(name); ok {
		return l.typ
	}
	if fc.class != nil {
		if f, ok := fc.lookupField(fc.thisHash, name); ok {
			return f.Type
		}
	}
	ctx := registry.Context{Current: fc.ctxNode}
	if res := fc.tree.ResolveGlobal(name, ctx); res.Status == registry.Found {
		return res.Entry.Type
	}
	return voidType()
}

func (fc *funcCompiler) inferBinary(sc *scope, n *ast.Binary) types.DataType {
	switch n.Op {
	case ast.OpEq, ast.OpNeq, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe, ast.OpAnd, ast.OpOr, ast.OpIs:
		return types.DataType{Hash: types.HashBool}
	default:
		return fc.inferType(sc, n.Left)
	}
}

func (fc *funcCompiler) inferCall(sc *scope, n *ast.Call) types.DataType {
	if n.IsConstructor {
		id, ok := n.Callee.(*ast.Ident)
		if !ok {
			return voidType()
		}
		if _, entry, ok2 := fc.lookupTypeByName(id.Name, n.Pos()); ok2 {
			return types.DataType{Hash: entry.Hash, IsHandle: true}
		}
		return voidType()
	}
	switch callee := n.Callee.(type) {
	case *ast.Ident:
		ctx := registry.Context{Current: fc.ctxNode}
		res := fc.tree.ResolveFunction(callee.Name, ctx)
		if res.Status != registry.Found || len(res.Overloads) == 0 {
			return voidType()
		}
		args := make([]exprInfo, len(n.Args))
		for i, a := range n.Args {
			args[i] = exprInfo{Type: fc.inferType(sc, a.Value)}
		}
		if def := fc.pickOverloadQuiet(res.Overloads, args); def != nil {
			return def.ReturnType
		}
		return res.Overloads[0].ReturnType
	case *ast.Member:
		obj := fc.inferType(sc, callee.Object)
		overloads := fc.methodOverloads(obj.Hash, callee.Name)
		if len(overloads) == 0 {
			return voidType()
		}
		return overloads[0].ReturnType
	}
	return voidType()
}

// pickOverloadQuiet mirrors resolveOverload's cost comparison without
// emitting diagnostics, used for speculative inference only.
func (fc *funcCompiler) pickOverloadQuiet(overloads []*types.FunctionDef, args []exprInfo) *types.FunctionDef {
	var best *types.FunctionDef
	bestCost := types.CostImpossible
	for _, def := range overloads {
		if len(args) > len(def.Params) {
			continue
		}
		total := types.Cost(0)
		viable := true
		for i, a := range args {
			cost := fc.conversionCost(a.Type, def.Params[i].Type)
			if cost == types.CostImpossible {
				viable = false
				break
			}
			total += cost
		}
		if viable && (best == nil || total < bestCost) {
			best, bestCost = def, total
		}
	}
	return best
}
