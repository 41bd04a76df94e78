package compilation

import (
	"github.com/alexparlett/angelscript-go/internal/ast"
	"github.com/alexparlett/angelscript-go/internal/bytecode"
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// exprInfo is what compiling one expression hands back to its caller:
// the value's static type and whether it names a storable location
// (spec §4.4.2, §4.4.3's "lvalue" requirement for Assign targets and
// &out/&inout arguments).
type exprInfo struct {
	Type       types.DataType
	IsLValue   bool
	local      *local
	field      *types.FieldDef
	globalHash ident.TypeHash
	isGlobal   bool
}

// compileExpr evaluates e, leaving its value on top of the stack, and
// returns its static type plus lvalue-ness. Every expression kind is
// visited exactly once; any sub-expression that itself needs to be
// re-evaluated (e.g. overload-selection lookahead) goes through the
// non-emitting inferType instead.
func (fc *funcCompiler) compileExpr(sc *scope, e ast.Expr) exprInfo {
	switch n := e.(type) {
	case *ast.Literal:
		return fc.compileLiteral(n)
	case *ast.Ident:
		return fc.compileName(sc, n.Name, n.Pos())
	case *ast.Binary:
		return fc.compileBinary(sc, n)
	case *ast.Unary:
		return fc.compileUnary(sc, n)
	case *ast.Assign:
		return fc.compileAssign(sc, n)
	case *ast.Member:
		return fc.compileMember(sc, n)
	case *ast.Index:
		return fc.compileIndex(sc, n)
	case *ast.Call:
		return fc.compileCall(sc, n)
	case *ast.Cast:
		return fc.compileCast(sc, n)
	case *ast.Ternary:
		return fc.compileTernary(sc, n)
	}
	fc.diags.Addf(diag.TypeMismatch, e.Pos(), "unsupported expression")
	return exprInfo{Type: voidType()}
}

func (fc *funcCompiler) compileLiteral(n *ast.Literal) exprInfo {
	switch n.Kind {
	case ast.LitInt:
		idx := fc.pool.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: n.Int})
		fc.em.Emit(bytecode.OpLoadConst, int64(idx))
		return exprInfo{Type: types.DataType{Hash: types.HashInt32}}
	case ast.LitInt64:
		idx := fc.pool.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: n.Int})
		fc.em.Emit(bytecode.OpLoadConst, int64(idx))
		return exprInfo{Type: types.DataType{Hash: types.HashInt64}}
	case ast.LitFloat:
		idx := fc.pool.Intern(bytecode.Constant{Kind: bytecode.ConstFloat, Float: n.Real})
		fc.em.Emit(bytecode.OpLoadConst, int64(idx))
		return exprInfo{Type: types.DataType{Hash: types.HashFloat}}
	case ast.LitDouble:
		idx := fc.pool.Intern(bytecode.Constant{Kind: bytecode.ConstFloat, Float: n.Real})
		fc.em.Emit(bytecode.OpLoadConst, int64(idx))
		return exprInfo{Type: types.DataType{Hash: types.HashDouble}}
	case ast.LitString:
		idx := fc.pool.Intern(bytecode.Constant{Kind: bytecode.ConstString, Str: n.Str})
		fc.em.Emit(bytecode.OpLoadConst, int64(idx))
		return exprInfo{Type: types.DataType{Hash: types.HashString, IsHandle: true}}
	case ast.LitBool:
		v := int64(0)
		if n.Bool {
			v = 1
		}
		idx := fc.pool.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: v})
		fc.em.Emit(bytecode.OpLoadConst, int64(idx))
		return exprInfo{Type: types.DataType{Hash: types.HashBool}}
	case ast.LitNull:
		idx := fc.pool.Intern(bytecode.Constant{Kind: bytecode.ConstTypeHash, Hash: types.HashNullPtr})
		fc.em.Emit(bytecode.OpLoadConst, int64(idx))
		return exprInfo{Type: types.DataType{Hash: types.HashNullPtr, IsHandle: true}}
	}
	return exprInfo{Type: voidType()}
}

// compileName resolves a bare identifier against locals, then (inside
// a method) implicit `this` fields, then namespace globals (spec
// §4.1's three-stage algorithm, specialized for expression context).
func (fc *funcCompiler) compileName(sc *scope, name string, span ident.Span) exprInfo {
	if l, ok := sc.lookup(name); ok {
		fc.em.Emit(bytecode.OpLoadLocal, int64(l.slot))
		return exprInfo{Type: l.typ, IsLValue: true, local: l}
	}
	if fc.class != nil {
		if f, ok := fc.lookupField(fc.thisHash, name); ok {
			thisLocal, _ := sc.lookup("this")
			fc.em.Emit(bytecode.OpLoadLocal, int64(thisLocal.slot))
			fc.em.Emit(bytecode.OpLoadField, int64(f.Offset))
			field := f
			return exprInfo{Type: f.Type, IsLValue: true, field: &field}
		}
	}
	ctx := registry.Context{Current: fc.ctxNode}
	switch res := fc.tree.ResolveGlobal(name, ctx); res.Status {
	case registry.Found:
		h := ident.HashName(res.Entry.Name)
		fc.em.Emit(bytecode.OpLoadGlobal, int64(h))
		return exprInfo{Type: res.Entry.Type, IsLValue: true, globalHash: h, isGlobal: true}
	case registry.Ambiguous:
		names := make([]string, len(res.Candidates))
		for i, c := range res.Candidates {
			names[i] = c.String()
		}
		fc.diags.Addf(diag.UnknownName, span, "ambiguous name %q; %s", name, diag.Candidates(names))
	default:
		fc.diags.Addf(diag.UnknownName, span, "unknown name %q", name)
	}
	return exprInfo{Type: voidType()}
}

// storeTo emits the store half of an assignment into target (a
// previously-compiled lvalue), leaving nothing extra on the stack
// beyond the value already pushed by the caller.
func (fc *funcCompiler) storeTo(sc *scope, target exprInfo) {
	switch {
	case target.local != nil:
		fc.em.Emit(bytecode.OpStoreLocal, int64(target.local.slot))
	case target.field != nil:
		thisLocal, _ := sc.lookup("this")
		fc.em.Emit(bytecode.OpLoadLocal, int64(thisLocal.slot))
		fc.em.Emit(bytecode.OpStoreField, int64(target.field.Offset))
	case target.isGlobal:
		fc.em.Emit(bytecode.OpStoreGlobal, int64(target.globalHash))
	}
}

func (fc *funcCompiler) compileBinary(sc *scope, n *ast.Binary) exprInfo {
	switch n.Op {
	case ast.OpAnd, ast.OpOr:
		return fc.compileShortCircuit(sc, n)
	}

	left := fc.compileExpr(sc, n.Left)
	right := fc.compileExpr(sc, n.Right)

	switch n.Op {
	case ast.OpAdd:
		fc.em.Emit(bytecode.OpAdd, 0)
		return exprInfo{Type: left.Type}
	case ast.OpSub:
		fc.em.Emit(bytecode.OpSub, 0)
		return exprInfo{Type: left.Type}
	case ast.OpMul:
		fc.em.Emit(bytecode.OpMul, 0)
		return exprInfo{Type: left.Type}
	case ast.OpDiv:
		fc.em.Emit(bytecode.OpDiv, 0)
		return exprInfo{Type: left.Type}
	case ast.OpMod:
		fc.em.Emit(bytecode.OpMod, 0)
		return exprInfo{Type: left.Type}
	case ast.OpBitAnd:
		fc.em.Emit(bytecode.OpBitAnd, 0)
		return exprInfo{Type: left.Type}
	case ast.OpBitOr:
		fc.em.Emit(bytecode.OpBitOr, 0)
		return exprInfo{Type: left.Type}
	case ast.OpBitXor:
		fc.em.Emit(bytecode.OpBitXor, 0)
		return exprInfo{Type: left.Type}
	case ast.OpShl:
		fc.em.Emit(bytecode.OpShl, 0)
		return exprInfo{Type: left.Type}
	case ast.OpShr:
		fc.em.Emit(bytecode.OpShr, 0)
		return exprInfo{Type: left.Type}
	case ast.OpEq:
		fc.em.Emit(bytecode.OpCmpEq, 0)
		return exprInfo{Type: types.DataType{Hash: types.HashBool}}
	case ast.OpNeq:
		fc.em.Emit(bytecode.OpCmpNeq, 0)
		return exprInfo{Type: types.DataType{Hash: types.HashBool}}
	case ast.OpLt:
		fc.em.Emit(bytecode.OpCmpLt, 0)
		return exprInfo{Type: types.DataType{Hash: types.HashBool}}
	case ast.OpLe:
		fc.em.Emit(bytecode.OpCmpLe, 0)
		return exprInfo{Type: types.DataType{Hash: types.HashBool}}
	case ast.OpGt:
		fc.em.Emit(bytecode.OpCmpGt, 0)
		return exprInfo{Type: types.DataType{Hash: types.HashBool}}
	case ast.OpGe:
		fc.em.Emit(bytecode.OpCmpGe, 0)
		return exprInfo{Type: types.DataType{Hash: types.HashBool}}
	case ast.OpIs:
		fc.em.Emit(bytecode.OpIsHandleEqual, 0)
		return exprInfo{Type: types.DataType{Hash: types.HashBool}}
	}
	_ = right
	return exprInfo{Type: voidType()}
}

// compileShortCircuit implements && and || with the emitter's
// patch-list jump model rather than always evaluating both operands.
func (fc *funcCompiler) compileShortCircuit(sc *scope, n *ast.Binary) exprInfo {
	fc.compileExpr(sc, n.Left)
	var skip int
	if n.Op == ast.OpAnd {
		skip = fc.em.Emit(bytecode.OpJumpIfFalse, 0)
	} else {
		skip = fc.em.Emit(bytecode.OpJumpIfTrue, 0)
	}
	fc.compileExpr(sc, n.Right)
	done := fc.em.Emit(bytecode.OpJump, 0)
	fc.em.PatchHere(skip)
	shortCircuitVal := int64(0)
	if n.Op == ast.OpOr {
		shortCircuitVal = 1
	}
	idx := fc.pool.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: shortCircuitVal})
	fc.em.Emit(bytecode.OpLoadConst, int64(idx))
	fc.em.PatchHere(done)
	return exprInfo{Type: types.DataType{Hash: types.HashBool}}
}

func (fc *funcCompiler) compileUnary(sc *scope, n *ast.Unary) exprInfo {
	switch n.Op {
	case ast.OpPreInc, ast.OpPreDec, ast.OpPostInc, ast.OpPostDec:
		return fc.compileIncDec(sc, n)
	}

	info := fc.compileExpr(sc, n.Operand)
	switch n.Op {
	case ast.OpNeg:
		fc.em.Emit(bytecode.OpNeg, 0)
	case ast.OpCom:
		fc.em.Emit(bytecode.OpBitNot, 0)
	case ast.OpNot:
		idx := fc.pool.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: 1})
		fc.em.Emit(bytecode.OpLoadConst, int64(idx))
		fc.em.Emit(bytecode.OpBitXor, 0)
	}
	return exprInfo{Type: info.Type}
}

// compileIncDec lowers ++/-- to load, add/subtract one, store, with
// the original value left on the stack for a postfix operator and the
// updated value left for a prefix operator.
func (fc *funcCompiler) compileIncDec(sc *scope, n *ast.Unary) exprInfo {
	if _, isMember := n.Operand.(*ast.Member); isMember {
		fc.diags.Addf(diag.TypeMismatch, n.Pos(), "increment/decrement of a member expression is not supported")
		return fc.compileExpr(sc, n.Operand)
	}
	target := fc.compileExpr(sc, n.Operand)
	isPost := n.Op == ast.OpPostInc || n.Op == ast.OpPostDec
	if isPost {
		fc.em.Emit(bytecode.OpDup, 0)
	}
	one := fc.pool.Intern(bytecode.Constant{Kind: bytecode.ConstInt, Int: 1})
	fc.em.Emit(bytecode.OpLoadConst, int64(one))
	if n.Op == ast.OpPreInc || n.Op == ast.OpPostInc {
		fc.em.Emit(bytecode.OpAdd, 0)
	} else {
		fc.em.Emit(bytecode.OpSub, 0)
	}
	// A prefix operator's result is the updated value, so the copy the
	// store consumes must be duplicated first, leaving one copy behind.
	// A postfix operator's result is the original value (already
	// duplicated above), so its post-store copy is discarded instead.
	fc.em.Emit(bytecode.OpDup, 0)
	fc.storeTo(sc, target)
	if isPost {
		fc.em.Emit(bytecode.OpPop, 0)
	}
	return exprInfo{Type: target.Type}
}

func (fc *funcCompiler) compileAssign(sc *scope, n *ast.Assign) exprInfo {
	if m, ok := n.Target.(*ast.Member); ok {
		return fc.compileMemberAssign(sc, m, n)
	}
	if _, ok := n.Target.(*ast.Index); ok {
		fc.diags.Addf(diag.TypeMismatch, n.Pos(), "assignment through an index expression is not supported")
		fc.compileExpr(sc, n.Target)
		fc.em.Emit(bytecode.OpPop, 0)
		return fc.compileExpr(sc, n.Value)
	}
	target := fc.compileExpr(sc, n.Target)
	if !target.IsLValue {
		fc.diags.Addf(diag.NotLValue, n.Pos(), "assignment target is not an lvalue")
	} else if target.local != nil && target.local.isConst {
		fc.diags.Addf(diag.ConstViolation, n.Pos(), "cannot assign to const variable")
	}
	fc.em.Emit(bytecode.OpPop, 0)
	value := fc.compileExpr(sc, n.Value)
	cost := fc.conversionCost(value.Type, target.Type)
	if cost == types.CostImpossible {
		fc.diags.Addf(diag.TypeMismatch, n.Pos(), "cannot assign incompatible type")
	} else if cost != types.CostIdentity {
		fc.em.Emit(bytecode.OpConvert, int64(target.Type.Hash))
	}
	fc.em.Emit(bytecode.OpDup, 0)
	if n.IsHandle {
		fc.storeHandle(sc, target)
	} else {
		fc.storeTo(sc, target)
	}
	return exprInfo{Type: target.Type}
}

func (fc *funcCompiler) storeHandle(sc *scope, target exprInfo) {
	switch {
	case target.local != nil:
		fc.em.Emit(bytecode.OpHandleAssign, int64(target.local.slot))
	default:
		fc.storeTo(sc, target)
	}
}

// compileMemberAssign stores into an explicit `obj.field = value`
// target. The object is evaluated exactly once (via inferType for the
// field lookup, then for real immediately before OpStoreField), which
// is why it does not reuse the generic compileAssign path: that path's
// storeTo always reloads `this`, correct only for implicit-field
// assignment through a bare name.
func (fc *funcCompiler) compileMemberAssign(sc *scope, t *ast.Member, n *ast.Assign) exprInfo {
	objType := fc.inferType(sc, t.Object)
	f, ok := fc.lookupField(objType.Hash, t.Name)
	if !ok {
		fc.diags.Addf(diag.UnknownName, t.Pos(), "unknown field %q", t.Name)
		fc.compileExpr(sc, t.Object)
		fc.em.Emit(bytecode.OpPop, 0)
		fc.compileExpr(sc, n.Value)
		return exprInfo{Type: voidType()}
	}
	value := fc.compileExpr(sc, n.Value)
	cost := fc.conversionCost(value.Type, f.Type)
	if cost == types.CostImpossible {
		fc.diags.Addf(diag.TypeMismatch, n.Pos(), "cannot assign incompatible type")
	} else if cost != types.CostIdentity {
		fc.em.Emit(bytecode.OpConvert, int64(f.Type.Hash))
	}
	fc.em.Emit(bytecode.OpDup, 0)
	fc.compileExpr(sc, t.Object)
	fc.em.Emit(bytecode.OpStoreField, int64(f.Offset))
	return exprInfo{Type: f.Type}
}

func (fc *funcCompiler) compileMember(sc *scope, n *ast.Member) exprInfo {
	obj := fc.compileExpr(sc, n.Object)
	f, ok := fc.lookupField(obj.Type.Hash, n.Name)
	if !ok {
		fc.diags.Addf(diag.UnknownName, n.Pos(), "unknown field %q", n.Name)
		return exprInfo{Type: voidType()}
	}
	fc.em.Emit(bytecode.OpLoadField, int64(f.Offset))
	field := f
	return exprInfo{Type: f.Type, IsLValue: true, field: &field}
}

// compileIndex lowers `a[i]` to a call of the `opIndex` operator
// method on a's class, the same pragmatic single-operator-name
// simplification the registry's conformance checks make for operator
// overloading generally.
func (fc *funcCompiler) compileIndex(sc *scope, n *ast.Index) exprInfo {
	obj := fc.compileExpr(sc, n.Object)
	arg := exprInfo{Type: fc.inferType(sc, n.Arg)}
	overloads := fc.methodOverloads(obj.Type.Hash, "opIndex")
	def := fc.resolveOverload("opIndex", overloads, []exprInfo{arg}, n.Pos())
	if def == nil {
		fc.compileExpr(sc, n.Arg)
		return exprInfo{Type: voidType()}
	}
	fc.compileArg(sc, n.Arg, def.Params[0].Type)
	if fc.isVirtualSlot(obj.Type.Hash, def) {
		fc.em.Emit(bytecode.OpCallVirtual, int64(def.Hash))
	} else {
		fc.em.Emit(bytecode.OpCall, int64(def.Hash))
	}
	return exprInfo{Type: def.ReturnType, IsLValue: true}
}

func (fc *funcCompiler) compileCast(sc *scope, n *ast.Cast) exprInfo {
	target := fc.resolveAstType(n.Target)
	value := fc.compileExpr(sc, n.Value)
	cost := fc.conversionCost(value.Type, target)
	if cost == types.CostImpossible {
		fc.diags.Addf(diag.TypeMismatch, n.Pos(), "invalid cast")
	} else if cost != types.CostIdentity {
		fc.em.Emit(bytecode.OpConvert, int64(target.Hash))
	}
	return exprInfo{Type: target}
}

func (fc *funcCompiler) compileTernary(sc *scope, n *ast.Ternary) exprInfo {
	fc.compileExpr(sc, n.Cond)
	toElse := fc.em.Emit(bytecode.OpJumpIfFalse, 0)
	then := fc.compileExpr(sc, n.Then)
	toEnd := fc.em.Emit(bytecode.OpJump, 0)
	fc.em.PatchHere(toElse)
	fc.compileExpr(sc, n.Else)
	fc.em.PatchHere(toEnd)
	return exprInfo{Type: then.Type}
}

// compileArg compiles one call argument, converting it to target if
// the chosen overload requires a non-identity conversion.
func (fc *funcCompiler) compileArg(sc *scope, e ast.Expr, target types.DataType) {
	info := fc.compileExpr(sc, e)
	if cost := fc.conversionCost(info.Type, target); cost != types.CostIdentity && cost != types.CostImpossible {
		fc.em.Emit(bytecode.OpConvert, int64(target.Hash))
	}
}

func (fc *funcCompiler) compileCall(sc *scope, n *ast.Call) exprInfo {
	if n.IsConstructor {
		return fc.compileConstructorCall(sc, n)
	}
	switch callee := n.Callee.(type) {
	case *ast.Ident:
		return fc.compileFreeCall(sc, callee, n)
	case *ast.Member:
		return fc.compileMethodCall(sc, callee, n)
	}
	fc.diags.Addf(diag.TypeMismatch, n.Pos(), "expression is not callable")
	fc.compileArgsUnconverted(sc, n.Args)
	return exprInfo{Type: voidType()}
}

func (fc *funcCompiler) compileConstructorCall(sc *scope, n *ast.Call) exprInfo {
	id, ok := n.Callee.(*ast.Ident)
	if !ok {
		fc.diags.Addf(diag.TypeMismatch, n.Pos(), "invalid constructor call")
		return exprInfo{Type: voidType()}
	}
	_, entry, ok2 := fc.lookupTypeByName(id.Name, n.Pos())
	if !ok2 || entry.Kind != types.KindClass {
		if ok2 {
			fc.diags.Addf(diag.TypeMismatch, n.Pos(), "%q is not constructible", id.Name)
		}
		return exprInfo{Type: voidType()}
	}
	args := fc.argTypes(sc, n.Args)
	overloads := defsFromHashes(entry, entry.Class.Behaviors.Constructors)
	def := fc.resolveOverload(id.Name, overloads, args, n.Pos())
	fc.em.Emit(bytecode.OpNewObject, int64(entry.Hash))
	if def != nil {
		fc.compileArgsFor(sc, n.Args, def)
		fc.em.Emit(bytecode.OpCall, int64(def.Hash))
	}
	return exprInfo{Type: types.DataType{Hash: entry.Hash, IsHandle: true}}
}

func (fc *funcCompiler) compileFreeCall(sc *scope, callee *ast.Ident, n *ast.Call) exprInfo {
	ctx := registry.Context{Current: fc.ctxNode}
	res := fc.tree.ResolveFunction(callee.Name, ctx)
	switch res.Status {
	case registry.NotFound:
		fc.diags.Addf(diag.UnknownName, n.Pos(), "unknown function %q", callee.Name)
		fc.compileArgsUnconverted(sc, n.Args)
		return exprInfo{Type: voidType()}
	case registry.Ambiguous:
		fc.diags.Addf(diag.AmbiguousCall, n.Pos(), "ambiguous call to %q", callee.Name)
		fc.compileArgsUnconverted(sc, n.Args)
		return exprInfo{Type: voidType()}
	}
	args := fc.argTypes(sc, n.Args)
	def := fc.resolveOverload(callee.Name, res.Overloads, args, n.Pos())
	if def == nil {
		fc.compileArgsUnconverted(sc, n.Args)
		return exprInfo{Type: voidType()}
	}
	fc.compileArgsFor(sc, n.Args, def)
	fc.em.Emit(bytecode.OpCall, int64(def.Hash))
	return exprInfo{Type: def.ReturnType}
}

func (fc *funcCompiler) compileMethodCall(sc *scope, callee *ast.Member, n *ast.Call) exprInfo {
	obj := fc.compileExpr(sc, callee.Object)
	overloads := fc.methodOverloads(obj.Type.Hash, callee.Name)
	if len(overloads) == 0 {
		fc.diags.Addf(diag.UnknownName, n.Pos(), "unknown method %q", callee.Name)
		fc.compileArgsUnconverted(sc, n.Args)
		return exprInfo{Type: voidType()}
	}
	args := fc.argTypes(sc, n.Args)
	def := fc.resolveOverload(callee.Name, overloads, args, n.Pos())
	if def == nil {
		fc.compileArgsUnconverted(sc, n.Args)
		return exprInfo{Type: voidType()}
	}
	if (obj.Type.IsConst || obj.Type.IsHandleToConst) && !def.Traits.Const {
		fc.diags.Addf(diag.ConstMethodCall, n.Pos(), "cannot call non-const method %q on a const object", callee.Name)
	}
	fc.compileArgsFor(sc, n.Args, def)
	if obj.Type.IsInterface {
		fc.em.Emit(bytecode.OpCallInterface, int64(def.Hash))
	} else if fc.isVirtualSlot(obj.Type.Hash, def) {
		fc.em.Emit(bytecode.OpCallVirtual, int64(def.Hash))
	} else {
		fc.em.Emit(bytecode.OpCall, int64(def.Hash))
	}
	return exprInfo{Type: def.ReturnType}
}

// argTypes infers each argument's static type without emitting code,
// used only to pick an overload before the real (emitting) pass.
func (fc *funcCompiler) argTypes(sc *scope, args []ast.Arg) []exprInfo {
	out := make([]exprInfo, len(args))
	for i, a := range args {
		out[i] = exprInfo{Type: fc.inferType(sc, a.Value)}
	}
	return out
}

// compileArgsFor emits every argument's real code, converting each to
// def's matching parameter type. Arguments are emitted right-to-left,
// last argument first (spec §4.4.2, §5: a fixed language rule, not an
// implementation choice) - the conversion pairing against def.Params
// stays indexed by original position, only the emission order reverses.
func (fc *funcCompiler) compileArgsFor(sc *scope, args []ast.Arg, def *types.FunctionDef) {
	for i := len(args) - 1; i >= 0; i-- {
		fc.compileArg(sc, args[i].Value, def.Params[i].Type)
	}
}

// compileArgsUnconverted emits every argument's code with no target
// type, used when overload resolution already failed so there is no
// parameter list to convert against. Still right-to-left, for the same
// reason as compileArgsFor.
func (fc *funcCompiler) compileArgsUnconverted(sc *scope, args []ast.Arg) {
	for i := len(args) - 1; i >= 0; i-- {
		fc.compileExpr(sc, args[i].Value)
	}
}
