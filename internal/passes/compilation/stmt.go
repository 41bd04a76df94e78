package compilation

import (
	"github.com/alexparlett/angelscript-go/internal/ast"
	"github.com/alexparlett/angelscript-go/internal/bytecode"
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// compileBlock compiles every statement of b in sequence, inside its
// own lexical scope (spec §4.4.1).
func (fc *funcCompiler) compileBlock(b *ast.Block, sc *scope) {
	for _, s := range b.Stmts {
		fc.compileStmt(sc, s)
	}
}

func (fc *funcCompiler) compileStmt(sc *scope, s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		fc.compileBlock(n, newScope(sc))
	case *ast.VarDecl:
		fc.compileVarDecl(sc, n)
	case *ast.ExprStmt:
		fc.compileExpr(sc, n.X)
		fc.em.Emit(bytecode.OpPop, 0)
	case *ast.If:
		fc.compileIf(sc, n)
	case *ast.While:
		fc.compileWhile(sc, n)
	case *ast.DoWhile:
		fc.compileDoWhile(sc, n)
	case *ast.For:
		fc.compileFor(sc, n)
	case *ast.Switch:
		fc.compileSwitch(sc, n)
	case *ast.Return:
		fc.compileReturn(sc, n)
	case *ast.Break:
		fc.compileBreak(n)
	case *ast.Continue:
		fc.compileContinue(n)
	case *ast.TryCatch:
		fc.compileTryCatch(sc, n)
	default:
		fc.diags.Addf(diag.TypeMismatch, s.Pos(), "unsupported statement")
	}
}

func (fc *funcCompiler) compileVarDecl(sc *scope, n *ast.VarDecl) {
	typ := fc.resolveAstType(n.Type)
	slot := fc.em.ReserveLocal()
	if !sc.declare(n.Name, &local{slot: slot, typ: typ, isConst: n.IsConst}) {
		fc.diags.Addf(diag.DuplicateDeclaration, n.Pos(), "duplicate local %q", n.Name)
	}
	if n.Initializer != nil {
		value := fc.compileExpr(sc, n.Initializer)
		if cost := fc.conversionCost(value.Type, typ); cost == types.CostImpossible {
			fc.diags.Addf(diag.TypeMismatch, n.Pos(), "cannot initialize %q with incompatible type", n.Name)
		} else if cost != types.CostIdentity {
			fc.em.Emit(bytecode.OpConvert, int64(typ.Hash))
		}
		fc.em.Emit(bytecode.OpStoreLocal, int64(slot))
	}
}

func (fc *funcCompiler) compileIf(sc *scope, n *ast.If) {
	fc.compileExpr(sc, n.Cond)
	toElse := fc.em.Emit(bytecode.OpJumpIfFalse, 0)
	fc.compileStmt(newScope(sc), n.Then)
	if n.Else == nil {
		fc.em.PatchHere(toElse)
		return
	}
	toEnd := fc.em.Emit(bytecode.OpJump, 0)
	fc.em.PatchHere(toElse)
	fc.compileStmt(newScope(sc), n.Else)
	fc.em.PatchHere(toEnd)
}

func (fc *funcCompiler) compileWhile(sc *scope, n *ast.While) {
	start := fc.em.Len()
	fc.compileExpr(sc, n.Cond)
	toEnd := fc.em.Emit(bytecode.OpJumpIfFalse, 0)

	lc := &loopContext{continueTarget: start, hasContinueTarget: true}
	fc.loops = append(fc.loops, lc)
	fc.compileStmt(newScope(sc), n.Body)
	fc.loops = fc.loops[:len(fc.loops)-1]

	fc.em.Emit(bytecode.OpJump, 0)
	fc.em.PatchTo(fc.em.Len()-1, start)
	fc.em.PatchHere(toEnd)
	fc.patchBreaks(lc)
}

func (fc *funcCompiler) compileDoWhile(sc *scope, n *ast.DoWhile) {
	start := fc.em.Len()
	lc := &loopContext{}
	fc.loops = append(fc.loops, lc)
	fc.compileStmt(newScope(sc), n.Body)
	fc.loops = fc.loops[:len(fc.loops)-1]

	continueTarget := fc.em.Len()
	fc.compileExpr(sc, n.Cond)
	fc.em.Emit(bytecode.OpJumpIfTrue, 0)
	fc.em.PatchTo(fc.em.Len()-1, start)

	for _, p := range lc.continuePatches {
		fc.em.PatchTo(p, continueTarget)
	}
	fc.patchBreaks(lc)
}

func (fc *funcCompiler) compileFor(sc *scope, n *ast.For) {
	inner := newScope(sc)
	if n.Init != nil {
		fc.compileStmt(inner, n.Init)
	}

	condPos := fc.em.Len()
	var toEnd int
	hasCond := n.Cond != nil
	if hasCond {
		fc.compileExpr(inner, n.Cond)
		toEnd = fc.em.Emit(bytecode.OpJumpIfFalse, 0)
	}

	lc := &loopContext{}
	fc.loops = append(fc.loops, lc)
	fc.compileStmt(newScope(inner), n.Body)

	postPos := fc.em.Len()
	if n.Post != nil {
		fc.compileExpr(inner, n.Post)
		fc.em.Emit(bytecode.OpPop, 0)
	}
	fc.loops = fc.loops[:len(fc.loops)-1]

	fc.em.Emit(bytecode.OpJump, 0)
	fc.em.PatchTo(fc.em.Len()-1, condPos)
	if hasCond {
		fc.em.PatchHere(toEnd)
	}
	for _, p := range lc.continuePatches {
		fc.em.PatchTo(p, postPos)
	}
	fc.patchBreaks(lc)
}

// patchBreaks resolves every break collected in lc to the current end
// of the stream. Continue patches are always resolved by the specific
// loop construct that knows where its own continue target lands
// (loop-head for while, post-expression for for, condition for
// do-while), not here.
func (fc *funcCompiler) patchBreaks(lc *loopContext) {
	here := fc.em.Len()
	for _, p := range lc.breakPatches {
		fc.em.PatchTo(p, here)
	}
}

// compileSwitch lowers a switch to a linear chain of compare-and-branch
// tests, in source order, with default (if present) falling last (spec
// §4.4.5). This is the straightforward linear-scan lowering rather
// than a jump table, consistent with the emitter's simple patch-list
// model.
func (fc *funcCompiler) compileSwitch(sc *scope, n *ast.Switch) {
	tag := fc.compileExpr(sc, n.Tag)
	if !tag.Type.IsEnum && !isIntegralSwitchHash(tag.Type.Hash) {
		fc.diags.Addf(diag.TypeMismatch, n.Tag.Pos(), "switch tag must be an integer or enum type")
	}

	lc := &loopContext{isSwitch: true}
	fc.loops = append(fc.loops, lc)

	var defaultCase *ast.Case
	var bodyEnds []int
	var nextTest int
	hasNextTest := false
	seen := map[int64]bool{}

	for i := range n.Cases {
		c := &n.Cases[i]
		if c.Value == nil {
			defaultCase = c
			continue
		}
		if v, ok := constCaseValue(c.Value); ok {
			if seen[v] {
				fc.diags.Addf(diag.DuplicateCase, c.Value.Pos(), "duplicate case value %d", v)
			}
			seen[v] = true
		}
		if hasNextTest {
			fc.em.PatchHere(nextTest)
		}
		fc.em.Emit(bytecode.OpDup, 0)
		fc.compileExpr(sc, c.Value)
		fc.em.Emit(bytecode.OpCmpEq, 0)
		nextTest = fc.em.Emit(bytecode.OpJumpIfFalse, 0)
		hasNextTest = true
		fc.em.Emit(bytecode.OpPop, 0)
		for _, st := range c.Stmts {
			fc.compileStmt(sc, st)
		}
		bodyEnds = append(bodyEnds, fc.em.Emit(bytecode.OpJump, 0))
	}
	if hasNextTest {
		fc.em.PatchHere(nextTest)
	}
	fc.em.Emit(bytecode.OpPop, 0)
	if defaultCase != nil {
		for _, st := range defaultCase.Stmts {
			fc.compileStmt(sc, st)
		}
	}
	for _, p := range bodyEnds {
		fc.em.PatchHere(p)
	}

	fc.loops = fc.loops[:len(fc.loops)-1]
	fc.patchBreaks(lc)
}

func (fc *funcCompiler) compileReturn(sc *scope, n *ast.Return) {
	if n.Value == nil {
		fc.em.Emit(bytecode.OpReturnVoid, 0)
		return
	}
	value := fc.compileExpr(sc, n.Value)
	if cost := fc.conversionCost(value.Type, fc.returnType); cost == types.CostImpossible {
		fc.diags.Addf(diag.TypeMismatch, n.Pos(), "return value is not compatible with the declared return type")
	} else if cost != types.CostIdentity {
		fc.em.Emit(bytecode.OpConvert, int64(fc.returnType.Hash))
	}
	fc.em.Emit(bytecode.OpReturn, 0)
}

func (fc *funcCompiler) compileBreak(n *ast.Break) {
	if len(fc.loops) == 0 {
		fc.diags.Addf(diag.BreakOutsideLoop, n.Pos(), "break outside of a loop or switch")
		return
	}
	lc := fc.loops[len(fc.loops)-1]
	lc.breakPatches = append(lc.breakPatches, fc.em.Emit(bytecode.OpJump, 0))
}

func (fc *funcCompiler) compileContinue(n *ast.Continue) {
	var lc *loopContext
	for i := len(fc.loops) - 1; i >= 0; i-- {
		if !fc.loops[i].isSwitch {
			lc = fc.loops[i]
			break
		}
	}
	if lc == nil {
		fc.diags.Addf(diag.ContinueOutsideLoop, n.Pos(), "continue outside of a loop")
		return
	}
	pos := fc.em.Emit(bytecode.OpJump, 0)
	if lc.hasContinueTarget {
		fc.em.PatchTo(pos, lc.continueTarget)
	} else {
		lc.continuePatches = append(lc.continuePatches, pos)
	}
}

// isIntegralSwitchHash reports whether hash is one of the integer
// primitive types a switch tag may use (spec §4.4.5); enums are
// checked separately via DataType.IsEnum since they share no hash with
// a fixed primitive.
func isIntegralSwitchHash(hash ident.TypeHash) bool {
	switch hash {
	case types.HashInt8, types.HashInt16, types.HashInt32, types.HashInt64,
		types.HashUint8, types.HashUint16, types.HashUint32, types.HashUint64:
		return true
	default:
		return false
	}
}

// constCaseValue evaluates a case label as a compile-time integer
// constant, the minimal constant-folding a switch needs to detect
// duplicate cases (spec §8.3). Integer literals and unary -/~ applied
// to a foldable label are folded; any other label (e.g. an enum member
// reference) is not, and so never participates in duplicate detection.
func constCaseValue(e ast.Expr) (int64, bool) {
	switch n := e.(type) {
	case *ast.Literal:
		switch n.Kind {
		case ast.LitInt, ast.LitInt64:
			return n.Int, true
		case ast.LitBool:
			if n.Bool {
				return 1, true
			}
			return 0, true
		}
	case *ast.Unary:
		if v, ok := constCaseValue(n.Operand); ok {
			switch n.Op {
			case ast.OpNeg:
				return -v, true
			case ast.OpCom:
				return ^v, true
			}
		}
	}
	return 0, false
}

// blockAlwaysReturns reports whether every path through b ends in a
// return statement (spec §4.4.5's MissingReturn check). It is
// deliberately conservative: loops and switches are never treated as
// guaranteeing a return, since proving that would require knowing
// whether their condition is a constant or whether every case (and
// fallthrough) is covered.
func blockAlwaysReturns(b *ast.Block) bool {
	for _, s := range b.Stmts {
		if stmtAlwaysReturns(s) {
			return true
		}
	}
	return false
}

func stmtAlwaysReturns(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.Return:
		return true
	case *ast.Block:
		return blockAlwaysReturns(n)
	case *ast.If:
		return n.Else != nil && stmtAlwaysReturns(n.Then) && stmtAlwaysReturns(n.Else)
	case *ast.TryCatch:
		return blockAlwaysReturns(n.Try) && blockAlwaysReturns(n.Catch.Body)
	}
	return false
}

// compileTryCatch compiles both the try block and the catch block
// unconditionally in sequence, since exception-table unwinding is out
// of scope for this pass: the catch body is reachable only through
// whatever runtime support the host VM adds, not through any branch
// this pass emits.
func (fc *funcCompiler) compileTryCatch(sc *scope, n *ast.TryCatch) {
	fc.compileBlock(n.Try, newScope(sc))
	fc.compileBlock(n.Catch.Body, newScope(sc))
}
