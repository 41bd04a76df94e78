// Package compilation implements Pass 3 (spec §4.4): walks each
// function/method body exactly once, resolving local scope, checking
// and converting expression types, resolving overloads by conversion
// cost, and emitting bytecode with a linear jump-patch model.
package compilation

import (
	"github.com/alexparlett/angelscript-go/internal/ast"
	"github.com/alexparlett/angelscript-go/internal/bytecode"
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/alexparlett/angelscript-go/internal/types"
	"github.com/alexparlett/angelscript-go/internal/unresolved"
)

// Run compiles every function and method body captured in reg against
// the (already Completed) tree, and returns the resulting module. reg
// must be the same RegistrationResult Completion consumed, since
// bodies live only in its unresolved.Function/Method nodes - the
// resolved signatures they correspond to are re-derived by recomputing
// the identical func_hash Completion assigned them.
func Run(tree *registry.Tree, reg *unresolved.RegistrationResult, diags *diag.Engine, pool *bytecode.ConstantPool) *bytecode.Module {
	mod := bytecode.NewModule(pool)
	cb := &compilerBase{tree: tree, diags: diags, pool: pool}

	for _, fn := range reg.Functions {
		if fn.Body == nil {
			continue
		}
		hash := ident.HashFunction(fn.Name, paramHashesOf(tree, fn))
		def, ok := tree.GetFunctionByHash(hash)
		if !ok {
			continue
		}
		mod.Functions[hash] = cb.compileFunction(def, nil, fn.Body, fn.Name.Namespace)
	}

	for _, cls := range reg.Classes {
		classHash := ident.HashName(cls.Name)
		entry, ok := tree.GetByHash(classHash)
		if !ok || entry.Kind != types.KindClass {
			continue
		}
		for _, m := range cls.Methods {
			if m.Body == nil {
				continue
			}
			qn := cls.Name.Child(m.Name)
			hash := ident.HashFunction(qn, paramHashesOfMethod(tree, cls.Name, m))
			def, ok := entry.Class.MethodDefs[hash]
			if !ok {
				continue
			}
			mod.Functions[hash] = cb.compileFunction(def, &cls.Name, m.Body, cls.Name.Namespace)
		}
	}

	return mod
}

// paramHashesOf/paramHashesOfMethod recompute the same DataType
// resolution Completion performed, purely to rebuild the func_hash a
// body's signature was registered under (the unresolved IR only carries
// textual parameter types).
func paramHashesOf(tree *registry.Tree, fn *unresolved.Function) []ident.TypeHash {
	hs := make([]ident.TypeHash, len(fn.Params))
	for i, p := range fn.Params {
		hs[i] = resolveParamHash(tree, p)
	}
	return hs
}

func paramHashesOfMethod(tree *registry.Tree, _ ident.QualifiedName, m unresolved.Method) []ident.TypeHash {
	hs := make([]ident.TypeHash, len(m.Params))
	for i, p := range m.Params {
		hs[i] = resolveParamHash(tree, p)
	}
	return hs
}

func resolveParamHash(tree *registry.Tree, p unresolved.Param) ident.TypeHash {
	ctx := registry.Context{Current: nodeOf(tree, p.Type.ContextNamespace)}
	res := tree.ResolveType(p.Type.Name, ctx)
	if res.Status == registry.Found {
		return res.Entry.Hash
	}
	return types.HashVoid
}

func nodeOf(tree *registry.Tree, path []string) ident.NodeRef {
	ref, _ := tree.GetOrCreatePath(path)
	return ref
}

// compilerBase holds state shared by every function compiled within
// one Run call.
type compilerBase struct {
	tree  *registry.Tree
	diags *diag.Engine
	pool  *bytecode.ConstantPool
}

// funcCompiler compiles exactly one function or method body.
type funcCompiler struct {
	tree  *registry.Tree
	diags *diag.Engine
	pool  *bytecode.ConstantPool
	em    *bytecode.Emitter

	ctxNode ident.NodeRef // namespace context for bare-name resolution
	class   *ident.QualifiedName // non-nil inside a method body
	thisHash ident.TypeHash

	top   *scope
	loops []*loopContext

	returnType types.DataType
}

func (cb *compilerBase) compileFunction(def *types.FunctionDef, owner *ident.QualifiedName, body *ast.Block, ctxPath []string) *bytecode.CompiledFunction {
	fc := &funcCompiler{
		tree: cb.tree, diags: cb.diags, pool: cb.pool, em: bytecode.NewEmitter(),
		ctxNode: nodeOf(cb.tree, ctxPath), class: owner, returnType: def.ReturnType,
	}
	fc.top = newScope(nil)
	if owner != nil {
		fc.thisHash = ident.HashName(*owner)
		thisType := types.DataType{Hash: fc.thisHash, IsHandle: true, IsConst: def.Traits.Const}
		fc.top.declare("this", &local{slot: fc.em.ReserveLocal(), typ: thisType, isConst: def.Traits.Const})
	}
	for _, p := range def.Params {
		fc.top.declare(p.Name, &local{slot: fc.em.ReserveLocal(), typ: p.Type, isConst: p.Type.IsConst})
	}
	fc.compileBlock(body, newScope(fc.top))
	if def.ReturnType.Hash == types.HashVoid {
		fc.em.Emit(bytecode.OpReturnVoid, 0)
	} else if !blockAlwaysReturns(body) {
		fc.diags.Addf(diag.MissingReturn, body.Pos(), "missing return statement in %q", def.Name.String())
	}
	return &bytecode.CompiledFunction{Def: def, Code: fc.em.Finalize(), NumLocals: fc.em.NumLocals()}
}
