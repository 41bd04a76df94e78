// Package compiler is the top-level driver that ties Registration,
// Completion, and Compilation together into one outbound Result per
// unit, the same role nilaway.go plays for its own accumulation
// pipeline: pull each pass's result in turn and hand back one artifact
// plus diagnostics.
package compiler

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/alexparlett/angelscript-go/internal/ast"
	"github.com/alexparlett/angelscript-go/internal/bytecode"
	"github.com/alexparlett/angelscript-go/internal/config"
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/passes/compilation"
	"github.com/alexparlett/angelscript-go/internal/passes/completion"
	"github.com/alexparlett/angelscript-go/internal/passes/registration"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/alexparlett/angelscript-go/internal/unresolved"
)

// Unit is one compilation unit's input: an already-parsed AST plus the
// name/size needed to register it with the shared FileSet (spec §3.6,
// §3.8). Lexing and parsing are out of this repository's scope (spec
// §1) - Script arrives already built, from whatever external parser
// the host embeds.
type Unit struct {
	Name   string
	Size   int
	Script *ast.Script
}

// Result is one unit's outbound artifact (spec §6.3): the compiled
// module, every diagnostic the three passes raised (already sorted),
// and the Completion pass's summary counts for observability.
type Result struct {
	Unit        string
	Module      *bytecode.Module
	Diagnostics []diag.Diagnostic
	Completion  completion.Result
}

// Run executes all three passes for a single unit against tree,
// returning its Result. tree must already have the host's `$ffi`
// namespace mounted (registry.New does this at construction).
func Run(tree *registry.Tree, fset *ident.FileSet, opts config.Options, u Unit) Result {
	unitID, _ := fset.AddUnit(u.Name, u.Size)
	u.Script.Unit = unitID
	diags := diag.NewEngine(fset)

	unitRoot := tree.Root()
	if opts.IsolateUnits {
		unitRoot = tree.UnitNamespace(unitID)
	}

	reg := registration.Run(tree, unitID, unitRoot, u.Script)
	addRegistrationErrors(diags, reg)
	comp := completion.Run(tree, reg, diags)

	pool := bytecode.NewConstantPool(opts.ConstantPoolCompactionBytes)
	mod := compilation.Run(tree, reg, diags, pool)

	return Result{Unit: u.Name, Module: mod, Diagnostics: diags.Diagnostics(), Completion: comp}
}

// addRegistrationErrors reports the errors Registration collected in
// reg through diags, next to the later passes' diagnostics.
func addRegistrationErrors(diags *diag.Engine, reg *unresolved.RegistrationResult) {
	for _, e := range reg.Errors {
		d := diag.Diagnostic{Kind: diag.DuplicateDeclaration, Message: fmt.Sprintf("%s: %s", e.Kind, e.Name), Primary: e.Span}
		if e.Kind == unresolved.ErrInvalidMixinMember {
			d.Kind = diag.IncompatibleTypes
		} else {
			d.Related = []diag.Related{{Span: e.Other, Label: "previous declaration"}}
		}
		diags.Add(d)
	}
}

// CompileUnits compiles every unit in units against one shared tree,
// returning results in the same order as units. Registration and
// Completion mutate tree (new namespace nodes, registered types,
// vtables) and so run serialized, one unit at a time; Compilation only
// reads the already-completed tree and runs concurrently across units,
// bounded by opts.MaxParallelUnits (spec §5: "Parallelism across
// independent units is permitted by construction ... but not
// required"). A panic inside one unit's Compilation pass is recovered
// and reported as an InternalError diagnostic for that unit only,
// rather than aborting the batch.
func CompileUnits(tree *registry.Tree, fset *ident.FileSet, opts config.Options, units []Unit) []Result {
	n := len(units)
	results := make([]Result, n)
	regs := make([]*unresolved.RegistrationResult, n)
	comps := make([]completion.Result, n)
	engines := make([]*diag.Engine, n)
	names := make([]string, n)

	for i, u := range units {
		unitID, _ := fset.AddUnit(u.Name, u.Size)
		u.Script.Unit = unitID
		diags := diag.NewEngine(fset)

		unitRoot := tree.Root()
		if opts.IsolateUnits {
			unitRoot = tree.UnitNamespace(unitID)
		}

		reg := registration.Run(tree, unitID, unitRoot, u.Script)
		addRegistrationErrors(diags, reg)
		comp := completion.Run(tree, reg, diags)

		regs[i], comps[i], engines[i], names[i] = reg, comp, diags, u.Name
	}

	workers := opts.MaxParallelUnits
	if workers <= 0 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range units {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				if r := recover(); r != nil {
					engines[i].Addf(diag.InternalError, ident.Span{}, "internal panic compiling %q: %v\n%s", names[i], r, debug.Stack())
					empty := bytecode.NewModule(bytecode.NewConstantPool(opts.ConstantPoolCompactionBytes))
					results[i] = Result{Unit: names[i], Module: empty, Diagnostics: engines[i].Diagnostics(), Completion: comps[i]}
				}
			}()
			pool := bytecode.NewConstantPool(opts.ConstantPoolCompactionBytes)
			mod := compilation.Run(tree, regs[i], engines[i], pool)
			results[i] = Result{Unit: names[i], Module: mod, Diagnostics: engines[i].Diagnostics(), Completion: comps[i]}
		}(i)
	}
	wg.Wait()
	return results
}

// Summary renders a one-line human-readable count of a Result's
// diagnostics, split errors-vs-warnings, for CLI/log output.
func Summary(r Result) string {
	errs, warns := 0, 0
	for _, d := range r.Diagnostics {
		if d.Kind.IsWarning() {
			warns++
		} else {
			errs++
		}
	}
	return fmt.Sprintf("%s: %d error(s), %d warning(s), %d function(s) compiled", r.Unit, errs, warns, len(r.Module.Functions))
}
