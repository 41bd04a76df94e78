// Package completion implements Pass 2 (spec §4.3): resolves using
// directives, resolves every UnresolvedType to a concrete type,
// registers fully-typed entries into the tree, classifies inheritance
// references, completes class members, and builds vtables/itables plus
// the reverse hash indexes.
package completion

import (
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/alexparlett/angelscript-go/internal/types"
	"github.com/alexparlett/angelscript-go/internal/unresolved"
)

// Result summarizes Pass 2's outcome (spec §4.3: "CompletionResult").
type Result struct {
	TypesRegistered     int
	FunctionsRegistered int
	VTablesBuilt        int
}

type completer struct {
	tree   *registry.Tree
	diags  *diag.Engine
	reg    *unresolved.RegistrationResult
	result Result

	// classEntry/interfaceEntry/funcdefEntry map a type's hash to its
	// created shell, for phases 4-9 without re-walking the tree.
	classEntry     map[ident.TypeHash]*classRecord
	interfaceEntry map[ident.TypeHash]*interfaceRecord
	funcdefEntry   map[ident.TypeHash]*funcdefRecord
}

type classRecord struct {
	entry    *types.TypeEntry
	unit     *unresolved.Class
	node     ident.NodeRef
}

// Run executes the ordered phases of spec §4.3 against reg,
// mutating tree in place, and returns a summary plus whatever
// diagnostics were raised along the way (via diags).
func Run(tree *registry.Tree, reg *unresolved.RegistrationResult, diags *diag.Engine) Result {
	c := &completer{
		tree: tree, diags: diags, reg: reg,
		classEntry:     map[ident.TypeHash]*classRecord{},
		interfaceEntry: map[ident.TypeHash]*interfaceRecord{},
	}

	// Phase 0: namespace nodes already exist from Registration; no-op.
	// Phase 1.
	c.resolveUsingDirectives()
	// Phase 2: folded into phase 3/4 via direct registry lookups (a
	// separate name index adds nothing here since internal/registry's
	// maps already serve that role once shells exist).
	// Phase 3.
	c.registerShells()
	// Phase 4.
	c.resolveFuncdefSignatures()
	c.resolveFunctionSignatures()
	c.resolveAliases()
	// Phase 5.
	c.resolveGlobals()
	// Phase 6.
	c.resolveInheritance()
	// Phase 7.
	order := c.topoSortClasses()
	c.completeMembers(order)
	// Phase 8.
	c.buildITables()
	// Phase 9.
	c.buildVTables(order)
	// Phase 10.
	tree.BuildHashIndexes()

	return c.result
}
