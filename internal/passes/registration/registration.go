// Package registration implements Pass 1 (spec §4.2): walks the
// provided AST, creates namespace nodes, and collects unresolved
// declarations and pending using directives into a RegistrationResult.
// No type name is resolved here and no type hash is computed.
package registration

import (
	"github.com/alexparlett/angelscript-go/internal/ast"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/registry"
	"github.com/alexparlett/angelscript-go/internal/types"
	"github.com/alexparlett/angelscript-go/internal/unresolved"
)

// Result is Pass 1's output (spec §4.2).
type Result = unresolved.RegistrationResult

// Run walks script, rooted at unitRoot (the namespace node new
// declarations are nested under - typically a `$unit_N` node, or the
// tree's root when unit isolation is disabled), and returns the
// collected RegistrationResult. tree is mutated only by creating
// Contains edges for namespaces visited; no TypeEntry/FunctionDef is
// written to it in this pass.
func Run(tree *registry.Tree, unit ident.UnitID, unitRoot ident.NodeRef, script *ast.Script) *Result {
	w := &walker{tree: tree, unit: unit, result: &Result{}, names: map[ident.NodeRef]map[string]ident.Span{}}
	w.walkItems(unitRoot, script.Items)
	return w.result
}

type walker struct {
	tree   *registry.Tree
	unit   ident.UnitID
	result *Result
	// names tracks simple names already declared (as a type) per
	// namespace node, for duplicate detection against this pass's own
	// result (spec §4.2).
	names map[ident.NodeRef]map[string]ident.Span
}

func (w *walker) claim(ns ident.NodeRef, simple string, span ident.Span) bool {
	m, ok := w.names[ns]
	if !ok {
		m = map[string]ident.Span{}
		w.names[ns] = m
	}
	if prior, exists := m[simple]; exists {
		w.result.Errors = append(w.result.Errors, unresolved.RegistrationError{
			Kind: unresolved.ErrDuplicateDeclaration,
			Name: w.tree.QualifiedNameIn(ns, simple),
			Span: span, Other: prior,
		})
		return false
	}
	m[simple] = span
	return true
}

func (w *walker) walkItems(ns ident.NodeRef, items []ast.Item) {
	for _, it := range items {
		w.walkItem(ns, it)
	}
}

func (w *walker) walkItem(ns ident.NodeRef, it ast.Item) {
	switch n := it.(type) {
	case *ast.Namespace:
		path := append([]string(nil), w.tree.PathOf(ns)...)
		path = append(path, n.Segments...)
		child, _ := w.tree.GetOrCreatePath(path)
		w.walkItems(child, n.Items)

	case *ast.UsingNamespace:
		w.result.Usings = append(w.result.Usings, unresolved.UsingDirective{
			SourceNamespace: w.tree.PathOf(ns),
			TargetNamespace: n.Path,
			Span:            n.Span,
		})

	case *ast.Class:
		if w.claim(ns, n.Name, n.Span) {
			w.result.Classes = append(w.result.Classes, w.unresolvedClass(ns, n))
		}

	case *ast.Interface:
		if w.claim(ns, n.Name, n.Span) {
			w.result.Interfaces = append(w.result.Interfaces, w.unresolvedInterface(ns, n))
		}

	case *ast.Enum:
		if w.claim(ns, n.Name, n.Span) {
			w.result.Enums = append(w.result.Enums, w.unresolvedEnum(ns, n))
		}

	case *ast.Funcdef:
		if w.claim(ns, n.Name, n.Span) {
			w.result.Funcdefs = append(w.result.Funcdefs, w.unresolvedFuncdef(ns, n))
		}

	case *ast.Function:
		qn := w.tree.QualifiedNameIn(ns, n.Name)
		w.result.Functions = append(w.result.Functions, &unresolved.Function{
			Name: qn, Kind: types.MethodRegular,
			Params: w.unresolvedParams(ns, n.Params), ReturnType: w.unresolvedType(ns, n.ReturnType),
			Traits: n.Traits, Visibility: n.Visibility, Span: n.Span, Unit: w.unit, Body: n.Body,
		})

	case *ast.GlobalVar:
		if w.claim(ns, n.Name, n.Span) {
			w.result.Globals = append(w.result.Globals, &unresolved.Global{
				Name: w.tree.QualifiedNameIn(ns, n.Name), Type: w.unresolvedType(ns, n.Type),
				HasInitializer: n.Initializer != nil, InitializerSrc: n.Initializer, Span: n.Span, Unit: w.unit,
			})
		}

	case *ast.Typedef:
		if w.claim(ns, n.Name, n.Span) {
			w.result.Aliases = append(w.result.Aliases, &unresolved.Alias{
				Name: w.tree.QualifiedNameIn(ns, n.Name), Target: w.unresolvedType(ns, n.Target),
				Span: n.Span, Unit: w.unit,
			})
		}

	case *ast.Import:
		// Cross-unit import wiring is a host/build-system concern (spec
		// §1 scope); nothing to register here.
	}
}

func (w *walker) unresolvedType(ns ident.NodeRef, t ast.TypeExpr) unresolved.TypeRef {
	var name string
	switch t.Ty.Kind {
	case ast.TypeVoid:
		name = "void"
	case ast.TypeAuto:
		name = "auto"
	default:
		if len(t.Ty.Path) > 0 {
			name = t.Ty.Path[len(t.Ty.Path)-1]
			if len(t.Ty.Path) > 1 {
				name = joinPath(t.Ty.Path)
			}
		}
	}
	var templateArgs []unresolved.TypeRef
	for _, a := range t.Ty.Args {
		templateArgs = append(templateArgs, w.unresolvedType(ns, a))
	}
	return unresolved.TypeRef{
		Name: name, ContextNamespace: w.tree.PathOf(ns),
		IsConst: t.IsConst, IsHandle: t.IsHandle, IsHandleToConst: t.IsHandleToConst,
		RefModifier: t.RefModifier, TemplateArgs: templateArgs, Span: t.Span,
	}
}

func joinPath(path []string) string {
	out := path[0]
	for _, s := range path[1:] {
		out += "::" + s
	}
	return out
}

func (w *walker) unresolvedParams(ns ident.NodeRef, params []ast.ParamItem) []unresolved.Param {
	out := make([]unresolved.Param, len(params))
	for i, p := range params {
		out[i] = unresolved.Param{Name: p.Name, Type: w.unresolvedType(ns, p.Type), HasDefault: p.HasDefault}
	}
	return out
}

func (w *walker) unresolvedMethod(ns ident.NodeRef, m ast.MethodItem) unresolved.Method {
	return unresolved.Method{
		Name: m.Name, Kind: m.Kind, Params: w.unresolvedParams(ns, m.Params),
		ReturnType: w.unresolvedType(ns, m.ReturnType), Traits: m.Traits,
		Visibility: m.Visibility, Span: m.Span, Body: m.Body,
	}
}

func (w *walker) unresolvedClass(ns ident.NodeRef, n *ast.Class) *unresolved.Class {
	c := &unresolved.Class{
		Name: w.tree.QualifiedNameIn(ns, n.Name), IsFinal: n.IsFinal, IsAbstract: n.IsAbstract,
		IsMixin: n.IsMixin, IsShared: n.IsShared, TemplateParams: n.TemplateParams,
		Span: n.Span, Unit: w.unit,
	}
	for _, inh := range n.Inheritance {
		c.Inheritance = append(c.Inheritance, unresolved.Inheritance{Ref: w.unresolvedType(ns, inh.Type)})
	}
	for _, f := range n.Fields {
		c.Fields = append(c.Fields, unresolved.Field{Name: f.Name, Type: w.unresolvedType(ns, f.Type), Visibility: f.Visibility, Span: f.Span})
	}
	for _, m := range n.Methods {
		if n.IsMixin && (m.Kind == types.MethodConstructor || m.Kind == types.MethodDestructor || m.Kind == types.MethodCopyConstructor) {
			w.result.Errors = append(w.result.Errors, unresolved.RegistrationError{
				Kind: unresolved.ErrInvalidMixinMember, Name: c.Name, Span: m.Span,
			})
			continue
		}
		c.Methods = append(c.Methods, w.unresolvedMethod(ns, m))
	}
	return c
}

func (w *walker) unresolvedInterface(ns ident.NodeRef, n *ast.Interface) *unresolved.Interface {
	it := &unresolved.Interface{Name: w.tree.QualifiedNameIn(ns, n.Name), Span: n.Span, Unit: w.unit}
	for _, b := range n.Bases {
		it.Bases = append(it.Bases, unresolved.Inheritance{Ref: w.unresolvedType(ns, b.Type)})
	}
	for _, m := range n.Methods {
		it.Methods = append(it.Methods, w.unresolvedMethod(ns, m))
	}
	return it
}

func (w *walker) unresolvedEnum(ns ident.NodeRef, n *ast.Enum) *unresolved.Enum {
	e := &unresolved.Enum{Name: w.tree.QualifiedNameIn(ns, n.Name), Span: n.Span, Unit: w.unit}
	for _, v := range n.Values {
		e.Values = append(e.Values, unresolved.EnumValueRef{Name: v.Name, Literal: v.Literal, Span: v.Span})
	}
	return e
}

func (w *walker) unresolvedFuncdef(ns ident.NodeRef, n *ast.Funcdef) *unresolved.Funcdef {
	f := &unresolved.Funcdef{
		Name: w.tree.QualifiedNameIn(ns, n.Name), Params: w.unresolvedParams(ns, n.Params),
		ReturnType: w.unresolvedType(ns, n.ReturnType), Span: n.Span, Unit: w.unit,
	}
	if n.Parent != "" {
		parent := ident.FromString(n.Parent)
		f.Parent = &parent
	}
	return f
}
