// Package ast defines the inbound AST contract this compiler consumes
// (spec §6.1). The AST itself is produced by an external parser, out
// of scope for this repository; this package only names the shape the
// three passes walk. Every node carries a Span for diagnostics, and
// the arena backing these nodes is owned by the parser layer and must
// outlive the Compilation pass (spec §3.8) - this package holds no
// arena itself, only the node types.
package ast

import (
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// Script is the root of one compilation unit (spec §6.1).
type Script struct {
	Items []Item
	Span  ident.Span
	Unit  ident.UnitID
}

// Item is the sum of top-level declarations a Script may contain.
type Item interface {
	itemNode()
	Pos() ident.Span
}

type base struct{ Span ident.Span }

func (b base) Pos() ident.Span { return b.Span }

// Namespace is `namespace A::B { ... }`.
type Namespace struct {
	base
	Segments []string
	Items    []Item
}

func (*Namespace) itemNode() {}

// UsingNamespace is `using namespace X;`.
type UsingNamespace struct {
	base
	Path []string
}

func (*UsingNamespace) itemNode() {}

// Typedef is `typedef int MyInt;`.
type Typedef struct {
	base
	Name   string
	Target TypeExpr
}

func (*Typedef) itemNode() {}

// Import is a cross-unit import directive; the compiler treats it as
// informational only (unit graph construction is a host concern).
type Import struct {
	base
	Path string
}

func (*Import) itemNode() {}

// InheritanceItem is one entry in a class/mixin/interface's
// inheritance list, textually - base class, mixin, or interface,
// undetermined until Completion classifies it (spec §4.3 phase 6).
type InheritanceItem struct {
	Type TypeExpr
	Span ident.Span
}

// FieldItem is a class/mixin property declaration.
type FieldItem struct {
	Name       string
	Type       TypeExpr
	Visibility types.Visibility
	Span       ident.Span
}

// ParamItem is a function parameter declaration.
type ParamItem struct {
	Name       string
	Type       TypeExpr
	HasDefault bool
	Default    Expr
}

// MethodItem is a method declaration inside a class/interface/mixin.
type MethodItem struct {
	Name       string
	Kind       types.MethodKind
	Params     []ParamItem
	ReturnType TypeExpr
	Traits     types.Traits
	Visibility types.Visibility
	Body       *Block // nil for interface method signatures
	Span       ident.Span
}

// Class is a class or mixin declaration (spec §4.2: mixins share this
// shape, with IsMixin set).
type Class struct {
	base
	Name           string
	Inheritance    []InheritanceItem
	Fields         []FieldItem
	Methods        []MethodItem
	IsFinal        bool
	IsAbstract     bool
	IsMixin        bool
	IsShared       bool
	TemplateParams []string
}

func (*Class) itemNode() {}

// Interface is an interface declaration.
type Interface struct {
	base
	Name    string
	Bases   []InheritanceItem
	Methods []MethodItem
}

func (*Interface) itemNode() {}

// EnumValueItem is one enum member, with an optional explicit literal.
type EnumValueItem struct {
	Name    string
	Literal *int64
	Span    ident.Span
}

// Enum is an enum declaration.
type Enum struct {
	base
	Name   string
	Values []EnumValueItem
}

func (*Enum) itemNode() {}

// Funcdef is a named function-pointer type declaration.
type Funcdef struct {
	base
	Name       string
	Params     []ParamItem
	ReturnType TypeExpr
	Parent     string // non-empty for a method funcdef (delegate), spec glossary
}

func (*Funcdef) itemNode() {}

// Function is a free function declaration.
type Function struct {
	base
	Name       string
	Params     []ParamItem
	ReturnType TypeExpr
	Traits     types.Traits
	Visibility types.Visibility
	Body       *Block
}

func (*Function) itemNode() {}

// GlobalVar is a namespace-scoped global variable declaration.
type GlobalVar struct {
	base
	Name        string
	Type        TypeExpr
	Initializer Expr
}

func (*GlobalVar) itemNode() {}

// TypeKind discriminates the Type sum (spec §6.1).
type TypeKind int

const (
	TypeNamed TypeKind = iota
	TypeTemplate
	TypeAuto
	TypeVoid
)

// Type is the textual type reference shape (spec §6.1: `Type ∈ {
// Named(path), Template{name, args}, Auto, Void }`).
type Type struct {
	Kind  TypeKind
	Path  []string // Named: namespace-qualified path, last segment is the simple name
	Args  []TypeExpr // Template: type arguments
}

// TypeExpr wraps a Type with the modifiers carried at point of use
// (spec §6.1).
type TypeExpr struct {
	Ty              Type
	IsConst         bool
	IsHandle        bool
	IsHandleToConst bool
	RefModifier     types.RefModifier
	Span            ident.Span
}
