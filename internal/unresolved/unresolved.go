// Package unresolved implements the Pass-1 intermediate representation
// (spec §3.6): the Registration pass's output mirrors the resolved
// schema in internal/types but stores textual type references instead
// of resolved hashes, deferring all name resolution to the Completion
// pass.
package unresolved

import (
	"github.com/alexparlett/angelscript-go/internal/ast"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// TypeRef is a textual type reference captured at the point of use,
// together with the namespace context it must be resolved against
// (spec §3.6).
type TypeRef struct {
	Name              string
	ContextNamespace  []string
	IsConst           bool
	IsHandle          bool
	IsHandleToConst   bool
	RefModifier       types.RefModifier
	TemplateArgs      []TypeRef
	Span              ident.Span
}

// AsInheritanceSource adapts a TypeRef to the minimal shape
// types.InheritanceRef needs for diagnostics.
func (t TypeRef) AsInheritanceSource() types.UnresolvedTypeRef {
	return types.UnresolvedTypeRef{Name: t.Name, Span: t.Span}
}

// Param is an unresolved function parameter.
type Param struct {
	Name       string
	Type       TypeRef
	HasDefault bool
	DefaultSrc string
}

// Field is an unresolved class/mixin property.
type Field struct {
	Name       string
	Type       TypeRef
	Visibility types.Visibility
	Span       ident.Span
}

// Method is an unresolved class/interface/mixin method declaration.
type Method struct {
	Name       string
	Kind       types.MethodKind
	Params     []Param
	ReturnType TypeRef
	Traits     types.Traits
	Visibility types.Visibility
	Span       ident.Span
	// Body is nil for an interface method signature (spec §4.2).
	Body *ast.Block
}

// Inheritance is one entry of a class's inheritance list (base class,
// mixin, or interface - undetermined until Completion phase 6
// classifies it by looking up the resolved target).
type Inheritance struct {
	Ref TypeRef
}

// Class is an unresolved class or mixin declaration (spec §4.2; mixins
// share this same shape per the spec, with IsMixin set and
// constructors/destructors rejected by the Registration pass).
type Class struct {
	Name         ident.QualifiedName
	Inheritance  []Inheritance
	Fields       []Field
	Methods      []Method
	IsFinal      bool
	IsAbstract   bool
	IsMixin      bool
	IsShared     bool
	TemplateParams []string
	Span         ident.Span
	Unit         ident.UnitID
}

// Interface is an unresolved interface declaration.
type Interface struct {
	Name    ident.QualifiedName
	Bases   []Inheritance
	Methods []Method
	Span    ident.Span
	Unit    ident.UnitID
}

// EnumValueRef is one unresolved enum member; Literal is nil when the
// value is auto-assigned in Completion (spec §4.2).
type EnumValueRef struct {
	Name    string
	Literal *int64
	Span    ident.Span
}

// Enum is an unresolved enum declaration.
type Enum struct {
	Name   ident.QualifiedName
	Values []EnumValueRef
	Span   ident.Span
	Unit   ident.UnitID
}

// Funcdef is an unresolved funcdef declaration.
type Funcdef struct {
	Name       ident.QualifiedName
	Params     []Param
	ReturnType TypeRef
	Parent     *ident.QualifiedName
	Span       ident.Span
	Unit       ident.UnitID
}

// Function is an unresolved free function declaration (spec §4.2).
// Class and interface methods are recorded on their owner instead, and
// Registration never sets Object.
type Function struct {
	Name       ident.QualifiedName
	Object     *ident.QualifiedName
	Kind       types.MethodKind
	Params     []Param
	ReturnType TypeRef
	Traits     types.Traits
	Visibility types.Visibility
	Span       ident.Span
	Unit       ident.UnitID
	Body       *ast.Block
}

// Global is an unresolved namespace-scoped global variable.
type Global struct {
	Name          ident.QualifiedName
	Type          TypeRef
	HasInitializer bool
	InitializerSrc ast.Expr
	Span          ident.Span
	Unit          ident.UnitID
}

// Alias is an unresolved `typedef` declaration.
type Alias struct {
	Name   ident.QualifiedName
	Target TypeRef
	Span   ident.Span
	Unit   ident.UnitID
}

// UsingDirective is `using namespace X;` (spec §4.2).
type UsingDirective struct {
	SourceNamespace []string
	TargetNamespace []string
	Span            ident.Span
}
