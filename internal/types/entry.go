package types

import (
	"strconv"

	"github.com/alexparlett/angelscript-go/internal/ident"
)

// Kind discriminates the TypeEntry tagged variant (spec §3.3).
type Kind int

const (
	KindPrimitive Kind = iota
	KindClass
	KindInterface
	KindEnum
	KindFuncdef
	KindTemplateParam
	KindAlias
)

// TypeEntry is the schema stored in the registry for every named type.
// It is a tagged variant: exactly one of the concrete structs below is
// meaningful per Kind, accessed through the typed accessors rather than
// an empty interface, since the set of variants is closed and known at
// compile time.
type TypeEntry struct {
	Kind Kind
	Name ident.QualifiedName
	Hash ident.TypeHash

	Primitive *PrimitiveType
	Class     *ClassType
	Interface *InterfaceType
	Enum      *EnumType
	Funcdef   *FuncdefType
	Alias     *AliasType
	// TemplateParam has no payload beyond Name/Hash: it is a bound type
	// variable inside a template's own member signatures.
}

// PrimitiveType is a built-in scalar (spec §3.3).
type PrimitiveType struct{}

// InheritanceRef is the sum type Unresolved(UnresolvedType) |
// Resolved(QualifiedName) (spec §3.3). It flips from unresolved to
// resolved exactly once, in the Completion pass.
//
// Source carries the raw textual reference (the UnresolvedType) for
// diagnostics even after resolution, since error messages for e.g.
// MultipleInheritance want to point at the original inheritance-list
// span, not just the resolved name.
type InheritanceRef struct {
	resolved bool
	target   ident.QualifiedName
	source   UnresolvedTypeRef
}

// UnresolvedTypeRef is the minimal textual-reference shape an
// InheritanceRef needs before resolution: a name plus a span. The full
// unresolved.TypeRef (in internal/unresolved) embeds this.
type UnresolvedTypeRef struct {
	Name string
	Span ident.Span
}

// NewUnresolvedInheritance builds an InheritanceRef not yet resolved.
func NewUnresolvedInheritance(ref UnresolvedTypeRef) InheritanceRef {
	return InheritanceRef{source: ref}
}

// Resolve flips the ref to Resolved(target). Calling Resolve twice is a
// programmer error (internal invariant violation) and panics, since the
// Completion pass is the sole writer and runs resolution exactly once
// per inheritance reference.
func (r *InheritanceRef) Resolve(target ident.QualifiedName) {
	if r.resolved {
		panic("InheritanceRef: resolve called twice")
	}
	r.resolved = true
	r.target = target
}

// IsResolved reports whether Resolve has been called.
func (r InheritanceRef) IsResolved() bool { return r.resolved }

// Target returns the resolved qualified name. Calling it before
// resolution is a programmer error and panics.
func (r InheritanceRef) Target() ident.QualifiedName {
	if !r.resolved {
		panic("InheritanceRef: target read before resolve")
	}
	return r.target
}

// Source returns the original textual reference, valid regardless of
// resolution state, for diagnostics.
func (r InheritanceRef) Source() UnresolvedTypeRef { return r.source }

// FieldDef is a class property (spec §3.3).
type FieldDef struct {
	Name       string
	Type       DataType
	Offset     int
	IsPrivate  bool
	IsProtected bool
}

// TypeBehaviors groups a class's special methods (spec §3.3): factory
// and constructor overload sets are func_hashes into the class's own
// methods map.
type TypeBehaviors struct {
	Constructors     []ident.TypeHash
	CopyConstructors []ident.TypeHash
	Factories        []ident.TypeHash
	Destructor       ident.TypeHash
	HasDestructor    bool
}

// VTableSlot is one entry of a class vtable: the signature it was built
// for and the concrete function currently occupying the slot.
type VTableSlot struct {
	Signature MethodSignature
	Func      ident.TypeHash
}

// VTable is the class method table for virtual dispatch (spec §3.3,
// glossary). Slot order is stable: inherited slots first (in base
// order), then newly introduced virtuals in declaration order.
type VTable struct {
	Slots []VTableSlot
}

// SlotOf returns the index of the slot matching sig, or -1.
func (v *VTable) SlotOf(sig MethodSignature) int {
	for i, s := range v.Slots {
		if s.Signature.Equal(sig) {
			return i
		}
	}
	return -1
}

// ITable maps interface-method-slot to the implementing class's
// concrete func_hash (spec §3.3, §4.3 phase 8-9).
type ITable struct {
	Slots []ident.TypeHash
}

// ClassType is the Class variant of TypeEntry (spec §3.3).
type ClassType struct {
	Source       ident.UnitID
	Base         *InheritanceRef
	Mixins       []InheritanceRef
	Interfaces   []InheritanceRef
	Methods      map[string][]ident.TypeHash
	MethodDefs   map[ident.TypeHash]*FunctionDef
	MethodOrder  []string
	Properties   []FieldDef
	Behaviors    TypeBehaviors
	VTable       VTable
	ITables      map[ident.TypeHash]ITable
	IsFinal      bool
	IsAbstract   bool
	IsMixin      bool
	IsShared     bool
	TemplateParams []string
	TemplateArgs   []DataType
}

// MethodSignature is the shape used to match interface conformance and
// vtable slots: name plus parameter/return types, independent of which
// concrete class declares it.
type MethodSignature struct {
	Name       string
	Params     []DataType
	ReturnType DataType
	IsConst    bool
}

// Equal reports whether two signatures match for conformance purposes.
func (m MethodSignature) Equal(o MethodSignature) bool {
	if m.Name != o.Name || m.IsConst != o.IsConst || len(m.Params) != len(o.Params) {
		return false
	}
	if !m.ReturnType.Equal(o.ReturnType) {
		return false
	}
	for i, p := range m.Params {
		if !p.Equal(o.Params[i]) {
			return false
		}
	}
	return true
}

// InterfaceType is the Interface variant (spec §3.3).
type InterfaceType struct {
	Source  ident.UnitID
	Bases   []InheritanceRef
	Methods []MethodSignature
	ITable  ITable
}

// FlattenedMethods returns this interface's methods together with all
// (transitively) inherited base-interface methods, de-duplicated by
// signature, in itable-slot order. Bases are assumed resolved.
func (it *InterfaceType) FlattenedMethods(lookup func(ident.QualifiedName) *InterfaceType) []MethodSignature {
	var out []MethodSignature
	seen := map[string]bool{}
	add := func(sigs []MethodSignature) {
		for _, s := range sigs {
			k := s.Name
			for _, p := range s.Params {
				k += "," + p.String()
			}
			if !seen[k] {
				seen[k] = true
				out = append(out, s)
			}
		}
	}
	for _, b := range it.Bases {
		if !b.IsResolved() {
			continue
		}
		if base := lookup(b.Target()); base != nil {
			add(base.FlattenedMethods(lookup))
		}
	}
	add(it.Methods)
	return out
}

// String renders a DataType using only its hash, for contexts with no
// registry at hand (map keys, internal debug output), since DataType
// itself carries no name.
func (d DataType) String() string {
	s := "#" + strconv.FormatUint(uint64(d.Hash), 16)
	if d.IsConst {
		s = "const " + s
	}
	if d.IsHandle {
		s += "@"
		if d.IsHandleToConst {
			s += "const"
		}
	}
	return s
}

// EnumType is the Enum variant (spec §3.3).
type EnumType struct {
	Source ident.UnitID
	Values []EnumValue
}

// EnumValue is one member of an enum; Value is its explicit literal or,
// without one, the previous member's value plus one (0 for the first),
// assigned when Completion builds the enum's shell (spec §4.2).
type EnumValue struct {
	Name  string
	Value int64
}

// FuncdefType is the Funcdef variant (spec §3.3): a named function
// pointer type, optionally a method funcdef scoped to Parent (used for
// delegates, glossary).
type FuncdefType struct {
	Source     ident.UnitID
	Params     []DataType
	ReturnType DataType
	Parent     *ident.QualifiedName
}

// AliasType is the Alias variant (spec §3.3): `typedef`.
type AliasType struct {
	Target ident.TypeHash
}
