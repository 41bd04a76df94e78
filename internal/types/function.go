package types

import "github.com/alexparlett/angelscript-go/internal/ident"

// MethodKind distinguishes how a method participates in a class (spec
// §4.2).
type MethodKind int

const (
	MethodRegular MethodKind = iota
	MethodConstructor
	MethodCopyConstructor
	MethodDestructor
	MethodFactory
)

// Visibility is a member's access level.
type Visibility int

const (
	VisPublic Visibility = iota
	VisProtected
	VisPrivate
)

// Traits is a function's modifier set (spec §3.5).
type Traits struct {
	Virtual  bool
	Override bool
	Final    bool
	Abstract bool
	Const    bool
	Native   bool
}

// Param is one function parameter.
type Param struct {
	Name         string
	Type         DataType
	HasDefault   bool
	DefaultToken string // always empty: no pass captures the default expression's source, and the compilation pass emits nothing for an omitted defaulted argument
}

// FunctionDef is a fully resolved function signature (spec §3.5).
// Functions sharing a name in one namespace form an overload set; this
// struct plus its func_hash (ident.HashFunction) encode one member of
// that set.
type FunctionDef struct {
	Name       ident.QualifiedName
	Hash       ident.TypeHash
	Object     *ident.QualifiedName // owning class/interface, nil for free functions
	Kind       MethodKind
	Params     []Param
	ReturnType DataType
	Traits     Traits
	Visibility Visibility
}

// ParamHashes returns the parameter type hashes in order, the input to
// ident.HashFunction.
func (f *FunctionDef) ParamHashes() []ident.TypeHash {
	hs := make([]ident.TypeHash, len(f.Params))
	for i, p := range f.Params {
		hs[i] = p.Type.Hash
	}
	return hs
}

// GlobalEntry is a resolved namespace-scoped global variable (spec
// §3.2).
type GlobalEntry struct {
	Name ident.QualifiedName
	Type DataType
	// InitializerFunc is always zero: no pass synthesizes or compiles
	// an initializer function for a global. HasInitializer records
	// whether the declaration carries an initializer expression.
	InitializerFunc ident.TypeHash
	HasInitializer  bool
}
