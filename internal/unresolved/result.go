package unresolved

import "github.com/alexparlett/angelscript-go/internal/ident"

// RegistrationResult is the Registration pass's complete output (spec
// §2, §4.2): every unresolved declaration plus pending using
// directives, each list in source (insertion) order.
type RegistrationResult struct {
	Classes     []*Class
	Interfaces  []*Interface
	Enums       []*Enum
	Funcdefs    []*Funcdef
	Functions   []*Function
	Globals     []*Global
	Aliases     []*Alias
	Usings      []UsingDirective

	Errors []RegistrationError
}

// RegistrationError is a duplicate-declaration or other Pass-1 failure
// (spec §4.2, §7): collected, never fatal to the whole pass.
type RegistrationError struct {
	Kind ErrorKind
	Name ident.QualifiedName
	Span ident.Span
	// Other is the span of the earlier, conflicting declaration, when
	// known (duplicate detection).
	Other ident.Span
}

// ErrorKind discriminates a RegistrationError.
type ErrorKind int

const (
	ErrDuplicateDeclaration ErrorKind = iota
	ErrInvalidMixinMember
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDuplicateDeclaration:
		return "DuplicateDeclaration"
	case ErrInvalidMixinMember:
		return "InvalidMixinMember"
	default:
		return "Unknown"
	}
}
