// Package diag implements the outbound diagnostics contract (spec
// §6.4, §7): a flat, deterministically-ordered sequence of Diagnostic
// values. The compiler never panics/throws on a user error - every
// failure is represented here - mirroring nilaway/diagnostic's
// accumulate-then-sort engine.
package diag

// Kind enumerates the error/warning taxonomy (spec §7).
type Kind int

const (
	// Name-resolution
	UnknownType Kind = iota
	UnknownNamespace
	UnknownName
	AmbiguousType
	AmbiguousOverload
	AmbiguousCall
	DuplicateDeclaration

	// Type
	TypeMismatch
	InvalidConversion
	IncompatibleTypes
	ConstViolation
	ConstMethodCall
	NotLValue
	HandleMismatch

	// Overload/Call
	NoMatchingOverload
	WrongArgumentCount
	NamedAfterPositional

	// Control flow
	BreakOutsideLoop
	ContinueOutsideLoop
	MissingReturn
	UnreachableCode // warning

	// Inheritance
	MultipleInheritance
	InheritanceCycle
	FinalInherited
	AbstractInstantiation
	UndeclaredOverride
	InterfaceNotImplemented

	// Templates
	UnboundTemplate
	InvalidTemplateArgument
	TemplateCallbackRejected

	// Control flow (statement-level, supplementing the spec's taxonomy
	// with the concrete switch/case failure named in §8.3)
	DuplicateCase

	// Internal
	InternalError
)

// IsWarning reports whether Kind k is merely advisory (does not gate
// commit per spec §7's has_errors()).
func (k Kind) IsWarning() bool {
	return k == UnreachableCode
}

func (k Kind) String() string {
	switch k {
	case UnknownType:
		return "UnknownType"
	case UnknownNamespace:
		return "UnknownNamespace"
	case UnknownName:
		return "UnknownName"
	case AmbiguousType:
		return "AmbiguousType"
	case AmbiguousOverload:
		return "AmbiguousOverload"
	case AmbiguousCall:
		return "AmbiguousCall"
	case DuplicateDeclaration:
		return "DuplicateDeclaration"
	case TypeMismatch:
		return "TypeMismatch"
	case InvalidConversion:
		return "InvalidConversion"
	case IncompatibleTypes:
		return "IncompatibleTypes"
	case ConstViolation:
		return "ConstViolation"
	case ConstMethodCall:
		return "ConstMethodCall"
	case NotLValue:
		return "NotLValue"
	case HandleMismatch:
		return "HandleMismatch"
	case NoMatchingOverload:
		return "NoMatchingOverload"
	case WrongArgumentCount:
		return "WrongArgumentCount"
	case NamedAfterPositional:
		return "NamedAfterPositional"
	case BreakOutsideLoop:
		return "BreakOutsideLoop"
	case ContinueOutsideLoop:
		return "ContinueOutsideLoop"
	case MissingReturn:
		return "MissingReturn"
	case UnreachableCode:
		return "UnreachableCode"
	case MultipleInheritance:
		return "MultipleInheritance"
	case InheritanceCycle:
		return "InheritanceCycle"
	case FinalInherited:
		return "FinalInherited"
	case AbstractInstantiation:
		return "AbstractInstantiation"
	case UndeclaredOverride:
		return "UndeclaredOverride"
	case InterfaceNotImplemented:
		return "InterfaceNotImplemented"
	case UnboundTemplate:
		return "UnboundTemplate"
	case InvalidTemplateArgument:
		return "InvalidTemplateArgument"
	case TemplateCallbackRejected:
		return "TemplateCallbackRejected"
	case DuplicateCase:
		return "DuplicateCase"
	case InternalError:
		return "InternalError"
	default:
		return "Unknown"
	}
}
