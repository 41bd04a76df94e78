package types

// HandleCompatible reports whether a handle-typed value of type from
// can bind where a handle-typed value of type to is expected, ignoring
// the underlying class hierarchy (that part - derived handle to base
// handle - is the registry's job, since it needs inheritance data).
// Rule (spec §4.5): T@ binds to const T@ but not vice versa.
func HandleCompatible(from, to DataType) bool {
	if from.IsConst && !to.IsConst {
		return false
	}
	if !from.IsHandleToConst && to.IsHandleToConst {
		return true
	}
	if from.IsHandleToConst && !to.IsHandleToConst {
		return false
	}
	return true
}

// RefCompatible validates the ref-modifier rule for argument binding
// (spec §4.5):
//   - &in accepts a value or const value
//   - &out requires an assignable lvalue
//   - &inout (plain &) requires a handle-typed reference type
func RefCompatible(mode RefModifier, isLValue, isMutable, isHandle bool) bool {
	switch mode {
	case RefIn:
		return true
	case RefOut:
		return isLValue && isMutable
	case RefInOut:
		return isHandle
	default:
		return true
	}
}
