package types

import (
	"math"

	"github.com/alexparlett/angelscript-go/internal/ident"
)

// Cost is a conversion's weight in the overload-resolution lattice
// (spec §4.5). Infinite marks an impossible conversion.
type Cost int

const (
	CostIdentity           Cost = 0
	CostAddConst           Cost = 1
	CostEnumIntWidth       Cost = 3
	CostPrimitiveWidening  Cost = 3
	CostHandleUpcast       Cost = 3
	CostClassToInterface   Cost = 5
	CostSignednessChange   Cost = 50
	CostPrimitiveNarrowing Cost = 100
	CostFloatToInt         Cost = 100
	CostUserImplConv       Cost = 10
	CostConversionCtor     Cost = 20
	CostExplicitUserConv   Cost = 100
	CostImpossible         Cost = math.MaxInt32
)

// Kind of conversion, implicit conversions are eligible during normal
// argument binding; explicit ones require a cast<T>/T(x) expression.
type ConvKind int

const (
	ConvImplicit ConvKind = iota
	ConvExplicit
)

// Conversion describes how to get from one DataType to another and at
// what lattice cost (spec §4.5). Lookup is driven by the registry,
// which knows about user-defined opImplConv/opConv/conversion
// constructors; this package only computes the fixed primitive part of
// the lattice plus the bookkeeping rules (handle modifiers, ref
// modifiers, at-most-one user conversion).
type Conversion struct {
	Cost    Cost
	Kind    ConvKind
	// UserMethod is the func_hash of the opImplConv/opConv/constructor
	// used, if this conversion routes through a user-defined method.
	UserMethod     ident.TypeHash
	UsesUserMethod bool
}

// PrimitiveConversionCost computes the cost of converting between two
// primitive DataTypes with no user-defined operators involved. It
// returns (cost, kind, ok); ok is false when the pair is not a
// primitive-to-primitive conversion this function handles (e.g. one
// side is a class), in which case the caller (registry) must attempt
// handle/interface/user-defined rules instead.
func PrimitiveConversionCost(from, to DataType) (Cost, ConvKind, bool) {
	if from.Hash == to.Hash {
		return identityOrConstCost(from, to), ConvImplicit, true
	}

	fromIsEnum, toIsEnum := from.IsEnum, to.IsEnum
	fromIsPrim := isIntegralHash(from.Hash) || isFloatingHash(from.Hash) || from.Hash == HashBool
	toIsPrim := isIntegralHash(to.Hash) || isFloatingHash(to.Hash) || to.Hash == HashBool

	switch {
	case (fromIsEnum && toIsPrim && isIntegralHash(to.Hash)) || (toIsEnum && fromIsPrim && isIntegralHash(from.Hash)):
		return CostEnumIntWidth, ConvImplicit, true

	case fromIsPrim && toIsPrim:
		return primitiveToPrimitive(from.Hash, to.Hash)
	}

	return 0, ConvImplicit, false
}

func identityOrConstCost(from, to DataType) Cost {
	if from.IsConst == to.IsConst {
		return CostIdentity
	}
	if !from.IsConst && to.IsConst {
		return CostAddConst
	}
	// const -> non-const by value is fine (value semantics drop const);
	// by handle this is rejected earlier by handle-compatibility checks.
	return CostIdentity
}

func primitiveToPrimitive(from, to ident.TypeHash) (Cost, ConvKind, bool) {
	fh, th := from, to
	if fh == th {
		return CostIdentity, ConvImplicit, true
	}

	fFloat, tFloat := isFloatingHash(fh), isFloatingHash(th)
	fInt, tInt := isIntegralHash(fh), isIntegralHash(th)
	fBool, tBool := fh == HashBool, th == HashBool

	if fBool || tBool {
		if fBool && tBool {
			return CostIdentity, ConvImplicit, true
		}
		// bool<->numeric is not part of the implicit lattice; treat as
		// narrowing-class explicit conversion.
		return CostPrimitiveNarrowing, ConvExplicit, true
	}

	if fInt && tInt {
		fSigned, tSigned := isSignedHash(fh), isSignedHash(th)
		fw, tw := widthRank(fh), widthRank(th)
		if fSigned == tSigned {
			if tw >= fw {
				if tw == fw {
					return CostIdentity, ConvImplicit, true
				}
				return CostPrimitiveWidening, ConvImplicit, true
			}
			return CostPrimitiveNarrowing, ConvExplicit, true
		}
		// signedness change, same or different width: cost 50 per the
		// spec's table; kept implicit only when widening to a wider
		// unsigned/signed type (decision recorded in DESIGN.md), explicit
		// otherwise.
		if tw > fw {
			return CostSignednessChange, ConvImplicit, true
		}
		return CostSignednessChange, ConvExplicit, true
	}

	if fInt && tFloat {
		return CostPrimitiveWidening, ConvImplicit, true
	}
	if fFloat && tInt {
		return CostFloatToInt, ConvExplicit, true
	}
	if fFloat && tFloat {
		fw, tw := widthRank(fh), widthRank(th)
		if tw >= fw {
			return CostPrimitiveWidening, ConvImplicit, true
		}
		return CostPrimitiveNarrowing, ConvExplicit, true
	}

	return CostImpossible, ConvExplicit, false
}
