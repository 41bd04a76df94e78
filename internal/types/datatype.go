// Package types implements the resolved type system: DataType (the
// expression-level type currency), TypeEntry (the schema stored in the
// registry), function signatures, and the conversion cost model (spec
// §3.3-§3.5, §4.5).
package types

import "github.com/alexparlett/angelscript-go/internal/ident"

// RefModifier is a parameter reference-passing mode.
type RefModifier int

const (
	RefNone RefModifier = iota
	RefIn
	RefOut
	RefInOut
)

func (r RefModifier) String() string {
	switch r {
	case RefIn:
		return "&in"
	case RefOut:
		return "&out"
	case RefInOut:
		return "&inout"
	default:
		return ""
	}
}

// DataType is the type-level currency of the Compilation pass (spec
// §3.4). Two DataTypes are equal iff every flag and hash matches.
type DataType struct {
	Hash            ident.TypeHash
	IsConst         bool
	IsHandle        bool
	IsHandleToConst bool
	Ref             RefModifier
	IsInterface     bool
	IsEnum          bool
	IsMixin         bool
	TemplateArgs    []DataType
}

// Equal reports whether two DataTypes are identical in every field,
// including nested template arguments.
func (d DataType) Equal(o DataType) bool {
	if d.Hash != o.Hash || d.IsConst != o.IsConst || d.IsHandle != o.IsHandle ||
		d.IsHandleToConst != o.IsHandleToConst || d.Ref != o.Ref ||
		d.IsInterface != o.IsInterface || d.IsEnum != o.IsEnum || d.IsMixin != o.IsMixin ||
		len(d.TemplateArgs) != len(o.TemplateArgs) {
		return false
	}
	for i, a := range d.TemplateArgs {
		if !a.Equal(o.TemplateArgs[i]) {
			return false
		}
	}
	return true
}

// AsConst returns a copy of d with IsConst set.
func (d DataType) AsConst() DataType {
	d.IsConst = true
	return d
}

// AsHandle returns a copy of d as a handle type (T@).
func (d DataType) AsHandle() DataType {
	d.IsHandle = true
	return d
}

// Well-known primitive type hashes. Primitive qualified names live at
// the root namespace, e.g. ident.Root("int").
var (
	HashVoid    = ident.HashName(ident.Root("void"))
	HashBool    = ident.HashName(ident.Root("bool"))
	HashInt8    = ident.HashName(ident.Root("int8"))
	HashInt16   = ident.HashName(ident.Root("int16"))
	HashInt32   = ident.HashName(ident.Root("int"))
	HashInt64   = ident.HashName(ident.Root("int64"))
	HashUint8   = ident.HashName(ident.Root("uint8"))
	HashUint16  = ident.HashName(ident.Root("uint16"))
	HashUint32  = ident.HashName(ident.Root("uint"))
	HashUint64  = ident.HashName(ident.Root("uint64"))
	HashFloat   = ident.HashName(ident.Root("float"))
	HashDouble  = ident.HashName(ident.Root("double"))
	HashString  = ident.HashName(ident.Root("string"))
	HashNullPtr = ident.HashName(ident.Root("$null"))
)

// PrimitiveNames lists the built-in primitive names registered at the
// root namespace before any pass runs (spec §3.3).
var PrimitiveNames = []string{
	"void", "bool",
	"int8", "int16", "int", "int64",
	"uint8", "uint16", "uint", "uint64",
	"float", "double",
}

func isIntegralHash(h ident.TypeHash) bool {
	switch h {
	case HashInt8, HashInt16, HashInt32, HashInt64, HashUint8, HashUint16, HashUint32, HashUint64:
		return true
	default:
		return false
	}
}

func isSignedHash(h ident.TypeHash) bool {
	switch h {
	case HashInt8, HashInt16, HashInt32, HashInt64:
		return true
	default:
		return false
	}
}

func widthRank(h ident.TypeHash) int {
	switch h {
	case HashInt8, HashUint8:
		return 1
	case HashInt16, HashUint16:
		return 2
	case HashInt32, HashUint32, HashFloat:
		return 3
	case HashInt64, HashUint64, HashDouble:
		return 4
	default:
		return 0
	}
}

func isFloatingHash(h ident.TypeHash) bool {
	return h == HashFloat || h == HashDouble
}
