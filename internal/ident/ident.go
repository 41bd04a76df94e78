// Package ident implements the value-typed identifiers shared across
// every compiler pass: qualified names, content-derived type hashes,
// and opaque namespace-tree node handles (spec §3.1).
package ident

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// QualifiedName is (simple_name, namespace_path), value-typed and
// hashable by structure. The zero value names a root-level identifier
// with an empty simple name, which is never a valid declaration name
// but is useful as a sentinel.
type QualifiedName struct {
	Simple    string
	Namespace []string
}

// New builds a QualifiedName for simple under the given namespace path.
// The namespace slice is copied so callers can safely reuse their
// backing array.
func New(simple string, namespace []string) QualifiedName {
	ns := make([]string, len(namespace))
	copy(ns, namespace)
	return QualifiedName{Simple: simple, Namespace: ns}
}

// Root builds a QualifiedName at the root namespace.
func Root(simple string) QualifiedName {
	return QualifiedName{Simple: simple}
}

// Child returns the QualifiedName for simple nested one level under qn,
// i.e. qn's full path becomes the namespace of the result.
func (qn QualifiedName) Child(simple string) QualifiedName {
	path := make([]string, 0, len(qn.Namespace)+1)
	path = append(path, qn.Namespace...)
	path = append(path, qn.Simple)
	return QualifiedName{Simple: simple, Namespace: path}
}

// String renders "A::B::Name", or bare "Name" at root.
func (qn QualifiedName) String() string {
	if len(qn.Namespace) == 0 {
		return qn.Simple
	}
	return strings.Join(qn.Namespace, "::") + "::" + qn.Simple
}

// Equal reports structural equality.
func (qn QualifiedName) Equal(other QualifiedName) bool {
	if qn.Simple != other.Simple || len(qn.Namespace) != len(other.Namespace) {
		return false
	}
	for i, seg := range qn.Namespace {
		if other.Namespace[i] != seg {
			return false
		}
	}
	return true
}

// key is the comparable form of QualifiedName suitable for use as a Go
// map key (QualifiedName itself holds a slice and is not comparable).
type key string

// Key returns a comparable representation of qn suitable as a map key.
func (qn QualifiedName) Key() key {
	var b strings.Builder
	for _, seg := range qn.Namespace {
		b.WriteString(seg)
		b.WriteByte('\x00')
	}
	b.WriteString(qn.Simple)
	return key(b.String())
}

// FromString parses "A::B::Name" (or "::A::B::Name" for an absolute
// path, which is treated identically to the non-absolute form since
// QualifiedName itself carries no relative/absolute distinction - that
// distinction only matters during resolve_type, see internal/registry).
func FromString(s string) QualifiedName {
	s = strings.TrimPrefix(s, "::")
	parts := strings.Split(s, "::")
	simple := parts[len(parts)-1]
	ns := parts[:len(parts)-1]
	return New(simple, ns)
}

// TypeHash is a 64-bit content-derived identifier computed from a
// qualified name (and, for functions, additionally from parameter type
// hashes). It is stable across runs for the same input. The namespace
// tree stores entries by name; hashes serve VM dispatch and the
// registry's reverse (hash-to-entry) lookups.
type TypeHash uint64

// HashName computes the TypeHash for a type's qualified name.
func HashName(qn QualifiedName) TypeHash {
	h := fnv.New64a()
	_, _ = h.Write([]byte(qn.String()))
	return TypeHash(h.Sum64())
}

// HashFunction computes the func_hash for a function: its qualified
// name folded with the ordered parameter type hashes, which encodes
// overload identity (spec §3.5).
func HashFunction(qn QualifiedName, paramHashes []TypeHash) TypeHash {
	h := fnv.New64a()
	_, _ = h.Write([]byte(qn.String()))
	for _, ph := range paramHashes {
		_, _ = h.Write([]byte{'#'})
		_, _ = h.Write([]byte(strconv.FormatUint(uint64(ph), 16)))
	}
	return TypeHash(h.Sum64())
}

// NodeRef is an opaque handle into the namespace tree, stable within
// one compilation. The zero value never refers to a valid node: index
// 0 is left unused so that zero-valued NodeRefs used by mistake are
// caught, and the root is reached via the registry's Root() accessor.
type NodeRef uint32

// Invalid is the sentinel NodeRef never returned by a successful
// lookup.
const Invalid NodeRef = 0
