// Package ffi defines the inbound contract for the pre-populated host
// registry (spec §6.2): a read-only source of `$ffi/...` types and
// functions, already fully resolved (no Unresolved* shapes), that the
// compiler's own registry consults but never mutates.
package ffi

import (
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// HostRegistry is the read-only surface a host runtime exposes for its
// FFI-registered types and functions. The compiler's own
// internal/registry.Tree mounts one HostRegistry under the reserved
// `$ffi` namespace node at construction time (spec §3.2, §5).
type HostRegistry interface {
	// ResolveTypeName looks up name in namespace ns, optionally also
	// consulting the given using-namespace paths, mirroring the
	// registry's own resolve_type algorithm (spec §4.1) for names that
	// live entirely on the host side.
	ResolveTypeName(name string, ns []string, uses [][]string) (types.TypeEntry, bool)

	// GetByHash resolves a previously observed TypeHash back to its
	// entry.
	GetByHash(hash ident.TypeHash) (types.TypeEntry, bool)

	// GetFunctionsByName returns the overload set registered under qn,
	// if any.
	GetFunctionsByName(qn ident.QualifiedName) []*types.FunctionDef
}

// Empty is a HostRegistry with nothing registered, useful for
// compiling units that declare no FFI dependency and for tests.
type Empty struct{}

func (Empty) ResolveTypeName(string, []string, [][]string) (types.TypeEntry, bool) {
	return types.TypeEntry{}, false
}

func (Empty) GetByHash(ident.TypeHash) (types.TypeEntry, bool) { return types.TypeEntry{}, false }

func (Empty) GetFunctionsByName(ident.QualifiedName) []*types.FunctionDef { return nil }
