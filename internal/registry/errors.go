package registry

import (
	"fmt"

	"github.com/alexparlett/angelscript-go/internal/ident"
)

// DuplicateTypeError is returned by RegisterType when simpleName is
// already defined in the target node (spec §4.1).
type DuplicateTypeError struct {
	Namespace []string
	Name      string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("duplicate type %q in namespace %v", e.Name, e.Namespace)
}

// DuplicateOverloadError is returned by RegisterFunction when an
// existing overload with the same func_hash is already present.
type DuplicateOverloadError struct {
	Namespace []string
	Name      string
	Hash      ident.TypeHash
}

func (e *DuplicateOverloadError) Error() string {
	return fmt.Sprintf("duplicate overload %q (hash %x) in namespace %v", e.Name, e.Hash, e.Namespace)
}

// UnknownNamespaceError is returned when a using directive's target
// namespace does not exist.
type UnknownNamespaceError struct {
	Path []string
}

func (e *UnknownNamespaceError) Error() string {
	return fmt.Sprintf("unknown namespace %v", e.Path)
}
