package ident

import "go/token"

// UnitID identifies a compilation unit (source file) within a shared
// token.FileSet. Spans and diagnostics are always relative to one
// FileSet shared by all passes of a single compilation.
type UnitID int

// Span identifies a source range within a compilation unit: spec §3.6,
// §6.1, §6.4. It is carried by every unresolved and resolved AST-facing
// structure for diagnostics.
//
// Representation choice: rather than inventing a bespoke (file, offset)
// pair, spans are backed by stdlib go/token.Pos/token.Position, exactly
// the way the teacher package represents every diagnostic location.
// There is no third-party position-tracking library in the corpus or
// the wider ecosystem that supersedes go/token for this concern - the
// teacher itself reaches for go/token throughout, never a dependency.
type Span struct {
	Unit  UnitID
	Start token.Pos
	End   token.Pos
}

// FileSet is the shared position base for one compilation. One
// token.File is registered per compilation unit, mirroring
// diagnostic.Engine's iteration over pass.Fset in the teacher.
type FileSet struct {
	fset  *token.FileSet
	files []*token.File
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{fset: token.NewFileSet()}
}

// AddUnit registers a new compilation unit of the given source size
// and returns its UnitID plus the token.File to hand to the external
// parser for Pos computation.
func (fs *FileSet) AddUnit(name string, size int) (UnitID, *token.File) {
	f := fs.fset.AddFile(name, -1, size)
	fs.files = append(fs.files, f)
	return UnitID(len(fs.files) - 1), f
}

// Position resolves a Span's start position to a human-readable
// token.Position.
func (fs *FileSet) Position(s Span) token.Position {
	return fs.fset.Position(s.Start)
}

// Raw exposes the underlying token.FileSet for callers (e.g. the
// external parser) that need to build token.Pos values directly.
func (fs *FileSet) Raw() *token.FileSet { return fs.fset }
