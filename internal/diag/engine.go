package diag

import (
	"fmt"
	"sort"

	"github.com/alexparlett/angelscript-go/internal/ident"
)

// Related is one extra span+label attached to a Diagnostic, e.g. the
// other half of a duplicate declaration, or one node of an inheritance
// cycle (spec §6.4).
type Related struct {
	Span  ident.Span
	Label string
}

// Diagnostic is one outbound compiler diagnostic (spec §6.4).
type Diagnostic struct {
	Kind    Kind
	Message string
	Primary ident.Span
	Related []Related
}

// Engine accumulates diagnostics during a pass and renders them in
// deterministic, file-then-offset order (spec §4.4.7, §8.2), mirroring
// nilaway/diagnostic.Engine's accumulate-then-sort shape.
type Engine struct {
	fset  *ident.FileSet
	diags []Diagnostic
}

// NewEngine creates a diagnostic engine bound to fset, used to render
// human-readable positions for sorting.
func NewEngine(fset *ident.FileSet) *Engine {
	return &Engine{fset: fset}
}

// Add appends one diagnostic.
func (e *Engine) Add(d Diagnostic) {
	e.diags = append(e.diags, d)
}

// Addf appends a diagnostic built from a format string, for the common
// single-line case.
func (e *Engine) Addf(kind Kind, span ident.Span, format string, args ...interface{}) {
	e.Add(Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Primary: span})
}

// HasErrors reports whether any non-warning diagnostic was recorded
// (spec §4.3: "the final has_errors() is the commit gate").
func (e *Engine) HasErrors() bool {
	for _, d := range e.diags {
		if !d.Kind.IsWarning() {
			return true
		}
	}
	return false
}

// Diagnostics returns all recorded diagnostics sorted by file name then
// byte offset (spec §8.2 determinism, mirroring
// diagnostic.Engine.Diagnostics's sort).
func (e *Engine) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(e.diags))
	copy(out, e.diags)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := e.fset.Position(out[i].Primary), e.fset.Position(out[j].Primary)
		if pi.Filename != pj.Filename {
			return pi.Filename < pj.Filename
		}
		return pi.Offset < pj.Offset
	})
	return out
}

// Candidates formats an ambiguous-match candidate list for inclusion in
// a Message, e.g. for AmbiguousType/AmbiguousOverload (spec §7:
// "must list all candidates with their qualified names").
func Candidates(names []string) string {
	msg := "candidates: "
	for i, n := range names {
		if i > 0 {
			msg += ", "
		}
		msg += n
	}
	return msg
}
