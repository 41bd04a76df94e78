// Package pipeline generalizes the pass-dependency pattern the teacher
// uses throughout (`*analysis.Analyzer{Requires: [...], Run: ...}`,
// wired by `golang.org/x/tools/go/analysis`) into a small,
// dependency-free shape. This compiler's three passes are plain
// functions called in order by package compiler and are not wired
// through it. It
// deliberately does not import golang.org/x/tools/go/analysis itself:
// that package's Pass/Fact/gob-export machinery exists to propagate
// analysis results across real Go packages via go/types, which has no
// analogue for an AngelScript compilation unit. Only the
// Requires/Run/ResultOf shape is carried over (see DESIGN.md).
package pipeline

import "fmt"

// Analyzer is one stage of the compiler pipeline: a name, the stages it
// requires results from, and a Run function producing its own result.
type Analyzer struct {
	Name     string
	Doc      string
	Requires []*Analyzer
	Run      func(*Pass) (interface{}, error)
}

// Pass is handed to an Analyzer's Run function: it exposes the results
// of every (transitively) required Analyzer by identity, the same way
// nilaway's analysis.Pass.ResultOf does.
type Pass struct {
	ResultOf map[*Analyzer]interface{}
}

// Run executes root and everything it (transitively) requires, each
// exactly once, in dependency order. It returns root's result.
func Run(root *Analyzer) (interface{}, error) {
	results := map[*Analyzer]interface{}{}
	visiting := map[*Analyzer]bool{}
	var visit func(a *Analyzer) error
	visit = func(a *Analyzer) error {
		if _, done := results[a]; done {
			return nil
		}
		if visiting[a] {
			return fmt.Errorf("pipeline: cyclic Requires involving %q", a.Name)
		}
		visiting[a] = true
		for _, dep := range a.Requires {
			if err := visit(dep); err != nil {
				return err
			}
		}
		visiting[a] = false

		res, err := a.Run(&Pass{ResultOf: results})
		if err != nil {
			return fmt.Errorf("pipeline: analyzer %q: %w", a.Name, err)
		}
		results[a] = res
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}
	return results[root], nil
}
