package compilation

import "github.com/alexparlett/angelscript-go/internal/types"

// local is one variable binding in a lexical scope.
type local struct {
	slot    int
	typ     types.DataType
	isConst bool
}

// scope is one block's lexical environment (spec §4.4.1: each Block is
// its own scope, nested lexically).
type scope struct {
	vars   map[string]*local
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{vars: map[string]*local{}, parent: parent}
}

// lookup searches this scope then its parents, innermost first.
func (s *scope) lookup(name string) (*local, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if l, ok := cur.vars[name]; ok {
			return l, true
		}
	}
	return nil, false
}

// declare binds name in this scope only; returns false if name is
// already bound here (spec §4.4.1 duplicate-local detection).
func (s *scope) declare(name string, l *local) bool {
	if _, exists := s.vars[name]; exists {
		return false
	}
	s.vars[name] = l
	return true
}

// loopContext tracks the patch lists for break/continue inside one
// loop or switch, resolved once the loop's code is fully emitted
// (spec §4.4.5).
type loopContext struct {
	breakPatches    []int
	continuePatches []int
	continueTarget  int
	hasContinueTarget bool
	// isSwitch marks a context pushed for a switch rather than a loop:
	// break binds to it, but continue must skip past it to the nearest
	// enclosing loop (spec §4.4.5).
	isSwitch bool
}
