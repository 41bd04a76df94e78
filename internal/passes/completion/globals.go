package completion

import (
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/types"
)

// resolveGlobals is Completion phase 5 (spec §4.3): resolves every
// namespace-scoped global's declared type and registers it.
// InitializerFunc is left unset; the Compilation pass does not compile
// global initializer expressions either.
func (c *completer) resolveGlobals() {
	for _, g := range c.reg.Globals {
		entry := &types.GlobalEntry{Name: g.Name, Type: c.resolveTypeRef(g.Type), HasInitializer: g.HasInitializer}
		n := c.node(g.Name.Namespace)
		if err := c.tree.RegisterGlobal(n, g.Name.Simple, entry); err != nil {
			c.diags.Addf(diag.DuplicateDeclaration, g.Span, "%v", err)
		}
	}
}
