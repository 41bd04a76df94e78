package completion

import "github.com/alexparlett/angelscript-go/internal/diag"

// resolveUsingDirectives is Completion phase 1 (spec §4.3): wires every
// `using namespace X;` collected by Registration into a Uses edge,
// failing with UnknownNamespace when the target path does not exist.
func (c *completer) resolveUsingDirectives() {
	for _, u := range c.reg.Usings {
		from := c.node(u.SourceNamespace)
		to, ok := c.tree.LookupPath(u.TargetNamespace)
		if !ok {
			c.diags.Addf(diag.UnknownNamespace, u.Span, "unknown namespace %q", joinNS(u.TargetNamespace))
			continue
		}
		c.tree.AddUsingEdge(from, to)
	}
}

func joinNS(path []string) string {
	out := ""
	for i, s := range path {
		if i > 0 {
			out += "::"
		}
		out += s
	}
	return out
}
