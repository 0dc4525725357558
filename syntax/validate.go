package syntax

import (
	"github.com/michalwa/go-cliffs/match"
	"github.com/michalwa/go-cliffs/tree"
)

// Validate checks a compiled tree against a matcher: every typed parameter
// must name a type registered with the matcher. Untyped parameters always
// pass.
func Validate(root tree.Node, m *match.Matcher) error {
	var err error
	tree.Walk(root, func(n tree.Node) {
		if err != nil {
			return
		}
		if p, ok := n.(*tree.Param); ok && p.Type != "" && !m.HasType(p.Type) {
			err = unknownTypeError(p.Name, p.Type)
		}
	})
	return err
}
