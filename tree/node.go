// Package tree defines syntax tree nodes and the call matching core.
//
// A compiled command syntax is a tree of nodes, each implementing a
// recursive matcher over the remaining call tokens. Matching is speculative:
// nodes that need to explore a branch fork the call match, mutate the fork,
// and either join it back on success or discard it, accumulating a score
// used to rank competing branches and commands.
//
// Trees are immutable after compilation; matching mutates only the
// match.CallMatch it is given, so a compiled tree may be matched
// concurrently against different calls.
package tree

import (
	"github.com/michalwa/go-cliffs/match"
)

// Node is a node in a syntax tree.
type Node interface {
	// NodeName returns the kind name of the node, used in nesting paths of
	// compile errors ("optional_sequence > variant_group").
	NodeName() string

	// String returns the canonical grammar rendering of the node.
	String() string

	// Match tries to parse call tokens from m into m, using the comparison
	// policy and parameter types of c. On failure the returned Fail
	// describes the most informative cause; m may have accumulated partial
	// score but its remaining tokens are only consumed on success.
	Match(m *match.CallMatch, c *match.Matcher) *match.Fail

	// leadInfo describes the first token(s) this node expects, for
	// "expected one of" failure messages.
	leadInfo() string
}

// Render returns the canonical grammar string for a tree root. Unlike
// String, the outermost sequence (or bare variant group) is rendered without
// enclosing delimiters, matching the way grammars are written.
func Render(n Node) string {
	switch root := n.(type) {
	case *Sequence:
		return joinChildren(root.Children, " ")
	default:
		return n.String()
	}
}

// Walk calls fn for n and all of its descendants, depth-first.
func Walk(n Node, fn func(Node)) {
	fn(n)
	for _, child := range childrenOf(n) {
		Walk(child, fn)
	}
}

func childrenOf(n Node) []Node {
	switch t := n.(type) {
	case *Sequence:
		return t.Children
	case *OptionalSequence:
		return t.Children
	case *UnorderedGroup:
		return t.Children
	case *Variant:
		return t.Children
	case *VariantGroup:
		nodes := make([]Node, len(t.Variants))
		for i, v := range t.Variants {
			nodes[i] = v
		}
		return nodes
	default:
		return nil
	}
}

func joinChildren(children []Node, sep string) string {
	s := ""
	for i, child := range children {
		if i > 0 {
			s += sep
		}
		s += child.String()
	}
	return s
}

// Equal reports whether two trees are structurally equal: same node kinds,
// same flags, identifiers and names, same children. Rendering decisions
// that do not affect matching (variant group parenthesization) are ignored.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Value == y.Value && x.CaseSensitive == y.CaseSensitive && x.Tolerant == y.Tolerant
	case *Param:
		y, ok := b.(*Param)
		return ok && x.Name == y.Name && x.Type == y.Type
	case *Tail:
		y, ok := b.(*Tail)
		return ok && x.Name == y.Name && x.Raw == y.Raw
	case *Sequence:
		y, ok := b.(*Sequence)
		return ok && equalChildren(x.Children, y.Children)
	case *OptionalSequence:
		y, ok := b.(*OptionalSequence)
		return ok && x.Identifier == y.Identifier && equalChildren(x.Children, y.Children)
	case *UnorderedGroup:
		y, ok := b.(*UnorderedGroup)
		return ok && x.Identifier == y.Identifier && equalChildren(x.Children, y.Children)
	case *Variant:
		y, ok := b.(*Variant)
		return ok && equalChildren(x.Children, y.Children)
	case *VariantGroup:
		y, ok := b.(*VariantGroup)
		if !ok || x.Identifier != y.Identifier || len(x.Variants) != len(y.Variants) {
			return false
		}
		for i := range x.Variants {
			if !Equal(x.Variants[i], y.Variants[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalChildren(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
