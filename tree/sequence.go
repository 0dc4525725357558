package tree

import (
	"github.com/michalwa/go-cliffs/match"
)

// Sequence is a simple sequence of syntax nodes: all children must match in
// order. The root of every parsed tree starts out as a sequence.
type Sequence struct {
	Children []Node
}

func (s *Sequence) NodeName() string {
	return "sequence"
}

// String renders a nested sequence with parentheses; use Render for roots.
func (s *Sequence) String() string {
	return "(" + joinChildren(s.Children, " ") + ")"
}

func (s *Sequence) leadInfo() string {
	if len(s.Children) == 0 {
		return "nothing"
	}
	return s.Children[0].leadInfo()
}

// Match threads the same match state through the children in order; the
// first failing child propagates immediately with the score accumulated so
// far.
func (s *Sequence) Match(m *match.CallMatch, c *match.Matcher) *match.Fail {
	if f := guard(s, m); f != nil {
		return f
	}
	for _, child := range s.Children {
		if f := child.Match(m, c); f != nil {
			return f
		}
	}
	return nil
}
