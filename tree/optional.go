package tree

import (
	"github.com/michalwa/go-cliffs/match"
)

// OptionalSequence is a sub-sequence that may be entirely absent. Its
// children are matched as an all-or-nothing unit against a fork of the
// match; absence is recorded instead of failing.
type OptionalSequence struct {
	Children []Node

	// Identifier keys the presence flag in the match by name instead of
	// position, when set.
	Identifier string
}

func (o *OptionalSequence) NodeName() string {
	return "optional_sequence"
}

func (o *OptionalSequence) String() string {
	s := "[" + joinChildren(o.Children, " ") + "]"
	if id := o.renderedIdentifier(); id != "" {
		s += ":" + id
	}
	return s
}

// renderedIdentifier returns the identifier to render after the closing
// bracket: either the sequence's own, or one inherited by a sole bare
// variant-group child (written "[a|b]:id" in the grammar).
func (o *OptionalSequence) renderedIdentifier() string {
	if o.Identifier != "" {
		return o.Identifier
	}
	if len(o.Children) == 1 {
		if g, ok := o.Children[0].(*VariantGroup); ok && g.Inherited {
			return g.Identifier
		}
	}
	return ""
}

func (o *OptionalSequence) leadInfo() string {
	if len(o.Children) == 0 {
		return "nothing"
	}
	return o.Children[0].leadInfo()
}

// Match attempts all children against a fork. A fork that fails without
// scoring means the branch is simply absent and the parent tokens are left
// untouched; a fork that scored before failing signals that the user
// probably meant this branch and got it wrong, so the failure is surfaced
// instead of being swallowed.
func (o *OptionalSequence) Match(m *match.CallMatch, c *match.Matcher) *match.Fail {
	if f := guard(o, m); f != nil {
		return f
	}

	fork := m.Fork()
	for _, child := range o.Children {
		if f := child.Match(fork, c); f != nil {
			if fork.Score == 0 {
				o.recordPresence(m, false)
				return nil
			}
			m.Score += fork.Score
			return f
		}
	}

	o.recordPresence(m, true)
	m.Join(fork)
	return nil
}

func (o *OptionalSequence) recordPresence(m *match.CallMatch, present bool) {
	if o.Identifier != "" {
		m.SetParam(o.Identifier, present)
	} else {
		m.AddOptional(present)
	}
}
