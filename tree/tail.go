package tree

import (
	"github.com/michalwa/go-cliffs/match"
)

// Tail is a variadic parameter consuming all remaining tokens. It must be
// the rightmost node in its sequence (the grammar parser rejects siblings
// after it) and terminates the match, so no node may match after it.
type Tail struct {
	Name string

	// Raw binds the original substring spanning the remaining tokens,
	// preserving user whitespace, instead of the list of token values.
	Raw bool
}

func (t *Tail) NodeName() string {
	return "tail"
}

func (t *Tail) String() string {
	if t.Raw {
		return "<" + t.Name + "...*>"
	}
	return "<" + t.Name + "...>"
}

func (t *Tail) leadInfo() string {
	return "<" + t.Name + "...>"
}

func (t *Tail) Match(m *match.CallMatch, c *match.Matcher) *match.Fail {
	if f := guard(t, m); f != nil {
		return f
	}
	if !m.HasTokens() {
		return missingTailFail(t)
	}

	if t.Raw {
		text := m.Raw[m.Tokens[0].Start():m.Tokens[len(m.Tokens)-1].End()]
		if text == "" {
			return missingTailFail(t)
		}
		m.SetParam(t.Name, text)
	} else {
		values := make([]string, len(m.Tokens))
		for i, tok := range m.Tokens {
			values[i] = tok.Value()
		}
		m.SetParam(t.Name, values)
	}

	m.Terminated = true
	m.Take(len(m.Tokens))
	return nil
}
