package tree

import (
	"strings"

	"github.com/michalwa/go-cliffs/match"
)

// Score credited for an exactly matched literal and for a matched parameter.
// A fuzzy-accepted literal is credited match.Matcher.PartialScore instead,
// so an exact match always ranks strictly above a fuzzy one.
const (
	literalScore = 1.0
	paramScore   = 0.5
)

// Literal is a literal command token. A token must be present in the call
// and compare equal to the literal value; a token within the similarity
// threshold is either accepted with partial credit (if the literal is
// tolerant) or reported as a suggestion.
type Literal struct {
	Value string

	// CaseSensitive compares the token exactly; the ^ grammar marker
	// clears it.
	CaseSensitive bool

	// Tolerant accepts tokens within the similarity threshold instead of
	// suggesting the literal. Set by the ~ grammar marker.
	Tolerant bool
}

func NewLiteral(value string) *Literal {
	return &Literal{Value: value, CaseSensitive: true}
}

func (l *Literal) NodeName() string {
	return "literal"
}

func (l *Literal) String() string {
	s := l.Value
	if !l.CaseSensitive {
		s += "^"
	}
	if l.Tolerant {
		s += "~"
	}
	return s
}

func (l *Literal) leadInfo() string {
	return "'" + l.Value + "'"
}

func (l *Literal) Match(m *match.CallMatch, c *match.Matcher) *match.Fail {
	if f := guard(l, m); f != nil {
		return f
	}
	if !m.HasTokens() {
		return missingLiteralFail(l)
	}

	tok := m.Tokens[0]
	expected, actual := l.Value, tok.Value()
	if !l.CaseSensitive || !c.CaseSensitive {
		expected = strings.ToLower(expected)
		actual = strings.ToLower(actual)
	}

	if expected == actual {
		m.Score += literalScore
		m.Take(1)
		return nil
	}

	if c.Similarity(expected, actual) >= c.Threshold {
		m.Score += c.PartialScore
		if l.Tolerant {
			m.Take(1)
			return nil
		}
		return literalSuggestionFail(l, tok)
	}

	return mismatchedLiteralFail(l, tok)
}
