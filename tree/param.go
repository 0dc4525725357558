package tree

import (
	"github.com/michalwa/go-cliffs/match"
)

// Param is a command parameter. The token present in place of the parameter
// is stored as the value of that parameter in the match, optionally parsed
// by a type registered with the matcher.
type Param struct {
	Name string

	// Type names a constructor registered with the matcher, or "" for a
	// plain string parameter.
	Type string
}

func (p *Param) NodeName() string {
	return "parameter"
}

func (p *Param) String() string {
	if p.Type == "" {
		return "<" + p.Name + ">"
	}
	return "<" + p.Name + ": " + p.Type + ">"
}

func (p *Param) leadInfo() string {
	return "<" + p.Name + ">"
}

func (p *Param) Match(m *match.CallMatch, c *match.Matcher) *match.Fail {
	if f := guard(p, m); f != nil {
		return f
	}
	if !m.HasTokens() {
		return missingParamFail(p)
	}

	tok := m.Tokens[0]
	var value any = tok.Value()
	if p.Type != "" {
		v, err := c.ParseArg(p.Type, tok.Value())
		if err != nil {
			return mismatchedParamTypeFail(p, tok, err)
		}
		value = v
	}

	m.Score += paramScore
	m.SetParam(p.Name, value)
	m.Take(1)
	return nil
}
