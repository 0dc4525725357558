package tree

import (
	cliffs "github.com/michalwa/go-cliffs"
	"github.com/michalwa/go-cliffs/match"
	"github.com/michalwa/go-cliffs/token"
)

// Match failure codes, keyed by the failing node kind:
const (
	// MissingLiteralFail indicates that a literal expected a token but none
	// remained.
	MissingLiteralFail = cliffs.MatchFails + iota

	// MismatchedLiteralFail indicates a token that did not compare equal to
	// the expected literal.
	MismatchedLiteralFail

	// LiteralSuggestionFail indicates a token within the similarity
	// threshold of the expected literal; the message carries a suggestion.
	LiteralSuggestionFail

	// MissingParamFail indicates that a parameter expected an argument but
	// no token remained.
	MissingParamFail

	// MismatchedParamTypeFail indicates an argument the parameter type
	// constructor rejected.
	MismatchedParamTypeFail

	// MissingTailFail indicates that a tail parameter had no tokens (or no
	// text) left to consume.
	MissingTailFail

	// MissingVariantFail indicates a variant group with no tokens left to
	// match any variant against.
	MissingVariantFail

	// NoMatchedVariantFail indicates that no variant of a group matched the
	// remaining tokens.
	NoMatchedVariantFail

	// MissingUnorderedFail indicates an unordered group with no tokens left.
	MissingUnorderedFail

	// UnmatchedUnorderedFail indicates that some children of an unordered
	// group could not be matched against the remaining tokens.
	UnmatchedUnorderedFail

	// TerminatedFail indicates a node matched after a tail parameter
	// terminated the match. Grammars compiled by the syntax package cannot
	// place a sibling after a tail in the same sequence, but a tail nested
	// in a group can still terminate before a later node runs.
	TerminatedFail
)

func terminatedFail(n Node) *match.Fail {
	return match.FormatFail(TerminatedFail, nil, "tried matching %s after matching was terminated", n.NodeName())
}

// guard is the common entry check for every node matcher.
func guard(n Node, m *match.CallMatch) *match.Fail {
	if m.Terminated {
		return terminatedFail(n)
	}
	return nil
}

func missingLiteralFail(l *Literal) *match.Fail {
	return match.FormatFail(MissingLiteralFail, nil, "expected literal %q", l.Value)
}

func mismatchedLiteralFail(l *Literal, tok *token.Token) *match.Fail {
	return match.FormatFail(MismatchedLiteralFail, tok, "expected literal %q, got %q", l.Value, tok.Value())
}

func literalSuggestionFail(l *Literal, tok *token.Token) *match.Fail {
	return match.FormatFail(LiteralSuggestionFail, tok, "got %q, did you mean %q?", tok.Value(), l.Value)
}

func missingParamFail(p *Param) *match.Fail {
	return match.FormatFail(MissingParamFail, nil, "expected argument for parameter <%s>", p.Name)
}

func mismatchedParamTypeFail(p *Param, tok *token.Token, err error) *match.Fail {
	return match.FormatFail(MismatchedParamTypeFail, tok,
		"argument %q for parameter <%s> does not match type %s: %s", tok.Value(), p.Name, p.Type, err)
}

func missingTailFail(t *Tail) *match.Fail {
	return match.FormatFail(MissingTailFail, nil, "expected %s...", t.Name)
}

func missingVariantFail(g *VariantGroup) *match.Fail {
	return match.FormatFail(MissingVariantFail, nil, "expected %s", g.leadInfo())
}

func noMatchedVariantFail(g *VariantGroup, tok *token.Token) *match.Fail {
	return match.FormatFail(NoMatchedVariantFail, tok, "expected %s, got %q", g.leadInfo(), tok.Value())
}

func missingUnorderedFail(g *UnorderedGroup) *match.Fail {
	return match.FormatFail(MissingUnorderedFail, nil, "expected %s", g.leadInfo())
}

func unmatchedUnorderedFail(g *UnorderedGroup, tok *token.Token) *match.Fail {
	return match.FormatFail(UnmatchedUnorderedFail, tok, "expected %s, got %q", g.leadInfo(), tok.Value())
}
