package tree

import (
	"strings"

	"github.com/michalwa/go-cliffs/match"
)

// Variant is a sequence serving as one alternative of a variant group.
type Variant struct {
	Children []Node
}

func (v *Variant) NodeName() string {
	return "variant"
}

func (v *Variant) String() string {
	return joinChildren(v.Children, " ")
}

func (v *Variant) leadInfo() string {
	if len(v.Children) == 0 {
		return "nothing"
	}
	return v.Children[0].leadInfo()
}

func (v *Variant) Match(m *match.CallMatch, c *match.Matcher) *match.Fail {
	if f := guard(v, m); f != nil {
		return f
	}
	for _, child := range v.Children {
		if f := child.Match(m, c); f != nil {
			return f
		}
	}
	return nil
}

// VariantGroup is a set of mutually exclusive alternative sequences;
// exactly one variant must match. The index of the matched variant is
// recorded in the match, by identifier or position.
type VariantGroup struct {
	Variants []*Variant

	// Identifier keys the chosen variant index in the match by name
	// instead of position, when set.
	Identifier string

	// Inherited marks an identifier written on the enclosing group rather
	// than on the variant group itself, as in "[a|b]:id".
	Inherited bool

	// Parens records whether the group is rendered with explicit
	// parentheses. Bare top-level alternatives ("a|b") render without.
	Parens bool
}

func (g *VariantGroup) NodeName() string {
	return "variant_group"
}

func (g *VariantGroup) String() string {
	vs := make([]string, len(g.Variants))
	for i, v := range g.Variants {
		vs[i] = v.String()
	}
	s := strings.Join(vs, "|")
	if g.Parens {
		s = "(" + s + ")"
	}
	if g.Identifier != "" && !g.Inherited {
		s += ":" + g.Identifier
	}
	return s
}

func (g *VariantGroup) leadInfo() string {
	infos := make([]string, 0, len(g.Variants))
	seen := make(map[string]bool)
	for _, v := range g.Variants {
		info := v.leadInfo()
		if !seen[info] {
			seen[info] = true
			infos = append(infos, info)
		}
	}
	return strings.Join(infos, " or ")
}

// Match forks once per variant, all starting from the same remaining
// tokens. Among fully successful forks the highest-scoring one is joined,
// ties broken in declaration order; otherwise the highest-scoring failure
// (if any scored) is surfaced.
func (g *VariantGroup) Match(m *match.CallMatch, c *match.Matcher) *match.Fail {
	if f := guard(g, m); f != nil {
		return f
	}

	var (
		bestIndex = -1
		bestFork  *match.CallMatch
		bestFail  *match.Fail
		bestScore float64
	)

	for i, v := range g.Variants {
		fork := m.Fork()
		if f := v.Match(fork, c); f == nil {
			if bestFork == nil || fork.Score > bestFork.Score {
				bestIndex, bestFork = i, fork
			}
		} else if fork.Score > 0 && (bestFail == nil || fork.Score > bestScore) {
			bestFail, bestScore = f, fork.Score
		}
	}

	if bestFork != nil {
		if g.Identifier != "" {
			bestFork.SetParam(g.Identifier, bestIndex)
		} else {
			bestFork.AddVariant(bestIndex)
		}
		m.Join(bestFork)
		return nil
	}

	if bestFail != nil {
		m.Score += bestScore
		return bestFail
	}

	if m.HasTokens() {
		return noMatchedVariantFail(g, m.Tokens[0])
	}
	return missingVariantFail(g)
}
