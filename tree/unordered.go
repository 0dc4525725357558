package tree

import (
	"github.com/michalwa/go-cliffs/match"
)

// UnorderedGroup is a set of nodes that must all match, in any relative
// order.
//
// The order is found greedily: each round forks the match once per
// still-unused child, commits the best-scoring successful fork, and repeats
// until the children are exhausted or none can match. This is cheaper than
// searching all permutations but not guaranteed globally optimal: a greedy
// choice in an early round can foreclose a better overall assignment.
type UnorderedGroup struct {
	Children []Node

	// Identifier names the group in the grammar's symbol namespace; no
	// per-group state is recorded in the match.
	Identifier string
}

func (u *UnorderedGroup) NodeName() string {
	return "unordered_group"
}

func (u *UnorderedGroup) String() string {
	s := "{" + joinChildren(u.Children, " ") + "}"
	if u.Identifier != "" {
		s += ":" + u.Identifier
	}
	return s
}

func (u *UnorderedGroup) leadInfo() string {
	infos := ""
	for i, child := range u.Children {
		if i > 0 {
			infos += " or "
		}
		infos += child.leadInfo()
	}
	return infos
}

func (u *UnorderedGroup) Match(m *match.CallMatch, c *match.Matcher) *match.Fail {
	if f := guard(u, m); f != nil {
		return f
	}

	unused := make([]Node, len(u.Children))
	copy(unused, u.Children)

	for len(unused) > 0 {
		var (
			bestIndex = -1
			bestFork  *match.CallMatch
			bestFail  *match.Fail
			bestScore float64
		)

		for i, child := range unused {
			fork := m.Fork()
			if f := child.Match(fork, c); f == nil {
				if bestFork == nil || fork.Score > bestFork.Score {
					bestIndex, bestFork = i, fork
				}
			} else if fork.Score > 0 && (bestFail == nil || fork.Score > bestScore) {
				bestFail, bestScore = f, fork.Score
			}
		}

		switch {
		case bestFork != nil:
			m.Join(bestFork)
			unused = append(unused[:bestIndex], unused[bestIndex+1:]...)

		case bestFail != nil:
			m.Score += bestScore
			return bestFail

		case m.HasTokens():
			return unmatchedUnorderedFail(u, m.Tokens[0])

		default:
			return missingUnorderedFail(u)
		}
	}

	return nil
}
