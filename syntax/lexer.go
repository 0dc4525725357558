// Package syntax compiles grammar DSL strings into syntax trees.
//
// A grammar such as
//
//	set [loud] alarm at <time: int> (am|pm)
//
// is first split into symbol and punctuation tokens, then parsed by a
// single-pass state machine into a tree of tree.Node values, flattened to
// canonical form.
package syntax

import (
	"strings"
	"unicode"

	"github.com/michalwa/go-cliffs/token"
)

// Punctuation recognized by the grammar DSL. Longer statics come last so a
// single-character match is tried first; none of them is a prefix of another,
// so the order only matters for scanning cost.
var statics = []string{
	"<", ">", "(", ")", "[", "]", "{", "}", ":", "|", "*", "^", "~",
	"...",
}

// Tokenize splits a grammar DSL string into symbol and static tokens.
// Whitespace delimits symbols without producing a token; a static ends any
// in-progress symbol immediately. Tokenize itself cannot fail; the parser
// enforces structure.
func Tokenize(grammar string) []*token.Token {
	var tokens []*token.Token
	var buf strings.Builder
	start := 0

	for i, c := range grammar {
		if unicode.IsSpace(c) {
			if buf.Len() > 0 {
				tokens = append(tokens, token.New(token.SymbolKind, buf.String(), start, i))
				buf.Reset()
			}
			continue
		}

		if buf.Len() == 0 {
			start = i
		}
		buf.WriteRune(c)

		end := i + len(string(c))
		s := buf.String()
		for _, static := range statics {
			if !strings.HasSuffix(s, static) {
				continue
			}
			if head := s[:len(s)-len(static)]; head != "" {
				tokens = append(tokens, token.New(token.SymbolKind, head, start, end-len(static)))
			}
			tokens = append(tokens, token.New(token.StaticKind, static, end-len(static), end))
			buf.Reset()
			break
		}
	}

	if buf.Len() > 0 {
		tokens = append(tokens, token.New(token.SymbolKind, buf.String(), start, len(grammar)))
	}

	return tokens
}
