// Package lexer defines the call lexer.
//
// This is the first module a command call passes through upon being issued:
// it splits a raw call string into tokens, honoring quoted compound tokens
// (for including whitespace) and backslash escapes inside them. Token spans
// are byte offsets into the original string, which the matching core uses to
// reconstruct raw substrings.
package lexer

import (
	"strings"
	"unicode"

	"github.com/michalwa/go-cliffs/token"
)

// Lexer splits command calls into tokens.
// A Lexer is immutable and safe for concurrent use.
type Lexer struct {
	quotes string
}

// New creates a call lexer using ' and " as quoted-token delimiters.
func New() *Lexer {
	return &Lexer{quotes: `"'`}
}

// NewQuotes creates a call lexer with a custom set of quote characters.
func NewQuotes(quotes string) *Lexer {
	return &Lexer{quotes: quotes}
}

// Tokenize splits the given call string into tokens.
//
// Unterminated quoted tokens are returned as plain tokens including the
// opening quote; an unterminated trailing escape keeps its backslash.
// Tokenize cannot fail.
func (l *Lexer) Tokenize(call string) []*token.Token {
	var tokens []*token.Token

	var current strings.Builder
	currentStart := 0
	quote := rune(0)
	escape := false

	plain := func(end int) *token.Token {
		text := current.String()
		current.Reset()
		return token.New("", text, currentStart, end)
	}

	quoted := func(end int) *token.Token {
		value := current.String()
		current.Reset()
		raw := string(quote) + value + string(quote)
		return token.NewValued("", raw, currentStart, end, value)
	}

	end := 0
	for i, c := range call {
		end = i + len(string(c))

		switch {
		case unicode.IsSpace(c) && quote == 0:
			if current.Len() > 0 {
				tokens = append(tokens, plain(i))
			}
			current.Reset()
			currentStart = end

		case strings.ContainsRune(l.quotes, c):
			switch {
			case escape:
				// Keep the escape character if not inside a quoted token
				if quote == 0 {
					current.WriteByte('\\')
				}
				current.WriteRune(c)
				escape = false

			case quote == 0:
				if current.Len() > 0 {
					tokens = append(tokens, plain(i))
				}
				current.Reset()
				currentStart = i
				quote = c

			case quote == c:
				tokens = append(tokens, quoted(end))
				quote = 0
				currentStart = end

			default:
				current.WriteRune(c)
			}

		case c == '\\':
			if escape {
				current.WriteRune(c)
				escape = false
			} else {
				escape = true
			}

		default:
			// A backslash escaping a non-escapable character is kept
			if escape {
				current.WriteByte('\\')
				escape = false
			}
			current.WriteRune(c)
		}
	}

	// Unterminated escape sequence
	if escape {
		current.WriteByte('\\')
	}

	if quote != 0 {
		// Unterminated quoted token becomes a plain token with the quote
		text := string(quote) + current.String()
		tokens = append(tokens, token.New("", text, currentStart, end))
	} else if current.Len() > 0 {
		tokens = append(tokens, plain(end))
	}

	return tokens
}
