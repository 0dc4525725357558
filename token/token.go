// Package token defines the lexical token shared by the call lexer, the
// grammar DSL lexer, and the matching core.
package token

import (
	"fmt"
)

// Kinds used by the grammar DSL lexer. Call tokens carry no kind.
const (
	SymbolKind = "symbol"
	StaticKind = "static"
)

// Token is an immutable lexical unit. It records the raw substring it was
// built from, its byte span in the original input, and the logical value
// carried into matching (for quoted call tokens the value has the quotes
// and escapes removed).
type Token struct {
	kind       string
	raw        string
	start, end int
	value      string
}

// New creates a token whose logical value equals its raw text.
func New(kind, raw string, start, end int) *Token {
	return &Token{kind, raw, start, end, raw}
}

// NewValued creates a token with a logical value distinct from its raw text.
func NewValued(kind, raw string, start, end int, value string) *Token {
	return &Token{kind, raw, start, end, value}
}

func (t *Token) Kind() string {
	return t.kind
}

// Raw returns the exact substring the token was built from.
func (t *Token) Raw() string {
	return t.raw
}

// Value returns the logical value of the token.
func (t *Token) Value() string {
	return t.value
}

// Start returns the inclusive byte offset of the token in the original input.
func (t *Token) Start() int {
	return t.start
}

// End returns the exclusive byte offset of the token in the original input.
func (t *Token) End() int {
	return t.end
}

func (t *Token) String() string {
	if t.kind == "" {
		return fmt.Sprintf("%q at %d", t.value, t.start)
	}
	return fmt.Sprintf("%s %q at %d", t.kind, t.value, t.start)
}
