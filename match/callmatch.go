// Package match defines the call match accumulator threaded through a match
// attempt and the matcher context holding parameter types and literal
// comparison policy.
package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/michalwa/go-cliffs/token"
)

// CallMatch accumulates the result of matching a command call against a
// command syntax tree. A fresh CallMatch is created per top-level attempt;
// nodes exploring a branch speculatively work on a Fork and either Join it
// back on success or discard it.
//
// A CallMatch is owned by a single match attempt and must not be shared
// across attempts or goroutines.
type CallMatch struct {
	// Raw contains the original call string passed to the call lexer.
	Raw string

	// Tokens contains the tokens remaining for further matching.
	Tokens []*token.Token

	// Score measures how well the call fits the grammar so far.
	Score float64

	// Terminated prevents any further node from matching (set by tail
	// parameters, which consume all remaining tokens).
	Terminated bool

	params map[string]any
	opts   []bool
	vars   []int
}

// NewCallMatch creates a match over the given call tokens.
func NewCallMatch(raw string, tokens []*token.Token) *CallMatch {
	return &CallMatch{Raw: raw, Tokens: tokens}
}

// Fork creates a speculative copy of this match: it shares the same
// remaining tokens but starts with an independent zero score and empty
// bindings, so a failed branch can be discarded without touching the parent.
func (m *CallMatch) Fork() *CallMatch {
	return &CallMatch{Raw: m.Raw, Tokens: m.Tokens}
}

// Join merges a successfully matched fork back into this match: consumed
// tokens, score, bindings, and optional/variant selections are all taken
// over from the fork.
func (m *CallMatch) Join(fork *CallMatch) {
	m.Tokens = fork.Tokens
	m.Score += fork.Score
	m.Terminated = m.Terminated || fork.Terminated
	for k, v := range fork.params {
		m.SetParam(k, v)
	}
	m.opts = append(m.opts, fork.opts...)
	m.vars = append(m.vars, fork.vars...)
}

// HasTokens reports whether any tokens remain for matching.
func (m *CallMatch) HasTokens() bool {
	return len(m.Tokens) > 0
}

// Take consumes n remaining tokens.
func (m *CallMatch) Take(n int) {
	m.Tokens = m.Tokens[n:]
}

// SetParam binds a value under the given name. Group identifiers share the
// namespace with parameter names (uniqueness is enforced at compile time by
// the symbol table).
func (m *CallMatch) SetParam(name string, value any) {
	if m.params == nil {
		m.params = make(map[string]any)
	}
	m.params[name] = value
}

// Param returns the value bound under the given parameter name or group
// identifier.
func (m *CallMatch) Param(name string) (any, bool) {
	v, ok := m.params[name]
	return v, ok
}

// AddOptional records the presence of an optional sequence.
func (m *CallMatch) AddOptional(present bool) {
	m.opts = append(m.opts, present)
}

// Optional reports the presence of the n-th positional optional sequence.
func (m *CallMatch) Optional(n int) bool {
	return m.opts[n]
}

// OptionalNamed reports the presence of the optional sequence with the given
// identifier.
func (m *CallMatch) OptionalNamed(id string) bool {
	v, _ := m.params[id].(bool)
	return v
}

// AddVariant records the index of the matched variant of a variant group.
func (m *CallMatch) AddVariant(index int) {
	m.vars = append(m.vars, index)
}

// Variant returns the matched variant index of the n-th positional variant
// group.
func (m *CallMatch) Variant(n int) int {
	return m.vars[n]
}

// VariantNamed returns the matched variant index of the variant group with
// the given identifier.
func (m *CallMatch) VariantNamed(id string) int {
	v, _ := m.params[id].(int)
	return v
}

func (m *CallMatch) String() string {
	names := make([]string, 0, len(m.params))
	for k := range m.params {
		names = append(names, k)
	}
	sort.Strings(names)
	pairs := make([]string, len(names))
	for i, k := range names {
		pairs[i] = fmt.Sprintf("%s: %v", k, m.params[k])
	}
	return fmt.Sprintf("params: {%s}, optionals: %v, variants: %v",
		strings.Join(pairs, ", "), m.opts, m.vars)
}
