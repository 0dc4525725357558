package match

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Default comparison policy knobs. Both are configurable per Matcher.
const (
	// DefaultThreshold is the minimum similarity ratio between a literal and
	// a token for the literal to be hinted or tolerantly accepted.
	DefaultThreshold = 0.75

	// DefaultPartialScore is the score credited for a fuzzy literal match,
	// whether tolerantly accepted or surfaced as a suggestion.
	DefaultPartialScore = 0.25
)

// TypeFunc constructs a typed parameter value from a call token value.
type TypeFunc func(s string) (any, error)

// Matcher provides context in the process of matching a command call against
// a compiled command syntax: registered parameter types and the literal
// comparison policy. The type registry is mutable only at setup time; during
// matching a Matcher is read-only and safe for concurrent use.
type Matcher struct {
	// Threshold is the minimum similarity for fuzzy literal matching.
	Threshold float64

	// PartialScore is the score credited for a fuzzy literal match.
	PartialScore float64

	// CaseSensitive is the default literal comparison policy; individual
	// literals may override it with the ^ marker.
	CaseSensitive bool

	types map[string]TypeFunc
}

// NewMatcher creates a matcher with the default policy and the built-in
// parameter types str, int, float, and bool.
func NewMatcher() *Matcher {
	m := &Matcher{
		Threshold:     DefaultThreshold,
		PartialScore:  DefaultPartialScore,
		CaseSensitive: true,
		types:         make(map[string]TypeFunc),
	}
	m.RegisterType("str", func(s string) (any, error) { return s, nil })
	m.RegisterType("int", func(s string) (any, error) { return strconv.Atoi(s) })
	m.RegisterType("float", func(s string) (any, error) { return strconv.ParseFloat(s, 64) })
	m.RegisterType("bool", func(s string) (any, error) { return LooseBool(s) })
	return m
}

// RegisterType registers a parameter type under the given name, replacing
// any previous registration.
func (m *Matcher) RegisterType(name string, fn TypeFunc) {
	m.types[name] = fn
}

// HasType reports whether a type with the given name is registered.
func (m *Matcher) HasType(name string) bool {
	_, ok := m.types[name]
	return ok
}

// ParseArg parses the given call token value using the registered type with
// the given name.
func (m *Matcher) ParseArg(typename, value string) (any, error) {
	fn, ok := m.types[typename]
	if !ok {
		return nil, fmt.Errorf("undefined type %q", typename)
	}
	return fn(value)
}

// Similarity returns the longest-common-subsequence similarity ratio of the
// two strings, in [0, 1].
func (m *Matcher) Similarity(a, b string) float64 {
	return difflib.NewMatcher(explode(a), explode(b)).Ratio()
}

// explode splits a string into per-rune sequence elements for character
// level sequence matching.
func explode(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

var (
	affirmative = []string{"y", "yes", "t", "true", "do", "ok", "sure", "alright"}
	negative    = []string{"n", "no", "f", "false", "dont"}
)

// LooseBool loosely converts a string to a boolean: a parseable number is
// true iff nonzero; otherwise the string is compared case-insensitively
// against fixed affirmative and negative word sets.
func LooseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f != 0, nil
	}

	low := strings.ToLower(s)
	for _, w := range affirmative {
		if low == w {
			return true, nil
		}
	}
	for _, w := range negative {
		if low == w {
			return false, nil
		}
	}

	return false, fmt.Errorf("string %q cannot be loosely cast to a boolean", s)
}
