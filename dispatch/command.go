// Package dispatch defines commands, each pairing a compiled grammar with a
// callback, and the dispatcher picking the best-matching command for a call.
package dispatch

import (
	"strings"

	cliffs "github.com/michalwa/go-cliffs"
	"github.com/michalwa/go-cliffs/lexer"
	"github.com/michalwa/go-cliffs/match"
	"github.com/michalwa/go-cliffs/syntax"
	"github.com/michalwa/go-cliffs/tree"
)

// Dispatch error and failure codes.
const (
	// TooManyArgsFail is raised when a call structurally matches a command
	// but leaves tokens unconsumed.
	TooManyArgsFail = cliffs.DispatchErrors + iota

	// UnknownCommandError is returned by the dispatcher when no command
	// scored against the call at all.
	UnknownCommandError
)

// Callback runs when a command is dispatched; m carries the bound
// parameters, optional presences and variant choices.
type Callback func(m *match.CallMatch) (any, error)

// Command pairs a compiled command grammar with a callback.
type Command struct {
	root        tree.Node
	callback    Callback
	lexer       *lexer.Lexer
	matcher     *match.Matcher
	parser      *syntax.Parser
	description string
}

// Option configures a command before its grammar is compiled.
type Option func(*Command)

// WithLexer sets the call lexer used to tokenize calls.
func WithLexer(l *lexer.Lexer) Option {
	return func(c *Command) { c.lexer = l }
}

// WithMatcher sets the matcher providing parameter types and literal
// comparison policy.
func WithMatcher(m *match.Matcher) Option {
	return func(c *Command) { c.matcher = m }
}

// WithParser sets the grammar parser used to compile the grammar.
func WithParser(p *syntax.Parser) Option {
	return func(c *Command) { c.parser = p }
}

// WithDescription sets the description shown in usage messages.
func WithDescription(d string) Option {
	return func(c *Command) { c.description = d }
}

// NewCommand compiles the grammar and pairs it with the callback. Grammar
// compile errors and references to parameter types not registered with the
// matcher are reported here, not at match time.
func NewCommand(grammar string, callback Callback, opts ...Option) (*Command, error) {
	c := &Command{
		callback: callback,
		lexer:    lexer.New(),
		matcher:  match.NewMatcher(),
		parser:   syntax.NewParser(),
	}
	for _, opt := range opts {
		opt(c)
	}

	root, err := c.parser.Parse(grammar)
	if err != nil {
		return nil, err
	}
	if err := syntax.Validate(root, c.matcher); err != nil {
		return nil, err
	}
	c.root = root
	return c, nil
}

// Syntax returns the root of the compiled syntax tree.
func (c *Command) Syntax() tree.Node {
	return c.root
}

// String returns the canonical grammar rendering of the command.
func (c *Command) String() string {
	return tree.Render(c.root)
}

// Match matches a call against the command grammar. A full match requires
// the call tokens to be consumed entirely; leftover tokens fail with
// TooManyArgsFail. The returned CallMatch carries the accumulated score
// even when matching failed.
func (c *Command) Match(call string) (*match.CallMatch, *match.Fail) {
	m := match.NewCallMatch(call, c.lexer.Tokenize(call))
	if fail := c.root.Match(m, c.matcher); fail != nil {
		return m, fail
	}
	if m.HasTokens() {
		return m, match.FormatFail(TooManyArgsFail, m.Tokens[0], "too many arguments: %q", m.Tokens[0].Value())
	}
	return m, nil
}

// Execute runs the callback with a populated match, normally the result of
// a successful Match call.
func (c *Command) Execute(m *match.CallMatch) (any, error) {
	return c.callback(m)
}

// UsageLines returns the usage message of the command: the grammar
// rendering followed by the indented description, wrapped to maxWidth
// columns (0 disables wrapping).
func (c *Command) UsageLines(maxWidth, indentWidth int) []string {
	lines := wrap(c.String(), maxWidth)
	if c.description != "" {
		width := maxWidth - indentWidth
		if maxWidth > 0 && width < 1 {
			// An indent swallowing the whole width must not disable wrapping.
			width = 1
		}
		indent := strings.Repeat(" ", indentWidth)
		for _, line := range wrap(c.description, width) {
			lines = append(lines, indent+line)
		}
	}
	return lines
}

// wrap greedily wraps text into lines at most width columns wide. Words
// longer than the width get a line of their own.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
