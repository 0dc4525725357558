/*
Package cliffs is a command-line grammar engine.

A compact DSL describing the shape of a command, e.g.

	set [loud] alarm at <time: int> (am|pm)

is compiled into a syntax tree which then acts as a recursive matcher over
tokenized user input, producing typed parameters, resolving ambiguity with a
scoring heuristic, and selecting the best-matching command among many
candidates.

Consists of subpackages:
  - token: immutable lexical token carrying a source span;
  - lexer: call lexer splitting raw command strings into quoted/escaped tokens;
  - syntax: grammar DSL lexer and parser producing syntax trees;
  - tree: syntax tree nodes, call matching, flattening, and rendering;
  - match: call match accumulator and matcher context (parameter types,
    literal comparison policy);
  - dispatch: commands and the best-candidate dispatcher;
  - cmd/cliffsdemo: interactive demo REPL;
  - cmd/cliffsfmt: console utility printing canonical grammar renderings.

Typical usage is:

1. Create a dispatch.Dispatcher and register commands, each defined by a
grammar string and a callback.

2. Feed raw call strings to Dispatcher.Dispatch. The best-scoring command
callback runs with a populated match.CallMatch; if nothing matches, the
highest-scoring failure (or an unknown-command error) is returned.
*/
package cliffs

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	SyntaxErrors   = 1   // used by syntax: grammar compile errors
	MatchFails     = 101 // used by tree: call match failures
	DispatchErrors = 201 // used by dispatch
)

// Error is the error type used for grammar compile errors.
// A valid grammar that merely fails to match a call is reported with
// match.Fail instead; the two taxonomies are disjoint.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including the offending
	// position if known.
	Message string

	// Pos contains the byte offset of the offending token in the grammar
	// string, or -1 if not applicable.
	Pos int
}

// NewError creates new Error structure.
// pos will be added to the error message if non-negative.
func NewError(code int, pos int, msg string) *Error {
	if pos >= 0 {
		msg += fmt.Sprintf(" at %d", pos)
	}
	return &Error{code, msg, pos}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates an Error with no position information.
// params will be added to the error message using fmt.Sprintf.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, -1, msg)
}

// FormatErrorPos creates an Error carrying the byte offset of the offending
// token. params will be added to the error message using fmt.Sprintf.
func FormatErrorPos(pos int, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, pos, msg)
}
