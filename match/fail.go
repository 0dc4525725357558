package match

import (
	"fmt"

	"github.com/michalwa/go-cliffs/token"
)

// Fail reports a call that a valid grammar did not match. Fails are expected,
// frequent outcomes of speculative matching and are cheap to construct and
// discard; they are not used for grammar compile errors (see cliffs.Error).
//
// The score accumulated up to the failure lives on the CallMatch the failing
// node was given, not on the Fail itself.
type Fail struct {
	// Code contains a non-zero failure code keyed by the failing node kind.
	Code int

	// Message contains a human-readable description, suitable for
	// "did you mean" suggestions and usage hints.
	Message string

	// Token contains the offending call token, if any.
	Token *token.Token
}

func (f *Fail) Error() string {
	return f.Message
}

// NewFail creates a Fail with the given code and message.
func NewFail(code int, msg string, tok *token.Token) *Fail {
	return &Fail{code, msg, tok}
}

// FormatFail creates a Fail formatting the message using fmt.Sprintf.
func FormatFail(code int, tok *token.Token, msg string, params ...any) *Fail {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return &Fail{code, msg, tok}
}
