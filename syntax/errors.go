package syntax

import (
	cliffs "github.com/michalwa/go-cliffs"
	"github.com/michalwa/go-cliffs/token"
)

// Grammar compile error codes.
const (
	UnexpectedTokenError = cliffs.SyntaxErrors + iota
	EmptyVariantError
	EmptySequenceError
	EmptyOptionalError
	EmptyUnorderedError
	EmptyParamNameError
	TrailingTailError
	DuplicateSymbolError
	BadIdentifierTargetError
	UnterminatedError
	UnknownTypeError
)

func unexpectedTokenError(tok *token.Token) *cliffs.Error {
	return cliffs.FormatError(UnexpectedTokenError, "unexpected %s", tok)
}

func unexpectedTokenReasonError(code int, tok *token.Token, reason string) *cliffs.Error {
	return cliffs.FormatError(code, "unexpected %s: %s", tok, reason)
}

func emptyVariantError(tok *token.Token) *cliffs.Error {
	return unexpectedTokenReasonError(EmptyVariantError, tok, "empty variant")
}

func emptySequenceError(tok *token.Token) *cliffs.Error {
	return unexpectedTokenReasonError(EmptySequenceError, tok, "empty sequence")
}

func emptyOptionalError(tok *token.Token) *cliffs.Error {
	return unexpectedTokenReasonError(EmptyOptionalError, tok, "empty optional sequence")
}

func emptyUnorderedError(tok *token.Token) *cliffs.Error {
	return unexpectedTokenReasonError(EmptyUnorderedError, tok, "empty unordered group")
}

func emptyParamNameError(tok *token.Token) *cliffs.Error {
	return unexpectedTokenReasonError(EmptyParamNameError, tok, "empty parameter name")
}

func trailingTailError(tok *token.Token) *cliffs.Error {
	return unexpectedTokenReasonError(TrailingTailError, tok, "nothing may follow a tail")
}

func duplicateSymbolError(name string) *cliffs.Error {
	return cliffs.FormatError(DuplicateSymbolError, "symbol %q used more than once", name)
}

func badIdentifierTargetError(tok *token.Token, nodeName string) *cliffs.Error {
	return cliffs.FormatError(BadIdentifierTargetError,
		"unexpected %s: cannot assign identifier to %s", tok, nodeName)
}

func unterminatedError(path string) *cliffs.Error {
	return cliffs.FormatError(UnterminatedError, "unterminated expression: %s", path)
}

func unknownTypeError(name, typeName string) *cliffs.Error {
	return cliffs.FormatError(UnknownTypeError,
		"parameter %q has unknown type %q", name, typeName)
}
