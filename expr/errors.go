package expr

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrMismatchedParens = errors.New("mismatched parentheses")
	ErrIncomplete       = errors.New("incomplete expression")
)

// Error describes why an input could not be tokenized or parsed.
// Err is one of ErrMalformedToken, ErrMismatchedParens or ErrIncomplete.
type Error struct {
	Err     error
	Message string
	Literal string
	Span    Span
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Span.Start.Line != 0 {
		return fmt.Sprintf("%s: %s", e.Span.Start, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorAt(err error, tok Token, format string, args ...any) *Error {
	return &Error{
		Err:     err,
		Message: fmt.Sprintf(format, args...),
		Literal: tok.Literal,
		Span:    tok.Span,
	}
}
