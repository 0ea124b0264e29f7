package token

import (
	"errors"
	"fmt"

	"github.com/coregx/posixre/internal/charclass"
)

// Sentinel lexical errors. Callers use errors.Is against these to classify
// a failure without parsing message text.
var (
	ErrUnmatchedOpenDelim    = errors.New("unmatched opening delimiter")
	ErrUnmatchedRightParen   = errors.New("unmatched right parenthesis")
	ErrUnmatchedRightBrace   = errors.New("unmatched right brace")
	ErrUnmatchedRightBracket = errors.New("unmatched right bracket")
	ErrUnknownCharClass      = errors.New("unexpected character class")
	ErrInvalidRange          = errors.New("invalid range")
	ErrUnterminatedEscape    = errors.New("escape at the end of expression")
	ErrNumberOverflow        = errors.New("number exceeds maximum boundary")
	ErrInvalidBraces         = errors.New("invalid braces format")
)

// Error wraps a sentinel lexical error with the byte offset where it was
// detected. Err is one of the Err* sentinels above, or an
// *InvalidRangeError, which unwraps to ErrInvalidRange.
type Error struct {
	Pos int
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("at offset %d: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(pos int, err error) *Error {
	return &Error{Pos: pos, Err: err}
}

// InvalidRangeError reports a malformed bracket-expression range such as
// [z-a] or [A-9], naming the two endpoints. It wraps ErrInvalidRange, so
// errors.Is(err, token.ErrInvalidRange) still classifies it.
type InvalidRangeError struct {
	Lo, Hi byte
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %s-%s", charclass.EscapeByte(e.Lo), charclass.EscapeByte(e.Hi))
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}
