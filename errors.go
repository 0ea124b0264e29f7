package posixre

import (
	"errors"
	"fmt"

	"github.com/coregx/posixre/internal/parse"
	"github.com/coregx/posixre/internal/token"
)

// CompileError wraps a compilation failure with the pattern that produced
// it. For a syntax error Unwrap returns the underlying *parse.Error, which
// in turn unwraps (through a *token.Error for a lexical error) to one of the
// sentinels below — so callers can classify a failure with errors.Is without
// ever importing the internal packages. For an over-large repeat bound Err
// is ErrRepeatBoundTooLarge itself; for a pattern byte >= 0x80 it is a plain
// error that matches none of the sentinels.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("posixre: error parsing pattern %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Lexical and syntactic error sentinels, re-exported from internal/token
// and internal/parse so callers can write errors.Is(err, posixre.ErrInvalidRange)
// without reaching into an internal package.
var (
	ErrUnmatchedOpenDelim    = token.ErrUnmatchedOpenDelim
	ErrUnmatchedRightParen   = token.ErrUnmatchedRightParen
	ErrUnmatchedRightBrace   = token.ErrUnmatchedRightBrace
	ErrUnmatchedRightBracket = token.ErrUnmatchedRightBracket
	ErrUnknownCharClass      = token.ErrUnknownCharClass
	ErrInvalidRange          = token.ErrInvalidRange
	ErrUnterminatedEscape    = token.ErrUnterminatedEscape
	ErrNumberOverflow        = token.ErrNumberOverflow
	ErrInvalidBraces         = parse.ErrInvalidBraces
	ErrInvalidSuffixOperator = parse.ErrInvalidSuffixOperator
	ErrUnexpectedToken       = parse.ErrUnexpectedToken
)

// ErrPatternTooLong is returned by Compile when a pattern exceeds
// Config.MaxPatternLength.
var ErrPatternTooLong = errors.New("posixre: pattern exceeds maximum length")

// ErrRepeatBoundTooLarge is returned by Compile when a `{m}`/`{m,n}` braced
// repeat names a bound larger than Config.MaxRepeatBound.
var ErrRepeatBoundTooLarge = errors.New("posixre: repeat bound exceeds maximum")
