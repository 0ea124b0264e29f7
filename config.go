package posixre

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Config controls compile-time limits, the prefilter/ASCII fast paths, and
// optional per-stage debug tracing.
//
// Example:
//
//	config := posixre.DefaultConfig()
//	config.EnablePrefilter = false // always run the interpreter directly
//	re, err := posixre.CompileWithConfig(`foo|bar|baz`, config)
type Config struct {
	// MaxPatternLength bounds the byte length of a pattern accepted by
	// Compile, guarding against pathologically large inputs.
	// Default: 4096.
	MaxPatternLength int

	// MaxRepeatBound bounds the numeric value accepted in a `{m}`/`{m,n}`
	// braced repeat, independent of internal/token's own overflow check on
	// the raw digits.
	// Default: 1000.
	MaxRepeatBound uint32

	// EnableOptimize runs the empty-transition-elimination and
	// duplicate-edge-folding passes over the parsed graph before it is
	// handed to the interpreter.
	// Default: true
	EnableOptimize bool

	// MaxOptimizePasses bounds how many times the optimizer's passes are
	// re-run to a fixpoint, guarding against pathological inputs.
	// Default: 4
	MaxOptimizePasses int

	// EnablePrefilter builds an Aho-Corasick/Memchr/Memmem prefilter from
	// the pattern's required literal alternatives, when extractable, to
	// reject non-matching input before running the backtracking search.
	// Default: true
	EnablePrefilter bool

	// EnableASCIIFastPath runs simd.IsASCII over the pattern at Compile
	// time and over the subject at each Match call. A pattern containing a
	// byte >= 0x80 is rejected with a *CompileError. A subject containing
	// one is never an error — it's recorded in Stats().NonASCIIWarnings and
	// matching proceeds normally, since the engine's 128-bit character
	// sets simply never match a byte >= 0x80.
	// Default: true
	EnableASCIIFastPath bool

	// DebugTokens, DebugParser, and DebugAutomata each enable a single-line
	// state dump per step of the corresponding stage (lexing, parsing,
	// interpretation), written to DebugWriter. Read once here rather than
	// from an ambient global, so enabling them never affects concurrent
	// uses of a different Config.
	// Default: false
	DebugTokens, DebugParser, DebugAutomata bool

	// DebugWriter receives the output of the Debug* flags above.
	// Default: io.Discard
	DebugWriter io.Writer
}

// DefaultConfig returns a configuration with sensible defaults: every
// optimization and fast path enabled, tuned for typical POSIX patterns. The
// Debug* fields are seeded once here from the REGEX_DEBUG, REGEX_PARSER_DEBUG,
// and REGEX_AUTOMATA_DEBUG environment variables (set if present, regardless
// of value) — read once at construction time rather than consulted per call,
// so toggling them never affects a Config already in use.
func DefaultConfig() Config {
	_, debugTokens := os.LookupEnv("REGEX_DEBUG")
	_, debugParser := os.LookupEnv("REGEX_PARSER_DEBUG")
	_, debugAutomata := os.LookupEnv("REGEX_AUTOMATA_DEBUG")
	return Config{
		MaxPatternLength:    4096,
		MaxRepeatBound:      1000,
		EnableOptimize:      true,
		MaxOptimizePasses:   4,
		EnablePrefilter:     true,
		EnableASCIIFastPath: true,
		DebugTokens:         debugTokens,
		DebugParser:         debugParser,
		DebugAutomata:       debugAutomata,
		DebugWriter:         io.Discard,
	}
}

// Validate reports whether c's fields are in range.
func (c Config) Validate() error {
	if c.MaxPatternLength < 1 {
		return &ConfigError{Field: "MaxPatternLength", Message: "must be >= 1"}
	}
	if c.MaxRepeatBound < 1 {
		return &ConfigError{Field: "MaxRepeatBound", Message: "must be >= 1"}
	}
	if c.MaxOptimizePasses < 0 || c.MaxOptimizePasses > 64 {
		return &ConfigError{Field: "MaxOptimizePasses", Message: "must be between 0 and 64"}
	}
	return nil
}

func (c Config) debugWriter() io.Writer {
	if c.DebugWriter == nil {
		return io.Discard
	}
	return c.DebugWriter
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("posixre: invalid config: %s: %s", e.Field, e.Message)
}

// ErrInvalidConfig is the sentinel wrapped by every ConfigError, so callers
// can classify a compile failure with errors.Is without inspecting fields.
var ErrInvalidConfig = errors.New("invalid configuration")

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }
