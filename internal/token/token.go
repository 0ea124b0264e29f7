// Package token implements the pattern tokenizer: a lazy stream of tokens
// drawn from the pattern text, with a small syntactic-context stack that
// disambiguates meta-characters inside brackets and braces.
package token

import (
	"fmt"

	"github.com/coregx/posixre/internal/charclass"
)

// Kind identifies the shape of a Token.
type Kind uint8

const (
	EOF Kind = iota
	LParen
	RParen
	LBrace
	RightBraces
	Comma
	Numeric
	LBracket
	LBracketCaret
	RightBrackets
	CharClass
	CharRange
	Atom
	Star
	Plus
	Question
	Period
	Pipe
	MatchBegin
	MatchEnd
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RightBraces:
		return "RightBraces"
	case Comma:
		return "Comma"
	case Numeric:
		return "Numeric"
	case LBracket:
		return "LBracket"
	case LBracketCaret:
		return "LBracketCaret"
	case RightBrackets:
		return "RightBrackets"
	case CharClass:
		return "CharClass"
	case CharRange:
		return "CharRange"
	case Atom:
		return "Atom"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	case Question:
		return "Question"
	case Period:
		return "Period"
	case Pipe:
		return "Pipe"
	case MatchBegin:
		return "MatchBegin"
	case MatchEnd:
		return "MatchEnd"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Token is one lexical unit produced by the Lexer. Only the fields
// relevant to Kind are meaningful; see the comment on each Kind constant's
// producer in lexer.go.
type Token struct {
	Kind      Kind
	Atom      []byte
	Numeric   uint32
	CharClass charclass.CharSet
	RangeLo   byte
	RangeHi   byte
	Pos       int // byte offset in the pattern where this token starts
}

func (t Token) String() string {
	switch t.Kind {
	case Atom:
		return fmt.Sprintf("Atom(%q)", t.Atom)
	case Numeric:
		return fmt.Sprintf("Numeric(%d)", t.Numeric)
	case CharRange:
		return fmt.Sprintf("CharRange(%q-%q)", t.RangeLo, t.RangeHi)
	default:
		return t.Kind.String()
	}
}
