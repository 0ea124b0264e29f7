// Package parse turns a token stream into a compiled graph.Graph. It keeps
// a stack of frames, one per open '(' / '[' / '[^' / '|' layer, and folds
// each frame's accumulated sub-graphs into its enclosing layer as the
// matching close token (or end of input) is seen.
package parse

import (
	"errors"

	"github.com/coregx/posixre/internal/charclass"
	"github.com/coregx/posixre/internal/graph"
	"github.com/coregx/posixre/internal/token"
)

type frameKind uint8

const (
	frameOuter frameKind = iota
	frameParen
	frameBracket
	frameBracketNeg
	framePipe
)

type frame struct {
	kind      frameKind
	subgraphs []*graph.Graph
}

// Result is the product of a successful Parse: the assembled graph plus
// the two boolean anchors the pattern requested.
type Result struct {
	Graph      *graph.Graph
	MatchBegin bool
	MatchEnd   bool
}

// Parser drives a token.Lexer and assembles a graph.Graph from its output.
type Parser struct {
	lx    *token.Lexer
	stack []*frame

	matchBegin bool
	matchEnd   bool
}

// Parse compiles pattern into a finished graph, with leading/trailing
// unanchored wrapping already applied where the pattern lacks ^ or $.
func Parse(pattern string) (*Result, error) {
	p := &Parser{lx: token.New(pattern)}
	p.push(frameOuter)
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.finish()
}

func (p *Parser) push(k frameKind) {
	p.stack = append(p.stack, &frame{kind: k})
}

func (p *Parser) top() *frame {
	return p.stack[len(p.stack)-1]
}

// pushSub appends g to the current top frame's sub-graph list.
func (p *Parser) pushSub(g *graph.Graph) {
	f := p.top()
	f.subgraphs = append(f.subgraphs, g)
}

// applyRepeat rewrites the top frame's last sub-graph in place with
// graph.Repeat(r). Errors if the top frame has no sub-graph yet.
func (p *Parser) applyRepeat(pos int, r charclass.RepeatRange) error {
	f := p.top()
	n := len(f.subgraphs)
	if n == 0 {
		return newError(pos, ErrInvalidSuffixOperator)
	}
	f.subgraphs[n-1] = graph.Repeat(f.subgraphs[n-1], r)
	return nil
}

func (p *Parser) run() error {
	for {
		tok, err := p.lx.Next()
		if err != nil {
			return wrapLexError(err)
		}
		if tok.Kind == token.EOF {
			return nil
		}
		if err := p.step(tok); err != nil {
			return err
		}
	}
}

func (p *Parser) step(tok token.Token) error {
	switch tok.Kind {
	case token.Atom:
		p.pushSub(p.atomGraph(tok.Atom))
	case token.CharRange:
		p.pushSub(graph.SingleEdge(graph.CharSetEdge(charclass.Range(tok.RangeLo, tok.RangeHi))))
	case token.CharClass:
		p.pushSub(graph.SingleEdge(graph.CharSetEdge(tok.CharClass)))
	case token.Period:
		p.pushSub(graph.SingleEdge(graph.CharSetEdge(charclass.All())))
	case token.LParen:
		p.push(frameParen)
	case token.LBracket:
		p.push(frameBracket)
	case token.LBracketCaret:
		p.push(frameBracketNeg)
	case token.Pipe:
		p.push(framePipe)
	case token.RParen:
		g, err := p.reduce(frameParen)
		if err != nil {
			return err
		}
		p.pushSub(g)
	case token.RightBrackets:
		g, err := p.reduceCharSet()
		if err != nil {
			return err
		}
		p.pushSub(g)
	case token.Star:
		return p.applyRepeat(tok.Pos, charclass.Star())
	case token.Plus:
		return p.applyRepeat(tok.Pos, charclass.Plus())
	case token.Question:
		return p.applyRepeat(tok.Pos, charclass.Optional())
	case token.LBrace:
		r, err := p.parseBraceRange(tok.Pos)
		if err != nil {
			return err
		}
		return p.applyRepeat(tok.Pos, r)
	case token.MatchBegin:
		p.matchBegin = true
	case token.MatchEnd:
		p.matchEnd = true
	default:
		return newError(tok.Pos, ErrUnexpectedToken)
	}
	return nil
}

// atomGraph builds the graph for an Atom token, which means something
// different depending on whether we're inside a bracket expression: a
// character-set union of its bytes there, a literal byte string anywhere
// else.
func (p *Parser) atomGraph(s []byte) *graph.Graph {
	switch p.top().kind {
	case frameBracket, frameBracketNeg:
		return graph.SingleEdge(graph.CharSetEdge(charclass.FromBytes(s)))
	default:
		return graph.SingleEdge(graph.ConcatEdge(s))
	}
}

// reduce pops frames down to and including the nearest frame of kind
// target, concatenating each layer's sub-graphs and alternating the
// layers together, bottom layer (target) first.
func (p *Parser) reduce(target frameKind) (*graph.Graph, error) {
	var layers []*frame
	for {
		if len(p.stack) == 0 {
			return nil, newError(0, ErrUnexpectedToken)
		}
		f := p.top()
		p.stack = p.stack[:len(p.stack)-1]
		layers = append(layers, f)
		if f.kind == target {
			break
		}
	}
	var result *graph.Graph
	for i := len(layers) - 1; i >= 0; i-- {
		concat := concatAll(layers[i].subgraphs)
		if result == nil {
			result = concat
		} else {
			result = graph.Alternate(result, concat)
		}
	}
	return result, nil
}

func concatAll(subgraphs []*graph.Graph) *graph.Graph {
	if len(subgraphs) == 0 {
		return graph.SingleEdge(graph.EmptyEdge())
	}
	acc := subgraphs[0]
	for _, g := range subgraphs[1:] {
		acc = graph.Concatenate(acc, g)
	}
	return acc
}

// reduceCharSet pops the current top frame (a bracket or negated bracket)
// and folds its sub-graphs into one CHARACTER_SET graph.
func (p *Parser) reduceCharSet() (*graph.Graph, error) {
	f := p.top()
	if f.kind != frameBracket && f.kind != frameBracketNeg {
		return nil, newError(0, ErrUnexpectedToken)
	}
	p.stack = p.stack[:len(p.stack)-1]

	var result *graph.Graph
	if len(f.subgraphs) == 0 {
		result = graph.SingleEdge(graph.CharSetEdge(charclass.Empty()))
	} else {
		result = f.subgraphs[0]
		for _, g := range f.subgraphs[1:] {
			result = graph.JoinCharacterSet(result, g)
		}
	}
	if f.kind == frameBracketNeg {
		result = graph.CharacterSetComplement(result)
	}
	return result, nil
}

// parseBraceRange consumes the NUMERIC/COMMA/RIGHT_BRACES tokens following
// an already-consumed '{' and returns the resulting RepeatRange.
func (p *Parser) parseBraceRange(pos int) (charclass.RepeatRange, error) {
	next := func() (token.Token, error) {
		tok, err := p.lx.Next()
		if err != nil {
			return token.Token{}, wrapLexError(err)
		}
		return tok, nil
	}

	tok, err := next()
	if err != nil {
		return charclass.RepeatRange{}, err
	}

	switch tok.Kind {
	case token.Numeric:
		m := tok.Numeric
		tok2, err := next()
		if err != nil {
			return charclass.RepeatRange{}, err
		}
		switch tok2.Kind {
		case token.RightBraces:
			return charclass.Exactly(m), nil
		case token.Comma:
			tok3, err := next()
			if err != nil {
				return charclass.RepeatRange{}, err
			}
			switch tok3.Kind {
			case token.RightBraces:
				return charclass.AtLeast(m), nil
			case token.Numeric:
				n := tok3.Numeric
				tok4, err := next()
				if err != nil {
					return charclass.RepeatRange{}, err
				}
				if tok4.Kind != token.RightBraces {
					return charclass.RepeatRange{}, newError(pos, ErrInvalidBraces)
				}
				if n < m {
					return charclass.RepeatRange{}, newError(pos, ErrInvalidBraces)
				}
				return charclass.Between(m, n), nil
			default:
				return charclass.RepeatRange{}, newError(pos, ErrInvalidBraces)
			}
		default:
			return charclass.RepeatRange{}, newError(pos, ErrInvalidBraces)
		}
	case token.Comma:
		tok2, err := next()
		if err != nil {
			return charclass.RepeatRange{}, err
		}
		if tok2.Kind != token.Numeric {
			return charclass.RepeatRange{}, newError(pos, ErrInvalidBraces)
		}
		n := tok2.Numeric
		tok3, err := next()
		if err != nil {
			return charclass.RepeatRange{}, err
		}
		if tok3.Kind != token.RightBraces {
			return charclass.RepeatRange{}, newError(pos, ErrInvalidBraces)
		}
		return charclass.Between(0, n), nil
	default:
		return charclass.RepeatRange{}, newError(pos, ErrInvalidBraces)
	}
}

// finish folds the outer frame (and any dangling top-level '|' layers)
// into the final graph and applies anchoring.
func (p *Parser) finish() (*Result, error) {
	g, err := p.reduce(frameOuter)
	if err != nil {
		return nil, err
	}

	g.Node(g.Head).Marker = graph.MarkerMatchBegin
	g.Node(g.Tail).Marker = graph.MarkerMatchEnd

	if !p.matchBegin {
		g = graph.MatchBeginUnknown(g)
	}
	if !p.matchEnd {
		g = graph.MatchTailUnknown(g)
	}

	return &Result{Graph: g, MatchBegin: p.matchBegin, MatchEnd: p.matchEnd}, nil
}

func wrapLexError(err error) error {
	var lexErr *token.Error
	if errors.As(err, &lexErr) {
		return newError(lexErr.Pos, lexErr)
	}
	return newError(0, err)
}
