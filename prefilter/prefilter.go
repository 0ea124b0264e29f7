// Package prefilter builds a fast-reject filter from the literal
// alternatives a compiled pattern requires, so the backtracking
// interpreter can be skipped entirely on input that provably cannot
// match.
//
// Build extracts required literals from the graph; Find locates the next
// candidate offset at which one of them occurs, falling through to
// simd.Memchr / simd.Memmem for one literal and to an Aho-Corasick
// automaton (github.com/coregx/ahocorasick) once there is more than one.
// A nil *Prefilter (returned when no literal could be proven required)
// always reports every offset as a candidate.
package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/posixre/internal/graph"
	"github.com/coregx/posixre/simd"
)

type strategy uint8

const (
	strategyByte strategy = iota
	strategySubstring
	strategyAutomaton
)

// Prefilter reports candidate offsets where a required literal occurs.
type Prefilter struct {
	strategy  strategy
	literal   []byte
	automaton *ahocorasick.Automaton
}

// Build extracts literals from g and constructs the cheapest strategy that
// fits them: Memchr for a single byte, Memmem for a single longer literal,
// and an Aho-Corasick automaton once there is more than one required
// alternative. Returns nil when no literal could be proven required, or
// when fewer literals were found than minLiterals demands.
func Build(g *graph.Graph, cfg Config, minLiterals int) *Prefilter {
	literals, ok := ExtractLiterals(g, cfg)
	if !ok || len(literals) < minLiterals {
		return nil
	}

	if len(literals) == 1 {
		lit := literals[0]
		if len(lit) == 1 {
			return &Prefilter{strategy: strategyByte, literal: lit}
		}
		return &Prefilter{strategy: strategySubstring, literal: lit}
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Prefilter{strategy: strategyAutomaton, automaton: automaton}
}

// Find returns the index of the first candidate offset at or after start
// where a required literal occurs, or -1 if none remains in haystack. A
// nil receiver always returns start, since an absent prefilter can give no
// useful rejection.
func (p *Prefilter) Find(haystack []byte, start int) int {
	if p == nil {
		return start
	}
	if start >= len(haystack) {
		return -1
	}
	switch p.strategy {
	case strategyByte:
		pos := simd.Memchr(haystack[start:], p.literal[0])
		if pos == -1 {
			return -1
		}
		return start + pos
	case strategySubstring:
		pos := simd.Memmem(haystack[start:], p.literal)
		if pos == -1 {
			return -1
		}
		return start + pos
	default:
		m := p.automaton.Find(haystack, start)
		if m == nil {
			return -1
		}
		return m.Start
	}
}

// MayMatch reports whether haystack could possibly contain a match: false
// is a proof of absence, true only means "not ruled out, run the full
// search". A nil receiver always returns true.
func (p *Prefilter) MayMatch(haystack []byte) bool {
	return p.Find(haystack, 0) != -1
}
