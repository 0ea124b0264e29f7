// Package posixre implements a POSIX-flavored, 7-bit-ASCII-only regular
// expression engine: basic bracket expressions, `*`/`+`/`?`/`{m,n}`
// quantifiers, `^`/`$` anchors, and leftmost-longest match semantics — no
// capture groups, no backreferences, no Unicode character classes.
//
// Example:
//
//	re, err := posixre.Compile(`[a-z]+[0-9]{2,4}`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	loc := re.FindStringIndex("sku42 ab1234x")
package posixre

import (
	"fmt"
	"io"

	"github.com/coregx/posixre/internal/graph"
	"github.com/coregx/posixre/internal/optimize"
	"github.com/coregx/posixre/internal/parse"
	"github.com/coregx/posixre/internal/token"
	"github.com/coregx/posixre/internal/vm"
	"github.com/coregx/posixre/prefilter"
	"github.com/coregx/posixre/simd"
)

// Regex is a compiled pattern. A *Regex is safe for concurrent use by
// multiple goroutines: Match/FindIndex only ever read the compiled graph
// and prefilter, and the Stats counters are updated atomically.
type Regex struct {
	counters // must stay the first field; see Stats' doc comment

	pattern string
	config  Config
	graph   *graph.Graph
	pf      *prefilter.Prefilter
}

// Compile parses pattern with DefaultConfig and returns the compiled Regex.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern fails to compile. It
// simplifies safe initialization of global variables holding compiled
// regular expressions.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileWithConfig parses pattern under an explicit Config, giving the
// caller control over compile-time limits, the prefilter/ASCII fast paths,
// and per-stage debug tracing.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(pattern) > config.MaxPatternLength {
		return nil, ErrPatternTooLong
	}

	w := config.debugWriter()
	if config.DebugTokens {
		dumpTokens(pattern, w)
	}

	if config.EnableASCIIFastPath && !simd.IsASCII([]byte(pattern)) {
		return nil, &CompileError{Pattern: pattern, Err: fmt.Errorf("pattern contains a byte >= 0x80")}
	}

	result, err := parse.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	if config.DebugParser {
		fmt.Fprintf(w, "parse: %d nodes, matchBegin=%v matchEnd=%v\n",
			result.Graph.Size(), result.MatchBegin, result.MatchEnd)
	}

	if err := checkRepeatBounds(result.Graph, config.MaxRepeatBound); err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	g := result.Graph
	if config.EnableOptimize {
		g = optimize.Run(g, config.MaxOptimizePasses)
	}

	if config.DebugAutomata {
		fmt.Fprint(w, graph.Dump(g))
	}

	var pf *prefilter.Prefilter
	if config.EnablePrefilter {
		pf = prefilter.Build(g, prefilter.DefaultExtractConfig(), 1)
	}

	return &Regex{
		pattern: pattern,
		config:  config,
		graph:   g,
		pf:      pf,
	}, nil
}

// dumpTokens re-lexes pattern independently of the parser, writing one line
// per token to w. It exists purely for DebugTokens; a lex error is reported
// inline and ends the dump, and Compile reports it properly once parsing
// reaches the same token.
func dumpTokens(pattern string, w io.Writer) {
	lx := token.New(pattern)
	for {
		tok, err := lx.Next()
		if err != nil {
			fmt.Fprintf(w, "token: error: %v\n", err)
			return
		}
		fmt.Fprintf(w, "token: %s\n", tok)
		if tok.Kind == token.EOF {
			return
		}
	}
}

// checkRepeatBounds walks g for EdgeRepeat/EdgeExitLoop edges and rejects
// any whose bound exceeds max. internal/token has already rejected raw
// digit overflow during lexing; this is the independent, user-tunable
// ceiling on the repeat count itself.
func checkRepeatBounds(g *graph.Graph, max uint32) error {
	var violation bool
	g.Walk(func(_ graph.NodeID, n *graph.Node) {
		for _, tr := range n.Edges {
			switch tr.Edge.Kind {
			case graph.EdgeRepeat, graph.EdgeExitLoop:
				r := tr.Edge.Range
				if r.Lower > max || (!r.Unbounded() && r.Upper-1 > max) {
					violation = true
				}
			}
		}
	})
	if violation {
		return ErrRepeatBoundTooLarge
	}
	return nil
}

// String returns the source pattern re was compiled from.
func (re *Regex) String() string {
	return re.pattern
}

// Stats returns a snapshot of re's execution counters, updated as of the
// most recently completed Match/MatchString/FindIndex/FindStringIndex call.
func (re *Regex) Stats() Stats {
	s := re.counters.snapshot()
	s.NodeCount = re.graph.Size()
	return s
}

// ResetStats zeroes re's accumulated counters.
func (re *Regex) ResetStats() {
	re.counters.reset()
}

// Match reports whether input contains a match of re and, if so, its
// leftmost-longest span.
func (re *Regex) Match(input []byte) (start, end int, ok bool) {
	return re.find(input)
}

// MatchString is the string analog of Match.
func (re *Regex) MatchString(input string) (start, end int, ok bool) {
	return re.Match([]byte(input))
}

// FindIndex returns a two-element slice of integers giving the byte
// offsets of the leftmost-longest match of re in b, or nil if there is no
// match.
func (re *Regex) FindIndex(b []byte) []int {
	start, end, ok := re.find(b)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is the string analog of FindIndex.
func (re *Regex) FindStringIndex(s string) []int {
	return re.FindIndex([]byte(s))
}

func (re *Regex) find(b []byte) (start, end int, ok bool) {
	re.counters.incTotalMatches()

	if re.config.EnableASCIIFastPath && !simd.IsASCII(b) {
		re.counters.incNonASCIIWarnings()
	}

	if re.pf != nil {
		if !re.pf.MayMatch(b) {
			re.counters.incPrefilterMisses()
			return 0, 0, false
		}
		re.counters.incPrefilterHits()
	}

	res, vs := vm.Run(re.graph, b)
	re.counters.recordRun(vs)
	if !res.Ok {
		return 0, 0, false
	}
	return res.Start, res.End, true
}
