package prefilter

import "github.com/coregx/posixre/internal/graph"

// Config bounds how much work literal extraction is willing to do before
// giving up on a pattern.
type Config struct {
	// MaxLiterals caps the number of literal alternatives collected, e.g.
	// for an alternation like (aaa|bbb|ccc|...). Default: 32.
	MaxLiterals int

	// MaxLiteralLen caps the length of any single extracted literal.
	// Default: 64.
	MaxLiteralLen int

	// MaxNodesVisited bounds the total walk so a pathological graph can't
	// make extraction itself slow. Default: 4096.
	MaxNodesVisited int
}

// DefaultExtractConfig returns sensible limits for typical patterns.
func DefaultExtractConfig() Config {
	return Config{MaxLiterals: 32, MaxLiteralLen: 64, MaxNodesVisited: 4096}
}

// ExtractLiterals walks g looking for a required set of literal
// alternatives: byte strings such that at least one of them must appear,
// verbatim, within the span of any match.
//
// This only succeeds when every path through the graph is forced to
// consume some literal run before it can reach a character set, a
// repetition, or a dead end with nothing accumulated — i.e. when the
// pattern cannot match without containing one of the returned literals.
// Patterns that can match having consumed no required bytes along some
// path (".*", "a*", "[0-9]+" with no anchor literal, etc.) report ok=false,
// since no literal-based prefilter could ever be sound for them.
//
// g is expected to be the fully wrapped, optimized graph a Regex compiles
// to (so MatchBeginUnknown's skip-loop, if present, is detected and
// skipped to reach the real entry point).
func ExtractLiterals(g *graph.Graph, cfg Config) (literals [][]byte, ok bool) {
	visiting := make(map[graph.NodeID]bool)
	budget := cfg.MaxNodesVisited
	var out [][]byte

	emit := func(prefix []byte) {
		if len(out) < cfg.MaxLiterals {
			out = append(out, append([]byte(nil), prefix...))
		}
	}

	var walk func(id graph.NodeID, prefix []byte) bool
	walk = func(id graph.NodeID, prefix []byte) bool {
		if visiting[id] {
			// An ancestor of this node on the current path: the
			// non-looping sibling branch(es) that got us here already
			// account for what this cycle would otherwise require.
			return true
		}
		budget--
		if budget <= 0 {
			return false
		}
		visiting[id] = true
		defer delete(visiting, id)

		n := g.Node(id)
		switch len(n.Edges) {
		case 0:
			if len(prefix) == 0 {
				return false
			}
			emit(prefix)
			return true
		case 1:
			tr := n.Edges[0]
			switch tr.Edge.Kind {
			case graph.EdgeEmpty:
				return walk(tr.To, prefix)
			case graph.EdgeConcatenation:
				if len(prefix)+len(tr.Edge.Bytes) > cfg.MaxLiteralLen {
					if len(prefix) == 0 {
						return false
					}
					emit(prefix)
					return true
				}
				next := append(append([]byte(nil), prefix...), tr.Edge.Bytes...)
				return walk(tr.To, next)
			default:
				// CharacterSet, loop-control edges: can't extend the
				// literal run further from here.
				if len(prefix) == 0 {
					return false
				}
				emit(prefix)
				return true
			}
		default:
			allEmpty := true
			for _, tr := range n.Edges {
				if tr.Edge.Kind != graph.EdgeEmpty {
					allEmpty = false
					break
				}
			}
			if !allEmpty {
				if len(prefix) == 0 {
					return false
				}
				emit(prefix)
				return true
			}
			ok := true
			for _, tr := range n.Edges {
				if !walk(tr.To, prefix) {
					ok = false
				}
			}
			return ok
		}
	}

	if !walk(entryNode(g), nil) {
		return nil, false
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// entryNode returns the node a literal walk should actually start from,
// skipping past the skip-one-byte-and-retry self-loop that
// graph.MatchBeginUnknown installs on an unanchored pattern's head.
func entryNode(g *graph.Graph) graph.NodeID {
	head := g.Node(g.Head)
	if len(head.Edges) != 2 {
		return g.Head
	}
	var entry graph.NodeID
	sawEmpty, sawSelfLoop := false, false
	for _, tr := range head.Edges {
		switch {
		case tr.Edge.Kind == graph.EdgeEmpty:
			entry = tr.To
			sawEmpty = true
		case tr.Edge.Kind == graph.EdgeCharacterSet && tr.To == g.Head:
			sawSelfLoop = true
		}
	}
	if sawEmpty && sawSelfLoop {
		return entry
	}
	return g.Head
}
