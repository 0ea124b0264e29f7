package graph

import (
	"fmt"

	"github.com/coregx/posixre/internal/charclass"
)

// SingleEdge returns a fresh two-node graph: head --e--> tail.
func SingleEdge(e Edge) *Graph {
	g := New()
	head := g.NewNode(MarkerAnonymous)
	tail := g.NewNode(MarkerAnonymous)
	g.Head, g.Tail = head, tail
	g.AddEdge(head, e, tail)
	return g
}

func isSimpleEmpty(g *Graph) bool {
	return g.IsSimple() && g.SimpleEdge().Kind == EdgeEmpty
}

func isSimpleConcat(g *Graph) bool {
	return g.IsSimple() && g.SimpleEdge().Kind == EdgeConcatenation
}

// Concatenate builds the graph that matches g1 followed by g2, consuming
// (and invalidating) both inputs. Either input may be reused as the
// returned graph; callers must not use g1 or g2 again afterward.
func Concatenate(g1, g2 *Graph) *Graph {
	if isSimpleEmpty(g1) {
		return g2
	}
	if isSimpleEmpty(g2) {
		return g1
	}
	if isSimpleConcat(g1) && isSimpleConcat(g2) {
		e1 := g1.SimpleEdge()
		e2 := g2.SimpleEdge()
		fused := make([]byte, 0, len(e1.Bytes)+len(e2.Bytes))
		fused = append(fused, e1.Bytes...)
		fused = append(fused, e2.Bytes...)
		g1.Node(g1.Head).Edges[0] = Transition{Edge: ConcatEdge(fused), To: g1.Tail}
		return g1
	}

	g2Head := g2.Head
	g2HeadEdges := g2.Node(g2Head).Edges
	tailNode := g1.Node(g1.Tail)
	tailNode.Edges = append(tailNode.Edges, g2HeadEdges...)

	g2.DeleteNode(g2Head)
	g2Tail := g2.Tail
	g1.adopt(g2)
	g1.Tail = g2Tail
	return g1
}

// Alternate builds the graph that matches g1 or g2 (a.k.a. join),
// consuming (and invalidating) both inputs.
func Alternate(g1, g2 *Graph) *Graph {
	g2Head := g2.Head
	g2HeadEdges := g2.Node(g2Head).Edges
	headNode := g1.Node(g1.Head)
	headNode.Edges = append(headNode.Edges, g2HeadEdges...)

	g2.DeleteNode(g2Head)
	g2Tail := g2.Tail
	g1.adopt(g2)
	g1.AddEdge(g2Tail, EmptyEdge(), g1.Tail)
	return g1
}

// JoinCharacterSet unions two simple character-set graphs in place, folding
// g2 into g1. Both operands must be simple CHARACTER_SET graphs; this is an
// internal invariant of the parser's bracket-expression handling, so a
// violation panics rather than returning an error.
func JoinCharacterSet(g1, g2 *Graph) *Graph {
	e1 := requireSimpleCharSet(g1, "JoinCharacterSet")
	e2 := requireSimpleCharSet(g2, "JoinCharacterSet")
	cs := e1.Set
	cs.Union(e2.Set)
	g1.Node(g1.Head).Edges[0].Edge = CharSetEdge(cs)
	return g1
}

// CharacterSetComplement complements a simple character-set graph's bitmap
// in place. g must be a simple CHARACTER_SET graph.
func CharacterSetComplement(g *Graph) *Graph {
	e := requireSimpleCharSet(g, "CharacterSetComplement")
	cs := e.Set
	cs.Complement()
	g.Node(g.Head).Edges[0].Edge = CharSetEdge(cs)
	return g
}

func requireSimpleCharSet(g *Graph, op string) Edge {
	invariant(g.IsSimple(), fmt.Sprintf("%s requires a simple graph", op))
	e := g.SimpleEdge()
	invariant(e.Kind == EdgeCharacterSet, fmt.Sprintf("%s requires a CHARACTER_SET edge, got %s", op, e.Kind))
	return e
}

// Repeat rewrites g to match repetitions of g within r, consuming (and
// invalidating) the input graph.
func Repeat(g *Graph, r charclass.RepeatRange) *Graph {
	switch {
	case r.IsExactlyOne():
		return g
	case r.IsExactlyZero():
		return SingleEdge(EmptyEdge())
	case r.IsOptional():
		g.AddEdge(g.Head, EmptyEdge(), g.Tail)
		return g
	}

	oldHead, oldTail := g.Head, g.Tail
	newHead := g.NewNode(MarkerAnonymous)
	newTail := g.NewNode(MarkerAnonymous)

	if r.Unbounded() && r.Lower < 2 {
		// `*` or `+`: plain epsilon back-edge, no counting needed.
		g.AddEdge(oldTail, EmptyEdge(), oldHead)
		g.AddEdge(newHead, EmptyEdge(), oldHead)
		g.AddEdge(oldTail, EmptyEdge(), newTail)
	} else {
		// Bounded, or unbounded with a lower bound >= 2: count iterations.
		g.AddEdge(oldTail, RepeatEdge(r), oldHead)
		g.AddEdge(newHead, EnterLoopEdge(), oldHead)
		g.AddEdge(oldTail, ExitLoopEdge(r), newTail)
	}

	g.Head, g.Tail = newHead, newTail
	if r.Lower == 0 {
		g.AddEdge(newHead, EmptyEdge(), newTail)
	}
	return g
}

// MatchBeginUnknown wraps g so an unanchored pattern may start matching at
// any offset: a fresh head node tries g first (preferring the earliest
// start, per the engine's leftmost tie-break) and falls back to skipping
// one more input byte and retrying.
func MatchBeginUnknown(g *Graph) *Graph {
	oldHead := g.Head
	newHead := g.NewNode(MarkerAnonymous)
	g.AddEdge(newHead, EmptyEdge(), oldHead)
	g.AddEdge(newHead, CharSetEdge(charclass.All()), newHead)
	g.Head = newHead
	return g
}

// MatchTailUnknown wraps g so an unanchored pattern may end matching at any
// offset: the original tail (which keeps its MATCH_END marker) hands off via
// an ε-edge to a fresh tail that absorbs any remaining bytes through a
// self-loop, mirroring MatchBeginUnknown's prefix-skipping shape. The
// self-loop lives on the new node, not the marked one, so the interpreter's
// finish-flag bookkeeping can confirm end-of-input is reachable from here
// without changing which offset gets recorded as the match end.
func MatchTailUnknown(g *Graph) *Graph {
	oldTail := g.Tail
	newTail := g.NewNode(MarkerAnonymous)
	g.AddEdge(oldTail, EmptyEdge(), newTail)
	g.AddEdge(newTail, CharSetEdge(charclass.All()), newTail)
	g.Tail = newTail
	return g
}
