package optimize

import (
	"testing"

	"github.com/coregx/posixre/internal/charclass"
	"github.com/coregx/posixre/internal/graph"
)

func TestEliminateEmptyTransitionsFoldsChain(t *testing.T) {
	g := graph.New()
	a := g.NewNode(graph.MarkerMatchBegin)
	b := g.NewNode(graph.MarkerAnonymous)
	c := g.NewNode(graph.MarkerAnonymous)
	d := g.NewNode(graph.MarkerMatchEnd)
	g.Head, g.Tail = a, d

	g.AddEdge(a, graph.CharSetEdge(charclass.Single('x')), b)
	g.AddEdge(b, graph.EmptyEdge(), c)
	g.AddEdge(c, graph.EmptyEdge(), d)

	changed := EliminateEmptyTransitions(g)
	if !changed {
		t.Fatalf("expected a change")
	}
	if g.Has(b) || g.Has(c) {
		t.Fatalf("expected the pass-through nodes to be deleted")
	}
	head := g.Node(a)
	if len(head.Edges) != 1 || head.Edges[0].To != d {
		t.Fatalf("expected a's edge to be retargeted directly at d, got %+v", head.Edges)
	}
}

func TestEliminateEmptyTransitionsPreservesMarkedNodes(t *testing.T) {
	g := graph.New()
	a := g.NewNode(graph.MarkerMatchBegin)
	b := g.NewNode(graph.MarkerMatchEnd) // marked, even though it's a single EMPTY edge
	c := g.NewNode(graph.MarkerAnonymous)
	g.Head, g.Tail = a, c

	g.AddEdge(a, graph.EmptyEdge(), b)
	g.AddEdge(b, graph.EmptyEdge(), c)

	EliminateEmptyTransitions(g)
	if !g.Has(b) {
		t.Fatalf("a marked node must never be folded away")
	}
}

func TestEliminateEmptyTransitionsNeverTouchesHeadOrTail(t *testing.T) {
	g := graph.New()
	head := g.NewNode(graph.MarkerAnonymous)
	tail := g.NewNode(graph.MarkerAnonymous)
	g.Head, g.Tail = head, tail
	g.AddEdge(head, graph.EmptyEdge(), tail)

	EliminateEmptyTransitions(g)
	if !g.Has(head) || !g.Has(tail) {
		t.Fatalf("head/tail must survive even if they structurally qualify for folding")
	}
	if g.Head != head || g.Tail != tail {
		t.Fatalf("head/tail handles must remain stable")
	}
}

func TestFoldDuplicateEdgesKeepsFirstOccurrence(t *testing.T) {
	g := graph.New()
	a := g.NewNode(graph.MarkerAnonymous)
	b := g.NewNode(graph.MarkerAnonymous)
	c := g.NewNode(graph.MarkerAnonymous)
	g.Head, g.Tail = a, c

	g.AddEdge(a, graph.CharSetEdge(charclass.Single('x')), b)
	g.AddEdge(a, graph.CharSetEdge(charclass.Single('x')), b) // exact duplicate
	g.AddEdge(a, graph.EmptyEdge(), c)

	changed := FoldDuplicateEdges(g)
	if !changed {
		t.Fatalf("expected a change")
	}
	edges := g.Node(a).Edges
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges after dedup, got %d: %+v", len(edges), edges)
	}
	if edges[0].To != b || edges[1].To != c {
		t.Fatalf("expected order preserved (b, then c), got %+v", edges)
	}
}

func TestFoldDuplicateEdgesNoChangeWhenDistinct(t *testing.T) {
	g := graph.New()
	a := g.NewNode(graph.MarkerAnonymous)
	b := g.NewNode(graph.MarkerAnonymous)
	c := g.NewNode(graph.MarkerAnonymous)
	g.Head, g.Tail = a, c

	g.AddEdge(a, graph.CharSetEdge(charclass.Single('x')), b)
	g.AddEdge(a, graph.CharSetEdge(charclass.Single('y')), c)

	if FoldDuplicateEdges(g) {
		t.Fatalf("expected no change for distinct edges")
	}
}

func TestRunConverges(t *testing.T) {
	g := graph.New()
	a := g.NewNode(graph.MarkerMatchBegin)
	b := g.NewNode(graph.MarkerAnonymous)
	c := g.NewNode(graph.MarkerAnonymous)
	d := g.NewNode(graph.MarkerMatchEnd)
	g.Head, g.Tail = a, d

	g.AddEdge(a, graph.EmptyEdge(), b)
	g.AddEdge(b, graph.EmptyEdge(), c)
	g.AddEdge(c, graph.CharSetEdge(charclass.Single('z')), d)

	Run(g, 4)
	head := g.Node(a)
	if len(head.Edges) != 1 || head.Edges[0].To != c {
		t.Fatalf("expected a's edge retargeted past the empty chain to c, got %+v", head.Edges)
	}
	if g.Has(b) {
		t.Fatalf("expected the pure pass-through node removed")
	}
	if !g.Has(c) {
		t.Fatalf("c carries a real edge and must survive")
	}
}
