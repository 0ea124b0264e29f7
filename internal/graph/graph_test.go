package graph

import "testing"

func TestNewNodeStableHandles(t *testing.T) {
	g := New()
	a := g.NewNode(MarkerAnonymous)
	b := g.NewNode(MarkerAnonymous)
	if a == b {
		t.Fatalf("expected distinct node IDs")
	}
	if !g.Has(a) || !g.Has(b) {
		t.Fatalf("graph should own both nodes")
	}
	if g.Size() != 2 {
		t.Fatalf("expected size 2, got %d", g.Size())
	}
}

func TestIsSimple(t *testing.T) {
	g := SingleEdge(EmptyEdge())
	if !g.IsSimple() {
		t.Fatalf("a fresh SingleEdge graph must be simple")
	}
	extra := g.NewNode(MarkerAnonymous)
	g.AddEdge(g.Head, EmptyEdge(), extra)
	if g.IsSimple() {
		t.Fatalf("a graph with 3 nodes must not be simple")
	}
}

func TestDeleteNodeRemovesOwnership(t *testing.T) {
	g := New()
	a := g.NewNode(MarkerAnonymous)
	g.DeleteNode(a)
	if g.Has(a) {
		t.Fatalf("node should no longer be owned after DeleteNode")
	}
}

func TestAdoptTransfersOwnership(t *testing.T) {
	g1 := New()
	g2 := New()
	n := g2.NewNode(MarkerAnonymous)
	g1.adopt(g2)
	if !g1.Has(n) {
		t.Fatalf("adopt should transfer node ownership to g1")
	}
	if g2.Has(n) {
		t.Fatalf("adopt should remove node ownership from g2")
	}
	if g2.Size() != 0 {
		t.Fatalf("g2 should be empty after adopt")
	}
}

func TestEdgeEqualAndCompare(t *testing.T) {
	a := ConcatEdge([]byte("ab"))
	b := ConcatEdge([]byte("ab"))
	c := ConcatEdge([]byte("ac"))
	if !a.Equal(b) {
		t.Fatalf("identical concat edges should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("different concat edges should not be equal")
	}
	if a.Compare(b) != 0 {
		t.Fatalf("identical edges should compare equal")
	}
	if a.Compare(c) >= 0 {
		t.Fatalf("\"ab\" should sort before \"ac\"")
	}
}
