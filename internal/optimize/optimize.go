// Package optimize runs a small set of size/shape-reducing passes over a
// freshly parsed graph.Graph before it's handed to the interpreter: folding
// away pure pass-through epsilon nodes, and deduplicating a node's
// transition list when folding leaves two edges pointing at the same place.
package optimize

import "github.com/coregx/posixre/internal/graph"

// Run applies every pass to g in place and returns g for chaining. It stops
// as soon as a pass reaches a fixpoint, or after maxPasses rounds, whichever
// comes first — a pathological graph should never make compilation loop
// unboundedly.
func Run(g *graph.Graph, maxPasses int) *graph.Graph {
	for i := 0; i < maxPasses; i++ {
		removed := EliminateEmptyTransitions(g)
		folded := FoldDuplicateEdges(g)
		if !removed && !folded {
			break
		}
	}
	return g
}

// EliminateEmptyTransitions retargets every edge that points at a "pure
// pass-through" node — one with no marker and exactly one outgoing EMPTY
// edge — directly at that chain's ultimate destination, then deletes the
// now-unreachable pass-through nodes. It reports whether it changed g.
//
// g.Head and g.Tail are never folded away even if they happen to qualify:
// the parser only ever leaves them anonymous when something else still
// needs to reassign their marker, and callers rely on both handles staying
// valid node references.
func EliminateEmptyTransitions(g *graph.Graph) bool {
	resolved := make(map[graph.NodeID]graph.NodeID)

	var resolve func(id graph.NodeID) graph.NodeID
	resolve = func(id graph.NodeID) graph.NodeID {
		if r, ok := resolved[id]; ok {
			return r
		}
		resolved[id] = id // break cycles: resolve(id) during its own recursion is id
		if id != g.Head && id != g.Tail {
			n := g.Node(id)
			if n.Marker == graph.MarkerAnonymous && len(n.Edges) == 1 &&
				n.Edges[0].Edge.Kind == graph.EdgeEmpty && n.Edges[0].To != id {
				target := resolve(n.Edges[0].To)
				resolved[id] = target
				return target
			}
		}
		return id
	}

	changed := false
	for _, id := range g.Nodes() {
		n := g.Node(id)
		for i, tr := range n.Edges {
			if r := resolve(tr.To); r != tr.To {
				n.Edges[i].To = r
				changed = true
			}
		}
	}

	for id, r := range resolved {
		if r != id && id != g.Head && id != g.Tail {
			g.DeleteNode(id)
		}
	}
	return changed
}

// FoldDuplicateEdges removes duplicate transitions from every node's edge
// list, keeping the first occurrence so backtracking priority order is
// preserved. It reports whether it changed g.
func FoldDuplicateEdges(g *graph.Graph) bool {
	changed := false
	for _, id := range g.Nodes() {
		n := g.Node(id)
		if len(n.Edges) < 2 {
			continue
		}
		kept := make([]graph.Transition, 0, len(n.Edges))
		for _, tr := range n.Edges {
			dup := false
			for _, k := range kept {
				if k.To == tr.To && k.Edge.Equal(tr.Edge) {
					dup = true
					break
				}
			}
			if dup {
				changed = true
				continue
			}
			kept = append(kept, tr)
		}
		n.Edges = kept
	}
	return changed
}
