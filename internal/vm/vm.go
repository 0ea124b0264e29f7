// Package vm is the backtracking interpreter: given a compiled graph.Graph
// and an input, it performs a depth-first search over the graph with an
// explicit frame stack (no native recursion), tracking loop-iteration
// counters for bounded repeats and the leftmost-longest best match seen so
// far.
package vm

import (
	"bytes"

	"github.com/coregx/posixre/internal/graph"
)

// Result is the outcome of a single Run.
type Result struct {
	Start, End int
	Ok         bool
}

// Stats carries lightweight execution counters, surfaced to callers via
// Regex.Stats for diagnosing pathological patterns.
type Stats struct {
	Steps        int
	MaxStackDepth int
}

// key identifies a (node, offset) pair on the currently active search path,
// used to refuse taking a zero-width edge back to a state already being
// explored higher up the same path — otherwise a sub-pattern that can match
// the empty string inside an unbounded repeat would loop forever.
type key struct {
	node   graph.NodeID
	offset int
}

type frame struct {
	node         graph.NodeID
	offset       int
	matchStart   int
	edgeIdx      int
	arrived      bool
	finish       bool
	loopCounters []uint32
	visitKey     key
	hasVisitKey  bool
}

// Run searches input for the longest match of g starting as early as
// possible, per the leftmost-longest rule: the first candidate found always
// installs, and any later candidate replaces it only if strictly longer, or
// equally long but starting earlier.
//
// Anchoring is entirely a property of g: a pattern ending in '$' leaves its
// MarkerMatchEnd node with no outgoing edges, so it can only be recorded at
// offset == len(input); an unanchored pattern has it hand off to a
// self-looping sink (graph.MatchTailUnknown) that lets the search confirm
// end-of-input is reachable from any earlier offset too.
func Run(g *graph.Graph, input []byte) (Result, Stats) {
	var res Result
	var stats Stats

	updateBest := func(start, end int) {
		switch {
		case !res.Ok:
			res.Ok, res.Start, res.End = true, start, end
		case end-start > res.End-res.Start:
			res.Start, res.End = start, end
		case end-start == res.End-res.Start && start < res.Start:
			res.Start, res.End = start, end
		}
	}

	visited := make(map[key]int)
	var stack []*frame

	push := func(f *frame) {
		f.visitKey = key{f.node, f.offset}
		if visited[f.visitKey] > 0 {
			return // would revisit an active zero-width state; drop this branch
		}
		visited[f.visitKey]++
		f.hasVisitKey = true
		stack = append(stack, f)
		if len(stack) > stats.MaxStackDepth {
			stats.MaxStackDepth = len(stack)
		}
	}

	pop := func() *frame {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.hasVisitKey {
			visited[f.visitKey]--
		}
		return f
	}

	push(&frame{node: g.Head, offset: 0, matchStart: len(input)})

	for len(stack) > 0 {
		stats.Steps++
		f := stack[len(stack)-1]
		n := g.Node(f.node)

		if !f.arrived {
			f.arrived = true
			if n.Marker == graph.MarkerMatchBegin && f.offset < f.matchStart {
				f.matchStart = f.offset
			}
		}

		if f.edgeIdx < len(n.Edges) {
			tr := n.Edges[f.edgeIdx]
			f.edgeIdx++
			if child, ok := tryEdge(tr, f, input); ok {
				push(child)
			}
			continue
		}

		// Frame exhausted: every outgoing edge has been tried (and its whole
		// subtree explored). finish records whether end-of-input was ever
		// reached from here, either directly or through a popped child, so a
		// MATCH_END node only gets recorded once reaching the real end of
		// input has been confirmed possible — never merely because some
		// descendant offset happened to be farther along.
		f.finish = f.finish || f.offset >= len(input)
		if n.Marker == graph.MarkerMatchEnd && f.finish {
			updateBest(f.matchStart, f.offset)
		}
		popped := pop()
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.finish = parent.finish || popped.finish
		}
	}

	return res, stats
}

func tryEdge(tr graph.Transition, f *frame, input []byte) (*frame, bool) {
	switch tr.Edge.Kind {
	case graph.EdgeEmpty:
		return derive(tr.To, f.offset, f), true

	case graph.EdgeConcatenation:
		s := tr.Edge.Bytes
		end := f.offset + len(s)
		if end > len(input) || !bytes.Equal(input[f.offset:end], s) {
			return nil, false
		}
		return derive(tr.To, end, f), true

	case graph.EdgeCharacterSet:
		if f.offset >= len(input) || !tr.Edge.Set.Test(input[f.offset]) {
			return nil, false
		}
		return derive(tr.To, f.offset+1, f), true

	case graph.EdgeEnterLoop:
		child := derive(tr.To, f.offset, f)
		child.loopCounters = append(append([]uint32{}, f.loopCounters...), 0)
		return child, true

	case graph.EdgeRepeat:
		// completed counts the iteration that just finished (the one that
		// brought us to this EdgeRepeat/EdgeExitLoop choice point); taking
		// this edge commits to attempting one more, so the guard checks
		// that a (completed+1)-th iteration would still be in range.
		if len(f.loopCounters) == 0 {
			return nil, false
		}
		completed := f.loopCounters[len(f.loopCounters)-1] + 1
		if !tr.Edge.Range.InUpperRange(completed + 1) {
			return nil, false
		}
		counters := append([]uint32{}, f.loopCounters...)
		counters[len(counters)-1] = completed
		child := derive(tr.To, f.offset, f)
		child.loopCounters = counters
		return child, true

	case graph.EdgeExitLoop:
		if len(f.loopCounters) == 0 {
			return nil, false
		}
		completed := f.loopCounters[len(f.loopCounters)-1] + 1
		if !tr.Edge.Range.InLowerRange(completed) {
			return nil, false
		}
		child := derive(tr.To, f.offset, f)
		child.loopCounters = f.loopCounters[:len(f.loopCounters)-1]
		return child, true

	default:
		return nil, false
	}
}

func derive(to graph.NodeID, offset int, parent *frame) *frame {
	return &frame{
		node:         to,
		offset:       offset,
		matchStart:   parent.matchStart,
		loopCounters: parent.loopCounters,
	}
}
