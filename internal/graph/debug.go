package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Dump renders g as one line per node, in ascending NodeID order, each
// followed by its outgoing transitions. Used by the compiler's
// DebugAutomata trace; never on any matching path.
func Dump(g *Graph) string {
	ids := g.Nodes()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for _, id := range ids {
		n := g.Node(id)
		marker := ""
		switch n.Marker {
		case MarkerMatchBegin:
			marker = " begin"
		case MarkerMatchEnd:
			marker = " end"
		}
		head := ""
		if id == g.Head {
			head = " head"
		}
		tail := ""
		if id == g.Tail {
			tail = " tail"
		}
		fmt.Fprintf(&b, "node %d%s%s%s:\n", id, marker, head, tail)
		for _, tr := range n.Edges {
			fmt.Fprintf(&b, "  %s -> %d\n", tr.Edge.describe(), tr.To)
		}
	}
	return b.String()
}

func (e Edge) describe() string {
	switch e.Kind {
	case EdgeConcatenation:
		return fmt.Sprintf("CONCAT %q", e.Bytes)
	case EdgeCharacterSet:
		return "CHARSET"
	case EdgeRepeat:
		return fmt.Sprintf("REPEAT{%d,%d}", e.Range.Lower, e.Range.Upper)
	case EdgeExitLoop:
		return fmt.Sprintf("EXITLOOP{%d,%d}", e.Range.Lower, e.Range.Upper)
	case EdgeEnterLoop:
		return "ENTERLOOP"
	default:
		return e.Kind.String()
	}
}
