package parse

import (
	"errors"
	"testing"

	"github.com/coregx/posixre/internal/graph"
)

func mustParse(t *testing.T, pattern string) *Result {
	t.Helper()
	r, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", pattern, err)
	}
	return r
}

func countNodes(g *graph.Graph) int {
	return g.Size()
}

func TestParseLiteral(t *testing.T) {
	r := mustParse(t, "abc")
	if countNodes(r.Graph) == 0 {
		t.Fatalf("expected a non-empty graph")
	}
	if r.MatchBegin || r.MatchEnd {
		t.Fatalf("unanchored pattern should report both anchors false")
	}
}

func TestParseAnchors(t *testing.T) {
	r := mustParse(t, "^abc$")
	if !r.MatchBegin || !r.MatchEnd {
		t.Fatalf("expected both anchors true, got begin=%v end=%v", r.MatchBegin, r.MatchEnd)
	}
}

func TestParseAlternation(t *testing.T) {
	r := mustParse(t, "^a|b$")
	if !r.MatchBegin || !r.MatchEnd {
		t.Fatalf("expected anchors to flow from each alternative")
	}
}

func TestParseGroupAlternation(t *testing.T) {
	r := mustParse(t, "^(a|b|c)$")
	if !r.MatchBegin || !r.MatchEnd {
		t.Fatalf("expected anchors true")
	}
}

func TestParseNestedGroups(t *testing.T) {
	mustParse(t, "^((a|b)c|d(e|f))$")
}

func TestParseQuantifiers(t *testing.T) {
	for _, p := range []string{"a*", "a+", "a?", "a{3}", "a{2,}", "a{,5}", "a{2,5}"} {
		mustParse(t, p)
	}
}

func TestParseBracketExpressions(t *testing.T) {
	for _, p := range []string{"[abc]", "[^abc]", "[a-z]", "[[:digit:]]", "[a-zA-Z0-9_]", "[-a]", "[a-]"} {
		if _, err := Parse(p); err != nil {
			t.Fatalf("pattern %q: unexpected error: %v", p, err)
		}
	}
}

func TestParseDot(t *testing.T) {
	mustParse(t, "a.b")
}

func TestParseInvalidSuffixOnEmptyGroup(t *testing.T) {
	_, err := Parse("(*)")
	if !errors.Is(err, ErrInvalidSuffixOperator) {
		t.Fatalf("expected ErrInvalidSuffixOperator, got %v", err)
	}
}

func TestParseInvalidBraces(t *testing.T) {
	cases := []string{"a{}", "a{,}", "a{5,2}", "a{a}"}
	for _, p := range cases {
		_, err := Parse(p)
		if err == nil {
			t.Fatalf("pattern %q: expected an error", p)
		}
	}
}

func TestParseBraceForms(t *testing.T) {
	r1 := mustParse(t, "a{3}")
	r2 := mustParse(t, "a{2,}")
	r3 := mustParse(t, "a{,5}")
	r4 := mustParse(t, "a{2,5}")
	for _, r := range []*Result{r1, r2, r3, r4} {
		if r.Graph == nil {
			t.Fatalf("expected a graph")
		}
	}
}

func TestParseLexErrorPropagates(t *testing.T) {
	_, err := Parse("a)")
	if err == nil {
		t.Fatalf("expected an error for unmatched ')'")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *Error wrapping the lexical error, got %T", err)
	}
}

func TestParseMatchBeginUnknownWrapsUnanchoredStart(t *testing.T) {
	r := mustParse(t, "abc")
	head := r.Graph.Node(r.Graph.Head)
	if len(head.Edges) != 2 {
		t.Fatalf("expected the unanchored head to carry 2 edges (try + skip), got %d", len(head.Edges))
	}
}

func TestParseAnchoredHeadHasNoSkipLoop(t *testing.T) {
	r := mustParse(t, "^abc")
	head := r.Graph.Node(r.Graph.Head)
	if len(head.Edges) != 1 {
		t.Fatalf("expected the anchored head to carry exactly 1 edge, got %d", len(head.Edges))
	}
}
