package posixre

import (
	"sync/atomic"

	"github.com/coregx/posixre/internal/conv"
	"github.com/coregx/posixre/internal/vm"
)

// Stats tracks execution statistics for a Regex, useful for performance
// analysis and for noticing patterns that backtrack pathologically.
//
// IMPORTANT: counters MUST be the first field of Regex for proper 8-byte
// alignment of atomic operations on 32-bit platforms.
type Stats struct {
	// TotalMatches counts calls to Match/MatchString/FindIndex/FindStringIndex.
	TotalMatches uint64

	// PrefilterHits counts searches where the prefilter found a candidate
	// and the interpreter was run, whether or not it then found a match.
	PrefilterHits uint64

	// PrefilterMisses counts searches where the prefilter ruled out a match
	// without running the interpreter at all.
	PrefilterMisses uint64

	// NonASCIIWarnings counts Match calls where EnableASCIIFastPath was set
	// and the subject contained a byte >= 0x80. This is informational only
	// — matching still proceeds and produces a correct result.
	NonASCIIWarnings uint64

	// NodeCount is the number of nodes in the compiled graph, after
	// optimization.
	NodeCount int

	// LastSteps is the number of frame-stack steps the interpreter took
	// during the most recent Match/FindIndex call that ran it; a call the
	// prefilter rejects leaves it unchanged.
	LastSteps int

	// LastMaxStackDepth is the deepest the interpreter's explicit frame
	// stack reached during the most recent Match/FindIndex call that ran
	// it; a call the prefilter rejects leaves it unchanged.
	LastMaxStackDepth int
}

// counters holds the atomically-updated fields backing Stats, so a *Regex
// stays safe for concurrent Match/FindIndex calls. lastSteps and
// lastMaxStackDepth are last-writer-wins under concurrent use, same as the
// teacher engine's own counters — acceptable for a diagnostics snapshot.
type counters struct {
	totalMatches      uint64
	prefilterHits     uint64
	prefilterMisses   uint64
	nonASCIIWarnings  uint64
	lastSteps         uint64
	lastMaxStackDepth uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		TotalMatches:      atomic.LoadUint64(&c.totalMatches),
		PrefilterHits:     atomic.LoadUint64(&c.prefilterHits),
		PrefilterMisses:   atomic.LoadUint64(&c.prefilterMisses),
		NonASCIIWarnings:  atomic.LoadUint64(&c.nonASCIIWarnings),
		LastSteps:         int(conv.Uint64ToUint32(atomic.LoadUint64(&c.lastSteps))),
		LastMaxStackDepth: int(conv.Uint64ToUint32(atomic.LoadUint64(&c.lastMaxStackDepth))),
	}
}

func (c *counters) reset() {
	atomic.StoreUint64(&c.totalMatches, 0)
	atomic.StoreUint64(&c.prefilterHits, 0)
	atomic.StoreUint64(&c.prefilterMisses, 0)
	atomic.StoreUint64(&c.nonASCIIWarnings, 0)
}

func (c *counters) incTotalMatches()     { atomic.AddUint64(&c.totalMatches, 1) }
func (c *counters) incPrefilterHits()    { atomic.AddUint64(&c.prefilterHits, 1) }
func (c *counters) incPrefilterMisses()  { atomic.AddUint64(&c.prefilterMisses, 1) }
func (c *counters) incNonASCIIWarnings() { atomic.AddUint64(&c.nonASCIIWarnings, 1) }

func (c *counters) recordRun(vs vm.Stats) {
	atomic.StoreUint64(&c.lastSteps, uint64(vs.Steps))
	atomic.StoreUint64(&c.lastMaxStackDepth, uint64(vs.MaxStackDepth))
}
