package signal

import "sync"

// Drop reasons recorded by the normalizer. Kept as a closed set so the
// run artifact's counters table has a stable, known shape.
const (
	DropMissingTimestamp = "missing_timestamp"
	DropMissingText      = "missing_text"
	DropExactDuplicate   = "exact_duplicate"
	DropNearDuplicate    = "near_duplicate"
)

// Counters tallies per-event recoverable issues. Safe for concurrent
// increments from fork-join sections; reads should happen only after all
// writers have joined.
type Counters struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewCounters returns an empty, ready-to-use Counters.
func NewCounters() *Counters {
	return &Counters{counts: make(map[string]int)}
}

// Inc increments the tally for reason by one.
func (c *Counters) Inc(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[reason]++
}

// Snapshot returns an immutable copy of the current tallies.
func (c *Counters) Snapshot() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
