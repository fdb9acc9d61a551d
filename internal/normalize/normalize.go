// Package normalize implements the pipeline's first stage: it canonicalizes
// entities against an alias table and removes malformed, exact-duplicate,
// and near-duplicate events before anything downstream ever sees them.
package normalize

import (
	"sort"

	"github.com/chainpulse/narrative-radar/internal/config"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

// Run normalizes a raw event multiset. Malformed events are dropped and
// counted rather than failing the stage. The returned slice is sorted by
// timestamp then id so every later stage sees a deterministic order.
func Run(events []signal.Event, aliases *signal.AliasTable, cfg *config.Config, counters *signal.Counters) []signal.Event {
	wellFormed := make([]signal.Event, 0, len(events))
	for _, e := range events {
		if e.Timestamp.IsZero() {
			counters.Inc(signal.DropMissingTimestamp)
			continue
		}
		if normalizeWhitespace(e.Title) == "" && normalizeWhitespace(e.Text) == "" {
			counters.Inc(signal.DropMissingText)
			continue
		}
		e.ID = assignID(e)
		e.Domain = signal.DomainOf(e.Source)
		wellFormed = append(wellFormed, e)
	}

	sort.SliceStable(wellFormed, func(i, j int) bool {
		if !wellFormed[i].Timestamp.Equal(wellFormed[j].Timestamp) {
			return wellFormed[i].Timestamp.Before(wellFormed[j].Timestamp)
		}
		return wellFormed[i].ID < wellFormed[j].ID
	})

	deduped := dedupNear(dedupExact(wellFormed, cfg, counters), cfg, counters)

	out := make([]signal.Event, len(deduped))
	for i, e := range deduped {
		entities := resolveEntities(e, aliases)
		e.Entities = entities
		e.Unanchored = len(entities) == 0
		out[i] = e
	}
	return out
}
