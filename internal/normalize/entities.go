package normalize

import (
	"sort"

	"github.com/chainpulse/narrative-radar/internal/signal"
)

// resolveEntities scans an event's title and text against the alias table
// and returns the deduplicated, sorted set of canonical entity names it
// matched. An event with no match is left with a nil slice; the caller
// marks it unanchored.
func resolveEntities(e signal.Event, aliases *signal.AliasTable) []string {
	hits := map[string]bool{}
	for _, name := range aliases.Resolve(e.Title) {
		hits[name] = true
	}
	for _, name := range aliases.Resolve(e.Text) {
		hits[name] = true
	}
	if len(hits) == 0 {
		return nil
	}
	out := make([]string, 0, len(hits))
	for name := range hits {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
