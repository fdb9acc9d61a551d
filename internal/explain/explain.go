package explain

import (
	"github.com/chainpulse/narrative-radar/internal/config"
	"github.com/chainpulse/narrative-radar/internal/narrative"
	"github.com/chainpulse/narrative-radar/internal/scoring"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

// Run enriches every ranked narrative with evidence ordering, a "why now"
// summary, and a confidence tier. It does not alter score or ordering.
func Run(ranked []narrative.Ranked, eventsByID map[string]signal.Event, cfg *config.Config) []narrative.Ranked {
	out := make([]narrative.Ranked, len(ranked))
	for i, r := range ranked {
		members := resolveMembers(r.Members, eventsByID)

		r.Evidence = evidence(members)
		authorDiv := scoring.AuthorDiversity(members, cfg)
		r.WhyNow = whyNow(r, members, authorDiv)
		r.Confidence = confidence(r, members)

		out[i] = r
	}
	return out
}

func resolveMembers(ids []string, eventsByID map[string]signal.Event) []signal.Event {
	out := make([]signal.Event, 0, len(ids))
	for _, id := range ids {
		if e, ok := eventsByID[id]; ok {
			out = append(out, e)
		}
	}
	return out
}
