package scoring

import (
	"sort"
	"sync"

	"github.com/chainpulse/narrative-radar/internal/config"
	"github.com/chainpulse/narrative-radar/internal/narrative"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

// Run computes a feature vector and composite score for every candidate.
// Per-narrative scoring is fan-out/fan-in: each candidate is scored on its
// own goroutine, then the results are sorted into the canonical descending
// order before being handed to the next stage, per the fork-join
// concurrency contract.
func Run(candidates []narrative.Candidate, eventsByID map[string]signal.Event, ctx signal.RunContext, baseline []signal.Event, cfg *config.Config) []narrative.Ranked {
	ranked := make([]narrative.Ranked, len(candidates))

	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		go func(i int, c narrative.Candidate) {
			defer wg.Done()
			ranked[i] = scoreOne(c, eventsByID, ctx, baseline, cfg)
		}(i, c)
	}
	wg.Wait()

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if len(ranked[i].Members) != len(ranked[j].Members) {
			return len(ranked[i].Members) > len(ranked[j].Members)
		}
		return ranked[i].Label < ranked[j].Label
	})

	return ranked
}

func scoreOne(c narrative.Candidate, eventsByID map[string]signal.Event, ctx signal.RunContext, baseline []signal.Event, cfg *config.Config) narrative.Ranked {
	members := make([]signal.Event, 0, len(c.Members))
	for _, id := range c.Members {
		if e, ok := eventsByID[id]; ok {
			members = append(members, e)
		}
	}

	entities := entitySet(c.Entities)

	features := narrative.Features{
		Velocity:    velocity(members, ctx, baseline, entities, cfg),
		Breadth:     breadth(members, cfg),
		Cross:       crossDomain(members),
		Novelty:     novelty(c.Entities, baseline, cfg),
		Credibility: credibility(members, cfg),
	}
	penalties := narrative.Penalties{
		Spam:         spamPenalty(members),
		SingleSource: singleSourcePenalty(members),
	}

	breakdown := narrative.ScoreBreakdown{
		Velocity:     cfg.Weights.Velocity * features.Velocity,
		Breadth:      cfg.Weights.Breadth * features.Breadth,
		Cross:        cfg.Weights.Cross * features.Cross,
		Novelty:      cfg.Weights.Novelty * features.Novelty,
		Credibility:  cfg.Weights.Credibility * features.Credibility,
		Spam:         -cfg.Penalties.Spam * penalties.Spam,
		SingleSource: -cfg.Penalties.SingleSource * penalties.SingleSource,
	}

	raw := breakdown.Velocity + breakdown.Breadth + breakdown.Cross +
		breakdown.Novelty + breakdown.Credibility + breakdown.Spam + breakdown.SingleSource

	return narrative.Ranked{
		Candidate:      c,
		Features:       features,
		Penalties:      penalties,
		Score:          clamp01(raw),
		ScoreBreakdown: breakdown,
	}
}

// AuthorDiversity exposes the breadth sub-feature the explainer needs for
// its contributor-diversity clause, computed with the same configuration
// the scorer used.
func AuthorDiversity(members []signal.Event, cfg *config.Config) float64 {
	return authorDiversity(members, cfg)
}
