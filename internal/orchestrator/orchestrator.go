// Package orchestrator wires the Normalizer, Clusterer, Scorer, and
// Explainer into a single deterministic pass over a RunContext. It is pure
// with respect to connectors and renderers: it never does I/O itself.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chainpulse/narrative-radar/internal/cluster"
	"github.com/chainpulse/narrative-radar/internal/config"
	"github.com/chainpulse/narrative-radar/internal/explain"
	"github.com/chainpulse/narrative-radar/internal/normalize"
	"github.com/chainpulse/narrative-radar/internal/scoring"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

// Run applies Normalizer -> Clusterer -> Scorer -> Explainer in sequence
// against runCtx and returns the resulting artifact. Cancellation is only
// observed between stages; a stage already running always finishes.
func Run(ctx context.Context, events []signal.Event, runCtx signal.RunContext, aliases *signal.AliasTable, cfg *config.Config, log zerolog.Logger) (*RunArtifact, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &ErrConfig{Cause: err}
	}

	timings := map[string]Fixed3{}
	counters := signal.NewCounters()

	if err := ctx.Err(); err != nil {
		return nil, &ErrCancelled{Stage: "normalize"}
	}
	start := time.Now()
	normalized := normalize.Run(events, aliases, cfg, counters)
	timings["normalize"] = Fixed3(time.Since(start).Seconds())
	log.Debug().Int("in", len(events)).Int("out", len(normalized)).Msg("normalize complete")

	var window, baseline []signal.Event
	for _, e := range normalized {
		switch {
		case runCtx.InWindow(e.Timestamp):
			window = append(window, e)
		case runCtx.InBaseline(e.Timestamp):
			baseline = append(baseline, e)
		}
	}

	sourceSummary := map[string]int{}
	for _, e := range window {
		sourceSummary[string(e.Source)]++
	}

	totals := Totals{Ingested: len(events), AfterDedup: len(normalized)}

	if len(window) == 0 {
		return &RunArtifact{
			RunID:         runCtx.RunID,
			GeneratedAt:   runCtx.GeneratedAt,
			Window:        WindowJSON{Start: runCtx.WindowStart, End: runCtx.WindowEnd},
			Baseline:      WindowJSON{Start: runCtx.BaselineStart, End: runCtx.BaselineEnd},
			SourceSummary: sourceSummary,
			Totals:        totals,
			Narratives:    []RankedNarrativeJSON{},
			Counters:      counters.Snapshot(),
			Timings:       timings,
			Notes:         "no events fell inside the analysis window after normalization and deduplication",
		}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, &ErrCancelled{Stage: "cluster"}
	}
	start = time.Now()
	candidates := cluster.Run(window, cfg)
	timings["cluster"] = Fixed3(time.Since(start).Seconds())
	totals.Candidates = len(candidates)

	eventsByID := make(map[string]signal.Event, len(window)+len(baseline))
	for _, e := range window {
		eventsByID[e.ID] = e
	}
	for _, e := range baseline {
		eventsByID[e.ID] = e
	}

	for _, c := range candidates {
		if len(c.Members) == 0 {
			return nil, &ErrInternal{Stage: "cluster", Detail: fmt.Sprintf("candidate %q has zero members", c.Label)}
		}
		for _, id := range c.Members {
			if _, ok := eventsByID[id]; !ok {
				return nil, &ErrInternal{Stage: "cluster", Detail: fmt.Sprintf("candidate %q references unknown member %q", c.Label, id)}
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, &ErrCancelled{Stage: "score"}
	}
	start = time.Now()
	ranked := scoring.Run(candidates, eventsByID, runCtx, baseline, cfg)
	timings["score"] = Fixed3(time.Since(start).Seconds())
	totals.Ranked = len(ranked)

	if err := ctx.Err(); err != nil {
		return nil, &ErrCancelled{Stage: "explain"}
	}
	start = time.Now()
	explained := explain.Run(ranked, eventsByID, cfg)
	timings["explain"] = Fixed3(time.Since(start).Seconds())

	narratives := make([]RankedNarrativeJSON, len(explained))
	for i, r := range explained {
		narratives[i] = toRankedJSON(r)
	}

	return &RunArtifact{
		RunID:         runCtx.RunID,
		GeneratedAt:   runCtx.GeneratedAt,
		Window:        WindowJSON{Start: runCtx.WindowStart, End: runCtx.WindowEnd},
		Baseline:      WindowJSON{Start: runCtx.BaselineStart, End: runCtx.BaselineEnd},
		SourceSummary: sourceSummary,
		Totals:        totals,
		Narratives:    narratives,
		Counters:      counters.Snapshot(),
		Timings:       timings,
		Notes:         "",
	}, nil
}
