package scoring

import (
	"time"

	"github.com/chainpulse/narrative-radar/internal/signal"
)

// spamPenalty is the max of two independent detectors: a burst detector
// (too many members packed into a short window) and an author-dominance
// detector (one author producing most of the members).
func spamPenalty(members []signal.Event) float64 {
	burst := burstPenalty(members)
	dominance := authorDominancePenalty(members)
	if burst > dominance {
		return burst
	}
	return dominance
}

func burstPenalty(members []signal.Event) float64 {
	if len(members) == 0 {
		return 0
	}

	maxFraction := 0.0
	for _, anchor := range members {
		windowEnd := anchor.Timestamp.Add(time.Hour)
		count := 0
		for _, e := range members {
			if !e.Timestamp.Before(anchor.Timestamp) && e.Timestamp.Before(windowEnd) {
				count++
			}
		}
		fraction := float64(count) / float64(len(members))
		if fraction > maxFraction {
			maxFraction = fraction
		}
	}

	if maxFraction > 0.5 {
		return clamp01((maxFraction - 0.5) * 2)
	}
	return 0
}

func authorDominancePenalty(members []signal.Event) float64 {
	if len(members) == 0 {
		return 0
	}

	counts := map[string]int{}
	for _, e := range members {
		if e.Author == "" {
			continue
		}
		counts[e.Author]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	share := float64(maxCount) / float64(len(members))
	if share > 0.6 {
		return clamp01((share - 0.6) * 2.5)
	}
	return 0
}

// singleSourcePenalty penalizes a narrative whose members skew heavily
// toward a single source tag.
func singleSourcePenalty(members []signal.Event) float64 {
	if len(members) == 0 {
		return 0
	}

	counts := map[signal.Source]int{}
	for _, e := range members {
		counts[e.Source]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	share := float64(maxCount) / float64(len(members))
	if share > 0.7 {
		return clamp01((share - 0.7) * (10.0 / 3.0))
	}
	return 0
}
