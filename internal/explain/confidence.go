package explain

import (
	"github.com/chainpulse/narrative-radar/internal/narrative"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

// confidence computes the 0-100 confidence score and buckets it into a
// tier. The scale is additive evidence for a narrative being real and
// well-corroborated, penalized when spam or single-source signals fired.
func confidence(r narrative.Ranked, members []signal.Event) narrative.Confidence {
	score := 0.0

	switch {
	case len(members) >= 10:
		score += 40
	case len(members) >= 5:
		score += 25
	case len(members) >= 3:
		score += 10
	}

	if bothDomainsPresent(members) {
		score += 25
	}

	distinctSources := distinctSourceCount(members)
	switch {
	case distinctSources >= 3:
		score += 15
	case distinctSources >= 2:
		score += 8
	}

	if r.Penalties.SingleSource > 0 {
		score -= 30
	}
	if r.Penalties.Spam > 0 {
		score -= 20
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	tier := narrative.TierLow
	switch {
	case score >= 80:
		tier = narrative.TierStrong
	case score >= 55:
		tier = narrative.TierModerate
	}

	return narrative.Confidence{Tier: tier, Value: score / 100}
}

func bothDomainsPresent(members []signal.Event) bool {
	var onchain, offchain bool
	for _, e := range members {
		if e.Domain == signal.DomainOnchain {
			onchain = true
		} else {
			offchain = true
		}
	}
	return onchain && offchain
}

func distinctSourceCount(members []signal.Event) int {
	seen := map[signal.Source]bool{}
	for _, e := range members {
		seen[e.Source] = true
	}
	return len(seen)
}
