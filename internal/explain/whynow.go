package explain

import (
	"fmt"
	"strings"

	"github.com/chainpulse/narrative-radar/internal/narrative"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

// whyNow composes a short prose summary from a narrative's feature values.
// Each clause is independent and conditional; omitted clauses never leave a
// dangling conjunction or stray punctuation.
func whyNow(r narrative.Ranked, members []signal.Event, authorDiv float64) string {
	var clauses []string

	if r.Features.Velocity >= 0.3 {
		clauses = append(clauses, "activity has accelerated sharply versus baseline")
	}

	if r.Features.Cross >= 0.3 {
		nOn, nOff := domainCounts(members)
		clauses = append(clauses, fmt.Sprintf("corroborated across %d onchain and %d offchain signals", nOn, nOff))
	}

	if recent := mostRecent(members); recent != nil {
		clauses = append(clauses, fmt.Sprintf("most recently triggered by %s", recent.Title))
	}

	if r.Features.Novelty >= 0.5 {
		clauses = append(clauses, "involves entities largely absent from the baseline period")
	}

	if authorDiv >= 0.3 {
		clauses = append(clauses, "drawing contributions from a broad set of authors")
	}

	if len(clauses) == 0 {
		return "no single factor stands out; ranked on composite score alone."
	}

	return capitalize(strings.Join(clauses, "; ")) + "."
}

func domainCounts(members []signal.Event) (onchain, offchain int) {
	for _, e := range members {
		if e.Domain == signal.DomainOnchain {
			onchain++
		} else {
			offchain++
		}
	}
	return
}

func mostRecent(members []signal.Event) *signal.Event {
	if len(members) == 0 {
		return nil
	}
	latest := members[0]
	for _, e := range members[1:] {
		if e.Timestamp.After(latest.Timestamp) {
			latest = e
		}
	}
	return &latest
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
