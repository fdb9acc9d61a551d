// Package explain enriches a scored narrative with evidence ordering, a
// "why now" summary, and a confidence tier, without altering its score.
package explain

import (
	"sort"

	"github.com/chainpulse/narrative-radar/internal/signal"
)

const maxEvidence = 8

// canonicalSourceOrder fixes the round-robin iteration order across source
// tags so evidence selection is deterministic regardless of input order.
var canonicalSourceOrder = []signal.Source{
	signal.SourceTxActivity,
	signal.SourceProgramDeploy,
	signal.SourceTokenActivity,
	signal.SourceGitHub,
	signal.SourceTwitter,
	signal.SourceRSSBlog,
}

// evidence selects up to maxEvidence member ids by descending relevance,
// round-robining across distinct source tags so no single source can
// crowd out the others.
func evidence(members []signal.Event) []string {
	bySource := map[signal.Source][]signal.Event{}
	for _, e := range members {
		bySource[e.Source] = append(bySource[e.Source], e)
	}
	for source := range bySource {
		sort.SliceStable(bySource[source], func(i, j int) bool {
			a, b := bySource[source][i], bySource[source][j]
			if a.Relevance != b.Relevance {
				return a.Relevance > b.Relevance
			}
			return a.ID < b.ID
		})
	}

	chosen := map[string]bool{}
	out := make([]string, 0, maxEvidence)

	for len(out) < maxEvidence {
		pickedThisPass := false
		for _, source := range canonicalSourceOrder {
			queue := bySource[source]
			for _, e := range queue {
				if chosen[e.ID] {
					continue
				}
				out = append(out, e.ID)
				chosen[e.ID] = true
				pickedThisPass = true
				break
			}
			if len(out) == maxEvidence {
				break
			}
		}
		if !pickedThisPass {
			break
		}
	}

	return out
}
