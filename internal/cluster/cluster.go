// Package cluster implements the pipeline's clustering stage: an entity
// co-occurrence graph (phase 1) combined with TF-IDF text similarity over
// the events phase 1 couldn't anchor (phase 2).
package cluster

import (
	"sort"
	"time"

	"github.com/chainpulse/narrative-radar/internal/config"
	"github.com/chainpulse/narrative-radar/internal/narrative"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

type rawCandidate struct {
	entities []string
	members  map[int]bool
}

// Run produces candidate narratives from a normalized event set, applying
// both clustering phases, the min-cluster-size edge policy, and label
// generation. The returned slice is sorted by label then entity set so
// identical input always yields an identical order.
func Run(events []signal.Event, cfg *config.Config) []narrative.Candidate {
	var raws []rawCandidate

	for _, group := range entityClusters(events, cfg) {
		members := map[int]bool{}
		entitySet := toStringSet(group)
		for i, e := range events {
			if intersects(e.Entities, entitySet) {
				members[i] = true
			}
		}
		if len(members) == 0 {
			continue
		}
		raws = append(raws, rawCandidate{entities: group, members: members})
	}

	var unanchoredIdx []int
	for i, e := range events {
		if e.Unanchored {
			unanchoredIdx = append(unanchoredIdx, i)
		}
	}
	docs := make([]string, len(unanchoredIdx))
	for i, idx := range unanchoredIdx {
		docs[i] = events[idx].Title + " " + events[idx].Text
	}

	for _, group := range textClusters(docs, cfg) {
		if len(group) < cfg.Clustering.MinTextSupport {
			continue
		}
		members := map[int]bool{}
		for _, local := range group {
			members[unanchoredIdx[local]] = true
		}
		// A text cluster's members are unanchored by construction (no
		// alias matched), so its modal entity set is always empty and it
		// never merges into an entity cluster; it always stands alone.
		raws = append(raws, rawCandidate{entities: nil, members: members})
	}

	candidates := make([]narrative.Candidate, 0, len(raws))
	for _, r := range raws {
		if len(r.members) < cfg.Clustering.MinClusterSize {
			continue
		}
		candidates = append(candidates, buildCandidate(events, r))
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Label != candidates[j].Label {
			return candidates[i].Label < candidates[j].Label
		}
		return entityKey(candidates[i].Entities) < entityKey(candidates[j].Entities)
	})

	return candidates
}

func buildCandidate(events []signal.Event, r rawCandidate) narrative.Candidate {
	memberIdx := make([]int, 0, len(r.members))
	for i := range r.members {
		memberIdx = append(memberIdx, i)
	}
	sort.Slice(memberIdx, func(a, b int) bool {
		ea, eb := events[memberIdx[a]], events[memberIdx[b]]
		if !ea.Timestamp.Equal(eb.Timestamp) {
			return ea.Timestamp.Before(eb.Timestamp)
		}
		return ea.ID < eb.ID
	})

	entityCounts := map[string]int{}
	termCounts := map[string]int{}
	memberIDs := make([]string, len(memberIdx))
	var start, end time.Time

	for i, idx := range memberIdx {
		e := events[idx]
		memberIDs[i] = e.ID
		for _, ent := range e.Entities {
			entityCounts[ent]++
		}
		for _, term := range unigrams(e.Title + " " + e.Text) {
			termCounts[term]++
		}
		if start.IsZero() || e.Timestamp.Before(start) {
			start = e.Timestamp
		}
		if end.IsZero() || e.Timestamp.After(end) {
			end = e.Timestamp
		}
	}

	entities := r.entities
	counts := entityCounts
	if entities == nil {
		// Text-only cluster: every narrative carries at least one entity,
		// so synthesize pseudo-entities from the cluster's most frequent
		// terms rather than leave the set empty.
		entities = topTerms(termCounts, 2)
		counts = termCounts
	}

	return narrative.Candidate{
		Label:    label(entities, counts),
		Entities: entities,
		Members:  memberIDs,
		Window:   narrative.Window{Start: start, End: end},
	}
}

func toStringSet(entities []string) map[string]bool {
	s := make(map[string]bool, len(entities))
	for _, e := range entities {
		s[e] = true
	}
	return s
}

func intersects(entities []string, set map[string]bool) bool {
	for _, e := range entities {
		if set[e] {
			return true
		}
	}
	return false
}
