package cluster

import (
	"sort"
	"strings"

	"github.com/chainpulse/narrative-radar/internal/config"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

// unionFind is a plain disjoint-set structure keyed by entity name.
type unionFind struct {
	parent map[string]string
}

func newUnionFind() *unionFind {
	return &unionFind{parent: map[string]string{}}
}

func (uf *unionFind) add(x string) {
	if _, ok := uf.parent[x]; !ok {
		uf.parent[x] = x
	}
}

func (uf *unionFind) find(x string) string {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b string) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[ra] = rb
	}
}

// entityClusters runs clustering phase 1: build the entity co-occurrence
// graph, retain edges at or above the edge threshold, and return each
// connected component as a sorted slice of entity names.
func entityClusters(events []signal.Event, cfg *config.Config) [][]string {
	eventsByEntity := map[string][]int{}
	for i, e := range events {
		for _, ent := range e.Entities {
			eventsByEntity[ent] = append(eventsByEntity[ent], i)
		}
	}

	nodes := make([]string, 0, len(eventsByEntity))
	for ent, idxs := range eventsByEntity {
		if len(idxs) >= cfg.Clustering.MinEntitySupport {
			nodes = append(nodes, ent)
		}
	}
	sort.Strings(nodes)

	uf := newUnionFind()
	for _, n := range nodes {
		uf.add(n)
	}

	sets := make([]map[int]bool, len(nodes))
	for i, n := range nodes {
		sets[i] = toIndexSet(eventsByEntity[n])
	}

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if edgeWeight(sets[i], sets[j]) >= cfg.Clustering.EdgeThreshold {
				uf.union(nodes[i], nodes[j])
			}
		}
	}

	groups := map[string][]string{}
	for _, n := range nodes {
		root := uf.find(n)
		groups[root] = append(groups[root], n)
	}

	out := make([][]string, 0, len(groups))
	for _, members := range groups {
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool {
		return entityKey(out[i]) < entityKey(out[j])
	})
	return out
}

func entityKey(entities []string) string {
	return strings.Join(entities, "\x00")
}

func toIndexSet(idxs []int) map[int]bool {
	s := make(map[int]bool, len(idxs))
	for _, i := range idxs {
		s[i] = true
	}
	return s
}

// edgeWeight computes |E_a ∩ E_b| / min(|E_a|, |E_b|).
func edgeWeight(a, b map[int]bool) float64 {
	small, big := a, b
	if len(big) < len(small) {
		small, big = big, small
	}
	if len(small) == 0 {
		return 0
	}
	inter := 0
	for k := range small {
		if big[k] {
			inter++
		}
	}
	return float64(inter) / float64(len(small))
}
