package cluster

import (
	"sort"
	"strings"
	"unicode"
)

// label formats a cluster's top two entities (by intra-cluster event
// count, ties broken lexicographically) as "Title Case & Title Case". A
// single-entity cluster is labeled with that entity alone.
func label(entities []string, counts map[string]int) string {
	if len(entities) == 0 {
		return ""
	}

	ranked := make([]string, len(entities))
	copy(ranked, entities)
	sort.Slice(ranked, func(i, j int) bool {
		ci, cj := counts[ranked[i]], counts[ranked[j]]
		if ci != cj {
			return ci > cj
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) == 1 {
		return titleCase(ranked[0])
	}
	return titleCase(ranked[0]) + " & " + titleCase(ranked[1])
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) == 0 {
			continue
		}
		r[0] = unicode.ToUpper(r[0])
		for j := 1; j < len(r); j++ {
			r[j] = unicode.ToLower(r[j])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
