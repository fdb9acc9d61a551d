package signal

import (
	"sort"
	"strings"
)

// AliasTable maps canonical entity names to the surface forms a connector's
// raw text might use for them (case-insensitive). It precompiles those
// surface forms into an Aho–Corasick automaton so resolving entities in an
// event's title+text is linear in the text length regardless of how many
// aliases are configured.
type AliasTable struct {
	automaton *acMatcher
}

// NewAliasTable builds an AliasTable from canonical name -> surface forms.
// Surface forms are folded to lowercase at build time.
func NewAliasTable(aliases map[string][]string) *AliasTable {
	canonicals := make([]string, 0, len(aliases))
	for canonical := range aliases {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals) // deterministic pattern registration order

	m := newACMatcher()
	for _, canonical := range canonicals {
		forms := aliases[canonical]
		seen := map[string]bool{strings.ToLower(canonical): true}
		m.add(strings.ToLower(canonical), canonical)
		for _, form := range forms {
			lf := strings.ToLower(strings.TrimSpace(form))
			if lf == "" || seen[lf] {
				continue
			}
			seen[lf] = true
			m.add(lf, canonical)
		}
	}
	m.build()

	return &AliasTable{automaton: m}
}

// Resolve scans text (already expected to be arbitrary case) for any
// configured alias and returns the set of canonical entity names matched,
// deduplicated and sorted for deterministic downstream ordering.
func (t *AliasTable) Resolve(text string) []string {
	if t == nil || t.automaton == nil {
		return nil
	}
	lower := strings.ToLower(text)
	hits := t.automaton.match(lower)
	if len(hits) == 0 {
		return nil
	}
	out := make([]string, 0, len(hits))
	for canonical := range hits {
		out = append(out, canonical)
	}
	sort.Strings(out)
	return out
}
