package normalize

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// stopwords is the closed set of common English words excluded from token
// sets used for near-duplicate title comparisons. The clusterer's text
// similarity keeps its own, shorter list.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"to": true, "of": true, "in": true, "on": true, "for": true, "with": true,
	"at": true, "by": true, "from": true, "as": true, "it": true, "its": true,
	"this": true, "that": true, "these": true, "those": true, "has": true,
	"have": true, "had": true, "will": true, "would": true, "can": true,
	"could": true, "do": true, "does": true, "did": true, "not": true,
	"into": true, "about": true, "than": true, "then": true, "so": true,
}

// normalizeWhitespace collapses runs of whitespace into a single space and
// trims the result, matching the "normalize_ws" step used to build the
// exact-dedup key.
func normalizeWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// tokenSet lowercases s, extracts word tokens, drops stopwords, and returns
// the deduplicated set as a map for O(1) membership tests.
func tokenSet(s string) map[string]bool {
	out := map[string]bool{}
	for _, tok := range wordPattern.FindAllString(strings.ToLower(s), -1) {
		if stopwords[tok] {
			continue
		}
		out[tok] = true
	}
	return out
}

// jaccard returns the Jaccard similarity of two token sets: |intersection| /
// |union|. Two empty sets are defined as similarity 0 (nothing to compare).
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
