package cluster

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/chainpulse/narrative-radar/internal/config"
)

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"to": true, "of": true, "in": true, "on": true, "for": true, "with": true,
	"at": true, "by": true, "from": true, "as": true, "it": true, "its": true,
	"this": true, "that": true,
}

// unigrams returns the lowercased, stopword-filtered word tokens of text.
func unigrams(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

// ngrams returns unigrams plus adjacent-pair bigrams, the vocabulary shape
// the TF-IDF vectorizer uses.
func ngrams(text string) []string {
	words := unigrams(text)
	out := make([]string, 0, len(words)*2)
	out = append(out, words...)
	for i := 0; i+1 < len(words); i++ {
		out = append(out, words[i]+" "+words[i+1])
	}
	return out
}

// vectorize builds a TF-IDF vector per document, restricted to terms whose
// document frequency falls within [minDF, maxDF*n].
func vectorize(docs []string) []map[string]float64 {
	n := len(docs)
	tokenized := make([][]string, n)
	df := map[string]int{}

	for i, d := range docs {
		toks := ngrams(d)
		tokenized[i] = toks
		seen := map[string]bool{}
		for _, t := range toks {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	const minDF = 2
	const maxDFRatio = 0.8

	vocab := map[string]bool{}
	for t, c := range df {
		if c < minDF {
			continue
		}
		if n > 0 && float64(c)/float64(n) > maxDFRatio {
			continue
		}
		vocab[t] = true
	}

	vectors := make([]map[string]float64, n)
	for i, toks := range tokenized {
		tf := map[string]int{}
		for _, t := range toks {
			if vocab[t] {
				tf[t]++
			}
		}
		vec := make(map[string]float64, len(tf))
		for t, c := range tf {
			idf := math.Log(float64(n) / float64(df[t]))
			vec[t] = float64(c) * idf
		}
		vectors[i] = vec
	}
	return vectors
}

func cosineSimilarity(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for k, v := range a {
		normA += v * v
		if bv, ok := b[k]; ok {
			dot += v * bv
		}
	}
	for _, v := range b {
		normB += v * v
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func pairwiseDistances(vectors []map[string]float64) [][]float64 {
	n := len(vectors)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := 1 - cosineSimilarity(vectors[i], vectors[j])
			d[i][j] = dist
			d[j][i] = dist
		}
	}
	return d
}

// agglomerativeClusters performs average-linkage agglomerative clustering,
// repeatedly merging the two closest clusters until the closest remaining
// pair exceeds cutoff. Input order drives tie-breaking, so identical input
// always yields the identical partition.
func agglomerativeClusters(n int, dist [][]float64, cutoff float64) [][]int {
	if n == 0 {
		return nil
	}

	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}

	for {
		bestI, bestJ := -1, -1
		bestDist := math.Inf(1)
		for i := 0; i < len(clusters); i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < len(clusters); j++ {
				if !active[j] {
					continue
				}
				d := averageLinkage(clusters[i], clusters[j], dist)
				if d < bestDist {
					bestDist = d
					bestI, bestJ = i, j
				}
			}
		}
		if bestI == -1 || bestDist > cutoff {
			break
		}
		clusters[bestI] = append(clusters[bestI], clusters[bestJ]...)
		active[bestJ] = false
	}

	out := make([][]int, 0, n)
	for i, ok := range active {
		if ok {
			sort.Ints(clusters[i])
			out = append(out, clusters[i])
		}
	}
	return out
}

func averageLinkage(a, b []int, dist [][]float64) float64 {
	var sum float64
	for _, i := range a {
		for _, j := range b {
			sum += dist[i][j]
		}
	}
	return sum / float64(len(a)*len(b))
}

// textClusters runs clustering phase 2 end to end: vectorize, compute
// pairwise distance, and cut the agglomerative dendrogram at the
// configured text-distance threshold.
func textClusters(docs []string, cfg *config.Config) [][]int {
	vectors := vectorize(docs)
	dist := pairwiseDistances(vectors)
	return agglomerativeClusters(len(docs), dist, cfg.Clustering.TextDistance)
}

// topTerms returns the k most frequent terms in freq, ties broken
// lexicographically — used as a fallback label source for text-only
// clusters, which have no alias-resolved entities of their own.
func topTerms(freq map[string]int, k int) []string {
	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > k {
		terms = terms[:k]
	}
	return terms
}
