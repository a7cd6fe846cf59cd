package search

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

const (
	fullWeight  = 0.7
	tokenWeight = 0.3
)

type IndexOpt func(*Index)

// WithMinScore discards candidates scoring below s. The zero default
// keeps every candidate, so the weakest match in a non-empty result
// set still wins.
func WithMinScore(s float64) IndexOpt {
	return func(ix *Index) {
		ix.minScore = s
	}
}

type candidate struct {
	canonical  string
	normalized string
	tokens     []string
}

// Index matches free-form user input against a fixed set of canonical
// names. Lookups favor whole-name similarity over token overlap and
// never mutate the index, so a built Index is safe for concurrent use.
type Index struct {
	candidates []candidate
	minScore   float64
}

func NewIndex(names []string, opts ...IndexOpt) *Index {
	ix := &Index{}
	for _, o := range opts {
		o(ix)
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		norm := normalize(name)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		ix.candidates = append(ix.candidates, candidate{
			canonical:  name,
			normalized: norm,
			tokens:     tokenize(norm),
		})
	}

	// Deterministic ranking for equal scores.
	sort.Slice(ix.candidates, func(i, j int) bool {
		return ix.candidates[i].normalized < ix.candidates[j].normalized
	})

	return ix
}

func (ix *Index) Len() int {
	return len(ix.candidates)
}

// Search returns the canonical name of the best-matching candidate.
// The boolean is false when nothing in the index is close enough to
// the query to count as a match at all.
func (ix *Index) Search(query string) (string, bool) {
	norm := normalize(query)
	if norm == "" {
		return "", false
	}
	tokens := tokenize(norm)

	type scored struct {
		canonical string
		score     float64
	}

	var results []scored
	for _, c := range ix.candidates {
		score, ok := match(norm, tokens, c)
		if !ok || score < ix.minScore {
			continue
		}
		results = append(results, scored{canonical: c.canonical, score: score})
	}
	if len(results) == 0 {
		return "", false
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	return results[0].canonical, true
}

// match admits a candidate when the query equals it, prefixes it, or
// sits within the edit-distance limit of the whole name or one of its
// tokens. Admitted candidates score on weighted similarity so "wood"
// outranks "wood-double-door" for the query "wood".
func match(query string, queryTokens []string, c candidate) (float64, bool) {
	if query == c.normalized {
		return 1.0, true
	}

	fullDist := levenshtein.ComputeDistance(query, c.normalized)
	admitted := fullDist <= distanceLimit(len(c.normalized))

	if !admitted && len(query) >= 2 && hasPrefix(c.normalized, query) {
		admitted = true
	}

	bestToken := 0.0
	for _, ct := range c.tokens {
		for _, qt := range queryTokens {
			d := levenshtein.ComputeDistance(qt, ct)
			if !admitted && d <= distanceLimit(len(ct)) {
				admitted = true
			}
			if s := similarity(d, len(qt), len(ct)); s > bestToken {
				bestToken = s
			}
		}
	}
	if !admitted {
		return 0, false
	}

	full := similarity(fullDist, len(query), len(c.normalized))
	return fullWeight*full + tokenWeight*bestToken, true
}

// distanceLimit scales the tolerated edit distance with name length
// so short names don't fuzz into each other.
func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func similarity(dist, lenA, lenB int) float64 {
	longest := lenA
	if lenB > longest {
		longest = lenB
	}
	if longest == 0 {
		return 0
	}
	s := 1.0 - float64(dist)/float64(longest)
	if s < 0 {
		return 0
	}
	return s
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
