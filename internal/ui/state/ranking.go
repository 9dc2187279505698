package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Candidate is a row as seen by ranking: a display label and a secondary key
// such as a URL.
type Candidate struct {
	Label string
	Key   string
}

// BestMatchIndex returns the best index for the query among the provided
// candidates. Exact matches win over prefixes, prefixes over substrings, and
// substrings over fuzzy matches.
func BestMatchIndex(candidates []Candidate, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(candidates) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, c := range candidates {
		if strings.EqualFold(c.Label, trimmed) || strings.EqualFold(c.Key, trimmed) {
			return i
		}
	}
	for i, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c.Label), lower) {
			return i
		}
	}
	for i, c := range candidates {
		if strings.HasPrefix(strings.ToLower(keyHost(c.Key)), lower) {
			return i
		}
	}
	for i, c := range candidates {
		if strings.Contains(strings.ToLower(c.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(candidates) {
		return 0
	}
	return best.OriginalIndex
}

// keyHost strips a URL scheme and leading www. so "git" prefixes
// "https://github.com".
func keyHost(key string) string {
	if i := strings.Index(key, "://"); i >= 0 {
		key = key[i+3:]
	}
	return strings.TrimPrefix(key, "www.")
}
