package search

import "sort"

const (
	// MaxResults is the upper bound on the result list length.
	MaxResults = 10

	// dedupeCandidates is how many top-scored entries deduplication examines.
	// It is deliberately larger than MaxResults: the stable sort must surface
	// the best-scoring representative of each target before the final cut, or
	// a high-scoring duplicate could be discarded in favor of a lower-scoring
	// unique entry ranked between them.
	dedupeCandidates = 20
)

// Rank scores every index entry against the query, filters non-matches, sorts
// by descending score (stable, so ties keep index-build order), deduplicates
// by navigation target keeping the best-scoring entry, and truncates to
// MaxResults. An empty query returns an empty list without a scoring pass.
func Rank(index []IndexEntry, q Query) []Result {
	if q.Empty() {
		return []Result{}
	}

	scored := make([]Result, 0, len(index)/4)
	for i := range index {
		if s := scoreEntry(&index[i], q); s > 0 {
			scored = append(scored, Result{IndexEntry: index[i], Score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > dedupeCandidates {
		scored = scored[:dedupeCandidates]
	}

	seen := make(map[string]struct{}, len(scored))
	results := make([]Result, 0, MaxResults)
	for i := range scored {
		key := scored[i].dedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		results = append(results, scored[i])
		if len(results) == MaxResults {
			break
		}
	}
	return results
}
