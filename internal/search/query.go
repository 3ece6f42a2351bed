package search

import "strings"

// Query is a normalized search query: the full phrase plus its
// whitespace-delimited words.
//
// Words keep their query order for deterministic scoring and may repeat;
// scoring is additive per occurrence, so a query like "pipe pipe" counts the
// per-word bonuses twice. That mirrors the additive formula rather than
// deduplicating up front.
type Query struct {
	// Phrase is the raw query lower-cased and trimmed.
	Phrase string

	// Words are the non-empty tokens of Phrase split on whitespace runs.
	Words []string
}

// ParseQuery normalizes a raw query string.
func ParseQuery(raw string) Query {
	phrase := strings.ToLower(strings.TrimSpace(raw))
	return Query{
		Phrase: phrase,
		Words:  strings.Fields(phrase),
	}
}

// Empty reports whether the query was empty or whitespace-only. Empty queries
// yield an empty result list without a scoring pass.
func (q Query) Empty() bool {
	return q.Phrase == ""
}
