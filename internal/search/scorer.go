package search

import "strings"

// Scoring weights. These are exact contracts with the reference ranking
// behavior, not tunable constants: changing them reorders results for
// existing queries.
const (
	phraseBonus       = 100 // entry text contains the whole query phrase
	wordBonus         = 20  // entry text contains a query word
	prefixBonus       = 10  // entry text starts with a query word
	sectionTitleBonus = 15  // section title contains a query word
	priorityStep      = 5   // multiplied by (6 - priority), added once per match
)

// scoreEntry computes the relevance of one entry for a normalized query.
//
// The heuristic favors exact phrase hits, then word coverage, with bonuses for
// prefix matches and section-title relevance, plus a tilt toward structurally
// important entries. The section-title check is independent of the text check:
// a takeaway entry whose title is "Key Takeaway" earns it even when the word
// is absent from the takeaway body. A zero score means the entry does not
// match; the priority bonus is only added to entries that matched something.
func scoreEntry(e *IndexEntry, q Query) int {
	text := strings.ToLower(e.Text)

	score := 0
	if strings.Contains(text, q.Phrase) {
		score += phraseBonus
	}

	sectionTitle := strings.ToLower(e.SectionTitle)
	for _, word := range q.Words {
		if strings.Contains(text, word) {
			score += wordBonus
			if strings.HasPrefix(text, word) {
				score += prefixBonus
			}
		}
		if sectionTitle != "" && strings.Contains(sectionTitle, word) {
			score += sectionTitleBonus
		}
	}

	if score == 0 {
		return 0
	}
	return score + (6-e.Priority)*priorityStep
}
