package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinvassantachart/cs111-interactive-sub002/internal/course"
)

func sectionEntry(contentID, sectionID, text string) IndexEntry {
	return IndexEntry{
		Kind:        KindSection,
		ContentType: course.ContentTypeLecture,
		ContentID:   contentID,
		SectionID:   sectionID,
		Text:        text,
		Priority:    KindSection.Priority(),
	}
}

func TestRank_EmptyQueryReturnsEmpty(t *testing.T) {
	index := []IndexEntry{sectionEntry("1", "s", "pipes connect processes")}

	assert.Empty(t, Rank(index, ParseQuery("")))
	assert.Empty(t, Rank(index, ParseQuery("   ")))
}

func TestRank_FiltersNonMatches(t *testing.T) {
	index := []IndexEntry{
		sectionEntry("1", "a", "pipes connect processes"),
		sectionEntry("1", "b", "signals interrupt processes"),
	}

	results := Rank(index, ParseQuery("pipe"))

	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].SectionID)
	assert.Positive(t, results[0].Score)
}

func TestRank_SortsDescendingWithStableTies(t *testing.T) {
	// b and c tie; a scores higher via the prefix bonus. Ties must keep
	// index-build order.
	index := []IndexEntry{
		sectionEntry("1", "b", "the scheduler quantum"),
		sectionEntry("2", "c", "the scheduler quantum"),
		sectionEntry("3", "a", "scheduler quantum details"),
	}

	results := Rank(index, ParseQuery("scheduler"))

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].SectionID)
	assert.Equal(t, "b", results[1].SectionID)
	assert.Equal(t, "c", results[2].SectionID)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
	assert.Equal(t, results[1].Score, results[2].Score)
}

func TestRank_DeduplicatesByTargetKeepingBestScore(t *testing.T) {
	// A section entry and its key point share a navigation target. The key
	// point outscores the section here (prefix bonus beats the priority gap),
	// so it must be the surviving representative.
	section := IndexEntry{
		Kind:        KindSection,
		ContentType: course.ContentTypeLecture,
		ContentID:   "1",
		SectionID:   "sched",
		Text:        "Scheduling round robin quantum",
		Priority:    KindSection.Priority(),
	}
	keypoint := IndexEntry{
		Kind:        KindKeyPoint,
		ContentType: course.ContentTypeLecture,
		ContentID:   "1",
		SectionID:   "sched",
		Text:        "quantum sizing matters",
		Priority:    KindKeyPoint.Priority(),
	}

	results := Rank([]IndexEntry{section, keypoint}, ParseQuery("quantum"))

	require.Len(t, results, 1)
	assert.Equal(t, KindKeyPoint, results[0].Kind)
	assert.Equal(t, 145, results[0].Score)
}

func TestRank_DifferentItemsDoNotCollide(t *testing.T) {
	// Spec scenario B: the same word in sections of different lectures yields
	// both results; the dedup key includes the content id.
	index := []IndexEntry{
		sectionEntry("1", "ipc", "pipes connect processes"),
		sectionEntry("2", "ipc", "named pipes persist"),
	}

	results := Rank(index, ParseQuery("pipe"))

	require.Len(t, results, 2)
	ids := []string{results[0].ContentID, results[1].ContentID}
	assert.ElementsMatch(t, []string{"1", "2"}, ids)
}

func TestRank_CapsAtMaxResults(t *testing.T) {
	var index []IndexEntry
	for i := 0; i < 15; i++ {
		index = append(index, sectionEntry(fmt.Sprintf("%d", i), "s", "the locking protocol"))
	}

	results := Rank(index, ParseQuery("locking"))

	require.Len(t, results, MaxResults)
	// Equal scores: stable order means the first ten items in index order.
	for i := 0; i < MaxResults; i++ {
		assert.Equal(t, fmt.Sprintf("%d", i), results[i].ContentID)
	}
}

func TestRank_DedupeSeesCandidatesBeyondTheFinalCut(t *testing.T) {
	// Ten unique targets score equally; an eleventh entry duplicates the
	// first target with a higher score and sorts to the front, pushing the
	// tenth unique target to sorted position 11. Deduplication must run over
	// the top 20 before the cut to 10, so all ten unique targets survive.
	// Truncating to 10 first would lose the last one.
	var index []IndexEntry
	for i := 1; i <= 10; i++ {
		index = append(index, sectionEntry(fmt.Sprintf("u%d", i), "s", "concept threads"))
	}
	dup := sectionEntry("u1", "s", "threads concept")
	index = append(index, dup)

	results := Rank(index, ParseQuery("threads"))

	require.Len(t, results, MaxResults)
	assert.Equal(t, "u1", results[0].ContentID, "higher-scoring duplicate wins its target")
	assert.Equal(t, "threads concept", results[0].Text)

	seen := make(map[string]bool)
	for _, r := range results {
		assert.False(t, seen[r.dedupKey()], "duplicate target in results")
		seen[r.dedupKey()] = true
	}
	assert.True(t, seen["lecture-u10-s"], "unique target beyond position 10 must survive dedupe")
}

func TestRank_AllScoresPositive(t *testing.T) {
	index := BuildIndex([]course.ContentItem{filesystemsLecture()}, nil, nil)

	for _, q := range []string{"inode", "blocks", "zzz-nothing"} {
		for _, r := range Rank(index, ParseQuery(q)) {
			assert.Positive(t, r.Score)
		}
	}
}
