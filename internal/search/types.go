// Package search implements the full-text search and ranking engine for the
// course content tree. The content catalog is flattened once into an ordered
// index of independently scorable entries; queries are scored against every
// entry with an additive lexical heuristic, then ranked, deduplicated by
// navigation target, and truncated to a small result list.
package search

import (
	"github.com/justinvassantachart/cs111-interactive-sub002/internal/course"
)

// EntryKind identifies the semantic unit an index entry represents.
type EntryKind string

const (
	// KindTitle is the item's title + subtitle.
	KindTitle EntryKind = "title"
	// KindTakeaway is the item's key takeaway.
	KindTakeaway EntryKind = "takeaway"
	// KindSection is a section's title + body.
	KindSection EntryKind = "section"
	// KindKeyPoint is a single key point bullet.
	KindKeyPoint EntryKind = "keypoint"
	// KindCode is a code example's title + listing.
	KindCode EntryKind = "code"
	// KindAnnotation is a single code annotation.
	KindAnnotation EntryKind = "annotation"
	// KindExercise is an exercise's title + description + hint.
	KindExercise EntryKind = "exercise"
)

// Priority returns the structural importance of this kind: 1 is most
// important (title level), 5 least (annotation level). The ranker adds
// (6 - priority) * 5 to matching entries, tilting results toward
// higher-level content.
func (k EntryKind) Priority() int {
	switch k {
	case KindTitle:
		return 1
	case KindTakeaway, KindSection:
		return 2
	case KindKeyPoint, KindExercise:
		return 3
	case KindCode:
		return 4
	case KindAnnotation:
		return 5
	}
	return 5
}

// Sentinel values used by the indexer.
const (
	// SectionIDExercises is the SectionID for exercise entries, which are
	// anchored to the item's exercises block rather than a real section.
	SectionIDExercises = "exercises"

	// SectionTitleTakeaway is the display section title for takeaway entries.
	SectionTitleTakeaway = "Key Takeaway"
)

// IndexEntry is one flattened, independently scorable unit of searchable
// content. Entries are immutable once the index is built.
type IndexEntry struct {
	// Kind is the semantic unit this entry represents.
	Kind EntryKind `json:"kind"`

	// ContentType is the owning collection.
	ContentType course.ContentType `json:"contentType"`

	// ContentID is the owning item's id.
	ContentID string `json:"contentId"`

	// LectureTitle is the owning item's title. The name is kept for
	// compatibility with historical frontend callers; it is the display
	// label regardless of content type.
	LectureTitle string `json:"lectureTitle"`

	// SectionID is the owning section's id, SectionIDExercises for exercise
	// entries, or empty for entries anchored directly to the item.
	SectionID string `json:"sectionId,omitempty"`

	// SectionTitle is the owning section's title, SectionTitleTakeaway for
	// takeaway entries, or empty.
	SectionTitle string `json:"sectionTitle,omitempty"`

	// Text is the full searchable string. Non-empty by construction.
	Text string `json:"-"`

	// Preview is a pre-truncated snippet for display. Not used by scoring.
	Preview string `json:"preview"`

	// Priority is Kind.Priority(), denormalized at build time.
	Priority int `json:"priority"`

	// Route is the navigation path a result leads to when selected.
	Route string `json:"route"`
}

// dedupKey identifies the logical navigation target this entry represents.
// Only one result per key survives ranking.
func (e *IndexEntry) dedupKey() string {
	return string(e.ContentType) + "-" + e.ContentID + "-" + e.SectionID
}

// Result is an index entry augmented with its relevance score.
type Result struct {
	IndexEntry
	Score int `json:"score"`
}
