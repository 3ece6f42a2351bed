package search

import (
	"strings"

	"github.com/justinvassantachart/cs111-interactive-sub002/internal/course"
)

// Preview truncation lengths, in runes.
const (
	previewLen           = 150
	annotationPreviewLen = 100
)

// BuildIndex flattens the three content collections into an ordered slice of
// index entries. It is a pure function: equal inputs produce an equal index,
// entry order is tree-walk order (collection, then item, then unit). Absent
// optional fields are omitted from the concatenated text; a unit contributing
// no text contributes no entry, so every entry's Text is non-empty.
func BuildIndex(lectures, sections, assignments []course.ContentItem) []IndexEntry {
	var entries []IndexEntry

	collections := []struct {
		ctype course.ContentType
		items []course.ContentItem
	}{
		{course.ContentTypeLecture, lectures},
		{course.ContentTypeSection, sections},
		{course.ContentTypeAssignment, assignments},
	}

	for _, col := range collections {
		for i := range col.items {
			entries = appendItemEntries(entries, col.ctype, &col.items[i])
		}
	}
	return entries
}

// appendItemEntries emits all entries for one content item.
func appendItemEntries(entries []IndexEntry, ctype course.ContentType, item *course.ContentItem) []IndexEntry {
	route := ctype.Route(item.ID)

	// base carries the fields shared by every entry of this item.
	base := IndexEntry{
		ContentType:  ctype,
		ContentID:    item.ID,
		LectureTitle: item.Title,
		Route:        route,
	}

	entries = appendEntry(entries, base, KindTitle, "", "",
		joinText(item.Title, item.Subtitle), item.Subtitle)

	if item.KeyTakeaway != "" {
		entries = appendEntry(entries, base, KindTakeaway, "", SectionTitleTakeaway,
			item.KeyTakeaway, item.KeyTakeaway)
	}

	for i := range item.Sections {
		entries = appendSectionEntries(entries, base, &item.Sections[i])
	}

	for i := range item.Exercises {
		ex := &item.Exercises[i]
		entries = appendEntry(entries, base, KindExercise, SectionIDExercises, "",
			joinText(ex.Title, ex.Description, ex.Hint), truncate(ex.Description, previewLen))
	}

	return entries
}

// appendSectionEntries emits the section entry plus its key points, code
// example, and annotations.
func appendSectionEntries(entries []IndexEntry, base IndexEntry, sec *course.Section) []IndexEntry {
	preview := truncate(sec.Content, previewLen)
	if sec.Content == "" {
		preview = sec.Title
	}
	entries = appendEntry(entries, base, KindSection, sec.ID, sec.Title,
		joinText(sec.Title, sec.Content), preview)

	for _, point := range sec.KeyPoints {
		entries = appendEntry(entries, base, KindKeyPoint, sec.ID, sec.Title, point, point)
	}

	if ce := sec.CodeExample; ce != nil {
		entries = appendEntry(entries, base, KindCode, sec.ID, sec.Title,
			joinText(ce.Title, ce.Code), ce.Title)

		for _, ann := range ce.Annotations {
			entries = appendEntry(entries, base, KindAnnotation, sec.ID, sec.Title,
				joinText(ann.Match, ann.Explanation),
				ann.Match+": "+truncate(ann.Explanation, annotationPreviewLen))
		}
	}

	return entries
}

// appendEntry fills in the per-entry fields and appends, unless the entry
// would carry no searchable text.
func appendEntry(entries []IndexEntry, base IndexEntry, kind EntryKind, sectionID, sectionTitle, text, preview string) []IndexEntry {
	if text == "" {
		return entries
	}
	base.Kind = kind
	base.SectionID = sectionID
	base.SectionTitle = sectionTitle
	base.Text = text
	base.Preview = preview
	base.Priority = kind.Priority()
	return append(entries, base)
}

// joinText joins the non-empty parts with single spaces.
func joinText(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
