// Package course defines the content model for the CS111 interactive course:
// lectures, discussion sections, and assignments, together with their nested
// sections, key points, code examples, annotations, and exercises.
package course

// ContentType identifies which of the three top-level collections a
// ContentItem belongs to. It is a closed set; the search layer builds
// navigation routes and dedup keys from it.
type ContentType string

const (
	// ContentTypeLecture is a course lecture.
	ContentTypeLecture ContentType = "lecture"

	// ContentTypeSection is a discussion section.
	ContentTypeSection ContentType = "section"

	// ContentTypeAssignment is a programming assignment.
	ContentTypeAssignment ContentType = "assignment"
)

// Valid reports whether t is one of the three known content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeLecture, ContentTypeSection, ContentTypeAssignment:
		return true
	}
	return false
}

// Route returns the navigation path for an item of this type.
// The templates are a compatibility contract with the web frontend's router:
// "/lecture/{id}", "/section/{id}", "/assignment/{id}".
func (t ContentType) Route(id string) string {
	return "/" + string(t) + "/" + id
}

// ContentItem is one lecture, discussion section, or assignment.
type ContentItem struct {
	// ID is unique within the item's collection.
	ID string `yaml:"id"`

	// Title is the display title, e.g. "Filesystems".
	Title string `yaml:"title"`

	// Subtitle is a one-line description shown under the title.
	Subtitle string `yaml:"subtitle"`

	// KeyTakeaway is the optional headline lesson of the item.
	KeyTakeaway string `yaml:"keyTakeaway,omitempty"`

	// Sections are the item's content sections, in display order.
	Sections []Section `yaml:"sections,omitempty"`

	// Exercises are the item's practice exercises, in display order.
	Exercises []Exercise `yaml:"exercises,omitempty"`
}

// Section is one titled block of content inside a ContentItem.
type Section struct {
	// ID is unique within the owning item.
	ID string `yaml:"id"`

	// Title is the section heading.
	Title string `yaml:"title"`

	// Content is the section body text. Optional.
	Content string `yaml:"content,omitempty"`

	// KeyPoints are short bullet takeaways. Optional.
	KeyPoints []string `yaml:"keyPoints,omitempty"`

	// CodeExample is an optional annotated code listing.
	CodeExample *CodeExample `yaml:"codeExample,omitempty"`
}

// CodeExample is an annotated code listing attached to a Section.
type CodeExample struct {
	// Title describes the listing, e.g. "Reading an inode".
	Title string `yaml:"title"`

	// Language is the highlighting language, e.g. "c".
	Language string `yaml:"language"`

	// Code is the full listing text.
	Code string `yaml:"code"`

	// Annotations explain individual tokens in the listing. Optional.
	Annotations []Annotation `yaml:"annotations,omitempty"`
}

// Annotation explains one token or pattern inside a CodeExample.
type Annotation struct {
	// Match is the token the annotation is anchored to.
	Match string `yaml:"match"`

	// Explanation is the annotation body.
	Explanation string `yaml:"explanation"`
}

// Exercise is one practice exercise attached to a ContentItem.
type Exercise struct {
	// ID is unique within the owning item.
	ID string `yaml:"id"`

	// Title is the exercise heading.
	Title string `yaml:"title"`

	// Description is the exercise prompt.
	Description string `yaml:"description"`

	// Hint is an optional nudge toward the solution.
	Hint string `yaml:"hint,omitempty"`
}

// Catalog holds the three content collections in display order.
//
// Collections are ordered slices rather than maps so that every traversal,
// including index construction, is deterministic. A Catalog is effectively
// immutable once loaded; content changes produce a new Catalog.
type Catalog struct {
	Lectures    []ContentItem
	Sections    []ContentItem
	Assignments []ContentItem
}

// Items returns the collection for the given content type.
func (c *Catalog) Items(t ContentType) []ContentItem {
	switch t {
	case ContentTypeLecture:
		return c.Lectures
	case ContentTypeSection:
		return c.Sections
	case ContentTypeAssignment:
		return c.Assignments
	}
	return nil
}

// Len returns the total number of content items across all collections.
func (c *Catalog) Len() int {
	return len(c.Lectures) + len(c.Sections) + len(c.Assignments)
}
