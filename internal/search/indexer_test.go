package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinvassantachart/cs111-interactive-sub002/internal/course"
)

// filesystemsLecture is the canonical fixture used across the engine tests.
func filesystemsLecture() course.ContentItem {
	return course.ContentItem{
		ID:          "1",
		Title:       "Filesystems",
		Subtitle:    "storage",
		KeyTakeaway: "Everything on disk is reachable from an inode.",
		Sections: []course.Section{
			{
				ID:        "inodes",
				Title:     "Inodes",
				Content:   "Inodes store metadata",
				KeyPoints: []string{"Inodes do not store file names"},
				CodeExample: &course.CodeExample{
					Title:    "Reading an inode",
					Language: "c",
					Code:     "struct inode *ip = iget(dev, inum);",
					Annotations: []course.Annotation{
						{Match: "iget", Explanation: "Looks up an in-memory inode by number."},
					},
				},
			},
		},
		Exercises: []course.Exercise{
			{ID: "fs-1", Title: "Count the blocks", Description: "How many blocks does a 10KB file need?", Hint: "Mind indirect blocks."},
		},
	}
}

func TestBuildIndex_EntryOrderAndFields(t *testing.T) {
	index := BuildIndex([]course.ContentItem{filesystemsLecture()}, nil, nil)

	require.Len(t, index, 7)

	kinds := make([]EntryKind, len(index))
	for i, e := range index {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []EntryKind{
		KindTitle, KindTakeaway, KindSection, KindKeyPoint, KindCode, KindAnnotation, KindExercise,
	}, kinds)

	title := index[0]
	assert.Equal(t, "Filesystems storage", title.Text)
	assert.Equal(t, "storage", title.Preview)
	assert.Equal(t, 1, title.Priority)
	assert.Equal(t, "/lecture/1", title.Route)
	assert.Empty(t, title.SectionID)

	takeaway := index[1]
	assert.Equal(t, SectionTitleTakeaway, takeaway.SectionTitle)
	assert.Equal(t, 2, takeaway.Priority)

	section := index[2]
	assert.Equal(t, "Inodes Inodes store metadata", section.Text)
	assert.Equal(t, "Inodes store metadata", section.Preview)
	assert.Equal(t, "inodes", section.SectionID)
	assert.Equal(t, "Inodes", section.SectionTitle)

	keypoint := index[3]
	assert.Equal(t, "Inodes do not store file names", keypoint.Text)
	assert.Equal(t, keypoint.Text, keypoint.Preview)
	assert.Equal(t, 3, keypoint.Priority)

	code := index[4]
	assert.Equal(t, "Reading an inode struct inode *ip = iget(dev, inum);", code.Text)
	assert.Equal(t, "Reading an inode", code.Preview)
	assert.Equal(t, 4, code.Priority)

	annotation := index[5]
	assert.Equal(t, "iget Looks up an in-memory inode by number.", annotation.Text)
	assert.Equal(t, "iget: Looks up an in-memory inode by number.", annotation.Preview)
	assert.Equal(t, 5, annotation.Priority)

	exercise := index[6]
	assert.Equal(t, SectionIDExercises, exercise.SectionID)
	assert.Empty(t, exercise.SectionTitle)
	assert.Equal(t, "Count the blocks How many blocks does a 10KB file need? Mind indirect blocks.", exercise.Text)
	assert.Equal(t, "How many blocks does a 10KB file need?", exercise.Preview)
	assert.Equal(t, 3, exercise.Priority)

	// Every entry of the item shares the owning item's identity fields.
	for _, e := range index {
		assert.Equal(t, course.ContentTypeLecture, e.ContentType)
		assert.Equal(t, "1", e.ContentID)
		assert.Equal(t, "Filesystems", e.LectureTitle)
		assert.Equal(t, "/lecture/1", e.Route)
		assert.NotEmpty(t, e.Text)
	}
}

func TestBuildIndex_CollectionOrder(t *testing.T) {
	lec := course.ContentItem{ID: "l1", Title: "Lecture"}
	disc := course.ContentItem{ID: "d1", Title: "Discussion"}
	asgn := course.ContentItem{ID: "a1", Title: "Assignment"}

	index := BuildIndex(
		[]course.ContentItem{lec},
		[]course.ContentItem{disc},
		[]course.ContentItem{asgn},
	)

	require.Len(t, index, 3)
	assert.Equal(t, "/lecture/l1", index[0].Route)
	assert.Equal(t, "/section/d1", index[1].Route)
	assert.Equal(t, "/assignment/a1", index[2].Route)
}

func TestBuildIndex_OmitsAbsentOptionalFields(t *testing.T) {
	item := course.ContentItem{
		ID:    "2",
		Title: "Scheduling",
		// No subtitle, no takeaway.
		Sections: []course.Section{
			{ID: "rr", Title: "Round Robin"}, // no content
		},
	}

	index := BuildIndex([]course.ContentItem{item}, nil, nil)

	require.Len(t, index, 2)
	assert.Equal(t, "Scheduling", index[0].Text, "no trailing space when subtitle is absent")
	assert.Equal(t, "Round Robin", index[1].Text)
	assert.Equal(t, "Round Robin", index[1].Preview, "section preview falls back to title")
}

func TestBuildIndex_PreviewTruncation(t *testing.T) {
	long := strings.Repeat("x", 200)
	item := course.ContentItem{
		ID:    "3",
		Title: "Virtual Memory",
		Sections: []course.Section{
			{
				ID:      "pg",
				Title:   "Paging",
				Content: long,
				CodeExample: &course.CodeExample{
					Title: "Walk",
					Code:  "walk()",
					Annotations: []course.Annotation{
						{Match: "walk", Explanation: long},
					},
				},
			},
		},
	}

	index := BuildIndex([]course.ContentItem{item}, nil, nil)

	require.Len(t, index, 3)
	assert.Len(t, index[1].Preview, 150)
	assert.Equal(t, "walk: "+strings.Repeat("x", 100), index[2].Preview)
}

func TestBuildIndex_EmptyInputs(t *testing.T) {
	assert.Empty(t, BuildIndex(nil, nil, nil))
}

func TestBuildIndex_Deterministic(t *testing.T) {
	lectures := []course.ContentItem{filesystemsLecture()}
	first := BuildIndex(lectures, nil, nil)
	second := BuildIndex(lectures, nil, nil)
	assert.Equal(t, first, second)
}
