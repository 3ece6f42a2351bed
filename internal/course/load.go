package course

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	apperrors "github.com/justinvassantachart/cs111-interactive-sub002/internal/errors"
)

// Content file names, one per collection.
const (
	LecturesFile    = "lectures.yaml"
	SectionsFile    = "sections.yaml"
	AssignmentsFile = "assignments.yaml"
)

// Load reads the three content collections from dir and returns a Catalog.
//
// Each collection lives in its own YAML file (lectures.yaml, sections.yaml,
// assignments.yaml) as a top-level sequence of content items. A missing file
// yields an empty collection; a course without assignments is legal. The three
// files are parsed concurrently.
func Load(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrCodeContentNotFound,
			fmt.Sprintf("content directory %s not found", dir), err)
	}
	if !info.IsDir() {
		return nil, apperrors.New(apperrors.ErrCodeContentNotFound,
			fmt.Sprintf("content path %s is not a directory", dir), nil)
	}

	catalog := &Catalog{}

	var g errgroup.Group
	g.Go(func() error {
		items, err := loadCollection(filepath.Join(dir, LecturesFile), ContentTypeLecture)
		catalog.Lectures = items
		return err
	})
	g.Go(func() error {
		items, err := loadCollection(filepath.Join(dir, SectionsFile), ContentTypeSection)
		catalog.Sections = items
		return err
	})
	g.Go(func() error {
		items, err := loadCollection(filepath.Join(dir, AssignmentsFile), ContentTypeAssignment)
		catalog.Assignments = items
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// loadCollection parses one collection file and validates its items.
// A missing file is not an error; it yields an empty collection.
func loadCollection(path string, ctype ContentType) ([]ContentItem, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.New(apperrors.ErrCodeContentNotFound,
			fmt.Sprintf("reading %s", path), err)
	}

	var items []ContentItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeContentParse,
			fmt.Sprintf("parsing %s", path), err).
			WithDetail("file", filepath.Base(path))
	}

	if err := validateCollection(items, ctype); err != nil {
		return nil, err
	}
	return items, nil
}

// validateCollection checks the structural invariants the search layer relies
// on: every item has a non-empty ID and title, and IDs are unique within the
// collection.
func validateCollection(items []ContentItem, ctype ContentType) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item.ID == "" {
			return apperrors.New(apperrors.ErrCodeContentInvalid,
				fmt.Sprintf("%s item %d has no id", ctype, i), nil)
		}
		if item.Title == "" {
			return apperrors.New(apperrors.ErrCodeContentInvalid,
				fmt.Sprintf("%s %q has no title", ctype, item.ID), nil)
		}
		if _, dup := seen[item.ID]; dup {
			return apperrors.New(apperrors.ErrCodeContentInvalid,
				fmt.Sprintf("duplicate %s id %q", ctype, item.ID), nil).
				WithDetail("id", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
