package services

import (
	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

// sectionKey addresses a section by its marker and the dotted marker
// path of its parent. Sibling-marker uniqueness makes the key unique
// within one tree.
type sectionKey struct {
	marker     string
	parentPath string
}

// sectionRef is one flattened tree node. References into the caller's
// tree are read-only; the engine never mutates its inputs.
type sectionRef struct {
	section    *domain.Section
	markerPath string
	idPath     string
	parentPath string
}

// treeIndex flattens a section tree for O(1) exact lookup. The refs
// slice is an arena in document order; byKey maps structural keys to
// arena positions, avoiding back-references into the tree.
type treeIndex struct {
	refs  []sectionRef
	byKey map[sectionKey]int
}

// buildIndex flattens a sibling-ordered section tree, visiting each
// descendant exactly once. Callers must have validated sibling-marker
// uniqueness first.
func buildIndex(sections []domain.Section) *treeIndex {
	idx := &treeIndex{byKey: make(map[sectionKey]int)}
	idx.add(sections, "", "")
	return idx
}

func (ix *treeIndex) add(sections []domain.Section, parentPath, parentIDPath string) {
	for i := range sections {
		s := &sections[i]
		ref := sectionRef{
			section:    s,
			markerPath: joinDotted(parentPath, s.Marker),
			idPath:     joinDotted(parentIDPath, s.ID),
			parentPath: parentPath,
		}
		ix.byKey[sectionKey{marker: s.Marker, parentPath: parentPath}] = len(ix.refs)
		ix.refs = append(ix.refs, ref)
		ix.add(s.Sections, ref.markerPath, ref.idPath)
	}
}

// validateMarkers checks that no two siblings share a marker anywhere
// in the tree. It returns a *domain.DuplicateMarkerError naming the
// offending marker and its dotted parent path ("root" for top-level
// sections). Validation is a hard precondition of the document
// pipeline: any violation aborts the whole diff.
func validateMarkers(sections []domain.Section) error {
	return validateLevel(sections, "")
}

func validateLevel(sections []domain.Section, parentPath string) error {
	seen := make(map[string]struct{}, len(sections))
	for i := range sections {
		marker := sections[i].Marker
		if _, dup := seen[marker]; dup {
			display := parentPath
			if display == "" {
				display = "root"
			}
			return &domain.DuplicateMarkerError{Marker: marker, ParentPath: display}
		}
		seen[marker] = struct{}{}
	}

	for i := range sections {
		childPath := joinDotted(parentPath, sections[i].Marker)
		if err := validateLevel(sections[i].Sections, childPath); err != nil {
			return err
		}
	}
	return nil
}

// joinDotted joins two dotted path segments, omitting the separator
// when the prefix is empty.
func joinDotted(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}
