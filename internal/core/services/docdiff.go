package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
	"github.com/noamoss/yamly-sub000/internal/logger"
)

// diffDocuments runs the marker-based pipeline:
//
//  1. validate sibling-marker uniqueness on both trees (fatal on
//     violation, no partial result)
//  2. build both tree indices
//  3. exact match by (marker, parent path); content and title are
//     compared independently
//  4. similarity-gated move detection over the unmatched remainder
//  5. residual removed/added classification
//  6. field-by-field metadata diff under the reserved metadata marker
//  7. recompute aggregate counts from the final change sequence
func diffDocuments(oldDoc, newDoc *domain.Document) (*domain.DocumentDiff, error) {
	if oldDoc == nil {
		oldDoc = &domain.Document{}
	}
	if newDoc == nil {
		newDoc = &domain.Document{}
	}

	if err := validateMarkers(oldDoc.Sections); err != nil {
		return nil, fmt.Errorf("old document: %w", err)
	}
	if err := validateMarkers(newDoc.Sections); err != nil {
		return nil, fmt.Errorf("new document: %w", err)
	}

	oldIdx := buildIndex(oldDoc.Sections)
	newIdx := buildIndex(newDoc.Sections)
	logger.Debug("indexed %d old and %d new sections", len(oldIdx.refs), len(newIdx.refs))

	diff := &domain.DocumentDiff{}
	oldMatched := make([]bool, len(oldIdx.refs))
	newMatched := make([]bool, len(newIdx.refs))

	// Exact match by structural key, in old-document order.
	for i := range oldIdx.refs {
		ref := &oldIdx.refs[i]
		j, ok := newIdx.byKey[sectionKey{marker: ref.section.Marker, parentPath: ref.parentPath}]
		if !ok {
			continue
		}
		oldMatched[i], newMatched[j] = true, true
		nref := &newIdx.refs[j]

		changed := false
		if ref.section.Content != nref.section.Content {
			diff.Changes = append(diff.Changes, contentChange(ref, nref))
			changed = true
		}
		if ref.section.Title != nref.section.Title {
			diff.Changes = append(diff.Changes, titleChange(ref, nref))
			changed = true
		}
		if !changed {
			diff.Changes = append(diff.Changes, domain.DiffChange{
				Type:      domain.Unchanged,
				Marker:    ref.section.Marker,
				OldPath:   ref.markerPath,
				NewPath:   nref.markerPath,
				OldIDPath: ref.idPath,
				NewIDPath: nref.idPath,
			})
		}
	}

	// Move detection: among key-unmatched sections, match by content
	// similarity alone. Greedy in old-document order; the first
	// highest-scoring candidate wins ties. Sections with empty content
	// never match (empty container parents would pair arbitrarily).
	for i := range oldIdx.refs {
		ref := &oldIdx.refs[i]
		if oldMatched[i] || ref.section.Content == "" {
			continue
		}

		best, bestSim := -1, 0.0
		for j := range newIdx.refs {
			nref := &newIdx.refs[j]
			if newMatched[j] || nref.section.Content == "" {
				continue
			}
			if sim := similarity(ref.section.Content, nref.section.Content); sim > bestSim {
				best, bestSim = j, sim
			}
		}
		if best < 0 || bestSim < SectionMoveThreshold {
			continue
		}

		oldMatched[i], newMatched[best] = true, true
		nref := &newIdx.refs[best]
		logger.Debug("section %q moved %s -> %s (similarity %.3f)",
			ref.section.Marker, ref.markerPath, nref.markerPath, bestSim)

		diff.Changes = append(diff.Changes, domain.DiffChange{
			Type:       domain.SectionMoved,
			Marker:     nref.section.Marker,
			OldPath:    ref.markerPath,
			NewPath:    nref.markerPath,
			OldIDPath:  ref.idPath,
			NewIDPath:  nref.idPath,
			OldTitle:   ref.section.Title,
			NewTitle:   nref.section.Title,
			OldContent: ref.section.Content,
			NewContent: nref.section.Content,
		})
		// Title and residual content changes are independent of the
		// move and of each other.
		if ref.section.Title != nref.section.Title {
			diff.Changes = append(diff.Changes, titleChange(ref, nref))
		}
		if ref.section.Content != nref.section.Content {
			diff.Changes = append(diff.Changes, contentChange(ref, nref))
		}
	}

	// Residual classification.
	for i := range oldIdx.refs {
		if oldMatched[i] {
			continue
		}
		ref := &oldIdx.refs[i]
		diff.Changes = append(diff.Changes, domain.DiffChange{
			Type:       domain.SectionRemoved,
			Marker:     ref.section.Marker,
			OldPath:    ref.markerPath,
			OldIDPath:  ref.idPath,
			OldTitle:   ref.section.Title,
			OldContent: ref.section.Content,
		})
	}
	for j := range newIdx.refs {
		if newMatched[j] {
			continue
		}
		nref := &newIdx.refs[j]
		diff.Changes = append(diff.Changes, domain.DiffChange{
			Type:       domain.SectionAdded,
			Marker:     nref.section.Marker,
			NewPath:    nref.markerPath,
			NewIDPath:  nref.idPath,
			NewTitle:   nref.section.Title,
			NewContent: nref.section.Content,
		})
	}

	diff.Changes = append(diff.Changes, diffMeta(oldDoc.Meta, newDoc.Meta)...)

	diff.Recount()
	return diff, nil
}

func contentChange(oldRef, newRef *sectionRef) domain.DiffChange {
	return domain.DiffChange{
		Type:       domain.ContentChanged,
		Marker:     newRef.section.Marker,
		OldPath:    oldRef.markerPath,
		NewPath:    newRef.markerPath,
		OldIDPath:  oldRef.idPath,
		NewIDPath:  newRef.idPath,
		OldContent: oldRef.section.Content,
		NewContent: newRef.section.Content,
	}
}

func titleChange(oldRef, newRef *sectionRef) domain.DiffChange {
	return domain.DiffChange{
		Type:      domain.TitleChanged,
		Marker:    newRef.section.Marker,
		OldPath:   oldRef.markerPath,
		NewPath:   newRef.markerPath,
		OldIDPath: oldRef.idPath,
		NewIDPath: newRef.idPath,
		OldTitle:  oldRef.section.Title,
		NewTitle:  newRef.section.Title,
	}
}

// diffMeta compares document metadata field by field. Each differing
// field emits one content change addressed by a synthetic path under
// the reserved metadata marker.
func diffMeta(oldMeta, newMeta *domain.DocumentMeta) []domain.DiffChange {
	if oldMeta == nil {
		oldMeta = &domain.DocumentMeta{}
	}
	if newMeta == nil {
		newMeta = &domain.DocumentMeta{}
	}

	fields := []struct {
		name     string
		old, new string
	}{
		{"version_number", oldMeta.VersionNumber, newMeta.VersionNumber},
		{"version_description", oldMeta.VersionDescription, newMeta.VersionDescription},
		{"source_url", oldMeta.SourceURL, newMeta.SourceURL},
		{"fetched_at", formatFetchTime(oldMeta.FetchedAt), formatFetchTime(newMeta.FetchedAt)},
		{"authors", strings.Join(oldMeta.Authors, ", "), strings.Join(newMeta.Authors, ", ")},
		{"published_at", oldMeta.PublishedAt, newMeta.PublishedAt},
		{"updated_at", oldMeta.UpdatedAt, newMeta.UpdatedAt},
	}

	var changes []domain.DiffChange
	for _, f := range fields {
		if f.old == f.new {
			continue
		}
		path := domain.MetadataMarker + "." + f.name
		changes = append(changes, domain.DiffChange{
			Type:       domain.ContentChanged,
			Marker:     domain.MetadataMarker,
			OldPath:    path,
			NewPath:    path,
			OldContent: f.old,
			NewContent: f.new,
		})
	}
	return changes
}

func formatFetchTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
