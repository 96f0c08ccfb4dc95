package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

func changesOfType(changes []domain.DiffChange, t domain.ChangeType) []domain.DiffChange {
	var out []domain.DiffChange
	for _, c := range changes {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

func TestDiffDocumentsContentChange(t *testing.T) {
	oldDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "1", Content: "A"},
	}}
	newDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "1", Content: "B"},
	}}

	diff, err := diffDocuments(oldDoc, newDoc)
	require.NoError(t, err)

	changed := changesOfType(diff.Changes, domain.ContentChanged)
	require.Len(t, changed, 1)
	assert.Equal(t, "1", changed[0].Marker)
	assert.Equal(t, "A", changed[0].OldContent)
	assert.Equal(t, "B", changed[0].NewContent)

	assert.Equal(t, 1, diff.Modified)
	assert.Zero(t, diff.Added)
	assert.Zero(t, diff.Removed)
	assert.Zero(t, diff.Moved)
}

func TestDiffDocumentsDuplicateMarkerFails(t *testing.T) {
	valid := &domain.Document{Sections: []domain.Section{{Marker: "1"}}}
	invalid := &domain.Document{Sections: []domain.Section{
		{Marker: "1"},
		{Marker: "1"},
	}}

	// The violation is fatal regardless of which tree holds it.
	diff, err := diffDocuments(invalid, valid)
	assert.Nil(t, diff)
	assert.ErrorIs(t, err, domain.ErrDuplicateMarker)

	diff, err = diffDocuments(valid, invalid)
	assert.Nil(t, diff)
	assert.ErrorIs(t, err, domain.ErrDuplicateMarker)
}

func TestDiffDocumentsMoveDetection(t *testing.T) {
	content := "the quick brown fox jumps"
	oldDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "A", Sections: []domain.Section{{Marker: "1", Content: content}}},
	}}
	newDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "B", Sections: []domain.Section{{Marker: "1", Content: content}}},
	}}

	diff, err := diffDocuments(oldDoc, newDoc)
	require.NoError(t, err)

	moved := changesOfType(diff.Changes, domain.SectionMoved)
	require.Len(t, moved, 1)
	assert.Equal(t, "A.1", moved[0].OldPath)
	assert.Equal(t, "B.1", moved[0].NewPath)

	assert.Empty(t, changesOfType(diff.Changes, domain.ContentChanged))
	assert.Equal(t, 1, diff.Moved)
	assert.Zero(t, diff.Modified)
}

func TestDiffDocumentsDissimilarContentIsNotAMove(t *testing.T) {
	oldDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "A", Sections: []domain.Section{
			{Marker: "1", Content: "the quick brown fox jumps"},
		}},
	}}
	newDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "B", Sections: []domain.Section{
			{Marker: "1", Content: "completely different words here"},
		}},
	}}

	diff, err := diffDocuments(oldDoc, newDoc)
	require.NoError(t, err)

	assert.Zero(t, diff.Moved)

	removed := changesOfType(diff.Changes, domain.SectionRemoved)
	added := changesOfType(diff.Changes, domain.SectionAdded)
	require.Len(t, changesWithMarker(removed, "1"), 1)
	require.Len(t, changesWithMarker(added, "1"), 1)
}

func changesWithMarker(changes []domain.DiffChange, marker string) []domain.DiffChange {
	var out []domain.DiffChange
	for _, c := range changes {
		if c.Marker == marker {
			out = append(out, c)
		}
	}
	return out
}

func TestDiffDocumentsEmptyContentNeverMoves(t *testing.T) {
	// Empty "container" parents must not pair up as moves.
	oldDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "A", Content: ""},
	}}
	newDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "B", Content: ""},
	}}

	diff, err := diffDocuments(oldDoc, newDoc)
	require.NoError(t, err)

	assert.Zero(t, diff.Moved)
	assert.Equal(t, 1, diff.Removed)
	assert.Equal(t, 1, diff.Added)
}

func TestDiffDocumentsMovedSectionKeepsTitleAndContentChanges(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	oldContent := strings.Join(words, " ")
	words[39] = "different"
	newContent := strings.Join(words, " ")

	oldDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "A", Sections: []domain.Section{
			{Marker: "1", Title: "Old title", Content: oldContent},
		}},
	}}
	newDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "B", Sections: []domain.Section{
			{Marker: "1", Title: "New title", Content: newContent},
		}},
	}}

	diff, err := diffDocuments(oldDoc, newDoc)
	require.NoError(t, err)

	// 39 of 41 union tokens shared: similar enough to move, different
	// enough to also report the residual edits.
	require.Len(t, changesOfType(diff.Changes, domain.SectionMoved), 1)
	require.Len(t, changesOfType(diff.Changes, domain.TitleChanged), 1)
	require.Len(t, changesOfType(diff.Changes, domain.ContentChanged), 1)

	assert.Equal(t, 1, diff.Moved)
	assert.Equal(t, 2, diff.Modified)
}

func TestDiffDocumentsTitleAndContentIndependent(t *testing.T) {
	oldDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "1", Title: "Intro", Content: "hello"},
	}}
	newDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "1", Title: "Introduction", Content: "goodbye"},
	}}

	diff, err := diffDocuments(oldDoc, newDoc)
	require.NoError(t, err)

	require.Len(t, changesOfType(diff.Changes, domain.ContentChanged), 1)
	require.Len(t, changesOfType(diff.Changes, domain.TitleChanged), 1)
	assert.Equal(t, 2, diff.Modified)
}

func TestDiffDocumentsIdempotent(t *testing.T) {
	doc := &domain.Document{
		Meta: &domain.DocumentMeta{
			VersionNumber: "2.0",
			Authors:       []string{"a", "b"},
			PublishedAt:   "2021-06-01",
		},
		Sections: []domain.Section{
			{Marker: "1", Title: "One", Content: "first section", Sections: []domain.Section{
				{Marker: "1.1", Content: "nested"},
			}},
			{Marker: "2", Content: "second section"},
		},
	}

	diff, err := diffDocuments(doc, doc)
	require.NoError(t, err)

	assert.Zero(t, diff.Added)
	assert.Zero(t, diff.Removed)
	assert.Zero(t, diff.Modified)
	assert.Zero(t, diff.Moved)

	for _, c := range diff.Changes {
		assert.Equal(t, domain.Unchanged, c.Type)
	}
}

func TestDiffDocumentsEmptyDocuments(t *testing.T) {
	diff, err := diffDocuments(&domain.Document{}, &domain.Document{})
	require.NoError(t, err)
	assert.Empty(t, diff.Changes)

	diff, err = diffDocuments(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, diff.Changes)
}

func TestDiffDocumentsMetadata(t *testing.T) {
	fetched := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	oldDoc := &domain.Document{
		Meta: &domain.DocumentMeta{
			VersionNumber: "1.0",
			SourceURL:     "https://example.org/v1.yaml",
			FetchedAt:     fetched,
			Authors:       []string{"alice"},
		},
	}
	newDoc := &domain.Document{
		Meta: &domain.DocumentMeta{
			VersionNumber: "1.1",
			SourceURL:     "https://example.org/v1.yaml",
			FetchedAt:     fetched,
			Authors:       []string{"alice", "bob"},
		},
	}

	diff, err := diffDocuments(oldDoc, newDoc)
	require.NoError(t, err)

	changed := changesOfType(diff.Changes, domain.ContentChanged)
	require.Len(t, changed, 2)

	paths := []string{changed[0].OldPath, changed[1].OldPath}
	assert.Contains(t, paths, domain.MetadataMarker+".version_number")
	assert.Contains(t, paths, domain.MetadataMarker+".authors")
	for _, c := range changed {
		assert.Equal(t, domain.MetadataMarker, c.Marker)
	}

	// Metadata edits count as modifications.
	assert.Equal(t, 2, diff.Modified)
}

func TestDiffDocumentsMetadataNilVersusSet(t *testing.T) {
	newDoc := &domain.Document{
		Meta: &domain.DocumentMeta{VersionNumber: "1.0"},
	}

	diff, err := diffDocuments(&domain.Document{}, newDoc)
	require.NoError(t, err)

	changed := changesOfType(diff.Changes, domain.ContentChanged)
	require.Len(t, changed, 1)
	assert.Equal(t, "", changed[0].OldContent)
	assert.Equal(t, "1.0", changed[0].NewContent)
}

func TestDiffDocumentsCountsMatchChanges(t *testing.T) {
	oldDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "1", Content: "alpha beta gamma delta epsilon zeta eta theta"},
		{Marker: "2", Content: "to be removed"},
		{Marker: "3", Title: "T", Content: "stays"},
	}}
	newDoc := &domain.Document{Sections: []domain.Section{
		{Marker: "3", Title: "T2", Content: "stays"},
		{Marker: "4", Content: "brand new"},
		{Marker: "5", Sections: []domain.Section{
			{Marker: "1", Content: "alpha beta gamma delta epsilon zeta eta theta"},
		}},
	}}

	diff, err := diffDocuments(oldDoc, newDoc)
	require.NoError(t, err)

	recounted := *diff
	recounted.Recount()
	assert.Equal(t, diff.Added, recounted.Added)
	assert.Equal(t, diff.Removed, recounted.Removed)
	assert.Equal(t, diff.Modified, recounted.Modified)
	assert.Equal(t, diff.Moved, recounted.Moved)

	assert.Equal(t, 1, diff.Moved)
	assert.Equal(t, 1, diff.Removed)
	assert.Equal(t, 1, diff.Modified)
	// Marker 4 plus the new container 5.
	assert.Equal(t, 2, diff.Added)
}
