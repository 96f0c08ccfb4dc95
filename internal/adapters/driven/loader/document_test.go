package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

func TestDocumentLoader_Sections(t *testing.T) {
	l := NewDocumentLoader()

	doc, err := l.LoadDocument([]byte(`
sections:
  - marker: "1"
    title: Introduction
    content: opening words
    sections:
      - marker: "1.1"
        title: Scope
        content: scope words
  - marker: "2"
    title: Terms
    content: term words
`))
	require.NoError(t, err)
	require.Len(t, doc.Sections, 2)

	first := doc.Sections[0]
	assert.Equal(t, "1", first.Marker)
	assert.Equal(t, "Introduction", first.Title)
	assert.Equal(t, "opening words", first.Content)
	require.Len(t, first.Sections, 1)
	assert.Equal(t, "1.1", first.Sections[0].Marker)
	assert.Nil(t, doc.Meta)
}

func TestDocumentLoader_GeneratesMissingIDs(t *testing.T) {
	l := NewDocumentLoader()

	doc, err := l.LoadDocument([]byte(`
sections:
  - marker: "1"
    id: explicit-id
    content: a
  - marker: "2"
    content: b
`))
	require.NoError(t, err)
	assert.Equal(t, "explicit-id", doc.Sections[0].ID)
	assert.NotEmpty(t, doc.Sections[1].ID)
	assert.NotEqual(t, doc.Sections[0].ID, doc.Sections[1].ID)
}

func TestDocumentLoader_Metadata(t *testing.T) {
	l := NewDocumentLoader()

	doc, err := l.LoadDocument([]byte(`
metadata:
  version_number: "2.0"
  version_description: second revision
  source_url: https://example.com/doc
  fetched_at: 2026-03-01T10:00:00Z
  authors:
    - Rivka
    - Yoav
  published_at: "2026-02-01"
  updated_at: "2026-03-01"
sections:
  - marker: "1"
    content: text
`))
	require.NoError(t, err)
	require.NotNil(t, doc.Meta)
	assert.Equal(t, "2.0", doc.Meta.VersionNumber)
	assert.Equal(t, "https://example.com/doc", doc.Meta.SourceURL)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), doc.Meta.FetchedAt)
	assert.Equal(t, []string{"Rivka", "Yoav"}, doc.Meta.Authors)
}

func TestDocumentLoader_RejectsMissingMarker(t *testing.T) {
	l := NewDocumentLoader()

	_, err := l.LoadDocument([]byte(`
sections:
  - title: No marker here
    content: text
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentLoader_RejectsReservedMarker(t *testing.T) {
	l := NewDocumentLoader()

	_, err := l.LoadDocument([]byte(`
sections:
  - marker: "__metadata__"
    content: text
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentLoader_EmptyDocument(t *testing.T) {
	l := NewDocumentLoader()

	doc, err := l.LoadDocument([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Sections)
	assert.Nil(t, doc.Meta)
}
