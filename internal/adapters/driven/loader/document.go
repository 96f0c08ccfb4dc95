package loader

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
)

// Ensure DocumentLoader implements the interface.
var _ driven.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader parses the outline document form: nested mappings
// with marker, title, content and sections keys, plus optional
// document metadata.
type DocumentLoader struct{}

// NewDocumentLoader creates a new document loader.
func NewDocumentLoader() *DocumentLoader {
	return &DocumentLoader{}
}

// Serialized outline document schema.
type documentFile struct {
	Metadata *metadataFile `yaml:"metadata"`
	Sections []sectionFile `yaml:"sections"`
}

type metadataFile struct {
	VersionNumber      string    `yaml:"version_number"`
	VersionDescription string    `yaml:"version_description"`
	SourceURL          string    `yaml:"source_url"`
	FetchedAt          time.Time `yaml:"fetched_at"`
	Authors            []string  `yaml:"authors"`
	PublishedAt        string    `yaml:"published_at"`
	UpdatedAt          string    `yaml:"updated_at"`
}

type sectionFile struct {
	ID       string        `yaml:"id"`
	Marker   string        `yaml:"marker"`
	Title    string        `yaml:"title"`
	Content  string        `yaml:"content"`
	Sections []sectionFile `yaml:"sections"`
}

// LoadDocument parses and shape-validates an outline document. Every
// section must carry a non-empty marker; sections without an explicit
// id get a generated one for traceability.
func (l *DocumentLoader) LoadDocument(data []byte) (*domain.Document, error) {
	var file documentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	sections, err := convertSections(file.Sections, "")
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{Sections: sections}
	if file.Metadata != nil {
		doc.Meta = &domain.DocumentMeta{
			VersionNumber:      file.Metadata.VersionNumber,
			VersionDescription: file.Metadata.VersionDescription,
			SourceURL:          file.Metadata.SourceURL,
			FetchedAt:          file.Metadata.FetchedAt,
			Authors:            file.Metadata.Authors,
			PublishedAt:        file.Metadata.PublishedAt,
			UpdatedAt:          file.Metadata.UpdatedAt,
		}
	}
	return doc, nil
}

func convertSections(files []sectionFile, parentPath string) ([]domain.Section, error) {
	if len(files) == 0 {
		return nil, nil
	}

	sections := make([]domain.Section, 0, len(files))
	for i, f := range files {
		if f.Marker == "" {
			at := parentPath
			if at == "" {
				at = "root"
			}
			return nil, fmt.Errorf("%w: section %d under %s has no marker", domain.ErrInvalidInput, i, at)
		}
		if f.Marker == domain.MetadataMarker {
			return nil, fmt.Errorf("%w: marker %q is reserved", domain.ErrInvalidInput, f.Marker)
		}

		id := f.ID
		if id == "" {
			id = uuid.New().String()
		}

		path := f.Marker
		if parentPath != "" {
			path = parentPath + "." + f.Marker
		}
		children, err := convertSections(f.Sections, path)
		if err != nil {
			return nil, err
		}

		sections = append(sections, domain.Section{
			ID:       id,
			Marker:   f.Marker,
			Title:    f.Title,
			Content:  f.Content,
			Sections: children,
		})
	}
	return sections, nil
}
