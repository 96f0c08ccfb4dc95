package domain

import "time"

// Section is a node of an outline-structured document.
// Sections are exclusively owned by their parent; the tree has no
// cycles and no back-references.
type Section struct {
	// ID is a stable identifier used for traceability only.
	// It never participates in matching.
	ID string

	// Marker is the human-meaningful label of the section, e.g. a
	// clause number. It is the primary match key and must be unique
	// among siblings.
	Marker string

	// Title is the optional section heading.
	Title string

	// Content is the section's own text, excluding children.
	Content string

	// Sections are the ordered child sections.
	Sections []Section
}

// Document is an ordered tree of sections plus optional metadata.
type Document struct {
	// Meta holds document-level metadata. May be nil.
	Meta *DocumentMeta

	// Sections are the ordered root sections.
	Sections []Section
}

// DocumentMeta describes a document version and its provenance.
type DocumentMeta struct {
	// VersionNumber is the document version label, e.g. "2.1".
	VersionNumber string

	// VersionDescription is a free-form description of the version.
	VersionDescription string

	// SourceURL is where the document was fetched from.
	SourceURL string

	// FetchedAt is when the document was fetched. Zero if unknown.
	FetchedAt time.Time

	// Authors lists the document authors.
	Authors []string

	// PublishedAt is the publication date as it appears in the source.
	PublishedAt string

	// UpdatedAt is the last-update date as it appears in the source.
	UpdatedAt string
}
