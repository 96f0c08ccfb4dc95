package domain

// MetadataMarker is the reserved marker used to address document
// metadata fields in diff changes. No real section may use it.
const MetadataMarker = "__metadata__"

// ChangeType classifies a change detected by the document pipeline.
type ChangeType string

// Document change types.
const (
	SectionAdded   ChangeType = "section_added"
	SectionRemoved ChangeType = "section_removed"
	ContentChanged ChangeType = "content_changed"
	TitleChanged   ChangeType = "title_changed"
	SectionMoved   ChangeType = "section_moved"
	Unchanged      ChangeType = "unchanged"
)

// DiffChange is one detected change between two document versions.
// Entries are not mutually exclusive: a single logical edit may emit
// several (e.g. a moved section whose title also changed).
type DiffChange struct {
	// Type classifies the change.
	Type ChangeType `json:"type"`

	// Marker is the marker of the affected section, or MetadataMarker
	// for document metadata changes.
	Marker string `json:"marker"`

	// OldPath and NewPath are dotted marker paths addressing the
	// section in the old and new tree. Empty when not applicable
	// (e.g. OldPath of an added section).
	OldPath string `json:"old_path,omitempty"`
	NewPath string `json:"new_path,omitempty"`

	// OldIDPath and NewIDPath are the corresponding dotted identifier
	// paths, kept for traceability.
	OldIDPath string `json:"old_id_path,omitempty"`
	NewIDPath string `json:"new_id_path,omitempty"`

	// OldTitle and NewTitle carry the titles when they differ or the
	// section was added/removed.
	OldTitle string `json:"old_title,omitempty"`
	NewTitle string `json:"new_title,omitempty"`

	// OldContent and NewContent carry the section content.
	OldContent string `json:"old_content,omitempty"`
	NewContent string `json:"new_content,omitempty"`
}

// DocumentDiff is the immutable result of diffing two documents:
// the ordered change sequence plus aggregate counts. Counts are always
// recomputable from the change sequence via Recount.
type DocumentDiff struct {
	// Changes is the ordered sequence of detected changes.
	Changes []DiffChange `json:"changes"`

	// Added counts SectionAdded entries.
	Added int `json:"added"`

	// Removed counts SectionRemoved entries.
	Removed int `json:"removed"`

	// Modified counts ContentChanged plus TitleChanged entries.
	Modified int `json:"modified"`

	// Moved counts SectionMoved entries.
	Moved int `json:"moved"`
}

// Recount recomputes the aggregate counts from the change sequence.
func (d *DocumentDiff) Recount() {
	d.Added, d.Removed, d.Modified, d.Moved = 0, 0, 0, 0
	for _, c := range d.Changes {
		switch c.Type {
		case SectionAdded:
			d.Added++
		case SectionRemoved:
			d.Removed++
		case ContentChanged, TitleChanged:
			d.Modified++
		case SectionMoved:
			d.Moved++
		}
	}
}
