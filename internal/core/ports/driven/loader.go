package driven

import (
	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

// DocumentLoader parses serialized outline documents into the domain
// form. Implementations validate shape; the engine assumes its inputs
// are well-formed apart from sibling-marker uniqueness, which it
// checks itself.
type DocumentLoader interface {
	// LoadDocument parses an outline-structured document.
	LoadDocument(data []byte) (*domain.Document, error)
}

// ValueLoader parses serialized tree-shaped data into generic values.
type ValueLoader interface {
	// LoadValue parses arbitrary tree-shaped data.
	LoadValue(data []byte) (domain.Value, error)
}
