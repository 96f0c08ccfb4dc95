package render

import (
	"encoding/json"
	"fmt"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
)

// Ensure JSONRenderer implements the interface.
var _ driven.DiffRenderer = (*JSONRenderer)(nil)

// JSONRenderer formats diffs as indented JSON with stable field names
// for machine consumers.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// RenderDocumentDiff formats a document diff as JSON.
func (r *JSONRenderer) RenderDocumentDiff(diff *domain.DocumentDiff) (string, error) {
	data, err := json.MarshalIndent(diff, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding document diff: %w", err)
	}
	return string(data), nil
}

// RenderGenericDiff formats a generic diff as JSON.
func (r *JSONRenderer) RenderGenericDiff(diff *domain.GenericDiff) (string, error) {
	data, err := json.MarshalIndent(diff, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding generic diff: %w", err)
	}
	return string(data), nil
}
