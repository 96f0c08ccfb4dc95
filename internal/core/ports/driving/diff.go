package driving

import (
	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

// DiffService detects and classifies changes between two versions of
// a hierarchical document or of arbitrary tree-shaped data.
type DiffService interface {
	// DiffDocuments runs the marker-based pipeline. It fails with an
	// error matching domain.ErrDuplicateMarker when either tree has
	// duplicate sibling markers anywhere; no partial result is
	// produced.
	DiffDocuments(oldDoc, newDoc *domain.Document) (*domain.DocumentDiff, error)

	// DiffValues runs the path-based pipeline. It never fails on
	// well-typed inputs: shape mismatches are reported as
	// TypeChanged entries.
	DiffValues(oldVal, newVal domain.Value, opts domain.DiffOptions) *domain.GenericDiff
}
