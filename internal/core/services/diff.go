package services

import (
	"github.com/noamoss/yamly-sub000/internal/core/domain"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driving"
	"github.com/noamoss/yamly-sub000/internal/logger"
)

// Ensure DiffService implements the interface.
var _ driving.DiffService = (*DiffService)(nil)

// DiffService is the diff engine. It is stateless: every call owns
// its own accumulators, so concurrent calls are safe. Inputs are
// never mutated and results are freshly allocated.
type DiffService struct{}

// NewDiffService creates a new diff service.
func NewDiffService() *DiffService {
	return &DiffService{}
}

// DiffDocuments runs the marker-based pipeline over two outline
// documents.
func (s *DiffService) DiffDocuments(oldDoc, newDoc *domain.Document) (*domain.DocumentDiff, error) {
	logger.Section("Document diff")

	diff, err := diffDocuments(oldDoc, newDoc)
	if err != nil {
		return nil, err
	}

	logger.Info("document diff: %d added, %d removed, %d modified, %d moved",
		diff.Added, diff.Removed, diff.Modified, diff.Moved)
	return diff, nil
}

// DiffValues runs the path-based pipeline over two generic values.
func (s *DiffService) DiffValues(oldVal, newVal domain.Value, opts domain.DiffOptions) *domain.GenericDiff {
	logger.Section("Generic diff")

	diff := diffValues(oldVal, newVal, opts)

	logger.Info("generic diff: %d changes", diff.Counts.Total())
	return diff
}
