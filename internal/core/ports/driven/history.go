package driven

import (
	"context"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

// HistoryStore persists diff-run summaries. The engine never touches
// it; callers record runs after a diff returns.
type HistoryStore interface {
	// Record stores one completed run.
	Record(ctx context.Context, run domain.DiffRun) error

	// List returns the most recent runs, newest first.
	List(ctx context.Context, limit int) ([]domain.DiffRun, error)

	// Close releases underlying resources.
	Close() error
}
