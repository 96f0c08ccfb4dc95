package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore keeps diff runs in memory. Runs do not survive process
// exit.
type HistoryStore struct {
	mu   sync.RWMutex
	runs []domain.DiffRun
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Record stores one completed run.
func (s *HistoryStore) Record(_ context.Context, run domain.DiffRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = append(s.runs, run)
	return nil
}

// List returns the most recent runs, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.DiffRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	out := make([]domain.DiffRun, len(s.runs))
	copy(out, s.runs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RanAt.After(out[j].RanAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *HistoryStore) Close() error {
	return nil
}
