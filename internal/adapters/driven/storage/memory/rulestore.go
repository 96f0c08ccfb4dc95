package memory

import (
	"sync"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
)

// Ensure RuleStore implements the interface.
var _ driven.RuleStore = (*RuleStore)(nil)

// RuleStore keeps identity rules in memory.
type RuleStore struct {
	mu    sync.RWMutex
	rules []domain.IdentityRule
}

// NewRuleStore creates an in-memory rule store holding the given
// rules.
func NewRuleStore(rules ...domain.IdentityRule) *RuleStore {
	s := &RuleStore{}
	s.rules = append(s.rules, rules...)
	return s
}

// Rules returns the stored identity rules in priority order.
func (s *RuleStore) Rules() ([]domain.IdentityRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.IdentityRule, len(s.rules))
	copy(out, s.rules)
	return out, nil
}

// SetRules replaces the stored rules.
func (s *RuleStore) SetRules(rules []domain.IdentityRule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules = make([]domain.IdentityRule, len(rules))
	copy(s.rules, rules)
}
