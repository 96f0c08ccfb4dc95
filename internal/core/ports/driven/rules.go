package driven

import (
	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

// RuleStore supplies persisted identity rules used as defaults when a
// caller passes none.
type RuleStore interface {
	// Rules returns the configured identity rules in priority order.
	Rules() ([]domain.IdentityRule, error)
}
