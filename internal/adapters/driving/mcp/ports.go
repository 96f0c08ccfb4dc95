package mcp

import (
	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driving"
)

// Ports aggregates the interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Diff computes structural diffs.
	Diff driving.DiffService

	// DocLoader parses outline documents.
	DocLoader driven.DocumentLoader

	// ValueLoader parses tree-shaped data.
	ValueLoader driven.ValueLoader

	// Rules supplies default identity rules. Optional.
	Rules driven.RuleStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Diff == nil {
		return ErrMissingDiffService
	}
	if p.DocLoader == nil || p.ValueLoader == nil {
		return ErrMissingLoaders
	}
	// Rules is optional
	return nil
}
