package driven

import (
	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

// DiffRenderer formats diff results. Renderers only read the result;
// they never alter counts or ordering.
type DiffRenderer interface {
	// RenderDocumentDiff formats a document diff.
	RenderDocumentDiff(diff *domain.DocumentDiff) (string, error)

	// RenderGenericDiff formats a generic diff.
	RenderGenericDiff(diff *domain.GenericDiff) (string, error)
}

// LineResolver maps a generic diff path back to a 1-based line number
// in the serialized source. Resolution is best-effort: unknown paths
// yield 0 and never fail the diff.
type LineResolver interface {
	// Resolve returns the line of the node addressed by path in data,
	// or 0 when the path cannot be located.
	Resolve(data []byte, path string) int
}
