package domain

import "time"

// Diff run kinds recorded in history.
const (
	RunKindDocument = "document"
	RunKindGeneric  = "generic"
)

// DiffRun summarises one completed diff invocation for history
// listings. The engine itself never records runs; the CLI does,
// after the call returns.
type DiffRun struct {
	// ID is the unique run identifier.
	ID string

	// Kind is RunKindDocument or RunKindGeneric.
	Kind string

	// OldSource and NewSource identify the compared inputs
	// (file paths or URLs).
	OldSource string
	NewSource string

	// Changes is the total number of effective changes.
	Changes int

	// RanAt is when the diff was computed.
	RanAt time.Time
}
