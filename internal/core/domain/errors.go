package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrDuplicateMarker indicates two sibling sections share a marker.
	// It is fatal to a document diff call: no partial result is produced.
	ErrDuplicateMarker = errors.New("duplicate sibling marker")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)

// DuplicateMarkerError reports a sibling-marker uniqueness violation.
// It carries the offending marker and the dotted path of its parent
// ("root" for top-level sections).
type DuplicateMarkerError struct {
	// Marker is the duplicated sibling marker.
	Marker string

	// ParentPath is the dotted marker path of the parent section.
	ParentPath string
}

// Error implements the error interface.
func (e *DuplicateMarkerError) Error() string {
	return fmt.Sprintf("duplicate marker %q under %s", e.Marker, e.ParentPath)
}

// Is makes the error match ErrDuplicateMarker with errors.Is.
func (e *DuplicateMarkerError) Is(target error) bool {
	return target == ErrDuplicateMarker
}
