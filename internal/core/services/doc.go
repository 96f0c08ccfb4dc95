// Package services implements the driving port interfaces.
// Services contain the core business logic: the marker-based document
// diff pipeline, the recursive generic differ with its four-phase
// sequence matcher, the global rename/move reconciler, and the shared
// similarity scorer.
//
// Services are pure Go with no CGO or external dependencies.
package services
