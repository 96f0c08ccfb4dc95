// Package loader parses serialized YAML (and, by extension, JSON)
// into the domain forms the diff engine consumes. It implements the
// driven DocumentLoader and ValueLoader ports.
//
// The engine never parses text itself; this adapter is the upstream
// collaborator that produces validated trees.
package loader
