// Package domain defines the core business entities for yamly.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Section / Document: An outline-structured document whose nodes
//     carry sibling-unique markers
//   - DiffChange / DocumentDiff: The result of the marker-based pipeline
//   - Value: A closed tagged union over mappings, sequences and scalars
//   - GenericDiffChange / GenericDiff: The result of the path-based pipeline
//   - IdentityRule / DiffOptions: Configuration for array element matching
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
