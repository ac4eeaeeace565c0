// Package domain defines the core business entities for Chainguide.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Category: A fixed topic grouping of guides
//   - Guide: A single instructional document within a category
//   - MatchResult: The outcome of resolving a free-text context query
//   - GuideKind: A named, fixed set of categories aggregated into one guide
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
