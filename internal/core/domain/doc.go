// Package domain defines the core business entities for docsift.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TextElement: One visual line of a document with font metrics
//   - Layout: A document's pages of TextElements
//   - DocumentStatistics: Font-size distribution and heading thresholds
//   - OutlineResult: A document title and its leveled headings
//   - PersonaProfile: A structured reading of a persona and task
//   - Section: A titled run of body text scored for relevance
//   - CollectionResult: Ranked sections across a document collection
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
