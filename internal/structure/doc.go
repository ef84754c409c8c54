// Package structure infers a document outline from typographic signals.
//
// It turns a document's TextElements into DocumentStatistics, a title and a
// list of scored heading candidates. Every function is a pure heuristic over
// immutable records; nothing here performs I/O.
//
// Pattern bonuses and level overrides are ordered rule tables (see rules.go)
// evaluated top to bottom, so precedence is explicit and testable on its own.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, service, or normaliser package
package structure
