// Package relevance ranks sections of a document collection for a reader.
//
// A persona and task description become a PersonaProfile. Each document's
// elements are cut into titled sections, every section is scored against
// the profile, and the ranker picks a small, document-diverse top set.
package relevance
