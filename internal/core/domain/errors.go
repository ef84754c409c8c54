package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates no extractor handles a file type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Extraction Errors.

	// ErrExtractionFailed indicates a document could not be turned into a layout.
	// The document is unreadable, corrupt or missing.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrNoText indicates a document was readable but produced no text lines.
	ErrNoText = errors.New("no text content")

	// Configuration Errors.

	// ErrConfigInvalid indicates settings or a collection configuration are unusable.
	ErrConfigInvalid = errors.New("invalid configuration")
)
