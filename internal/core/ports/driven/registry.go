package driven

import (
	"context"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// ExtractorRegistry selects the appropriate extractor for a document.
// It maintains a priority-ordered list of extractors and dispatches
// based on file extension.
type ExtractorRegistry interface {
	// Extract reads a document using the best matching extractor.
	// Returns domain.ErrUnsupportedType when no extractor handles the file.
	Extract(ctx context.Context, path string) (*domain.Layout, error)

	// Register adds an extractor to the registry.
	Register(extractor LayoutExtractor)

	// Supports reports whether any extractor handles the file.
	Supports(path string) bool

	// SupportedExtensions returns all extensions that can be extracted.
	SupportedExtensions() []string
}
