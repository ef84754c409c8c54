package driven

import (
	"context"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// LayoutExtractor turns a document file into its per-page line stream.
// Each extractor handles specific file extensions (e.g., .pdf, .json).
type LayoutExtractor interface {
	// Name identifies the extractor in logs.
	Name() string

	// SupportedExtensions returns the lowercase extensions, with leading dot,
	// this extractor handles.
	SupportedExtensions() []string

	// Priority returns the selection priority (higher = preferred).
	// Native format extractors should return 50-89.
	// Fallback extractors should return 1-9.
	Priority() int

	// Extract reads the document at path and returns its layout.
	// Elements carry 0-based page indices and whitespace-collapsed text.
	Extract(ctx context.Context, path string) (*domain.Layout, error)
}
