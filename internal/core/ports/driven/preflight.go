package driven

import "context"

// PDFInspector validates PDF structure before layout extraction.
type PDFInspector interface {
	// Inspect validates the file and returns its page count.
	// Returns an error wrapping domain.ErrExtractionFailed for corrupt files.
	Inspect(ctx context.Context, path string) (int, error)
}
