package normalisers

import (
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/normalisers/layoutjson"
	"github.com/custodia-labs/docsift/internal/normalisers/pdf"
)

// DefaultRegistry returns a registry with the built-in extractors.
// The inspector validates PDFs before extraction and may be nil.
func DefaultRegistry(inspector driven.PDFInspector) *Registry {
	return NewRegistry(
		pdf.New(inspector),
		layoutjson.New(),
	)
}
