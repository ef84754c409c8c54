package preflight

import (
	"context"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
)

// Ensure Inspector implements the interface.
var _ driven.PDFInspector = (*Inspector)(nil)

// Inspector validates PDFs with pdfcpu.
type Inspector struct {
	conf *model.Configuration
}

// New creates an inspector using relaxed validation, which accepts the
// minor syntax violations common in real-world PDFs.
func New() *Inspector {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Inspector{conf: conf}
}

// Inspect reads and validates the cross-reference table and page tree,
// returning the page count.
func (i *Inspector) Inspect(ctx context.Context, path string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: open: %v", domain.ErrExtractionFailed, err)
	}
	defer f.Close()

	pdf, err := api.ReadValidateAndOptimize(f, i.conf)
	if err != nil {
		return 0, fmt.Errorf("%w: pdfcpu: %v", domain.ErrExtractionFailed, err)
	}
	if pdf.PageCount == 0 {
		return 0, fmt.Errorf("%w: no pages", domain.ErrNoText)
	}
	return pdf.PageCount, nil
}
