// Package pdf extracts page layouts from PDF files.
package pdf

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tsawler/tabula/layout"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/text"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.LayoutExtractor = (*Extractor)(nil)

// Font name fragments that mark a font as bold or italic.
var (
	boldMarkers   = []string{"bold", "black", "heavy", "semibold", "demibold"}
	italicMarkers = []string{"italic", "oblique"}
)

// Extractor reads PDFs with tabula and groups text fragments into lines.
type Extractor struct {
	inspector driven.PDFInspector
}

// New creates a PDF extractor. The inspector may be nil.
func New(inspector driven.PDFInspector) *Extractor {
	return &Extractor{inspector: inspector}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "pdf"
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract reads every page of the PDF and returns its lines.
func (e *Extractor) Extract(ctx context.Context, path string) (*domain.Layout, error) {
	if e.inspector != nil {
		pages, err := e.inspector.Inspect(ctx, path)
		if err != nil {
			return nil, err
		}
		logger.Debug("preflight %s: %d pages", filepath.Base(path), pages)
	}

	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrExtractionFailed, path, err)
	}
	defer r.Close()

	count, err := r.PageCount()
	if err != nil {
		return nil, fmt.Errorf("%w: page count: %v", domain.ErrExtractionFailed, err)
	}

	doc := &domain.Layout{
		Name:  filepath.Base(path),
		Path:  path,
		Pages: make([]domain.Page, 0, count),
	}

	detector := layout.NewLineDetector()
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := r.GetPage(i)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", domain.ErrExtractionFailed, i, err)
		}
		frags, err := r.ExtractTextFragments(page)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d text: %v", domain.ErrExtractionFailed, i, err)
		}
		width, _ := page.Width()
		height, _ := page.Height()

		lines := detector.Detect(frags, width, height).Lines
		doc.Pages = append(doc.Pages, domain.Page{
			Number:   i,
			Elements: pageElements(i, lines, height),
		})
	}

	return doc, nil
}

// pageElements converts detected lines into text elements, dropping lines
// without text.
func pageElements(page int, lines []layout.Line, pageHeight float64) []domain.TextElement {
	elements := make([]domain.TextElement, 0, len(lines))
	for _, line := range lines {
		spans := make([]domain.Span, 0, len(line.Fragments))
		for _, f := range line.Fragments {
			spans = append(spans, fragmentSpan(f))
		}
		if elem, ok := domain.NewTextElement(page, spans, lineBBox(line, pageHeight)); ok {
			elements = append(elements, elem)
		}
	}
	return elements
}

// fragmentSpan maps a tabula fragment to a span, encoding font style in the
// same flag bits a layout stream uses.
func fragmentSpan(f text.TextFragment) domain.Span {
	name := strings.ToLower(f.FontName)
	var flags int
	if containsAny(name, boldMarkers) {
		flags |= domain.FlagBold
	}
	if containsAny(name, italicMarkers) {
		flags |= domain.FlagItalic
	}
	return domain.Span{
		Text:  norm.NFKC.String(f.Text),
		Size:  f.FontSize,
		Flags: flags,
	}
}

// lineBBox converts a bottom-left origin box into [x0, y0, x1, y1] with a
// top-left origin.
func lineBBox(line layout.Line, pageHeight float64) domain.BBox {
	b := line.BBox
	if pageHeight <= 0 {
		return domain.BBox{b.X, b.Y, b.X + b.Width, b.Y + b.Height}
	}
	return domain.BBox{b.X, pageHeight - (b.Y + b.Height), b.X + b.Width, pageHeight - b.Y}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
