// Package layoutjson reads page layouts from pre-extracted span streams.
//
// The accepted shape is the per-page text dictionary emitted by common PDF
// toolkits:
//
//	{"pages": [{"lines": [{"bbox": [x0, y0, x1, y1],
//	                       "spans": [{"text": "...", "size": 12, "flags": 16}]}]}]}
//
// Lines may also be nested in blocks: {"pages": [{"blocks": [{"lines": [...]}]}]}.
// Style is read from flags: bit 4 is bold, bit 6 is italic.
package layoutjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.LayoutExtractor = (*Extractor)(nil)

type span struct {
	Text  string   `json:"text"`
	Size  *float64 `json:"size"`
	Flags int      `json:"flags"`
}

type line struct {
	BBox  []float64 `json:"bbox"`
	Spans []span    `json:"spans"`
}

type block struct {
	Lines []line `json:"lines"`
}

type page struct {
	Lines  []line  `json:"lines"`
	Blocks []block `json:"blocks"`
}

type document struct {
	Pages []page `json:"pages"`
}

// Extractor handles layout stream files.
type Extractor struct{}

// New creates a new layout stream extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "layoutjson"
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".layout.json", ".layout"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 60
}

// Extract reads the layout stream at path.
func (e *Extractor) Extract(_ context.Context, path string) (*domain.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, err
	}
	doc.Name = filepath.Base(path)
	doc.Path = path
	return doc, nil
}

// Decode parses a layout stream.
func Decode(r io.Reader) (*domain.Layout, error) {
	var raw document
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode layout: %v", domain.ErrExtractionFailed, err)
	}

	out := &domain.Layout{Pages: make([]domain.Page, 0, len(raw.Pages))}
	for i, p := range raw.Pages {
		lines := p.Lines
		for _, b := range p.Blocks {
			lines = append(lines, b.Lines...)
		}

		elements := make([]domain.TextElement, 0, len(lines))
		for _, l := range lines {
			if elem, ok := domain.NewTextElement(i, toSpans(l.Spans), toBBox(l.BBox)); ok {
				elements = append(elements, elem)
			}
		}
		out.Pages = append(out.Pages, domain.Page{Number: i, Elements: elements})
	}
	return out, nil
}

func toSpans(in []span) []domain.Span {
	out := make([]domain.Span, len(in))
	for i, s := range in {
		size := domain.DefaultFontSize
		if s.Size != nil {
			size = *s.Size
		}
		out[i] = domain.Span{Text: s.Text, Size: size, Flags: s.Flags}
	}
	return out
}

func toBBox(in []float64) domain.BBox {
	var b domain.BBox
	copy(b[:], in)
	return b
}
