package domain

import "strings"

// DefaultFontSize is used when a line carries no usable font size.
const DefaultFontSize = 12.0

// Span style flags as reported by page-layout extraction.
// Bold and italic are tested with a bitwise AND against these bits.
const (
	// FlagItalic is bit 6 of the span flags.
	FlagItalic = 1 << 6

	// FlagBold is bit 4 of the span flags.
	FlagBold = 1 << 4
)

// BBox is a line bounding box as [x0, y0, x1, y1].
type BBox [4]float64

// TextElement is one visual text line with aggregated font metrics.
// It is immutable once produced by layout extraction.
type TextElement struct {
	// Text is the whitespace-collapsed line text. Never empty.
	Text string

	// Page is the 0-based page index.
	Page int

	// AvgSize is the mean font size across the line's spans.
	AvgSize float64

	// MaxSize is the largest span font size within the line.
	MaxSize float64

	// Bold is true when any span on the line is bold.
	Bold bool

	// Italic is true when any span on the line is italic.
	Italic bool

	// BBox is the line bounding box.
	BBox BBox
}

// Span is a run of text with a single font inside a line.
type Span struct {
	Text  string
	Size  float64
	Flags int
}

// NewTextElement aggregates spans into a line.
// Spans with blank text are ignored. Returns false when no text remains.
func NewTextElement(page int, spans []Span, bbox BBox) (TextElement, bool) {
	var (
		parts []string
		sum   float64
		peak  float64
		flags []int
	)
	for _, s := range spans {
		t := strings.TrimSpace(s.Text)
		if t == "" {
			continue
		}
		size := s.Size
		if size <= 0 {
			size = DefaultFontSize
		}
		parts = append(parts, t)
		sum += size
		if size > peak {
			peak = size
		}
		flags = append(flags, s.Flags)
	}

	text := CollapseWhitespace(strings.Join(parts, " "))
	if text == "" {
		return TextElement{}, false
	}

	elem := TextElement{
		Text:    text,
		Page:    page,
		AvgSize: sum / float64(len(parts)),
		MaxSize: peak,
		BBox:    bbox,
	}
	for _, f := range flags {
		if f&FlagBold != 0 {
			elem.Bold = true
		}
		if f&FlagItalic != 0 {
			elem.Italic = true
		}
	}
	return elem, true
}

// WordCount returns the number of whitespace-separated words.
func (e TextElement) WordCount() int {
	return len(strings.Fields(e.Text))
}

// CollapseWhitespace trims s and replaces every whitespace run with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
