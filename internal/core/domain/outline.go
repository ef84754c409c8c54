package domain

// FallbackTitle is returned when no title candidate qualifies.
const FallbackTitle = "Document"

// HeadingLevel is the outline level of a heading.
type HeadingLevel string

// Outline levels.
const (
	H1 HeadingLevel = "H1"
	H2 HeadingLevel = "H2"
	H3 HeadingLevel = "H3"
)

// IsValid returns true if the level is recognised.
func (l HeadingLevel) IsValid() bool {
	switch l {
	case H1, H2, H3:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l HeadingLevel) String() string {
	return string(l)
}

// OutlineCandidate is a detected heading before post-processing.
// Confidence never leaves the core; see OutlineCandidate.Entry.
type OutlineCandidate struct {
	Level      HeadingLevel
	Text       string
	Page       int
	Confidence float64
}

// Entry strips the confidence from a candidate.
func (c OutlineCandidate) Entry() OutlineEntry {
	return OutlineEntry{Level: c.Level, Text: c.Text, Page: c.Page}
}

// OutlineEntry is one heading in a finished outline.
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// OutlineResult is the title and outline of one document.
type OutlineResult struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// FallbackOutline is emitted for a document that could not be extracted.
func FallbackOutline() OutlineResult {
	return OutlineResult{Title: FallbackTitle, Outline: []OutlineEntry{}}
}
