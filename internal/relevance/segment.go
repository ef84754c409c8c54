package relevance

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

const (
	// HeadingSizeFactor scales the dominant average size into the
	// segmentation heading threshold.
	HeadingSizeFactor = 1.2

	// DefaultHeadingThreshold is used for a document with no elements.
	DefaultHeadingThreshold = 14.0

	// maxBoldHeadingWords bounds how long a bold line may be and still
	// count as a heading.
	maxBoldHeadingWords = 15
)

// sectionHeadingPatterns mark a line as a heading regardless of typography.
var sectionHeadingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.?\s+[A-Z]`),
	regexp.MustCompile(`^[A-Z][A-Z\s]+$`),
	regexp.MustCompile(`(?i)^(Chapter|Section|Abstract|Introduction|Conclusion|Methodology)$`),
}

// sectionTypeRule classifies a heading containing any of its terms.
type sectionTypeRule struct {
	terms   []string
	section domain.SectionType
}

// sectionTypeRules are checked in order; the first match wins.
var sectionTypeRules = []sectionTypeRule{
	{[]string{"abstract", "summary"}, domain.SectionAbstract},
	{[]string{"introduction", "background"}, domain.SectionIntroduction},
	{[]string{"methodology", "methods"}, domain.SectionMethodology},
	{[]string{"results", "findings"}, domain.SectionResults},
	{[]string{"discussion", "analysis"}, domain.SectionDiscussion},
	{[]string{"conclusion"}, domain.SectionConclusion},
}

// HeadingThreshold returns the dominant average font size scaled by
// HeadingSizeFactor. Ties go to the size seen first.
func HeadingThreshold(layout *domain.Layout) float64 {
	counts := make(map[float64]int)
	var order []float64
	for _, p := range layout.Pages {
		for _, e := range p.Elements {
			if counts[e.AvgSize] == 0 {
				order = append(order, e.AvgSize)
			}
			counts[e.AvgSize]++
		}
	}
	if len(order) == 0 {
		return DefaultHeadingThreshold
	}

	dominant := order[0]
	for _, size := range order[1:] {
		if counts[size] > counts[dominant] {
			dominant = size
		}
	}
	return dominant * HeadingSizeFactor
}

// IsSectionHeading reports whether an element opens a new section.
func IsSectionHeading(e domain.TextElement, threshold float64) bool {
	if e.AvgSize >= threshold {
		return true
	}
	text := strings.TrimSpace(e.Text)
	if e.Bold && e.WordCount() <= maxBoldHeadingWords {
		return true
	}
	for _, re := range sectionHeadingPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// ClassifySection returns the section category of a heading.
func ClassifySection(title string) domain.SectionType {
	lower := strings.ToLower(title)
	for _, rule := range sectionTypeRules {
		if containsAny(lower, rule.terms) {
			return rule.section
		}
	}
	return domain.SectionGeneral
}

// Segment cuts a document into titled sections. Text before the first
// heading is dropped, as is any section whose content is blank.
func Segment(layout *domain.Layout) []domain.Section {
	if layout == nil {
		return nil
	}

	threshold := HeadingThreshold(layout)
	var (
		sections []domain.Section
		current  *domain.Section
		body     strings.Builder
	)

	flush := func() {
		if current == nil {
			return
		}
		if strings.TrimSpace(body.String()) != "" {
			current.Content = body.String()
			sections = append(sections, *current)
		}
		body.Reset()
	}

	for _, page := range layout.Pages {
		for _, e := range page.Elements {
			text := strings.TrimSpace(e.Text)
			if text == "" {
				continue
			}
			if IsSectionHeading(e, threshold) {
				flush()
				current = &domain.Section{
					Title:    text,
					Document: layout.Name,
					Page:     page.Number,
					Type:     ClassifySection(text),
				}
				continue
			}
			if current != nil {
				body.WriteString(text)
				body.WriteByte(' ')
			}
		}
	}
	flush()

	return sections
}
