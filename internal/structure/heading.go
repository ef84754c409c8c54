package structure

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// HeadingCutoff is the precision threshold a heading score must meet.
// Recall is sacrificed on purpose.
const HeadingCutoff = 0.7

// minHeadingRunes is the shortest text considered for a heading.
const minHeadingRunes = 2

// HeadingScore returns the heading likelihood of an element in [0,1].
func HeadingScore(elem domain.TextElement, stats domain.DocumentStatistics) float64 {
	text := strings.TrimSpace(elem.Text)
	score := 0.0

	score += stepScore(headingSizeSteps, sizeRatio(elem, stats), 0)

	if elem.Bold {
		score += 0.25
	}

	bonus, _ := patternBonus(text)
	score += bonus

	words := elem.WordCount()
	if isUpperCase(text) && words >= 2 && words <= 8 {
		score += 0.2
	} else if isTitleCase(text) && words >= 2 && words <= 12 {
		score += 0.15
	}

	if words >= 1 && words <= 15 {
		score += 0.1
	} else if words > 25 {
		score -= 0.3
	}

	if strings.HasSuffix(text, ":") {
		score += 0.15
	} else if strings.HasSuffix(text, ".") && words > 10 {
		score -= 0.2
	}

	return min(max(score, 0), 1.0)
}

// BaseLevel classifies a heading by size alone.
func BaseLevel(maxSize float64, th domain.SizeThresholds) domain.HeadingLevel {
	switch {
	case maxSize >= th.H1:
		return domain.H1
	case maxSize >= th.H2:
		return domain.H2
	default:
		return domain.H3
	}
}

// ClassifyLevel applies the level overrides, falling back to the size-based level.
func ClassifyLevel(elem domain.TextElement, th domain.SizeThresholds) domain.HeadingLevel {
	text := strings.TrimSpace(elem.Text)
	base := BaseLevel(elem.MaxSize, th)
	for _, r := range levelRules {
		if r.match(text, base) {
			return r.level
		}
	}
	return base
}

// DetectHeadings scores every element and returns those meeting cutoff,
// in document order.
func DetectHeadings(
	elements []domain.TextElement, stats domain.DocumentStatistics, cutoff float64,
) []domain.OutlineCandidate {
	var out []domain.OutlineCandidate
	for i := range elements {
		text := strings.TrimSpace(elements[i].Text)
		if utf8.RuneCountInString(text) < minHeadingRunes {
			continue
		}

		score := HeadingScore(elements[i], stats)
		if score < cutoff {
			continue
		}

		out = append(out, domain.OutlineCandidate{
			Level:      ClassifyLevel(elements[i], stats.Thresholds),
			Text:       text,
			Page:       elements[i].Page,
			Confidence: score,
		})
	}
	return out
}
