package structure

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

const (
	// titleWindow is how many page-0 lines are considered for the title.
	titleWindow = 15

	// minTitleRunes is the shortest acceptable title.
	minTitleRunes = 3

	// maxTitleRunes is where long titles are cut back to a word boundary.
	maxTitleRunes = 100
)

// Title sub-score weights.
const (
	titleSizeWeight     = 0.4
	titlePositionWeight = 0.2
	titleContentWeight  = 0.2
	titleStyleWeight    = 0.2
)

// TitleCandidate is a scored page-0 line.
type TitleCandidate struct {
	Text     string
	Index    int
	Size     float64
	Position float64
	Content  float64
	Style    float64
}

// Total is the weighted title score.
func (c TitleCandidate) Total() float64 {
	return c.Size*titleSizeWeight + c.Position*titlePositionWeight +
		c.Content*titleContentWeight + c.Style*titleStyleWeight
}

// TitleCandidates scores the first page-0 lines of a document.
// Lines shorter than three characters are skipped.
func TitleCandidates(elements []domain.TextElement, stats domain.DocumentStatistics) []TitleCandidate {
	var window []domain.TextElement
	for i := range elements {
		if elements[i].Page != 0 {
			continue
		}
		window = append(window, elements[i])
		if len(window) == titleWindow {
			break
		}
	}

	var out []TitleCandidate
	for i, elem := range window {
		text := strings.TrimSpace(elem.Text)
		if utf8.RuneCountInString(text) < minTitleRunes {
			continue
		}
		out = append(out, TitleCandidate{
			Text:     text,
			Index:    i,
			Size:     titleSizeScore(elem, stats),
			Position: titlePositionScore(i),
			Content:  titleContentScore(text),
			Style:    titleStyleScore(elem),
		})
	}
	return out
}

// ExtractTitle picks the best scoring title candidate and cleans it.
// Returns domain.FallbackTitle when nothing qualifies.
func ExtractTitle(elements []domain.TextElement, stats domain.DocumentStatistics) string {
	candidates := TitleCandidates(elements, stats)
	if len(candidates) == 0 {
		return domain.FallbackTitle
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Total() > best.Total() {
			best = c
		}
	}
	return CleanTitle(best.Text)
}

// CleanTitle collapses whitespace and cuts titles longer than 100 characters
// back to the last whole word.
func CleanTitle(title string) string {
	title = domain.CollapseWhitespace(title)
	if utf8.RuneCountInString(title) > maxTitleRunes {
		words := strings.Fields(string([]rune(title)[:maxTitleRunes]))
		if len(words) > 1 {
			title = strings.Join(words[:len(words)-1], " ")
		}
	}
	if utf8.RuneCountInString(title) < minTitleRunes {
		return domain.FallbackTitle
	}
	return title
}

func titleSizeScore(elem domain.TextElement, stats domain.DocumentStatistics) float64 {
	return stepScore(titleSizeSteps, sizeRatio(elem, stats), 0.2)
}

func titlePositionScore(index int) float64 {
	switch {
	case index == 0:
		return 1.0
	case index <= 2:
		return 0.8
	case index <= 5:
		return 0.6
	default:
		return 0.3
	}
}

func titleContentScore(text string) float64 {
	words := len(strings.Fields(text))
	score := 0.0

	if words >= 3 && words <= 20 {
		score += 0.5
	} else if words <= 30 {
		score += 0.3
	}

	if isTitleCase(text) {
		score += 0.2
	} else if isUpperCase(text) && words <= 12 {
		score += 0.3
	}

	lower := strings.ToLower(text)
	if numberedListPrefix.MatchString(text) ||
		strings.HasPrefix(lower, "page ") || strings.HasPrefix(lower, "figure ") {
		score -= 0.5
	}

	return max(0, score)
}

// titleStyleScore is additive and not clamped.
func titleStyleScore(elem domain.TextElement) float64 {
	score := 0.0
	if elem.Bold {
		score += 0.6
	}
	if elem.Italic {
		score += 0.2
	}
	return score
}
