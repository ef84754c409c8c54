package relevance

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

const (
	expertiseShare = 0.4
	priorityShare  = 0.6

	// defaultTypeScore applies to any persona/section pair not in the table.
	defaultTypeScore = 0.5

	// quantSaturation is the indicator count that earns a full
	// quantitative score.
	quantSaturation = 5.0
)

// sectionTypePreferences scores section categories per persona.
var sectionTypePreferences = map[domain.PersonaType]map[domain.SectionType]float64{
	domain.PersonaAcademicResearcher: {
		domain.SectionMethodology:  0.9,
		domain.SectionResults:      0.9,
		domain.SectionDiscussion:   0.8,
		domain.SectionAbstract:     0.7,
		domain.SectionIntroduction: 0.6,
	},
	domain.PersonaBusinessAnalyst: {
		domain.SectionResults:    0.9,
		domain.SectionDiscussion: 0.8,
		domain.SectionAbstract:   0.7,
	},
	domain.PersonaStudent: {
		domain.SectionIntroduction: 0.9,
		domain.SectionAbstract:     0.8,
		domain.SectionMethodology:  0.7,
	},
}

// depthStep maps a word count below limit to a score.
type depthStep struct {
	limit int
	score float64
}

var depthSteps = []depthStep{
	{50, 0.3},
	{200, 0.6},
	{500, 0.8},
}

// positionStep maps a starting page at or before maxPage to a score.
type positionStep struct {
	maxPage int
	score   float64
}

var positionSteps = []positionStep{
	{0, 1.0},
	{2, 0.8},
	{5, 0.6},
}

var (
	numberToken     = regexp.MustCompile(`\b\d+(?:\.\d+)?%?\b`)
	statisticalTerm = regexp.MustCompile(`(?i)\b(?:mean|median|average|analysis)\b`)
)

// Factors are the five sub-scores of a section, each in [0,1].
type Factors struct {
	Keyword      float64
	SectionType  float64
	ContentDepth float64
	Quantitative float64
	Position     float64
}

// Combine weights the factors and caps the total at 1.
func (f Factors) Combine(w domain.RelevanceWeights) float64 {
	total := f.Keyword*w.KeywordMatch +
		f.SectionType*w.SectionType +
		f.ContentDepth*w.ContentDepth +
		f.Quantitative*w.QuantitativeContent +
		f.Position*w.PositionImportance
	return min(total, 1.0)
}

// ScoreFactors computes the sub-scores of a section for a profile.
func ScoreFactors(s domain.Section, p domain.PersonaProfile) Factors {
	return Factors{
		Keyword:      KeywordScore(s, p),
		SectionType:  SectionTypeScore(s.Type, p.Type),
		ContentDepth: ContentDepthScore(s.Content),
		Quantitative: QuantitativeScore(s.Title + " " + s.Content),
		Position:     PositionScore(s.Page),
	}
}

// Score returns the relevance of a section for a profile.
func Score(s domain.Section, p domain.PersonaProfile) float64 {
	return ScoreFactors(s, p).Combine(p.Weights)
}

// ScoreAll returns copies of the sections with their scores set.
func ScoreAll(sections []domain.Section, p domain.PersonaProfile) []domain.Section {
	out := make([]domain.Section, len(sections))
	for i, s := range sections {
		s.Score = Score(s, p)
		out[i] = s
	}
	return out
}

// KeywordScore blends the share of expertise and priority keywords found in
// the section text.
func KeywordScore(s domain.Section, p domain.PersonaProfile) float64 {
	text := strings.ToLower(s.Title + " " + s.Content)
	return matchRatio(text, p.ExpertiseAreas)*expertiseShare +
		matchRatio(text, p.JobPriorities)*priorityShare
}

func matchRatio(text string, keywords []string) float64 {
	var hits int
	for _, k := range keywords {
		if strings.Contains(text, strings.ToLower(k)) {
			hits++
		}
	}
	return min(float64(hits)/float64(max(len(keywords), 1)), 1.0)
}

// SectionTypeScore looks up how much a persona values a section category.
func SectionTypeScore(section domain.SectionType, persona domain.PersonaType) float64 {
	if score, ok := sectionTypePreferences[persona][section]; ok {
		return score
	}
	return defaultTypeScore
}

// ContentDepthScore grows in steps with the content's word count.
func ContentDepthScore(content string) float64 {
	words := len(strings.Fields(content))
	for _, s := range depthSteps {
		if words < s.limit {
			return s.score
		}
	}
	return 1.0
}

// QuantitativeScore counts numbers and, at double weight, statistical terms.
func QuantitativeScore(text string) float64 {
	numbers := len(numberToken.FindAllStringIndex(text, -1))
	terms := len(statisticalTerm.FindAllStringIndex(text, -1))
	return min(float64(numbers+2*terms)/quantSaturation, 1.0)
}

// PositionScore favours sections that start early in a document.
func PositionScore(page int) float64 {
	for _, s := range positionSteps {
		if page <= s.maxPage {
			return s.score
		}
	}
	return 0.4
}
