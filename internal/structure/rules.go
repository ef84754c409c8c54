package structure

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// step maps a minimum value to a score. Steps are checked in order and the
// first one whose minimum is met wins.
type step struct {
	min   float64
	score float64
}

func stepScore(steps []step, v, fallback float64) float64 {
	for _, s := range steps {
		if v >= s.min {
			return s.score
		}
	}
	return fallback
}

// titleSizeSteps scores a title candidate's size ratio.
var titleSizeSteps = []step{
	{2.5, 1.0},
	{2.0, 0.9},
	{1.8, 0.8},
	{1.5, 0.7},
	{1.3, 0.5},
}

// headingSizeSteps is the heading score bonus for a size ratio.
var headingSizeSteps = []step{
	{2.0, 0.5},
	{1.8, 0.45},
	{1.5, 0.4},
	{1.3, 0.3},
	{1.2, 0.2},
	{1.1, 0.1},
}

// patternRule adds a bonus to the heading score when its pattern matches.
type patternRule struct {
	name    string
	pattern *regexp.Regexp
	bonus   float64
}

// headingPatternRules are evaluated in order; the first match wins.
var headingPatternRules = []patternRule{
	{"multi-level numbering", regexp.MustCompile(`^\d+\.\d+\.?\s+`), 0.3},
	{"numbering", regexp.MustCompile(`^\d+\.?\s+`), 0.25},
	{"lettered", regexp.MustCompile(`^[A-Z]\.?\s+`), 0.2},
	{"chapter/section/part", regexp.MustCompile(`(?i)^(Chapter|Section|Part)\s+\d+`), 0.35},
	{"named section", regexp.MustCompile(`(?i)^(Appendix|Abstract|Introduction|Conclusion)`), 0.3},
}

// patternBonus returns the bonus and name of the first matching pattern rule.
func patternBonus(text string) (float64, string) {
	for _, r := range headingPatternRules {
		if r.pattern.MatchString(text) {
			return r.bonus, r.name
		}
	}
	return 0, ""
}

var (
	numberedListPrefix = regexp.MustCompile(`^\d+\.`)
	numberedPrefix     = regexp.MustCompile(`^\d+\.?\s+`)
)

// levelRule forces a heading level regardless of size.
type levelRule struct {
	name  string
	match func(text string, base domain.HeadingLevel) bool
	level domain.HeadingLevel
}

func matches(re *regexp.Regexp) func(string, domain.HeadingLevel) bool {
	return func(text string, _ domain.HeadingLevel) bool {
		return re.MatchString(text)
	}
}

// topLevelNames are heading texts that are always H1.
var topLevelNames = map[string]bool{
	"abstract":     true,
	"introduction": true,
	"conclusion":   true,
	"references":   true,
}

// levelRules are evaluated in order; the first match decides the level.
var levelRules = []levelRule{
	{"chapter/part", matches(regexp.MustCompile(`(?i)^(Chapter|Part)\s+\d+`)), domain.H1},
	{"section", matches(regexp.MustCompile(`(?i)^Section\s+\d+`)), domain.H2},
	{"multi-level numbering", matches(regexp.MustCompile(`^\d+\.\d+`)), domain.H3},
	{"numbering", func(text string, base domain.HeadingLevel) bool {
		return numberedPrefix.MatchString(text) && base != domain.H3
	}, domain.H2},
	{"top-level name", func(text string, _ domain.HeadingLevel) bool {
		return topLevelNames[strings.ToLower(text)]
	}, domain.H1},
}
