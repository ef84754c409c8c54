package relevance

import (
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// personaTypeRule maps any of its keywords to a persona type.
type personaTypeRule struct {
	keywords []string
	persona  domain.PersonaType
}

// personaTypeRules are checked in order; the first rule with a keyword
// present in the persona wins.
var personaTypeRules = []personaTypeRule{
	{[]string{"researcher", "phd", "scientist", "academic"}, domain.PersonaAcademicResearcher},
	{[]string{"analyst", "investment", "financial", "business"}, domain.PersonaBusinessAnalyst},
	{[]string{"student", "undergraduate", "graduate"}, domain.PersonaStudent},
	{[]string{"engineer", "developer", "technical"}, domain.PersonaTechnicalProfessional},
}

// bundleRule adds a fixed keyword bundle when its trigger matches. Every
// matching rule applies.
type bundleRule struct {
	trigger *regexp.Regexp
	terms   []string
}

var expertiseBundles = []bundleRule{
	{
		regexp.MustCompile(`(?i)computational biology|drug discovery`),
		[]string{"computational", "biology", "drug", "discovery", "methodology", "datasets"},
	},
	{
		regexp.MustCompile(`(?i)investment|financial|analyst`),
		[]string{"financial", "investment", "revenue", "market", "analysis"},
	},
	{
		regexp.MustCompile(`(?i)chemistry|organic|student`),
		[]string{"chemistry", "organic", "reaction", "kinetics", "mechanisms"},
	},
}

var priorityBundles = []bundleRule{
	{
		regexp.MustCompile(`(?i)literature review`),
		[]string{"methodology", "datasets", "performance", "benchmarks"},
	},
	{
		regexp.MustCompile(`(?i)revenue trends`),
		[]string{"revenue", "trends", "financial", "analysis"},
	},
	{
		regexp.MustCompile(`(?i)exam preparation`),
		[]string{"concepts", "mechanisms", "key", "important"},
	},
}

// actionPatterns capture the word following an action verb in a task.
var actionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)analyze?\s+(\w+)`),
	regexp.MustCompile(`(?i)identify\s+(\w+)`),
	regexp.MustCompile(`(?i)prepare\s+(\w+)`),
}

var (
	personaToken = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)
	stopwords    = map[string]bool{
		"the": true, "and": true, "for": true, "are": true, "but": true,
		"not": true, "you": true, "all": true, "can": true, "had": true,
	}
)

// preferenceRule overrides content preferences when the persona mentions
// any of its keywords.
type preferenceRule struct {
	keywords []string
	apply    func(*domain.ContentPreferences)
}

// preferenceRules are mutually exclusive; the first match applies.
var preferenceRules = []preferenceRule{
	{[]string{"researcher", "phd"}, func(p *domain.ContentPreferences) {
		p.TechnicalDepth = 0.9
		p.DetailPreference = 0.8
	}},
	{[]string{"student"}, func(p *domain.ContentPreferences) {
		p.SummaryPreference = 0.8
		p.TechnicalDepth = 0.4
	}},
	{[]string{"analyst"}, func(p *domain.ContentPreferences) {
		p.QuantitativeFocus = 0.9
	}},
}

// BuildProfile interprets a persona and its job-to-be-done.
func BuildProfile(persona, job string) domain.PersonaProfile {
	pType := ClassifyPersona(persona)
	return domain.PersonaProfile{
		Type:           pType,
		ExpertiseAreas: ExpertiseAreas(persona),
		JobPriorities:  JobPriorities(job),
		Preferences:    InferPreferences(persona),
		Weights:        WeightsFor(pType),
	}
}

// ClassifyPersona returns the persona category by case-insensitive keyword
// presence.
func ClassifyPersona(persona string) domain.PersonaType {
	lower := strings.ToLower(persona)
	for _, rule := range personaTypeRules {
		if containsAny(lower, rule.keywords) {
			return rule.persona
		}
	}
	return domain.PersonaGeneralProfessional
}

// ExpertiseAreas returns the triggered keyword bundles plus every
// alphabetic token of four or more letters in the persona, sorted.
func ExpertiseAreas(persona string) []string {
	set := make(map[string]struct{})
	for _, b := range expertiseBundles {
		if b.trigger.MatchString(persona) {
			addAll(set, b.terms)
		}
	}
	for _, w := range personaToken.FindAllString(strings.ToLower(persona), -1) {
		if !stopwords[w] {
			set[w] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// JobPriorities returns the triggered keyword bundles plus the words
// following action verbs in the job, lowercased and sorted.
func JobPriorities(job string) []string {
	set := make(map[string]struct{})
	for _, b := range priorityBundles {
		if b.trigger.MatchString(job) {
			addAll(set, b.terms)
		}
	}
	for _, re := range actionPatterns {
		for _, m := range re.FindAllStringSubmatch(job, -1) {
			set[strings.ToLower(m[1])] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// InferPreferences returns the content dials for a persona.
func InferPreferences(persona string) domain.ContentPreferences {
	prefs := domain.ContentPreferences{
		TechnicalDepth:    0.5,
		QuantitativeFocus: 0.5,
		SummaryPreference: 0.5,
		DetailPreference:  0.5,
	}
	lower := strings.ToLower(persona)
	for _, rule := range preferenceRules {
		if containsAny(lower, rule.keywords) {
			rule.apply(&prefs)
			break
		}
	}
	return prefs
}

// WeightsFor returns the relevance weights for a persona type.
func WeightsFor(t domain.PersonaType) domain.RelevanceWeights {
	w := domain.RelevanceWeights{
		KeywordMatch:        0.3,
		SectionType:         0.2,
		ContentDepth:        0.2,
		QuantitativeContent: 0.15,
		PositionImportance:  0.15,
	}
	switch t {
	case domain.PersonaAcademicResearcher:
		w.ContentDepth = 0.3
		w.KeywordMatch = 0.25
	case domain.PersonaBusinessAnalyst:
		w.QuantitativeContent = 0.35
		w.KeywordMatch = 0.3
	}
	return w
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func addAll(set map[string]struct{}, terms []string) {
	for _, t := range terms {
		set[t] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
