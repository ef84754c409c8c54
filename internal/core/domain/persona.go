package domain

// PersonaType is the reader category inferred from a persona description.
type PersonaType string

// Persona categories.
const (
	PersonaAcademicResearcher    PersonaType = "academic_researcher"
	PersonaBusinessAnalyst       PersonaType = "business_analyst"
	PersonaStudent               PersonaType = "student"
	PersonaTechnicalProfessional PersonaType = "technical_professional"
	PersonaGeneralProfessional   PersonaType = "general_professional"
)

// String returns the string representation.
func (p PersonaType) String() string {
	return string(p)
}

// ContentPreferences are reader dials in [0,1].
type ContentPreferences struct {
	TechnicalDepth    float64 `json:"technical_depth"`
	QuantitativeFocus float64 `json:"quantitative_focus"`
	SummaryPreference float64 `json:"summary_preference"`
	DetailPreference  float64 `json:"detail_preference"`
}

// RelevanceWeights weight the five relevance factors.
// Values are non-negative and are not renormalised.
type RelevanceWeights struct {
	KeywordMatch        float64 `json:"keyword_match"`
	SectionType         float64 `json:"section_type"`
	ContentDepth        float64 `json:"content_depth"`
	QuantitativeContent float64 `json:"quantitative_content"`
	PositionImportance  float64 `json:"position_importance"`
}

// PersonaProfile is the structured interpretation of a persona and its task.
type PersonaProfile struct {
	// Type is exactly one persona category.
	Type PersonaType `json:"persona_type"`

	// ExpertiseAreas are lowercase keywords describing the reader.
	ExpertiseAreas []string `json:"expertise_areas"`

	// JobPriorities are keywords describing the task.
	JobPriorities []string `json:"job_priorities"`

	// Preferences are the reader's content dials.
	Preferences ContentPreferences `json:"content_preferences"`

	// Weights drive relevance scoring.
	Weights RelevanceWeights `json:"relevance_weights"`
}
