package domain

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"
	"unicode/utf8"
)

// Collection defaults used when no configuration file is present.
const (
	DefaultPersona = "Research Analyst"
	DefaultJob     = "Analyze and summarize key information"
)

// Placeholders reported by the collection fallback result.
const (
	FallbackPersona = "General User"
	FallbackJob     = "Document Analysis"
)

const (
	// SubSectionCount is how many top sections get a refined text entry.
	SubSectionCount = 5

	// RefinedTextLimit is the rune count after which refined text is truncated.
	RefinedTextLimit = 500

	// TimestampLayout matches an ISO-8601 local timestamp with microseconds.
	TimestampLayout = "2006-01-02T15:04:05.000000"
)

// CollectionConfig describes a document collection and its reader.
type CollectionConfig struct {
	Documents []string `json:"documents"`
	Persona   string   `json:"persona"`
	Job       string   `json:"job_to_be_done"`
}

// Validate checks that the configuration is usable.
func (c CollectionConfig) Validate() error {
	if c.Persona == "" || c.Job == "" {
		return fmt.Errorf("%w: persona and job_to_be_done are required", ErrConfigInvalid)
	}
	for _, doc := range c.Documents {
		if !filepath.IsLocal(doc) {
			return fmt.Errorf("%w: document %q is outside the input directory", ErrConfigInvalid, doc)
		}
	}
	return nil
}

// UnmarshalJSON accepts the flat form
//
//	{"documents": ["a.pdf"], "persona": "...", "job_to_be_done": "..."}
//
// and the nested form
//
//	{"documents": [{"filename": "a.pdf"}], "persona": {"role": "..."}, "job_to_be_done": {"task": "..."}}
func (c *CollectionConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		Documents []json.RawMessage `json:"documents"`
		Persona   json.RawMessage   `json:"persona"`
		Job       json.RawMessage   `json:"job_to_be_done"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	docs := make([]string, 0, len(raw.Documents))
	for _, d := range raw.Documents {
		name, err := stringOrField(d, "filename")
		if err != nil {
			return fmt.Errorf("documents: %w", err)
		}
		docs = append(docs, name)
	}

	persona, err := stringOrField(raw.Persona, "role")
	if err != nil {
		return fmt.Errorf("persona: %w", err)
	}
	job, err := stringOrField(raw.Job, "task")
	if err != nil {
		return fmt.Errorf("job_to_be_done: %w", err)
	}

	*c = CollectionConfig{Documents: docs, Persona: persona, Job: job}
	return nil
}

// stringOrField decodes either a JSON string or an object holding the
// string under field. Absent values decode to "".
func stringOrField(data json.RawMessage, field string) (string, error) {
	if len(data) == 0 || string(data) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("%w: expected string or object", ErrConfigInvalid)
	}
	if v, ok := obj[field]; ok {
		if err := json.Unmarshal(v, &s); err != nil {
			return "", fmt.Errorf("%w: %s must be a string", ErrConfigInvalid, field)
		}
	}
	return s, nil
}

// CollectionMetadata echoes the inputs of a collection run.
type CollectionMetadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	Job                 string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one ranked section in a collection result.
type ExtractedSection struct {
	Document       string `json:"document"`
	PageNumber     int    `json:"page_number"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
}

// SubSectionAnalysis carries the refined body text of a top section.
type SubSectionAnalysis struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// CollectionResult is the output of a persona-driven collection run.
type CollectionResult struct {
	Metadata           CollectionMetadata   `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubSectionAnalysis []SubSectionAnalysis `json:"sub_section_analysis"`
}

// NewCollectionResult builds the result from ranked sections in rank order.
func NewCollectionResult(cfg CollectionConfig, ranked []Section, at time.Time) CollectionResult {
	docs := cfg.Documents
	if docs == nil {
		docs = []string{}
	}

	result := CollectionResult{
		Metadata: CollectionMetadata{
			InputDocuments:      docs,
			Persona:             cfg.Persona,
			Job:                 cfg.Job,
			ProcessingTimestamp: at.Format(TimestampLayout),
		},
		ExtractedSections:  make([]ExtractedSection, 0, len(ranked)),
		SubSectionAnalysis: make([]SubSectionAnalysis, 0, SubSectionCount),
	}

	for i := range ranked {
		result.ExtractedSections = append(result.ExtractedSections, ExtractedSection{
			Document:       ranked[i].Document,
			PageNumber:     ranked[i].Page,
			SectionTitle:   ranked[i].Title,
			ImportanceRank: ranked[i].Rank,
		})
		if i < SubSectionCount {
			result.SubSectionAnalysis = append(result.SubSectionAnalysis, SubSectionAnalysis{
				Document:    ranked[i].Document,
				RefinedText: RefineText(ranked[i].Content),
				PageNumber:  ranked[i].Page,
			})
		}
	}

	return result
}

// FallbackCollection is emitted when a collection run fails as a whole.
func FallbackCollection(at time.Time) CollectionResult {
	return NewCollectionResult(CollectionConfig{
		Documents: []string{},
		Persona:   FallbackPersona,
		Job:       FallbackJob,
	}, nil, at)
}

// RefineText truncates content to RefinedTextLimit runes, marking the cut with "...".
func RefineText(content string) string {
	if utf8.RuneCountInString(content) <= RefinedTextLimit {
		return content
	}
	return string([]rune(content)[:RefinedTextLimit]) + "..."
}
