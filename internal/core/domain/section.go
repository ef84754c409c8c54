package domain

// SectionType is the category of a section inferred from its heading.
type SectionType string

// Section categories.
const (
	SectionAbstract     SectionType = "abstract"
	SectionIntroduction SectionType = "introduction"
	SectionMethodology  SectionType = "methodology"
	SectionResults      SectionType = "results"
	SectionDiscussion   SectionType = "discussion"
	SectionConclusion   SectionType = "conclusion"
	SectionGeneral      SectionType = "general"
)

// String returns the string representation.
func (s SectionType) String() string {
	return string(s)
}

// Section is a contiguous run of body text under one heading.
// Created by segmentation, scored, then ranked; never mutated after ranking.
type Section struct {
	// Title is the heading text.
	Title string

	// Content is the space-joined body text. Non-empty once retained.
	Content string

	// Document identifies the source document.
	Document string

	// Page is the 0-based page the heading appears on.
	Page int

	// Type is the section category.
	Type SectionType

	// Score is the relevance score, set by scoring.
	Score float64

	// Rank is the 1-based rank, set by ranking.
	Rank int
}
