package relevance

import (
	"sort"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// Ranker selects a diverse top set of scored sections.
type Ranker struct {
	maxSections    int
	maxPerDocument int
	minScore       float64
}

// NewRanker creates a ranker from ranking settings. Non-positive caps fall
// back to the defaults.
func NewRanker(s domain.RankingSettings) *Ranker {
	r := &Ranker{
		maxSections:    domain.DefaultMaxSections,
		maxPerDocument: domain.DefaultMaxPerDocument,
		minScore:       s.MinScore,
	}
	if s.MaxSections > 0 {
		r.maxSections = s.MaxSections
	}
	if s.MaxPerDocument > 0 {
		r.maxPerDocument = s.MaxPerDocument
	}
	return r
}

// Rank sorts sections by descending score and greedily keeps those that
// meet the minimum score while their document is under its cap, stopping
// at maxSections. Kept sections get 1-based ranks in selection order.
func (r *Ranker) Rank(scored []domain.Section) []domain.Section {
	if len(scored) == 0 {
		return nil
	}

	sorted := make([]domain.Section, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	perDoc := make(map[string]int)
	selected := make([]domain.Section, 0, r.maxSections)
	for _, s := range sorted {
		if len(selected) >= r.maxSections {
			break
		}
		if s.Score < r.minScore || perDoc[s.Document] >= r.maxPerDocument {
			continue
		}
		perDoc[s.Document]++
		s.Rank = len(selected) + 1
		selected = append(selected, s)
	}

	return selected
}
