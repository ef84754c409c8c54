package relevance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

func defaultRanker() *Ranker {
	return NewRanker(domain.DefaultAppSettings().Ranking)
}

func TestRank_PerDocumentCap(t *testing.T) {
	var scored []domain.Section
	for i := 0; i < 12; i++ {
		scored = append(scored, domain.Section{
			Title:    fmt.Sprintf("s%d", i),
			Document: "only.pdf",
			Score:    0.4 + float64(i)*0.01,
		})
	}

	got := defaultRanker().Rank(scored)
	require.Len(t, got, 3)
	assert.Equal(t, "s11", got[0].Title)
	assert.Equal(t, "s10", got[1].Title)
	assert.Equal(t, "s9", got[2].Title)
	for i, s := range got {
		assert.Equal(t, i+1, s.Rank)
	}
}

func TestRank_MinScoreAndTotalCap(t *testing.T) {
	var scored []domain.Section
	for d := 0; d < 6; d++ {
		for i := 0; i < 3; i++ {
			scored = append(scored, domain.Section{
				Title:    fmt.Sprintf("d%d-%d", d, i),
				Document: fmt.Sprintf("doc%d.pdf", d),
				Score:    0.35 + float64(d*3+i)*0.01,
			})
		}
	}
	scored = append(scored, domain.Section{Title: "weak", Document: "doc9.pdf", Score: 0.29})

	got := defaultRanker().Rank(scored)
	require.Len(t, got, domain.DefaultMaxSections)

	perDoc := make(map[string]int)
	for i, s := range got {
		perDoc[s.Document]++
		assert.LessOrEqual(t, perDoc[s.Document], domain.DefaultMaxPerDocument)
		assert.GreaterOrEqual(t, s.Score, domain.DefaultMinScore)
		assert.NotEqual(t, "weak", s.Title)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Score, s.Score)
		}
	}
}

func TestRank_StableOnTies(t *testing.T) {
	scored := []domain.Section{
		{Title: "first", Document: "a.pdf", Score: 0.5},
		{Title: "second", Document: "b.pdf", Score: 0.5},
	}

	got := defaultRanker().Rank(scored)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, 0, scored[0].Rank)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, defaultRanker().Rank(nil))
}

func TestNewRanker_CustomSettings(t *testing.T) {
	r := NewRanker(domain.RankingSettings{MaxSections: 1, MaxPerDocument: 0, MinScore: 0.9})
	got := r.Rank([]domain.Section{
		{Title: "a", Document: "x", Score: 0.95},
		{Title: "b", Document: "y", Score: 0.92},
		{Title: "c", Document: "z", Score: 0.5},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
}
