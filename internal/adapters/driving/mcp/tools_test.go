package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

var testTime = time.Date(2024, 5, 2, 10, 0, 0, 0, time.Local)

func newTestServer(t *testing.T, outline *mockOutlineService, collection *mockCollectionService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Outline: outline, Collection: collection})
	require.NoError(t, err)
	return server
}

func TestServer_handleOutline(t *testing.T) {
	ctx := context.Background()

	t.Run("returns outline", func(t *testing.T) {
		outline := &mockOutlineService{result: &domain.OutlineResult{
			Title: "Annual Report 2023",
			Outline: []domain.OutlineEntry{
				{Level: domain.H1, Text: "Introduction", Page: 0},
				{Level: domain.H2, Text: "1.1 Scope", Page: 1},
			},
		}}
		server := newTestServer(t, outline, &mockCollectionService{})

		_, output, err := server.handleOutline(ctx, nil, OutlineInput{Path: "/docs/report.pdf"})
		require.NoError(t, err)

		assert.Equal(t, "/docs/report.pdf", outline.lastPath)
		assert.Equal(t, "Annual Report 2023", output.Title)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, domain.H2, output.Outline[1].Level)
	})

	t.Run("requires a path", func(t *testing.T) {
		server := newTestServer(t, &mockOutlineService{}, &mockCollectionService{})

		_, _, err := server.handleOutline(ctx, nil, OutlineInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("returns extraction error", func(t *testing.T) {
		outline := &mockOutlineService{err: domain.ErrExtractionFailed}
		server := newTestServer(t, outline, &mockCollectionService{})

		_, _, err := server.handleOutline(ctx, nil, OutlineInput{Path: "broken.pdf"})
		assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	})
}

func TestServer_handleRank(t *testing.T) {
	ctx := context.Background()
	dirConfig := domain.CollectionConfig{
		Documents: []string{"a.pdf", "b.pdf"},
		Persona:   "Research Analyst",
		Job:       "Summarise",
	}

	t.Run("uses directory configuration", func(t *testing.T) {
		collection := &mockCollectionService{config: dirConfig}
		server := newTestServer(t, &mockOutlineService{}, collection)

		_, output, err := server.handleRank(ctx, nil, RankInput{InputDir: "/in"})
		require.NoError(t, err)

		assert.Equal(t, dirConfig, collection.analysed)
		assert.Equal(t, "Research Analyst", output.Metadata.Persona)
		require.Len(t, output.ExtractedSections, 1)
		assert.Equal(t, "Methods", output.ExtractedSections[0].SectionTitle)
	})

	t.Run("inputs override configuration", func(t *testing.T) {
		collection := &mockCollectionService{config: dirConfig}
		server := newTestServer(t, &mockOutlineService{}, collection)

		_, _, err := server.handleRank(ctx, nil, RankInput{
			InputDir:  "/in",
			Documents: []string{"b.pdf"},
			Persona:   "Student",
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"b.pdf"}, collection.analysed.Documents)
		assert.Equal(t, "Student", collection.analysed.Persona)
		assert.Equal(t, "Summarise", collection.analysed.Job)
	})

	t.Run("explicit persona and job survive a broken configuration", func(t *testing.T) {
		collection := &mockCollectionService{configErr: domain.ErrConfigInvalid}
		server := newTestServer(t, &mockOutlineService{}, collection)

		_, _, err := server.handleRank(ctx, nil, RankInput{
			InputDir:  "/in",
			Documents: []string{"a.pdf"},
			Persona:   "Student",
			Job:       "Learn",
		})
		require.NoError(t, err)
		assert.Equal(t, "Learn", collection.analysed.Job)
	})

	t.Run("configuration error without overrides", func(t *testing.T) {
		collection := &mockCollectionService{configErr: domain.ErrConfigInvalid}
		server := newTestServer(t, &mockOutlineService{}, collection)

		_, _, err := server.handleRank(ctx, nil, RankInput{InputDir: "/in"})
		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})

	t.Run("rejects documents outside the input directory", func(t *testing.T) {
		for _, doc := range []string{"../secret.pdf", "/etc/report.pdf", "sub/../../x.pdf", ""} {
			collection := &mockCollectionService{config: dirConfig}
			server := newTestServer(t, &mockOutlineService{}, collection)

			_, _, err := server.handleRank(ctx, nil, RankInput{InputDir: "/in", Documents: []string{"a.pdf", doc}})
			assert.ErrorIs(t, err, domain.ErrInvalidInput, doc)
			assert.Empty(t, collection.analysed.Documents, doc)
		}
	})

	t.Run("accepts nested relative documents", func(t *testing.T) {
		collection := &mockCollectionService{config: dirConfig}
		server := newTestServer(t, &mockOutlineService{}, collection)

		_, _, err := server.handleRank(ctx, nil, RankInput{InputDir: "/in", Documents: []string{"reports/q1.pdf"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"reports/q1.pdf"}, collection.analysed.Documents)
	})

	t.Run("requires input directory", func(t *testing.T) {
		server := newTestServer(t, &mockOutlineService{}, &mockCollectionService{})

		_, _, err := server.handleRank(ctx, nil, RankInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("returns analysis error", func(t *testing.T) {
		collection := &mockCollectionService{config: dirConfig, err: errors.New("analysis failed")}
		server := newTestServer(t, &mockOutlineService{}, collection)

		_, _, err := server.handleRank(ctx, nil, RankInput{InputDir: "/in"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "analysis failed")
	})
}
