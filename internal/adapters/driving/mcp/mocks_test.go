package mcp

import (
	"context"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// mockOutlineService is a mock implementation of driving.OutlineService.
type mockOutlineService struct {
	result   *domain.OutlineResult
	err      error
	lastPath string
}

func (m *mockOutlineService) Outline(_ context.Context, path string) (*domain.OutlineResult, error) {
	m.lastPath = path
	return m.result, m.err
}

func (m *mockOutlineService) OutlineLayout(_ context.Context, _ *domain.Layout) (*domain.OutlineResult, error) {
	return m.result, m.err
}

func (m *mockOutlineService) WriteOutline(_ context.Context, path, _ string) domain.FileReport {
	return domain.FileReport{Name: path}
}

func (m *mockOutlineService) OutlineDirectory(_ context.Context, _, _ string) (*domain.BatchReport, error) {
	return &domain.BatchReport{}, m.err
}

// mockCollectionService is a mock implementation of driving.CollectionService.
type mockCollectionService struct {
	config    domain.CollectionConfig
	configErr error
	err       error
	analysed  domain.CollectionConfig
}

func (m *mockCollectionService) LoadConfig(_ string) (domain.CollectionConfig, error) {
	return m.config, m.configErr
}

func (m *mockCollectionService) Analyse(ctx context.Context, inputDir string) (*domain.CollectionResult, error) {
	return m.AnalyseConfig(ctx, inputDir, m.config)
}

func (m *mockCollectionService) AnalyseConfig(
	_ context.Context, _ string, cfg domain.CollectionConfig,
) (*domain.CollectionResult, error) {
	m.analysed = cfg
	if m.err != nil {
		return nil, m.err
	}
	result := domain.NewCollectionResult(cfg, []domain.Section{
		{Title: "Methods", Content: "We measured.", Document: "a.pdf", Page: 2, Rank: 1},
	}, testTime)
	return &result, nil
}

func (m *mockCollectionService) Run(ctx context.Context, inputDir, _ string) (*domain.CollectionResult, error) {
	return m.Analyse(ctx, inputDir)
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	runs []domain.Run
	err  error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.Run, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.Run, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
