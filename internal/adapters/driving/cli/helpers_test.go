package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// executeCommand runs the root command with args, returning its output.
// Flags are reset to their defaults afterwards.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupTestServices installs mock services and returns a restore func.
func setupTestServices() (*testServices, func()) {
	old := Services{
		Outline:    outlineService,
		Collection: collectionService,
		Watch:      watchService,
		History:    historyService,
		Settings:   settingsService,
	}

	ts := &testServices{
		outline:    &mockOutlineService{result: sampleOutline()},
		collection: &mockCollectionService{result: sampleCollection()},
		watch:      &mockWatchService{},
		history:    &mockHistoryService{},
		settings:   &mockSettingsService{settings: domain.DefaultAppSettings()},
	}
	SetServices(Services{
		Outline:    ts.outline,
		Collection: ts.collection,
		Watch:      ts.watch,
		History:    ts.history,
		Settings:   ts.settings,
	})

	return ts, func() { SetServices(old) }
}

type testServices struct {
	outline    *mockOutlineService
	collection *mockCollectionService
	watch      *mockWatchService
	history    *mockHistoryService
	settings   *mockSettingsService
}

func sampleOutline() *domain.OutlineResult {
	return &domain.OutlineResult{
		Title: "Annual Report 2023",
		Outline: []domain.OutlineEntry{
			{Level: domain.H1, Text: "Introduction", Page: 0},
			{Level: domain.H2, Text: "1.1 Scope", Page: 1},
		},
	}
}

func sampleCollection() *domain.CollectionResult {
	result := domain.NewCollectionResult(domain.CollectionConfig{
		Documents: []string{"a.pdf"},
		Persona:   "PhD Researcher",
		Job:       "Prepare a literature review",
	}, []domain.Section{
		{Title: "Methods", Content: "We sequenced 40 samples.", Document: "a.pdf", Page: 3, Rank: 1},
	}, time.Date(2024, 5, 2, 10, 0, 0, 0, time.Local))
	return &result
}

type mockOutlineService struct {
	result   *domain.OutlineResult
	err      error
	dirCalls int
	written  []string
}

func (m *mockOutlineService) Outline(_ context.Context, _ string) (*domain.OutlineResult, error) {
	return m.result, m.err
}

func (m *mockOutlineService) OutlineLayout(_ context.Context, _ *domain.Layout) (*domain.OutlineResult, error) {
	return m.result, m.err
}

func (m *mockOutlineService) WriteOutline(_ context.Context, path, outputDir string) domain.FileReport {
	m.written = append(m.written, outputDir)
	report := domain.FileReport{Name: path, Output: outputDir + "/report.json", Headings: len(m.result.Outline)}
	if m.err != nil {
		report.Err = m.err.Error()
	}
	return report
}

func (m *mockOutlineService) OutlineDirectory(_ context.Context, _, _ string) (*domain.BatchReport, error) {
	m.dirCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &domain.BatchReport{
		Files: []domain.FileReport{
			{Name: "a.pdf", Headings: 4, Duration: time.Second},
			{Name: "b.pdf", Err: "extraction failed"},
		},
		Duration: 2 * time.Second,
	}, nil
}

type mockCollectionService struct {
	result    *domain.CollectionResult
	err       error
	outputDir string
}

func (m *mockCollectionService) LoadConfig(_ string) (domain.CollectionConfig, error) {
	return domain.CollectionConfig{}, m.err
}

func (m *mockCollectionService) Analyse(_ context.Context, _ string) (*domain.CollectionResult, error) {
	return m.result, m.err
}

func (m *mockCollectionService) AnalyseConfig(
	_ context.Context, _ string, _ domain.CollectionConfig,
) (*domain.CollectionResult, error) {
	return m.result, m.err
}

func (m *mockCollectionService) Run(_ context.Context, _, outputDir string) (*domain.CollectionResult, error) {
	m.outputDir = outputDir
	return m.result, m.err
}

type mockWatchService struct {
	inputDir  string
	outputDir string
	err       error
}

func (m *mockWatchService) Watch(_ context.Context, inputDir, outputDir string) error {
	m.inputDir = inputDir
	m.outputDir = outputDir
	return m.err
}

type mockHistoryService struct {
	runs []domain.Run
	err  error
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.Run, error) {
	if len(m.runs) > limit {
		return m.runs[:limit], m.err
	}
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.Run, error) {
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

type mockSettingsService struct {
	settings domain.AppSettings
	err      error
	set      map[string]string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &m.settings, nil
}

func (m *mockSettingsService) Save(s *domain.AppSettings) error {
	m.settings = *s
	return m.err
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.err != nil {
		return m.err
	}
	if m.set == nil {
		m.set = make(map[string]string)
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"batch.workers", "outline.max_per_page"}
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) GetPipelineConfig() domain.PipelineConfig {
	return domain.OutlinePipelineConfig(m.settings.Outline)
}
