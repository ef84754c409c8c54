package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
)

// mockRegistry serves canned layouts keyed by file name.
type mockRegistry struct {
	mu      sync.Mutex
	layouts map[string]*domain.Layout
	errs    map[string]error
	panics  map[string]bool
	calls   []string

	// supportsPanics makes Supports panic, failing the whole run.
	supportsPanics bool
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{
		layouts: make(map[string]*domain.Layout),
		errs:    make(map[string]error),
		panics:  make(map[string]bool),
	}
}

func (m *mockRegistry) Extract(_ context.Context, path string) (*domain.Layout, error) {
	name := filepath.Base(path)

	m.mu.Lock()
	m.calls = append(m.calls, name)
	layout, ok := m.layouts[name]
	err := m.errs[name]
	panics := m.panics[name]
	m.mu.Unlock()

	if panics {
		panic("corrupt layout")
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	copied := *layout
	return &copied, nil
}

func (m *mockRegistry) Register(_ driven.LayoutExtractor) {}

func (m *mockRegistry) Supports(path string) bool {
	if m.supportsPanics {
		panic("registry unavailable")
	}
	return strings.HasSuffix(strings.ToLower(path), ".pdf")
}

func (m *mockRegistry) SupportedExtensions() []string {
	return []string{".pdf"}
}

// add registers a layout and creates a placeholder file for it in dir.
func (m *mockRegistry) add(t *testing.T, dir string, layout *domain.Layout) {
	t.Helper()
	m.layouts[layout.Name] = layout
	require.NoError(t, os.WriteFile(filepath.Join(dir, layout.Name), []byte("%PDF-1.7"), 0o600))
}

// failing registers a file whose extraction fails.
func (m *mockRegistry) failing(t *testing.T, dir, name string) {
	t.Helper()
	m.errs[name] = fmt.Errorf("%w: broken xref", domain.ErrExtractionFailed)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("garbage"), 0o600))
}

func elem(page int, text string, size float64, bold bool) domain.TextElement {
	return domain.TextElement{Text: text, Page: page, AvgSize: size, MaxSize: size, Bold: bold}
}

// reportLayout is a two-page document with a title, two numbered headings
// and body text.
func reportLayout(name string) *domain.Layout {
	return &domain.Layout{
		Name: name,
		Pages: []domain.Page{
			{Number: 0, Elements: []domain.TextElement{
				elem(0, "Annual Report 2023", 28, true),
				elem(0, "1. Introduction", 16, true),
				elem(0, "This report describes results for the year.", 12, false),
				elem(0, "Revenue grew across every region we serve.", 12, false),
			}},
			{Number: 1, Elements: []domain.TextElement{
				elem(1, "2. Methodology", 16, true),
				elem(1, "We analyze quarterly data with a mean of 42% growth.", 12, false),
				elem(1, "The statistical analysis uses median values.", 12, false),
			}},
		},
	}
}

// mockPipeline returns its input, or err when set.
type mockPipeline struct {
	err error
}

func (m *mockPipeline) Process(_ context.Context, c []domain.OutlineCandidate) ([]domain.OutlineCandidate, error) {
	if m.err != nil {
		return nil, m.err
	}
	return c, nil
}

func testSettings() domain.AppSettings {
	s := domain.DefaultAppSettings()
	s.Batch.Workers = 2
	return s
}
