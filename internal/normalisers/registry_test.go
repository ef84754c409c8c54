package normalisers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// mockExtractor is a test extractor returning a named layout.
type mockExtractor struct {
	name     string
	exts     []string
	priority int
}

func (m *mockExtractor) Name() string                  { return m.name }
func (m *mockExtractor) SupportedExtensions() []string { return m.exts }
func (m *mockExtractor) Priority() int                 { return m.priority }

func (m *mockExtractor) Extract(_ context.Context, path string) (*domain.Layout, error) {
	return &domain.Layout{Name: m.name, Path: path}, nil
}

func TestRegistry_PicksHighestPriority(t *testing.T) {
	r := NewRegistry(
		&mockExtractor{name: "low", exts: []string{".pdf"}, priority: 10},
		&mockExtractor{name: "high", exts: []string{".pdf"}, priority: 50},
	)

	l, err := r.Extract(context.Background(), "/docs/file.PDF")
	require.NoError(t, err)
	assert.Equal(t, "high", l.Name)
}

func TestRegistry_CompoundExtension(t *testing.T) {
	r := NewRegistry(
		&mockExtractor{name: "layout", exts: []string{".layout.json"}, priority: 60},
	)

	assert.True(t, r.Supports("a.layout.json"))
	assert.False(t, r.Supports("challenge1b_input.json"))
	assert.False(t, r.Supports(".layout.json"))
}

func TestRegistry_Unsupported(t *testing.T) {
	r := NewRegistry(&mockExtractor{name: "pdf", exts: []string{".pdf"}, priority: 50})

	_, err := r.Extract(context.Background(), "notes.txt")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.False(t, r.Supports("README"))
}

func TestRegistry_SupportedExtensions(t *testing.T) {
	r := NewRegistry(
		&mockExtractor{name: "a", exts: []string{".pdf"}, priority: 50},
		&mockExtractor{name: "b", exts: []string{".layout.json", ".pdf"}, priority: 60},
	)
	assert.Equal(t, []string{".layout.json", ".pdf"}, r.SupportedExtensions())
}
