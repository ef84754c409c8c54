package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsift/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/postprocessors"
)

func newOutlineService(t *testing.T, reg *mockRegistry, runs *memory.RunStore) *OutlineService {
	t.Helper()
	settings := testSettings()
	pipeline, err := postprocessors.OutlinePipeline(settings.Outline)
	require.NoError(t, err)
	if runs == nil {
		return NewOutlineService(reg, pipeline, nil, settings)
	}
	return NewOutlineService(reg, pipeline, runs, settings)
}

func readOutline(t *testing.T, path string) domain.OutlineResult {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var result domain.OutlineResult
	require.NoError(t, json.Unmarshal(data, &result))
	return result
}

func TestOutlineService_OutlineLayout(t *testing.T) {
	svc := newOutlineService(t, newMockRegistry(), nil)

	result, err := svc.OutlineLayout(context.Background(), reportLayout("report.pdf"))
	require.NoError(t, err)

	assert.Equal(t, "Annual Report 2023", result.Title)
	assert.Contains(t, result.Outline, domain.OutlineEntry{Level: domain.H2, Text: "1. Introduction", Page: 0})
	assert.Contains(t, result.Outline, domain.OutlineEntry{Level: domain.H2, Text: "2. Methodology", Page: 1})
	for _, e := range result.Outline {
		assert.NotContains(t, e.Text, "Revenue")
	}
}

func TestOutlineService_OutlineLayout_Empty(t *testing.T) {
	svc := newOutlineService(t, newMockRegistry(), nil)

	result, err := svc.OutlineLayout(context.Background(), &domain.Layout{Name: "empty.pdf"})
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackTitle, result.Title)
	assert.NotNil(t, result.Outline)
	assert.Empty(t, result.Outline)
}

func TestOutlineService_OutlineLayout_Nil(t *testing.T) {
	svc := newOutlineService(t, newMockRegistry(), nil)

	_, err := svc.OutlineLayout(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOutlineService_OutlineLayout_PipelineError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewOutlineService(newMockRegistry(), &mockPipeline{err: boom}, nil, testSettings())

	_, err := svc.OutlineLayout(context.Background(), reportLayout("report.pdf"))
	assert.ErrorIs(t, err, boom)
}

func TestOutlineService_Outline_ExtractionError(t *testing.T) {
	reg := newMockRegistry()
	dir := t.TempDir()
	reg.failing(t, dir, "broken.pdf")
	svc := newOutlineService(t, reg, nil)

	_, err := svc.Outline(context.Background(), filepath.Join(dir, "broken.pdf"))
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestOutlineService_WriteOutline(t *testing.T) {
	reg := newMockRegistry()
	in, out := t.TempDir(), t.TempDir()
	reg.add(t, in, reportLayout("report.PDF"))
	svc := newOutlineService(t, reg, nil)

	report := svc.WriteOutline(context.Background(), filepath.Join(in, "report.PDF"), out)

	assert.False(t, report.Failed())
	assert.Equal(t, "report.PDF", report.Name)
	assert.Equal(t, filepath.Join(out, "report.json"), report.Output)
	assert.Equal(t, "Annual Report 2023", readOutline(t, report.Output).Title)
}

func TestOutlineService_WriteOutline_Fallback(t *testing.T) {
	reg := newMockRegistry()
	in, out := t.TempDir(), t.TempDir()
	reg.failing(t, in, "broken.pdf")
	svc := newOutlineService(t, reg, nil)

	report := svc.WriteOutline(context.Background(), filepath.Join(in, "broken.pdf"), out)

	assert.True(t, report.Failed())
	assert.Zero(t, report.Headings)

	data, err := os.ReadFile(filepath.Join(out, "broken.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "Document", "outline": []}`, string(data))
}

func TestOutlineService_WriteOutline_Indented(t *testing.T) {
	reg := newMockRegistry()
	in, out := t.TempDir(), t.TempDir()
	layout := reportLayout("café.pdf")
	layout.Pages[0].Elements[0].Text = "Rapport annuel & café"
	reg.add(t, in, layout)
	svc := newOutlineService(t, reg, nil)

	report := svc.WriteOutline(context.Background(), filepath.Join(in, "café.pdf"), out)
	require.False(t, report.Failed())

	data, err := os.ReadFile(report.Output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"title\""))
	assert.Contains(t, string(data), "Rapport annuel & café")
}

func TestOutlineService_OutlineDirectory(t *testing.T) {
	reg := newMockRegistry()
	runs := memory.NewRunStore()
	in, out := t.TempDir(), filepath.Join(t.TempDir(), "nested")

	reg.add(t, in, reportLayout("b.pdf"))
	reg.add(t, in, reportLayout("a.pdf"))
	reg.failing(t, in, "c.pdf")
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.txt"), []byte("skip"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(in, ".hidden.pdf"), []byte("skip"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(in, "sub.pdf"), 0o755))

	svc := newOutlineService(t, reg, runs)
	report, err := svc.OutlineDirectory(context.Background(), in, out)
	require.NoError(t, err)

	require.Len(t, report.Files, 3)
	assert.Equal(t, "a.pdf", report.Files[0].Name)
	assert.Equal(t, "b.pdf", report.Files[1].Name)
	assert.Equal(t, "c.pdf", report.Files[2].Name)
	assert.Equal(t, 2, report.Processed())
	assert.Equal(t, 1, report.Failed())

	for _, name := range []string{"a.json", "b.json", "c.json"} {
		assert.FileExists(t, filepath.Join(out, name))
	}
	assert.NoFileExists(t, filepath.Join(out, "notes.json"))

	require.NotEmpty(t, report.RunID)
	run, err := runs.Get(context.Background(), report.RunID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunKindOutline, run.Kind)
	assert.Equal(t, 2, run.Documents)
	assert.Equal(t, 1, run.Failures)
	assert.Contains(t, string(run.Result), "c.pdf")
}

func TestOutlineService_OutlineDirectory_Missing(t *testing.T) {
	svc := newOutlineService(t, newMockRegistry(), nil)

	_, err := svc.OutlineDirectory(context.Background(), filepath.Join(t.TempDir(), "missing"), t.TempDir())
	assert.Error(t, err)
}

func TestOutlineService_OutlineDirectory_Cancelled(t *testing.T) {
	reg := newMockRegistry()
	in := t.TempDir()
	reg.add(t, in, reportLayout("a.pdf"))
	svc := newOutlineService(t, reg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.OutlineDirectory(ctx, in, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutlineService_Outline_ExtractorPanic(t *testing.T) {
	reg := newMockRegistry()
	reg.panics["bad.pdf"] = true
	svc := newOutlineService(t, reg, nil)

	result, err := svc.Outline(context.Background(), "bad.pdf")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errPanic)
}

func TestOutlineService_OutlineDirectory_ExtractorPanic(t *testing.T) {
	reg := newMockRegistry()
	in, out := t.TempDir(), t.TempDir()
	reg.add(t, in, reportLayout("good.pdf"))
	reg.panics["bad.pdf"] = true
	require.NoError(t, os.WriteFile(filepath.Join(in, "bad.pdf"), []byte("garbage"), 0o600))
	svc := newOutlineService(t, reg, nil)

	report, err := svc.OutlineDirectory(context.Background(), in, out)
	require.NoError(t, err)

	require.Len(t, report.Files, 2)
	assert.Equal(t, 1, report.Processed())
	assert.Equal(t, 1, report.Failed())

	data, err := os.ReadFile(filepath.Join(out, "bad.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "Document", "outline": []}`, string(data))
	assert.Equal(t, "Annual Report 2023", readOutline(t, filepath.Join(out, "good.json")).Title)
}

func TestStem(t *testing.T) {
	exts := []string{".pdf", ".layout.json", ".layout"}
	tests := []struct {
		path string
		want string
	}{
		{"/in/report.pdf", "report"},
		{"/in/Report.PDF", "Report"},
		{"/in/report.layout.json", "report"},
		{"/in/report.v2.pdf", "report.v2"},
		{"/in/archive.tar", "archive"},
		{".pdf", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, stem(tt.path, exts))
		})
	}
}
