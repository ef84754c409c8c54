package postprocessors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// mockProcessor is a test processor that returns predefined candidates.
type mockProcessor struct {
	name       string
	candidates []domain.OutlineCandidate
	err        error
	calls      *[]string
}

func (m *mockProcessor) Name() string {
	return m.name
}

func (m *mockProcessor) Process(
	_ context.Context, candidates []domain.OutlineCandidate,
) ([]domain.OutlineCandidate, error) {
	if m.calls != nil {
		*m.calls = append(*m.calls, m.name)
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.candidates != nil {
		return m.candidates, nil
	}
	return candidates, nil
}

func TestNewPipeline(t *testing.T) {
	p := NewPipeline()
	if p == nil {
		t.Fatal("expected non-nil pipeline")
	}
	if p.Len() != 0 {
		t.Errorf("expected 0 processors, got %d", p.Len())
	}
}

func TestPipeline_Add(t *testing.T) {
	p := NewPipeline()
	p.Add(&mockProcessor{name: "test"})

	if p.Len() != 1 {
		t.Errorf("expected 1 processor, got %d", p.Len())
	}
}

func TestPipeline_Process_EmptyPipeline(t *testing.T) {
	p := NewPipeline()
	in := []domain.OutlineCandidate{{Text: "Intro", Page: 0, Confidence: 0.9}}

	out, err := p.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Text != "Intro" {
		t.Errorf("expected input unchanged, got %v", out)
	}
}

func TestPipeline_Process_RunsInOrder(t *testing.T) {
	var calls []string
	p := NewPipeline(
		&mockProcessor{name: "first", calls: &calls},
		&mockProcessor{name: "second", calls: &calls},
		&mockProcessor{name: "third", calls: &calls},
	)

	if _, err := p.Process(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fmt.Sprint(calls) != "[first second third]" {
		t.Errorf("unexpected call order %v", calls)
	}
}

func TestPipeline_Process_PassesOutputAlong(t *testing.T) {
	replaced := []domain.OutlineCandidate{{Text: "Replaced", Page: 2, Confidence: 1}}
	p := NewPipeline(
		&mockProcessor{name: "replace", candidates: replaced},
		&mockProcessor{name: "passthrough"},
	)

	out, err := p.Process(context.Background(), []domain.OutlineCandidate{{Text: "Original"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Text != "Replaced" {
		t.Errorf("expected replaced candidates, got %v", out)
	}
}

func TestPipeline_Process_ErrorStops(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	p := NewPipeline(
		&mockProcessor{name: "failing", err: boom, calls: &calls},
		&mockProcessor{name: "never", calls: &calls},
	)

	_, err := p.Process(context.Background(), nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom error, got %v", err)
	}
	if len(calls) != 1 {
		t.Errorf("expected pipeline to stop after failure, calls %v", calls)
	}
}

func TestPipeline_Process_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(&mockProcessor{name: "test"})
	if _, err := p.Process(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPipeline_Names(t *testing.T) {
	p := NewPipeline(&mockProcessor{name: "a"}, &mockProcessor{name: "b"})
	names := p.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestOutlinePipeline_Defaults(t *testing.T) {
	p, err := OutlinePipeline(domain.DefaultAppSettings().Outline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fmt.Sprint(p.Names()) != "[dedupe pagecap globalcap]" {
		t.Errorf("unexpected stages %v", p.Names())
	}
}

func TestOutlinePipeline_DuplicateConclusion(t *testing.T) {
	p, err := OutlinePipeline(domain.DefaultAppSettings().Outline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := []domain.OutlineCandidate{
		{Level: domain.H1, Text: "Conclusion", Page: 4, Confidence: 0.9},
		{Level: domain.H1, Text: "Conclusion", Page: 4, Confidence: 0.85},
	}
	out, err := p.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected single Conclusion entry, got %v", out)
	}
}

func generatedCandidates() []domain.OutlineCandidate {
	var in []domain.OutlineCandidate
	for page := 0; page < 6; page++ {
		for i := 0; i < 9; i++ {
			in = append(in, domain.OutlineCandidate{
				Level:      domain.H2,
				Text:       fmt.Sprintf("Heading %d", i%7),
				Page:       page,
				Confidence: 0.6 + float64((page*9+i)%40)/100,
			})
		}
	}
	return in
}

func TestOutlinePipeline_Caps(t *testing.T) {
	p, err := OutlinePipeline(domain.DefaultAppSettings().Outline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := p.Process(context.Background(), generatedCandidates())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) > domain.DefaultMaxTotal {
		t.Errorf("expected at most %d entries, got %d", domain.DefaultMaxTotal, len(out))
	}

	perPage := make(map[int]int)
	seen := make(map[string]bool)
	for i, c := range out {
		perPage[c.Page]++
		if perPage[c.Page] > domain.DefaultMaxPerPage {
			t.Errorf("page %d exceeds per-page cap", c.Page)
		}
		if c.Confidence < domain.DefaultMinConfidence {
			t.Errorf("entry below confidence cutoff: %+v", c)
		}
		k := fmt.Sprintf("%d|%s", c.Page, c.Text)
		if seen[k] {
			t.Errorf("duplicate entry %s", k)
		}
		seen[k] = true
		if i > 0 && out[i-1].Page > c.Page {
			t.Error("entries not in page order")
		}
	}
}

func TestOutlinePipeline_Idempotent(t *testing.T) {
	p, err := OutlinePipeline(domain.DefaultAppSettings().Outline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	once, err := p.Process(context.Background(), generatedCandidates())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := p.Process(context.Background(), once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("second pass changed entry %d: %+v -> %+v", i, once[i], twice[i])
		}
	}
}
