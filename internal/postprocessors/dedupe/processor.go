// Package dedupe removes repeated headings from an outline.
package dedupe

import (
	"context"
	"strings"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// Processor drops candidates whose lowercased text repeats on the same page.
// The first occurrence wins.
type Processor struct{}

// New creates a new dedupe processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "dedupe"
}

type key struct {
	text string
	page int
}

// Process removes duplicates, preserving input order.
func (p *Processor) Process(_ context.Context, candidates []domain.OutlineCandidate) ([]domain.OutlineCandidate, error) {
	seen := make(map[key]struct{}, len(candidates))
	out := make([]domain.OutlineCandidate, 0, len(candidates))

	for _, c := range candidates {
		k := key{text: strings.ToLower(strings.TrimSpace(c.Text)), page: c.Page}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}

	return out, nil
}
