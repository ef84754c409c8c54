// Package pagecap limits how many headings a single page contributes.
package pagecap

import (
	"context"
	"sort"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// Processor orders candidates by page then confidence and keeps the most
// confident few of each page.
type Processor struct {
	maxPerPage    int
	minConfidence float64
}

// Option configures the page cap processor.
type Option func(*Processor)

// WithMaxPerPage sets the number of headings kept per page.
func WithMaxPerPage(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxPerPage = n
		}
	}
}

// WithMinConfidence sets the confidence a heading needs to be kept.
func WithMinConfidence(c float64) Option {
	return func(p *Processor) {
		if c >= 0 && c <= 1 {
			p.minConfidence = c
		}
	}
}

// New creates a new page cap processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		maxPerPage:    domain.DefaultMaxPerPage,
		minConfidence: domain.DefaultMinConfidence,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "pagecap"
}

// Process sorts ascending by page, descending by confidence within a page,
// then keeps a candidate only while its page is under the cap and its
// confidence meets the cutoff.
func (p *Processor) Process(_ context.Context, candidates []domain.OutlineCandidate) ([]domain.OutlineCandidate, error) {
	sorted := make([]domain.OutlineCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Page != sorted[j].Page {
			return sorted[i].Page < sorted[j].Page
		}
		return sorted[i].Confidence > sorted[j].Confidence
	})

	counts := make(map[int]int)
	out := make([]domain.OutlineCandidate, 0, len(sorted))
	for _, c := range sorted {
		if counts[c.Page] >= p.maxPerPage || c.Confidence < p.minConfidence {
			continue
		}
		out = append(out, c)
		counts[c.Page]++
	}

	return out, nil
}
