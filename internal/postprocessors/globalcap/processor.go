// Package globalcap limits the total size of an outline.
package globalcap

import (
	"context"
	"sort"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// Processor keeps the most confident candidates when an outline is too long.
type Processor struct {
	maxTotal int
}

// Option configures the global cap processor.
type Option func(*Processor)

// WithMaxTotal sets the number of headings kept per document.
func WithMaxTotal(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxTotal = n
		}
	}
}

// New creates a new global cap processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{maxTotal: domain.DefaultMaxTotal}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "globalcap"
}

// Process returns the input unchanged when it fits. Otherwise it keeps the
// maxTotal most confident candidates and restores page order.
func (p *Processor) Process(_ context.Context, candidates []domain.OutlineCandidate) ([]domain.OutlineCandidate, error) {
	if len(candidates) <= p.maxTotal {
		return candidates, nil
	}

	kept := make([]domain.OutlineCandidate, len(candidates))
	copy(kept, candidates)
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Confidence > kept[j].Confidence
	})
	kept = kept[:p.maxTotal]
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Page < kept[j].Page
	})

	return kept, nil
}
