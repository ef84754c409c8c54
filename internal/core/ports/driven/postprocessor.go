package driven

import (
	"context"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// PostProcessor refines outline candidates.
// PostProcessors are chained in a pipeline (e.g., dedupe, per-page cap, global cap).
type PostProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process takes candidates and returns the refined candidates.
	// Implementations must not modify the input slice.
	Process(ctx context.Context, candidates []domain.OutlineCandidate) ([]domain.OutlineCandidate, error)
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs the candidates through all processors in order.
	// Returns the final candidates after all processing.
	Process(ctx context.Context, candidates []domain.OutlineCandidate) ([]domain.OutlineCandidate, error)
}
