package driving

import (
	"context"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// HistoryService exposes recorded runs.
type HistoryService interface {
	// List returns the most recent runs, newest first.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*domain.Run, error)
}
