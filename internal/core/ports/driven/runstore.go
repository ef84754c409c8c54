package driven

import (
	"context"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// RunStore persists the history of outline and collection runs.
type RunStore interface {
	// Save stores a run.
	Save(ctx context.Context, run domain.Run) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*domain.Run, error)

	// List returns the most recent runs, newest first.
	// A limit of zero or less returns every run.
	List(ctx context.Context, limit int) ([]domain.Run, error)
}
