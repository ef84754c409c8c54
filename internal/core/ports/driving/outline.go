package driving

import (
	"context"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// OutlineService extracts titles and heading outlines from documents.
type OutlineService interface {
	// Outline extracts the outline of a single file.
	// Returns an error when the file cannot be extracted; callers decide
	// whether to fall back.
	Outline(ctx context.Context, path string) (*domain.OutlineResult, error)

	// OutlineLayout runs outline detection over an already extracted layout.
	OutlineLayout(ctx context.Context, layout *domain.Layout) (*domain.OutlineResult, error)

	// WriteOutline extracts a file and writes "<stem>.json" to outputDir,
	// writing the fallback outline when extraction fails.
	WriteOutline(ctx context.Context, path, outputDir string) domain.FileReport

	// OutlineDirectory processes every supported file in inputDir.
	// Per-file failures never abort the batch.
	OutlineDirectory(ctx context.Context, inputDir, outputDir string) (*domain.BatchReport, error)
}
