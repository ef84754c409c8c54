package driving

import (
	"context"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// CollectionService ranks sections of a document collection for a persona.
type CollectionService interface {
	// LoadConfig reads the collection configuration from inputDir, or
	// builds the default one when no configuration file exists.
	LoadConfig(inputDir string) (domain.CollectionConfig, error)

	// Analyse runs the ranking for the configuration found in inputDir.
	Analyse(ctx context.Context, inputDir string) (*domain.CollectionResult, error)

	// AnalyseConfig runs the ranking for an explicit configuration.
	// Document names are resolved against baseDir.
	AnalyseConfig(ctx context.Context, baseDir string, cfg domain.CollectionConfig) (*domain.CollectionResult, error)

	// Run analyses inputDir and writes the result file to outputDir.
	// Any analysis failure writes the fallback result instead; only a
	// failure to write is returned as an error.
	Run(ctx context.Context, inputDir, outputDir string) (*domain.CollectionResult, error)
}
