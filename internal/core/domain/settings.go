package domain

import (
	"fmt"
	"runtime"
)

// Outline post-processing defaults.
const (
	DefaultMaxPerPage    = 5
	DefaultMaxTotal      = 20
	DefaultMinConfidence = 0.7
)

// Ranking defaults.
const (
	DefaultMaxSections    = 10
	DefaultMaxPerDocument = 3
	DefaultMinScore       = 0.3
)

// DefaultCollectionOutput is the file a collection run writes.
const DefaultCollectionOutput = "challenge1b_output.json"

// OutlineSettings controls outline post-processing.
type OutlineSettings struct {
	// MaxPerPage caps the headings kept per page.
	MaxPerPage int

	// MaxTotal caps the headings kept per document.
	MaxTotal int

	// MinConfidence is the heading precision cutoff.
	MinConfidence float64
}

// RankingSettings controls diversity-constrained section selection.
type RankingSettings struct {
	// MaxSections caps the sections selected across the collection.
	MaxSections int

	// MaxPerDocument caps the sections selected from one document.
	MaxPerDocument int

	// MinScore is the lowest relevance score a selected section may have.
	MinScore float64
}

// CollectionSettings holds defaults for collection runs without a config file.
type CollectionSettings struct {
	DefaultPersona string
	DefaultJob     string

	// OutputFile is the result file name written to the output directory.
	OutputFile string
}

// BatchSettings controls document-level parallelism.
type BatchSettings struct {
	// Workers is the number of documents processed concurrently.
	Workers int
}

// WatchSettings throttles reprocessing triggered by file events.
type WatchSettings struct {
	// Rate is the number of reprocessing events allowed per second.
	Rate float64

	// Burst is the number of events allowed at once.
	Burst int
}

// AppSettings holds all application settings.
type AppSettings struct {
	Outline    OutlineSettings
	Ranking    RankingSettings
	Collection CollectionSettings
	Batch      BatchSettings
	Watch      WatchSettings
}

// DefaultAppSettings returns settings with the documented defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Outline: OutlineSettings{
			MaxPerPage:    DefaultMaxPerPage,
			MaxTotal:      DefaultMaxTotal,
			MinConfidence: DefaultMinConfidence,
		},
		Ranking: RankingSettings{
			MaxSections:    DefaultMaxSections,
			MaxPerDocument: DefaultMaxPerDocument,
			MinScore:       DefaultMinScore,
		},
		Collection: CollectionSettings{
			DefaultPersona: DefaultPersona,
			DefaultJob:     DefaultJob,
			OutputFile:     DefaultCollectionOutput,
		},
		Batch: BatchSettings{
			Workers: runtime.NumCPU(),
		},
		Watch: WatchSettings{
			Rate:  2,
			Burst: 1,
		},
	}
}

// Validate rejects settings that would make a pipeline produce nothing.
func (s AppSettings) Validate() error {
	switch {
	case s.Outline.MaxPerPage <= 0:
		return fmt.Errorf("%w: outline.max_per_page must be positive", ErrConfigInvalid)
	case s.Outline.MaxTotal <= 0:
		return fmt.Errorf("%w: outline.max_total must be positive", ErrConfigInvalid)
	case s.Outline.MinConfidence < 0 || s.Outline.MinConfidence > 1:
		return fmt.Errorf("%w: outline.min_confidence must be in [0,1]", ErrConfigInvalid)
	case s.Ranking.MaxSections <= 0:
		return fmt.Errorf("%w: ranking.max_sections must be positive", ErrConfigInvalid)
	case s.Ranking.MaxPerDocument <= 0:
		return fmt.Errorf("%w: ranking.max_per_document must be positive", ErrConfigInvalid)
	case s.Ranking.MinScore < 0 || s.Ranking.MinScore > 1:
		return fmt.Errorf("%w: ranking.min_score must be in [0,1]", ErrConfigInvalid)
	case s.Collection.OutputFile == "":
		return fmt.Errorf("%w: collection.output_file must be set", ErrConfigInvalid)
	case s.Batch.Workers <= 0:
		return fmt.Errorf("%w: batch.workers must be positive", ErrConfigInvalid)
	case s.Watch.Rate <= 0 || s.Watch.Burst <= 0:
		return fmt.Errorf("%w: watch.rate and watch.burst must be positive", ErrConfigInvalid)
	}
	return nil
}

// PipelineConfig holds post-processor pipeline configuration.
// Uses generic map-based config for extensibility - new processors can be added
// without modifying this struct.
type PipelineConfig struct {
	// Processors is the ordered list of processor names to run.
	Processors []string

	// ProcessorConfigs holds per-processor configuration as generic maps.
	// Key is processor name, value is processor-specific config.
	ProcessorConfigs map[string]map[string]any
}

// GetProcessorConfig returns config for a specific processor, or nil if not set.
func (c *PipelineConfig) GetProcessorConfig(name string) map[string]any {
	if c.ProcessorConfigs == nil {
		return nil
	}
	return c.ProcessorConfigs[name]
}

// OutlinePipelineConfig returns the outline post-processing pipeline for the settings.
// Order matters: duplicates go first, the per-page pass sorts and filters,
// the global cap runs last.
func OutlinePipelineConfig(s OutlineSettings) PipelineConfig {
	return PipelineConfig{
		Processors: []string{"dedupe", "pagecap", "globalcap"},
		ProcessorConfigs: map[string]map[string]any{
			"pagecap": {
				"max_per_page":   s.MaxPerPage,
				"min_confidence": s.MinConfidence,
			},
			"globalcap": {
				"max_total": s.MaxTotal,
			},
		},
	}
}
