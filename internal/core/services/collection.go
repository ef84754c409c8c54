package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/core/ports/driving"
	"github.com/custodia-labs/docsift/internal/logger"
	"github.com/custodia-labs/docsift/internal/relevance"
)

// Ensure CollectionService implements the interface.
var _ driving.CollectionService = (*CollectionService)(nil)

// configExtension is the suffix of a collection configuration file.
const configExtension = ".json"

// CollectionService ranks the sections of a document collection for a persona.
type CollectionService struct {
	extractors driven.ExtractorRegistry
	runs       driven.RunStore
	settings   domain.AppSettings
	now        func() time.Time
}

// NewCollectionService creates a new collection service.
// runs may be nil, in which case runs are not recorded.
func NewCollectionService(
	extractors driven.ExtractorRegistry,
	runs driven.RunStore,
	settings domain.AppSettings,
) *CollectionService {
	return &CollectionService{
		extractors: extractors,
		runs:       runs,
		settings:   settings,
		now:        time.Now,
	}
}

// LoadConfig reads the first configuration file in inputDir, in name order.
// Without one, every supported document in the directory is analysed
// with the default persona and job.
func (s *CollectionService) LoadConfig(inputDir string) (domain.CollectionConfig, error) {
	configs, err := listFiles(inputDir, s.isConfigFile)
	if err != nil {
		return domain.CollectionConfig{}, err
	}

	var cfg domain.CollectionConfig
	if len(configs) > 0 {
		path := filepath.Join(inputDir, configs[0])
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.CollectionConfig{}, fmt.Errorf("read %s: %w", configs[0], err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return domain.CollectionConfig{}, fmt.Errorf("%w: %s: %v", domain.ErrConfigInvalid, configs[0], err)
		}
		logger.Debug("collection config: %s", configs[0])
	} else {
		cfg.Persona = s.settings.Collection.DefaultPersona
		cfg.Job = s.settings.Collection.DefaultJob
	}

	if len(cfg.Documents) == 0 {
		docs, err := listFiles(inputDir, s.extractors.Supports)
		if err != nil {
			return domain.CollectionConfig{}, err
		}
		cfg.Documents = docs
	}

	return cfg, cfg.Validate()
}

// isConfigFile reports whether name is a JSON file no extractor claims.
func (s *CollectionService) isConfigFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), configExtension) && !s.extractors.Supports(name)
}

// Analyse ranks the collection described by the configuration in inputDir.
func (s *CollectionService) Analyse(ctx context.Context, inputDir string) (*domain.CollectionResult, error) {
	cfg, err := s.LoadConfig(inputDir)
	if err != nil {
		return nil, err
	}
	return s.AnalyseConfig(ctx, inputDir, cfg)
}

// AnalyseConfig extracts every document in cfg concurrently, then segments,
// scores and ranks their sections. Documents that fail to extract are
// skipped with a warning.
func (s *CollectionService) AnalyseConfig(
	ctx context.Context, baseDir string, cfg domain.CollectionConfig,
) (*domain.CollectionResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	layouts := make([]*domain.Layout, len(cfg.Documents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.Batch.Workers)
	for i, doc := range cfg.Documents {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			layout, err := s.extract(gctx, filepath.Join(baseDir, doc))
			if err != nil {
				logger.Warn("skipping %s: %v", doc, err)
				return nil
			}
			layout.Name = doc
			layouts[i] = layout
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Timed("extraction", start)

	var sections []domain.Section
	for _, layout := range layouts {
		if layout == nil {
			continue
		}
		segmented := relevance.Segment(layout)
		logger.Debug("%s: %d sections", layout.Name, len(segmented))
		sections = append(sections, segmented...)
	}

	profile := relevance.BuildProfile(cfg.Persona, cfg.Job)
	logger.Debug("persona type %s, %d job priorities", profile.Type, len(profile.JobPriorities))

	ranked := relevance.NewRanker(s.settings.Ranking).Rank(relevance.ScoreAll(sections, profile))
	logger.Info("selected %d of %d sections", len(ranked), len(sections))

	result := domain.NewCollectionResult(cfg, ranked, s.now())
	return &result, nil
}

// extract reads one document, turning an extractor panic into an error.
func (s *CollectionService) extract(ctx context.Context, path string) (layout *domain.Layout, err error) {
	defer func() {
		if r := recover(); r != nil {
			layout, err = nil, fmt.Errorf("%w: %v", errPanic, r)
		}
	}()
	return s.extractors.Extract(ctx, path)
}

// Run analyses inputDir and writes the result file into outputDir.
// Any analysis failure, including a panic, writes the fallback result.
func (s *CollectionService) Run(ctx context.Context, inputDir, outputDir string) (*domain.CollectionResult, error) {
	start := time.Now()
	logger.Section("Collection analysis")

	result, err := s.analyseRecovered(ctx, inputDir)
	if err != nil {
		logger.Error("collection analysis failed: %v; writing fallback result", err)
		fallback := domain.FallbackCollection(s.now())
		result = &fallback
	}

	path := filepath.Join(outputDir, s.settings.Collection.OutputFile)
	if werr := writeJSON(path, result); werr != nil {
		return result, werr
	}
	logger.Timed("collection", start)

	s.record(ctx, inputDir, result, err, start)
	return result, nil
}

// errPanic marks a recovered panic.
var errPanic = errors.New("panic")

func (s *CollectionService) analyseRecovered(ctx context.Context, inputDir string) (result *domain.CollectionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%w: %v", errPanic, r)
		}
	}()
	return s.Analyse(ctx, inputDir)
}

// record saves the run to history. Failures are logged only.
func (s *CollectionService) record(
	ctx context.Context, input string, result *domain.CollectionResult, runErr error, start time.Time,
) {
	if s.runs == nil {
		return
	}

	data, err := encodeJSON(result)
	if err != nil {
		logger.Warn("encode run result: %v", err)
		return
	}

	run := domain.Run{
		ID:        uuid.New().String(),
		Kind:      domain.RunKindCollection,
		Input:     input,
		Documents: len(result.Metadata.InputDocuments),
		Result:    data,
		StartedAt: start,
		Duration:  time.Since(start),
	}
	if runErr != nil {
		run.Failures = 1
	}
	if err := s.runs.Save(ctx, run); err != nil {
		logger.Warn("record run: %v", err)
	}
}
