package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/core/ports/driving"
	"github.com/custodia-labs/docsift/internal/logger"
	"github.com/custodia-labs/docsift/internal/structure"
)

// Ensure OutlineService implements the interface.
var _ driving.OutlineService = (*OutlineService)(nil)

// OutlineService extracts a title and heading outline from documents.
type OutlineService struct {
	extractors driven.ExtractorRegistry
	pipeline   driven.PostProcessorPipeline
	runs       driven.RunStore
	settings   domain.AppSettings
}

// NewOutlineService creates a new outline service.
// runs may be nil, in which case batches are not recorded.
func NewOutlineService(
	extractors driven.ExtractorRegistry,
	pipeline driven.PostProcessorPipeline,
	runs driven.RunStore,
	settings domain.AppSettings,
) *OutlineService {
	return &OutlineService{
		extractors: extractors,
		pipeline:   pipeline,
		runs:       runs,
		settings:   settings,
	}
}

// Outline extracts the outline of a single file.
// A panic while extracting or outlining is returned as an error.
func (s *OutlineService) Outline(ctx context.Context, path string) (result *domain.OutlineResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%w: %v", errPanic, r)
		}
	}()

	layout, err := s.extractors.Extract(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.OutlineLayout(ctx, layout)
}

// OutlineLayout runs title extraction, heading detection and
// post-processing over a layout.
func (s *OutlineService) OutlineLayout(ctx context.Context, layout *domain.Layout) (*domain.OutlineResult, error) {
	if layout == nil {
		return nil, fmt.Errorf("%w: nil layout", domain.ErrInvalidInput)
	}

	elements := layout.Elements()
	stats := structure.ComputeStatistics(elements)
	title := structure.ExtractTitle(elements, stats)

	candidates := structure.DetectHeadings(elements, stats, s.settings.Outline.MinConfidence)
	logger.Debug("%s: %d heading candidates", layout.Name, len(candidates))

	refined, err := s.pipeline.Process(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("post-process %s: %w", layout.Name, err)
	}

	result := &domain.OutlineResult{
		Title:   title,
		Outline: make([]domain.OutlineEntry, 0, len(refined)),
	}
	for _, c := range refined {
		result.Outline = append(result.Outline, c.Entry())
	}
	return result, nil
}

// WriteOutline extracts path and writes "<stem>.json" into outputDir.
// Extraction failures write the fallback outline.
func (s *OutlineService) WriteOutline(ctx context.Context, path, outputDir string) domain.FileReport {
	start := time.Now()
	report := domain.FileReport{Name: filepath.Base(path)}

	result, err := s.Outline(ctx, path)
	if err != nil {
		logger.Warn("%s: %v; writing fallback outline", report.Name, err)
		report.Err = err.Error()
		fallback := domain.FallbackOutline()
		result = &fallback
	}
	report.Headings = len(result.Outline)

	report.Output = filepath.Join(outputDir, stem(path, s.extractors.SupportedExtensions())+".json")
	if err := writeJSON(report.Output, result); err != nil {
		logger.Error("%v", err)
		report.Err = err.Error()
	}

	report.Duration = time.Since(start)
	logger.Info("%s: %d headings in %.2fs", report.Name, report.Headings, report.Duration.Seconds())
	return report
}

// OutlineDirectory writes an outline for every supported file in inputDir.
// Files are processed concurrently up to batch.workers; reports keep
// input order.
func (s *OutlineService) OutlineDirectory(ctx context.Context, inputDir, outputDir string) (*domain.BatchReport, error) {
	start := time.Now()

	names, err := listFiles(inputDir, s.extractors.Supports)
	if err != nil {
		return nil, err
	}
	logger.Section(fmt.Sprintf("Outlining %d documents", len(names)))

	report := &domain.BatchReport{Files: make([]domain.FileReport, len(names))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.Batch.Workers)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Files[i] = s.WriteOutline(gctx, filepath.Join(inputDir, name), outputDir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Duration = time.Since(start)
	logger.Timed("batch", start)

	report.RunID = s.record(ctx, inputDir, report, start)
	return report, nil
}

// batchSummary is the stored result of an outline batch.
type batchSummary struct {
	File     string `json:"file"`
	Output   string `json:"output"`
	Headings int    `json:"headings"`
	Error    string `json:"error,omitempty"`
}

// record saves the batch to run history. Failures are logged only.
func (s *OutlineService) record(ctx context.Context, input string, report *domain.BatchReport, start time.Time) string {
	if s.runs == nil {
		return ""
	}

	summary := make([]batchSummary, 0, len(report.Files))
	for _, f := range report.Files {
		summary = append(summary, batchSummary{File: f.Name, Output: f.Output, Headings: f.Headings, Error: f.Err})
	}
	data, err := encodeJSON(summary)
	if err != nil {
		logger.Warn("encode run summary: %v", err)
		return ""
	}

	run := domain.Run{
		ID:        uuid.New().String(),
		Kind:      domain.RunKindOutline,
		Input:     input,
		Documents: report.Processed(),
		Failures:  report.Failed(),
		Result:    data,
		StartedAt: start,
		Duration:  report.Duration,
	}
	if err := s.runs.Save(ctx, run); err != nil {
		logger.Warn("record run: %v", err)
		return ""
	}
	return run.ID
}
