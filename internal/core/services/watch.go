package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/core/ports/driving"
	"github.com/custodia-labs/docsift/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService writes outlines for documents as they land in a directory.
type WatchService struct {
	outlines   driving.OutlineService
	extractors driven.ExtractorRegistry
	limiter    *rate.Limiter
}

// NewWatchService creates a watch service throttled by the watch settings.
func NewWatchService(
	outlines driving.OutlineService,
	extractors driven.ExtractorRegistry,
	settings domain.WatchSettings,
) *WatchService {
	return &WatchService{
		outlines:   outlines,
		extractors: extractors,
		limiter:    rate.NewLimiter(rate.Limit(settings.Rate), settings.Burst),
	}
}

// Watch outlines the existing documents in inputDir, then every supported
// file created or written there until ctx is cancelled.
func (s *WatchService) Watch(ctx context.Context, inputDir, outputDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(inputDir); err != nil {
		return fmt.Errorf("watch %s: %w", inputDir, err)
	}

	if _, err := s.outlines.OutlineDirectory(ctx, inputDir, outputDir); err != nil {
		return err
	}
	logger.Info("watching %s", inputDir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path, ok := s.handleEvent(event)
			if !ok {
				continue
			}
			if err := s.limiter.Wait(ctx); err != nil {
				return nil
			}
			report := s.outlines.WriteOutline(ctx, path, outputDir)
			if report.Failed() {
				logger.Warn("%s: %s", report.Name, report.Err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: %v", err)
		}
	}
}

// handleEvent returns the document to reprocess for an event.
// Only creates and writes of visible, supported regular files qualify.
func (s *WatchService) handleEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}

	name := filepath.Base(event.Name)
	if isHidden(name) || !s.extractors.Supports(name) {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return event.Name, true
}
