// Command docsift extracts document outlines and ranks collection sections.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/docsift/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsift/internal/adapters/driven/preflight"
	"github.com/custodia-labs/docsift/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsift/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docsift/internal/adapters/driving/cli"
	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/core/services"
	"github.com/custodia-labs/docsift/internal/logger"
	"github.com/custodia-labs/docsift/internal/normalisers"
	"github.com/custodia-labs/docsift/internal/postprocessors"
)

// version is set via -ldflags "-X main.version=...".
var version = "dev"

// homeEnv overrides the configuration and data directory.
const homeEnv = "DOCSIFT_HOME"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	home := os.Getenv(homeEnv)
	if home == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return fmt.Errorf("locating home directory: %w", err)
		}
		home = dir
	}

	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore(home)
	if err != nil {
		logger.Warn("config unavailable: %v; settings will not persist", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("%v; using default settings", err)
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}

	var runs driven.RunStore
	store, err := sqlite.NewStore(filepath.Join(home, "data"))
	if err != nil {
		logger.Warn("run history unavailable: %v", err)
		runs = memory.NewRunStore()
	} else {
		defer store.Close()
		runs = store.RunStore()
	}

	pipeline, err := buildPipeline(settingsService.GetPipelineConfig())
	if err != nil {
		return err
	}

	extractors := normalisers.DefaultRegistry(preflight.New())
	outlineService := services.NewOutlineService(extractors, pipeline, runs, *settings)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Outline:    outlineService,
		Collection: services.NewCollectionService(extractors, runs, *settings),
		Watch:      services.NewWatchService(outlineService, extractors, settings.Watch),
		History:    services.NewHistoryService(runs),
		Settings:   settingsService,
	})

	return cli.Execute(ctx)
}

func buildPipeline(cfg domain.PipelineConfig) (*postprocessors.Pipeline, error) {
	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)

	pipeline, err := registry.BuildPipeline(cfg)
	if err != nil {
		return nil, fmt.Errorf("building outline pipeline: %w", err)
	}
	return pipeline, nil
}
