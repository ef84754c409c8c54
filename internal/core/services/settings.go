package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// keyPipelineProcessors overrides the outline post-processor order.
const keyPipelineProcessors = "pipeline.processors"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// settingFields maps every config key to the field it populates.
// Values are *int, *float64 or *string.
func settingFields(s *domain.AppSettings) map[string]any {
	return map[string]any{
		"outline.max_per_page":       &s.Outline.MaxPerPage,
		"outline.max_total":          &s.Outline.MaxTotal,
		"outline.min_confidence":     &s.Outline.MinConfidence,
		"ranking.max_sections":       &s.Ranking.MaxSections,
		"ranking.max_per_document":   &s.Ranking.MaxPerDocument,
		"ranking.min_score":          &s.Ranking.MinScore,
		"collection.default_persona": &s.Collection.DefaultPersona,
		"collection.default_job":     &s.Collection.DefaultJob,
		"collection.output_file":     &s.Collection.OutputFile,
		"batch.workers":              &s.Batch.Workers,
		"watch.rate":                 &s.Watch.Rate,
		"watch.burst":                &s.Watch.Burst,
	}
}

// Get retrieves current application settings. Missing keys take their
// defaults; the result is validated.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()

	for key, field := range settingFields(&settings) {
		if _, ok := s.configStore.Get(key); !ok {
			continue
		}
		switch f := field.(type) {
		case *int:
			*f = s.configStore.GetInt(key)
		case *float64:
			*f = s.configStore.GetFloat(key)
		case *string:
			*f = s.configStore.GetString(key)
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	fields := settingFields(settings)
	for _, key := range sortedKeys(fields) {
		var value any
		switch f := fields[key].(type) {
		case *int:
			value = *f
		case *float64:
			value = *f
		case *string:
			value = *f
		}
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// Set parses value according to the key's type, checks the resulting
// settings are valid, then stores it.
func (s *SettingsService) Set(key, value string) error {
	current, err := s.Get()
	if err != nil {
		defaults := domain.DefaultAppSettings()
		current = &defaults
	}

	field, ok := settingFields(current)[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var parsed any
	switch f := field.(type) {
	case *int:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s expects an integer", domain.ErrConfigInvalid, key)
		}
		*f, parsed = n, n
	case *float64:
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%w: %s expects a number", domain.ErrConfigInvalid, key)
		}
		*f, parsed = n, n
	case *string:
		*f, parsed = value, value
	}

	if err := current.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns every supported setting key, sorted.
func (s *SettingsService) Keys() []string {
	defaults := domain.DefaultAppSettings()
	return sortedKeys(settingFields(&defaults))
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// GetPipelineConfig returns the outline post-processor pipeline configuration.
// The processor order may be overridden with pipeline.processors.
func (s *SettingsService) GetPipelineConfig() domain.PipelineConfig {
	outline := domain.DefaultAppSettings().Outline
	if settings, err := s.Get(); err == nil {
		outline = settings.Outline
	}

	cfg := domain.OutlinePipelineConfig(outline)
	if processors := s.configStore.GetStringSlice(keyPipelineProcessors); len(processors) > 0 {
		cfg.Processors = processors
	}
	return cfg
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
