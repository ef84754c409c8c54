package driving

import "github.com/custodia-labs/docsift/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses and stores a single setting by its dotted key.
	Set(key, value string) error

	// Keys returns every supported setting key, sorted.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// GetPipelineConfig returns the outline post-processor pipeline configuration.
	GetPipelineConfig() domain.PipelineConfig
}
