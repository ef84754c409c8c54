package postprocessors

import (
	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/postprocessors/dedupe"
	"github.com/custodia-labs/docsift/internal/postprocessors/globalcap"
	"github.com/custodia-labs/docsift/internal/postprocessors/pagecap"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register("dedupe", buildDedupe)
	r.Register("pagecap", buildPageCap)
	r.Register("globalcap", buildGlobalCap)
}

// OutlinePipeline builds the default outline pipeline for the given settings.
func OutlinePipeline(s domain.OutlineSettings) (*Pipeline, error) {
	r := NewRegistry()
	RegisterDefaults(r)
	return r.BuildPipeline(domain.OutlinePipelineConfig(s))
}

func buildDedupe(_ map[string]any) (driven.PostProcessor, error) {
	return dedupe.New(), nil
}

// buildPageCap creates a per-page cap processor from generic config.
// Supported config keys:
//   - max_per_page (int): Headings kept per page (default: 5)
//   - min_confidence (float): Confidence cutoff (default: 0.7)
func buildPageCap(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []pagecap.Option

	if cfg != nil {
		if n := getIntFromConfig(cfg, "max_per_page"); n > 0 {
			opts = append(opts, pagecap.WithMaxPerPage(n))
		}
		if c, ok := getFloatFromConfig(cfg, "min_confidence"); ok {
			opts = append(opts, pagecap.WithMinConfidence(c))
		}
	}

	return pagecap.New(opts...), nil
}

// buildGlobalCap creates a global cap processor from generic config.
// Supported config keys:
//   - max_total (int): Headings kept per document (default: 20)
func buildGlobalCap(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []globalcap.Option

	if cfg != nil {
		if n := getIntFromConfig(cfg, "max_total"); n > 0 {
			opts = append(opts, globalcap.WithMaxTotal(n))
		}
	}

	return globalcap.New(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// getFloatFromConfig extracts a float from generic config map.
func getFloatFromConfig(cfg map[string]any, key string) (float64, bool) {
	val, ok := cfg[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
