package normalisers

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry dispatches documents to the highest-priority extractor that
// supports their file extension. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	extractors []driven.LayoutExtractor
}

// NewRegistry creates a registry with the given extractors.
func NewRegistry(extractors ...driven.LayoutExtractor) *Registry {
	r := &Registry{}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Register adds an extractor, keeping the list ordered by priority.
// Extractors of equal priority keep registration order.
func (r *Registry) Register(extractor driven.LayoutExtractor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.extractors = append(r.extractors, extractor)
	sort.SliceStable(r.extractors, func(i, j int) bool {
		return r.extractors[i].Priority() > r.extractors[j].Priority()
	})
}

// Extract reads a document with the best matching extractor.
func (r *Registry) Extract(ctx context.Context, path string) (*domain.Layout, error) {
	extractor := r.find(path)
	if extractor == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, filepath.Ext(path))
	}

	logger.Debug("extracting %s with %s", filepath.Base(path), extractor.Name())
	return extractor.Extract(ctx, path)
}

// Supports reports whether any extractor handles the file.
func (r *Registry) Supports(path string) bool {
	return r.find(path) != nil
}

// SupportedExtensions returns every handled extension, sorted.
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, e := range r.extractors {
		for _, ext := range e.SupportedExtensions() {
			seen[ext] = struct{}{}
		}
	}

	exts := make([]string, 0, len(seen))
	for ext := range seen {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// find matches extensions as suffixes so compound extensions such as
// ".layout.json" are distinguished from plain ".json".
func (r *Registry) find(path string) driven.LayoutExtractor {
	name := strings.ToLower(filepath.Base(path))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.extractors {
		for _, supported := range e.SupportedExtensions() {
			if strings.HasSuffix(name, supported) && len(name) > len(supported) {
				return e
			}
		}
	}
	return nil
}
