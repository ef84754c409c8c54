package mcp

import (
	"github.com/custodia-labs/docsift/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Outline extracts document outlines.
	Outline driving.OutlineService

	// Collection ranks collection sections for a persona.
	Collection driving.CollectionService

	// History exposes recorded runs. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Outline == nil {
		return ErrMissingOutlineService
	}
	if p.Collection == nil {
		return ErrMissingCollectionService
	}
	return nil
}
