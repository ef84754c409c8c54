// Package mcp provides an MCP (Model Context Protocol) server adapter for docsift.
// It lets AI assistants outline documents and rank collection sections.
package mcp

import "errors"

var (
	// ErrMissingOutlineService is returned when the outline service is not provided.
	ErrMissingOutlineService = errors.New("mcp: outline service is required")

	// ErrMissingCollectionService is returned when the collection service is not provided.
	ErrMissingCollectionService = errors.New("mcp: collection service is required")
)
