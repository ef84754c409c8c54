package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// OutlineInput is the input schema for the outline_document tool.
type OutlineInput struct {
	Path string `json:"path" jsonschema:"path of the PDF or layout file to outline"`
}

// OutlineOutput is the output schema for the outline_document tool.
type OutlineOutput struct {
	Title   string                `json:"title"`
	Outline []domain.OutlineEntry `json:"outline"`
	Count   int                   `json:"count"`
}

// RankInput is the input schema for the rank_sections tool.
type RankInput struct {
	InputDir  string   `json:"input_dir" jsonschema:"directory holding the collection documents"`
	Documents []string `json:"documents,omitempty" jsonschema:"document file names; defaults to the directory's configuration"`
	Persona   string   `json:"persona,omitempty" jsonschema:"who is reading, e.g. PhD Researcher in Computational Biology"`
	Job       string   `json:"job_to_be_done,omitempty" jsonschema:"what the reader needs to accomplish"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "outline_document",
		Description: "Extract the title and H1/H2/H3 heading outline of a document",
	}, s.handleOutline)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rank_sections",
		Description: "Rank the sections of a document collection by relevance to a persona and task",
	}, s.handleRank)
}

// handleOutline handles the outline_document tool invocation.
func (s *Server) handleOutline(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OutlineInput,
) (*mcp.CallToolResult, OutlineOutput, error) {
	if input.Path == "" {
		return nil, OutlineOutput{}, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}

	result, err := s.ports.Outline.Outline(ctx, input.Path)
	if err != nil {
		return nil, OutlineOutput{}, err
	}

	return nil, OutlineOutput{
		Title:   result.Title,
		Outline: result.Outline,
		Count:   len(result.Outline),
	}, nil
}

// handleRank handles the rank_sections tool invocation. Explicit inputs
// override the directory's configuration.
func (s *Server) handleRank(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RankInput,
) (*mcp.CallToolResult, domain.CollectionResult, error) {
	if input.InputDir == "" {
		return nil, domain.CollectionResult{}, fmt.Errorf("%w: input_dir is required", domain.ErrInvalidInput)
	}
	for _, doc := range input.Documents {
		if !filepath.IsLocal(doc) {
			return nil, domain.CollectionResult{}, fmt.Errorf("%w: document %q must be a relative path inside input_dir", domain.ErrInvalidInput, doc)
		}
	}

	cfg, err := s.ports.Collection.LoadConfig(input.InputDir)
	if err != nil && (input.Persona == "" || input.Job == "") {
		return nil, domain.CollectionResult{}, err
	}
	if len(input.Documents) > 0 {
		cfg.Documents = input.Documents
	}
	if input.Persona != "" {
		cfg.Persona = input.Persona
	}
	if input.Job != "" {
		cfg.Job = input.Job
	}

	result, err := s.ports.Collection.AnalyseConfig(ctx, input.InputDir, cfg)
	if err != nil {
		return nil, domain.CollectionResult{}, err
	}
	return nil, *result, nil
}
