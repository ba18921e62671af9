package mcp

import (
	"net/http"

	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs searches against the backend.
	Search driving.SearchService

	// Render highlights and renders markdown content.
	Render driving.RenderService

	// Metrics serves /metrics in HTTP mode. Optional.
	Metrics http.Handler
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Render == nil {
		return ErrMissingRenderService
	}
	return nil
}
