// Package mcp provides an MCP (Model Context Protocol) server adapter for sercha-view.
// It lets AI assistants search the archive and render result content.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingRenderService is returned when the render service is not provided.
var ErrMissingRenderService = errors.New("mcp: render service is required")
