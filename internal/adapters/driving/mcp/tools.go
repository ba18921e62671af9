package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query   string   `json:"query" jsonschema:"the search query; quoted phrases and AND/OR/NOT are supported"`
	Filters []string `json:"filters,omitempty" jsonschema:"category filters (default: all categories)"`
	Page    int      `json:"page,omitempty" jsonschema:"1-based result page (default 1)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Query      string         `json:"query"`
	Filters    []string       `json:"filters"`
	CountText  string         `json:"count_text"`
	TotalHits  int            `json:"total_hits"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Results    []ResultOutput `json:"results"`
}

// ResultOutput represents a single rendered search result.
type ResultOutput struct {
	Source      string `json:"source"`
	Issue       string `json:"issue,omitempty"`
	Date        string `json:"date,omitempty"`
	Page        int    `json:"page"`
	CoverImage  string `json:"cover_image,omitempty"`
	ContentHTML string `json:"content_html"`
}

// RenderInput is the input schema for the render tool.
type RenderInput struct {
	Content string `json:"content" jsonschema:"markdown content to render"`
	Query   string `json:"query,omitempty" jsonschema:"query whose terms are highlighted"`
}

// RenderOutput is the output schema for the render tool.
type RenderOutput struct {
	HTML string `json:"html"`
}

// TokenizeInput is the input schema for the tokenize tool.
type TokenizeInput struct {
	Query string `json:"query" jsonschema:"the query to split into highlight terms"`
}

// TokenizeOutput is the output schema for the tokenize tool.
type TokenizeOutput struct {
	Terms []TermOutput `json:"terms"`
}

// TermOutput is one highlight term.
type TermOutput struct {
	Text   string `json:"text"`
	Phrase bool   `json:"phrase,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the magazine archive and return one page of rendered results",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render",
		Description: "Render markdown to HTML with query terms highlighted",
	}, s.handleRender)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Show which terms of a query would be highlighted",
	}, s.handleTokenize)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	page, err := s.ports.Search.Search(ctx, domain.SearchRequest{
		Query:   input.Query,
		Filters: input.Filters,
		Page:    input.Page,
	})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Query:      page.Request.Query,
		Filters:    page.Request.Filters,
		CountText:  page.CountText(),
		TotalHits:  page.Response.TotalHits,
		Page:       page.Response.CurrentPage,
		TotalPages: page.Response.TotalPages,
		Results:    make([]ResultOutput, len(page.Rendered)),
	}

	for i, rendered := range page.Rendered {
		output.Results[i] = ResultOutput{
			Source:      rendered.Result.Source,
			Issue:       rendered.Result.Issue,
			Date:        rendered.Result.Date,
			Page:        rendered.Result.Page,
			CoverImage:  rendered.Result.CoverImage,
			ContentHTML: rendered.ContentHTML,
		}
	}

	return nil, output, nil
}

// handleRender handles the render tool invocation.
func (s *Server) handleRender(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RenderInput,
) (*mcp.CallToolResult, RenderOutput, error) {
	return nil, RenderOutput{HTML: s.ports.Render.Render(input.Content, input.Query)}, nil
}

// handleTokenize handles the tokenize tool invocation.
func (s *Server) handleTokenize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TokenizeInput,
) (*mcp.CallToolResult, TokenizeOutput, error) {
	terms := s.ports.Render.Tokenize(input.Query)
	output := TokenizeOutput{Terms: make([]TermOutput, len(terms))}
	for i, term := range terms {
		output.Terms[i] = TermOutput{Text: term.Text, Phrase: term.Phrase}
	}
	return nil, output, nil
}
