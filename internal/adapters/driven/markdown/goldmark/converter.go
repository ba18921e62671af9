// Package goldmark implements driven.MarkdownConverter with yuin/goldmark.
//
// The converter enables GitHub-flavoured markdown, turns single newlines into
// <br>, leaves headings without generated ids and passes raw HTML through.
// Highlight markers are inserted before conversion and rely on that passthrough.
package goldmark

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.MarkdownConverter = (*Converter)(nil)

// Converter converts markdown to HTML. It is safe for concurrent use.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a converter.
func NewConverter() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithUnsafe(),
			),
		),
	}
}

// Convert renders markdown as an HTML fragment.
func (c *Converter) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("goldmark: %w", err)
	}
	return buf.String(), nil
}
