// Package preview renders a single result's markdown for the terminal.
package preview

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/logger"
)

// Matches are wrapped in private-use runes before glamour runs and styled
// afterwards, so glamour's own escape sequences are never rewritten.
const (
	markOpen  = "\uE000"
	markClose = "\uE001"

	// maxMarkDepth bounds nested marks from overlapping terms.
	maxMarkDepth = 8
)

var (
	markedRun  = regexp.MustCompile(markOpen + "([^" + markOpen + markClose + "]*)" + markClose)
	stripMarks = strings.NewReplacer(markOpen, "", markClose, "")
)

// Highlight marks query terms in text using mark.
type Highlight func(text string, mark domain.Marker) string

// Pane shows one result in a scrollable viewport. The markdown is rendered
// with glamour; the renderer is rebuilt when the width or theme changes.
type Pane struct {
	styles    *styles.Styles
	viewport  viewport.Model
	highlight Highlight

	renderer      *glamour.TermRenderer
	rendererWidth int
	rendererTheme domain.Theme

	result *domain.Result
}

// NewPane creates an empty preview pane.
func NewPane(s *styles.Styles) *Pane {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Pane{
		styles:   s,
		viewport: viewport.New(80, 20),
	}
}

// SetResult renders result into the viewport and scrolls to the top.
func (p *Pane) SetResult(result domain.Result) {
	p.result = &result
	p.refresh()
	p.viewport.GotoTop()
}

// SetHighlight sets how query terms are found in the previewed markdown.
// It takes effect on the next render.
func (p *Pane) SetHighlight(h Highlight) {
	p.highlight = h
}

// Result returns the result being previewed, or nil.
func (p *Pane) Result() *domain.Result {
	return p.result
}

// Clear drops the current result.
func (p *Pane) Clear() {
	p.result = nil
	p.viewport.SetContent("")
}

// SetDimensions resizes the pane and re-renders its content.
func (p *Pane) SetDimensions(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
	if p.result != nil {
		p.refresh()
	}
}

// Refresh re-renders after a theme change.
func (p *Pane) Refresh() {
	if p.result != nil {
		p.refresh()
	}
}

// Update scrolls the viewport.
func (p *Pane) Update(msg tea.Msg) (*Pane, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the header and the viewport.
func (p *Pane) View() string {
	if p.result == nil {
		return ""
	}
	header := p.styles.Title.Render(p.result.Source)
	if labels := p.result.SubLabels(); len(labels) > 0 {
		header += "  " + p.styles.Muted.Render(strings.Join(labels, " · "))
	}
	header += "  " + p.styles.Muted.Render(p.result.PageLabel())

	footer := p.styles.Muted.Render(fmt.Sprintf("%3.f%%  [↑/↓] scroll  [esc] close", p.viewport.ScrollPercent()*100))
	return header + "\n\n" + p.viewport.View() + "\n" + footer
}

func (p *Pane) refresh() {
	content := stripMarks.Replace(p.result.Content)
	if p.highlight != nil {
		content = p.highlight(content, func(match string) string {
			return markOpen + match + markClose
		})
	}
	if r, err := p.getRenderer(); err != nil {
		logger.Warn("Preview renderer unavailable: %v", err)
	} else if out, err := r.Render(content); err != nil {
		logger.Warn("Preview render failed: %v", err)
	} else {
		content = out
	}
	p.viewport.SetContent(p.applyMarks(content))
}

// applyMarks styles every marked run, innermost first, and drops any
// marks left unpaired.
func (p *Pane) applyMarks(s string) string {
	mark := p.styles.Marker()
	for i := 0; i < maxMarkDepth && strings.Contains(s, markOpen); i++ {
		next := markedRun.ReplaceAllStringFunc(s, func(run string) string {
			return mark(run[len(markOpen) : len(run)-len(markClose)])
		})
		if next == s {
			break
		}
		s = next
	}
	return stripMarks.Replace(s)
}

// getRenderer returns a renderer for the current width and theme.
func (p *Pane) getRenderer() (*glamour.TermRenderer, error) {
	wrap := p.viewport.Width - 4
	if wrap > 120 {
		wrap = 120
	}
	if wrap < 20 {
		wrap = 20
	}
	theme := p.styles.Theme().Name

	if p.renderer == nil || p.rendererWidth != wrap || p.rendererTheme != theme {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(theme.String()),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return nil, err
		}
		p.renderer = r
		p.rendererWidth = wrap
		p.rendererTheme = theme
	}
	return p.renderer, nil
}
