// Package search provides the main search view for the TUI.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/components/filter"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/components/preview"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
)

// View is the interactive search session: query input, filter bar, one page
// of results, a preview pane and the status bar.
//
// The view owns no search state. Every user action is forwarded to the
// session controller and the commands it returns are run by bubbletea; their
// events come back as messages.SessionEvent and are handed to the controller.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	filters   *filter.Bar
	list      *list.ResultList
	preview   *preview.Pane
	statusbar *status.Bar

	session driving.SessionController
	render  driving.RenderService
	ctx     context.Context

	width      int
	height     int
	ready      bool
	focus      status.Focus
	previewing bool
	generation uint64
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	session driving.SessionController,
	render driving.RenderService,
	categories []string,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		filters:   filter.NewBar(s, categories),
		list:      list.NewResultList(s),
		preview:   preview.NewPane(s),
		statusbar: status.NewBar(s, km),
		session:   session,
		render:    render,
		ctx:       context.Background(),
		width:     80,
		height:    24,
		focus:     status.FocusInput,
	}
	v.sync()
	return v
}

// WithContext sets the context passed to session commands.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SessionEvent:
		if v.session == nil {
			return v, nil
		}
		next := v.session.Handle(msg.Event)
		v.sync()
		return v, v.lift(next)
	}

	if v.focus == status.FocusInput {
		var cmd tea.Cmd
		v.input, cmd, _ = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:gocyclo // one branch per binding
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if v.previewing {
		if keymap.Matches(key, v.keymap.Back) {
			v.previewing = false
			v.preview.Clear()
			return v, nil
		}
		var cmd tea.Cmd
		v.preview, cmd = v.preview.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(key, v.keymap.Back):
		if v.focus != status.FocusInput {
			return v, v.setFocus(status.FocusInput)
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(key, v.keymap.Focus):
		return v, v.setFocus((v.focus + 1) % 3)

	case keymap.Matches(key, v.keymap.NextPage):
		return v, v.do(func(s driving.SessionController) driving.SessionCommand { return s.NextPage() })

	case keymap.Matches(key, v.keymap.PrevPage):
		return v, v.do(func(s driving.SessionController) driving.SessionCommand { return s.PrevPage() })
	}

	switch v.focus {
	case status.FocusFilters:
		return v.handleFilterKey(key)
	case status.FocusResults:
		return v.handleResultsKey(key)
	}

	if msg.Type == tea.KeyEnter {
		return v, v.setFocus(status.FocusResults)
	}

	var inputCmd tea.Cmd
	var changed bool
	v.input, inputCmd, changed = v.input.Update(msg)
	if !changed {
		return v, inputCmd
	}
	query := v.input.Value()
	return v, tea.Batch(inputCmd, v.do(func(s driving.SessionController) driving.SessionCommand {
		return s.InputChanged(query)
	}))
}

func (v *View) handleFilterKey(key string) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(key, v.keymap.Left):
		v.filters.Left()
	case keymap.Matches(key, v.keymap.Right):
		v.filters.Right()
	case keymap.Matches(key, v.keymap.AllFilters):
		return v, v.do(func(s driving.SessionController) driving.SessionCommand { return s.SelectAllFilters() })
	case keymap.Matches(key, v.keymap.Toggle):
		id := v.filters.Current()
		if id == domain.AllFilter {
			return v, v.do(func(s driving.SessionController) driving.SessionCommand { return s.SelectAllFilters() })
		}
		return v, v.do(func(s driving.SessionController) driving.SessionCommand { return s.ToggleFilter(id) })
	}
	return v, nil
}

func (v *View) handleResultsKey(key string) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(key, v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(key, v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(key, v.keymap.Preview):
		if selected := v.list.SelectedResult(); selected != nil {
			v.preview.SetResult(selected.Result)
			v.previewing = true
		}
	}
	return v, nil
}

func (v *View) setFocus(f status.Focus) tea.Cmd {
	v.focus = f
	v.statusbar.SetFocus(f)
	v.filters.SetFocused(f == status.FocusFilters)
	if f == status.FocusInput {
		return v.input.Focus()
	}
	v.input.Blur()
	return nil
}

// do runs one session operation and lifts the resulting command.
func (v *View) do(op func(driving.SessionController) driving.SessionCommand) tea.Cmd {
	if v.session == nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: ErrNoSession} }
	}
	cmd := op(v.session)
	v.sync()
	return v.lift(cmd)
}

// lift turns a session command into a bubbletea command.
func (v *View) lift(cmd driving.SessionCommand) tea.Cmd {
	if cmd == nil {
		return nil
	}
	ctx := v.ctx
	return func() tea.Msg {
		ev := cmd(ctx)
		if ev == nil {
			return nil
		}
		return messages.SessionEvent{Event: ev}
	}
}

// sync copies the session's display into the components.
func (v *View) sync() {
	if v.session == nil {
		return
	}
	display := v.session.Display()
	v.statusbar.SetSession(v.session.Phase(), display)
	v.filters.SetSelected(v.session.SelectedFilters())

	if display.Generation != v.generation || len(display.Results) == 0 {
		v.generation = display.Generation
		v.list.SetResults(display.Results)
	}
	if v.render == nil {
		return
	}
	terms := display.Terms
	v.list.SetHighlighter(v.render.Highlighter(terms, v.styles.Marker()))
	v.preview.SetHighlight(func(text string, mark domain.Marker) string {
		return v.render.HighlightWith(text, terms, mark)
	})
}

// ApplySettings picks up reloaded settings.
func (v *View) ApplySettings(settings *domain.AppSettings) {
	if settings == nil {
		return
	}
	v.filters.SetCategories(settings.Filters.Categories)
	if v.session != nil {
		v.session.SetDebounce(settings.Search.Debounce)
	}
}

// SetMessage shows a transient note in the status bar.
func (v *View) SetMessage(message string) {
	v.statusbar.SetMessage(message)
}

// RefreshStyles re-renders style-dependent content after a theme change.
func (v *View) RefreshStyles() {
	v.preview.Refresh()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	header := v.styles.Title.Render("Archive Search")
	if v.previewing {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", v.preview.View(), "", v.statusbar.View())
	}

	sections := make([]string, 0, 10)
	sections = append(sections, header, "", v.input.View(), v.filters.View(), "")

	if v.session != nil {
		display := v.session.Display()
		switch {
		case display.Failed:
			sections = append(sections, v.styles.Error.Render(display.Message))
		case display.Message != "":
			sections = append(sections, v.styles.Muted.Render(display.Message))
		default:
			sections = append(sections, v.list.View())
		}
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // header, input, filters, status
	v.preview.SetDimensions(width, height-6)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current input text.
func (v *View) Query() string {
	return v.input.Value()
}

// Focus returns the focused area.
func (v *View) Focus() status.Focus {
	return v.focus
}

// Previewing reports whether the preview pane is open.
func (v *View) Previewing() bool {
	return v.previewing
}

// Results returns the results currently listed.
func (v *View) Results() []domain.RenderedResult {
	return v.list.Results()
}

// Categories returns the filter categories on offer.
func (v *View) Categories() []string {
	return v.filters.Categories()
}
