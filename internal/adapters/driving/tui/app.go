package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	id     string
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView     *menu.View
	searchView   *search.View
	settingsView *settings.View

	currentView messages.ViewType
	theme       domain.Theme
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		id:           uuid.NewString(),
		styles:       s,
		keymap:       km,
		menuView:     menu.NewView(s, km),
		searchView:   search.NewView(s, km, ports.Session, ports.Render, ports.Categories),
		settingsView: settings.NewView(s, km, ports.Settings),
		currentView:  messages.ViewMenu,
		theme:        s.Theme().Name,
	}, nil
}

// WithContext sets the context for the app and its session commands.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	logger.Debug("TUI session %s started", a.id)
	return tea.Batch(
		tea.SetWindowTitle("sercha-view - Archive Search"),
		a.initTheme(),
		a.loadSettings(),
	)
}

func (a *App) initTheme() tea.Cmd {
	themes := a.ports.Theme
	if themes == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		theme, err := themes.Init(ctx)
		return messages.ThemeChanged{Theme: theme, Err: err}
	}
}

func (a *App) toggleTheme() tea.Cmd {
	themes := a.ports.Theme
	if themes == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		theme, err := themes.Toggle(ctx)
		return messages.ThemeChanged{Theme: theme, Err: err}
	}
}

func (a *App) loadSettings() tea.Cmd {
	service := a.ports.Settings
	if service == nil {
		return nil
	}
	return func() tea.Msg {
		s, err := service.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		if keymap.Matches(key, a.keymap.Quit) {
			return a, tea.Quit
		}
		if keymap.Matches(key, a.keymap.Theme) {
			return a, a.toggleTheme()
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewHelp:
			if keymap.Matches(key, a.keymap.Back) || key == "q" {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.SessionEvent:
		// Session events belong to the search view even while another
		// view is showing.
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSearch:
			return a, a.searchView.Init()
		case messages.ViewSettings:
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.ThemeChanged:
		if msg.Err != nil {
			a.err = msg.Err
			logger.Warn("Theme change failed: %v", msg.Err)
			a.searchView.SetMessage("Theme unavailable")
			return a, nil
		}
		a.theme = msg.Theme
		a.styles.Apply(msg.Theme)
		a.searchView.RefreshStyles()
		return a, nil

	case messages.ConfigReloaded:
		a.settingsView, cmd = a.settingsView.Update(msg)
		if a.ports.Settings != nil && cmd == nil {
			cmd = a.loadSettings()
		}
		return a, cmd

	case messages.SettingsLoaded:
		if msg.Err == nil {
			a.searchView.ApplySettings(msg.Settings)
		}
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		logger.Error("TUI session %s: %v", a.id, msg.Err)
		a.searchView.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blinks, viewport ticks) to the active view.
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Global:
  ctrl+c      Quit
  ctrl+t      Toggle light/dark theme

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Search:
  (type)      Search as you type
  tab         Cycle focus: input, filters, results
  pgdn/pgup   Next / previous page
  esc         Back to input, then to menu

Filters:
  ←/→         Move between categories
  space       Toggle category
  a           All categories

Results:
  j/k, ↑/↓    Navigate results
  enter       Preview result

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SessionID identifies this TUI session in the logs.
func (a *App) SessionID() string {
	return a.id
}

// Theme returns the active theme.
func (a *App) Theme() domain.Theme {
	return a.theme
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
