// Package settings provides the settings view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
)

// ErrNoSettingsService is reported when the view has no service to talk to.
var ErrNoSettingsService = errors.New("settings service not available")

// View lists every setting with its effective value. Enter edits the
// selected setting, r resets it to the default.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	service  driving.SettingsService
	settings *domain.AppSettings
	keys     []string
	err      error
	notice   string

	selected int
	editing  bool
	editor   textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	editor := textinput.New()
	editor.CharLimit = 512
	editor.Prompt = "= "

	v := &View{
		styles:  s,
		keymap:  km,
		service: service,
		editor:  editor,
		width:   80,
		height:  24,
	}
	if service != nil {
		v.keys = service.Keys()
	}
	return v
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	service := v.service
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := service.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.settings = msg.Settings
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.notice = "Saved " + msg.Key
		return v, v.load()

	case messages.ConfigReloaded:
		return v, v.load()

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKey(msg)
		}
		return v.handleKeyMsg(msg)
	}

	if v.editing {
		var cmd tea.Cmd
		v.editor, cmd = v.editor.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.keys)-1 {
			v.selected++
		}
	case keymap.Matches(key, v.keymap.Select):
		return v, v.startEdit()
	case key == "r":
		return v, v.reset()
	}
	return v, nil
}

func (v *View) handleEditKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.editing = false
		v.editor.Blur()
		return v, nil
	case tea.KeyEnter:
		v.editing = false
		v.editor.Blur()
		return v, v.save(v.SelectedKey(), v.editor.Value())
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

func (v *View) startEdit() tea.Cmd {
	key := v.SelectedKey()
	if key == "" || v.service == nil {
		return nil
	}
	v.notice = ""
	v.editing = true
	v.editor.SetValue(v.value(key))
	v.editor.CursorEnd()
	return v.editor.Focus()
}

func (v *View) save(key, value string) tea.Cmd {
	service := v.service
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsSaved{Key: key, Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Key: key, Err: service.Set(key, value)}
	}
}

func (v *View) reset() tea.Cmd {
	key := v.SelectedKey()
	if key == "" {
		return nil
	}
	service := v.service
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsSaved{Key: key, Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Key: key, Err: service.Reset(key)}
	}
}

func (v *View) value(key string) string {
	if v.settings == nil {
		return ""
	}
	value, _ := v.settings.Value(key)
	return value
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n\n")
	}

	width := 0
	for _, key := range v.keys {
		width = max(width, len(key))
	}

	for i, key := range v.keys {
		cursor := "  "
		label := v.styles.Normal.Render(fmt.Sprintf("%-*s", width, key))
		if i == v.selected {
			cursor = "> "
			label = v.styles.Selected.Render(fmt.Sprintf("%-*s", width, key))
		}

		value := v.value(key)
		if value == "" {
			value = v.styles.Muted.Render("(none)")
		}
		if v.editing && i == v.selected {
			value = v.editor.View()
		}
		b.WriteString(cursor + label + "  " + value + "\n")
	}

	if v.notice != "" {
		b.WriteString("\n" + v.styles.Muted.Render(v.notice) + "\n")
	}

	b.WriteString("\n")
	if v.editing {
		b.WriteString(v.styles.Muted.Render("[Enter] Save  [Esc] Cancel"))
	} else {
		b.WriteString(v.styles.Muted.Render("[j/k] Navigate  [Enter] Edit  [r] Reset  [Esc] Back"))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.editor.Width = max(width-40, 20)
}

// SelectedKey returns the key under the cursor.
func (v *View) SelectedKey() string {
	if v.selected < 0 || v.selected >= len(v.keys) {
		return ""
	}
	return v.keys[v.selected]
}

// Editing reports whether a value is being edited.
func (v *View) Editing() bool {
	return v.editing
}

// Settings returns the last loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}
