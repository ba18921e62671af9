// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// SessionEvent carries an event produced by a session command back into the
// update loop, where it is handed to the session controller.
type SessionEvent struct {
	Event domain.SessionEvent
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the search session view.
	ViewSearch
	// ViewSettings lists and edits settings.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// ThemeChanged carries the outcome of a theme switch.
type ThemeChanged struct {
	Theme domain.Theme
	Err   error
}

// ConfigReloaded is sent when the configuration file changed on disk.
type ConfigReloaded struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals a setting was written or reset.
type SettingsSaved struct {
	Key string
	Err error
}
