// Package tui provides an interactive terminal user interface for sercha-view.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session runs the interactive search session.
	Session driving.SessionController

	// Render highlights and renders result content.
	Render driving.RenderService

	// Theme persists the light/dark preference. Optional.
	Theme driving.ThemeService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService

	// Categories are the filter categories offered in the filter bar.
	Categories []string
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(session driving.SessionController, render driving.RenderService) *Ports {
	return &Ports{
		Session: session,
		Render:  render,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Session == nil {
		return ErrMissingSessionController
	}
	if p.Render == nil {
		return ErrMissingRenderService
	}
	return nil
}
