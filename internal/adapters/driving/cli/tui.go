package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-view/internal/logger"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	// NewSession creates the session controller for one TUI run.
	NewSession func() driving.SessionController

	// WatchConfig blocks until ctx ends, calling onChange after every
	// configuration file change. Optional.
	WatchConfig func(ctx context.Context, onChange func()) error

	// LogFile receives log output while the TUI owns the terminal.
	// Empty leaves logging on stderr.
	LogFile string
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Results update as you type. Controls:
  tab        - Cycle focus: input, filters, results
  pgdn/pgup  - Next / previous page
  enter      - Preview the selected result
  ctrl+t     - Toggle light/dark theme
  esc        - Back
  ctrl+c     - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Render:   renderService,
		Theme:    themeService,
		Settings: settingsService,
	}
	if tuiConfig != nil && tuiConfig.NewSession != nil {
		ports.Session = tuiConfig.NewSession()
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			ports.Categories = settings.Filters.Categories
		}
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if tuiConfig != nil && tuiConfig.LogFile != "" {
		f, err := os.OpenFile(tuiConfig.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		previous := logger.SetOutput(f)
		defer logger.SetOutput(previous)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if tuiConfig != nil && tuiConfig.WatchConfig != nil {
		go func() {
			err := tuiConfig.WatchConfig(ctx, func() { p.Send(messages.ConfigReloaded{}) })
			if err != nil {
				logger.Warn("Config watcher stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
