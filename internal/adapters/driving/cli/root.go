// Package cli provides the command-line interface for sercha-view.
// It is a driving adapter: commands call into core services through
// driving ports that the composition root injects with SetServices.
package cli

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-view/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services injected by the composition root.
var (
	searchService   driving.SearchService
	renderService   driving.RenderService
	themeService    driving.ThemeService
	settingsService driving.SettingsService
	metricsHandler  http.Handler
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sercha-view",
	Short: "Search a magazine archive from the terminal",
	Long: `sercha-view searches a remote magazine archive and renders matching
pages with the query terms highlighted.

Run without arguments for the interactive UI, or use the search and render
commands from scripts.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Services groups the core services the commands use.
type Services struct {
	Search   driving.SearchService
	Render   driving.RenderService
	Theme    driving.ThemeService
	Settings driving.SettingsService
	Metrics  http.Handler
}

// SetServices injects the core services.
func SetServices(s Services) {
	searchService = s.Search
	renderService = s.Render
	themeService = s.Theme
	settingsService = s.Settings
	metricsHandler = s.Metrics
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
