// Command sercha-view searches a remote magazine archive from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/sercha-view/internal/adapters/driven/backend/remote"
	"github.com/custodia-labs/sercha-view/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-view/internal/adapters/driven/markdown/goldmark"
	"github.com/custodia-labs/sercha-view/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sercha-view/internal/adapters/driven/terminal"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/cli"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-view/internal/core/services"
	"github.com/custodia-labs/sercha-view/internal/logger"
	"github.com/custodia-labs/sercha-view/internal/metrics"
)

// version is set by the linker.
var version = "dev"

// homeEnv overrides the configuration and data directory.
const homeEnv = "SERCHA_VIEW_HOME"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	home := os.Getenv(homeEnv)
	if home == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		home = dir
	}

	configStore, err := file.NewConfigStore(home)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	store, err := sqlite.NewStore(home)
	if err != nil {
		return fmt.Errorf("opening local storage: %w", err)
	}
	defer store.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return err
	}

	backend := remote.NewBackend(settings.Backend)

	renderService := services.NewRenderService(goldmark.NewConverter(), settings.Operators())
	renderService.SetObserver(recorder)
	searchService := services.NewSearchService(backend, renderService)
	searchService.SetObserver(recorder)
	themeService := services.NewThemeService(store.LocalStorage(), terminal.ColorScheme{})

	logger.Debug("Config %s", configStore.Path())

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Search:   searchService,
		Render:   renderService,
		Theme:    themeService,
		Settings: settingsService,
		Metrics:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	})
	cli.SetTUIConfig(&cli.TUIConfig{
		NewSession: func() driving.SessionController {
			current := settings
			if fresh, err := settingsService.Get(); err == nil {
				current = fresh
			}
			return services.NewSessionController(searchService,
				services.WithDebounce(current.Search.Debounce),
				services.WithSessionObserver(recorder),
			)
		},
		WatchConfig: func(ctx context.Context, onChange func()) error {
			return configStore.Watch(ctx, func() {
				if fresh, err := settingsService.Get(); err == nil {
					renderService.SetOperators(fresh.Operators())
				}
				onChange()
			})
		},
		LogFile: filepath.Join(home, "tui.log"),
	})

	return cli.Execute(ctx)
}
