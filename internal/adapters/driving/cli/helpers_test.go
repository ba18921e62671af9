package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	backendmem "github.com/custodia-labs/sercha-view/internal/adapters/driven/backend/memory"
	"github.com/custodia-labs/sercha-view/internal/adapters/driven/markdown/goldmark"
	"github.com/custodia-labs/sercha-view/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/services"
)

// testBackend is the backend behind the services installed by setupTestServices.
var testBackend *backendmem.Backend

type prefersDark bool

func (p prefersDark) PrefersDark() bool { return bool(p) }

// setupTestServices installs services backed by in-memory adapters and
// returns a function restoring the previous state.
func setupTestServices() func() {
	prev := Services{
		Search:   searchService,
		Render:   renderService,
		Theme:    themeService,
		Settings: settingsService,
		Metrics:  metricsHandler,
	}

	testBackend = backendmem.NewBackend(2,
		domain.Result{Source: "Nat Geo", Issue: "May", Page: 12, Content: "An elephant walked."},
		domain.Result{Source: "Wired", Page: 3, Content: "An elephant robot."},
		domain.Result{Source: "Nat Geo", Page: 40, Content: "Elephant seals."},
	)
	render := services.NewRenderService(goldmark.NewConverter(), domain.DefaultOperatorTable())
	SetServices(Services{
		Search:   services.NewSearchService(testBackend, render),
		Render:   render,
		Theme:    services.NewThemeService(memory.NewLocalStorage(), prefersDark(true)),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})

	return func() {
		SetServices(prev)
		testBackend = nil
		searchFilters = nil
		searchPage = 1
		searchJSON = false
		searchHTML = false
		renderQuery = ""
		rootCmd.SetIn(nil)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err, out)
	return out
}
