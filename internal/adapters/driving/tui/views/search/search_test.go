package search

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backendmem "github.com/custodia-labs/sercha-view/internal/adapters/driven/backend/memory"
	"github.com/custodia-labs/sercha-view/internal/adapters/driven/markdown/goldmark"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/services"
)

func immediately(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

func testDocs() []domain.Result {
	return []domain.Result{
		{Source: "Nat Geo", Issue: "May", Page: 12, Content: "An elephant walked."},
		{Source: "Wired", Page: 3, Content: "An elephant robot."},
		{Source: "Nat Geo", Page: 40, Content: "Elephant seals."},
	}
}

func newTestView(t *testing.T, pageSize int) (*View, *backendmem.Backend) {
	t.Helper()
	backend := backendmem.NewBackend(pageSize, testDocs()...)
	render := services.NewRenderService(goldmark.NewConverter(), domain.DefaultOperatorTable())
	session := services.NewSessionController(
		services.NewSearchService(backend, render),
		services.WithTimer(immediately),
	)
	v := NewView(nil, nil, session, render, []string{"Nat Geo", "Wired"})
	v.SetDimensions(120, 40)
	return v, backend
}

// exec runs cmd, giving up on commands that wait on timers such as the
// cursor blink.
func exec(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

// run executes cmd and feeds session events back until nothing is left.
// Other messages are returned in order.
func run(t *testing.T, v *View, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 50, "command chain did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := exec(next).(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case messages.SessionEvent:
			var follow tea.Cmd
			v, follow = v.Update(msg)
			queue = append(queue, follow)
		default:
			out = append(out, msg)
		}
	}
	return out
}

func typeText(t *testing.T, v *View, text string) {
	t.Helper()
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	run(t, v, cmd)
}

func press(t *testing.T, v *View, msg tea.KeyMsg) []tea.Msg {
	t.Helper()
	_, cmd := v.Update(msg)
	return run(t, v, cmd)
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyPgDn  = tea.KeyMsg{Type: tea.KeyPgDown}
	keyPgUp  = tea.KeyMsg{Type: tea.KeyPgUp}
)

func TestNewView_Defaults(t *testing.T) {
	v := NewView(nil, nil, nil, nil, nil)

	require.NotNil(t, v)
	assert.False(t, v.Ready())
	assert.Equal(t, status.FocusInput, v.Focus())
	assert.NotNil(t, v.Init())
	assert.Equal(t, "Initialising...", v.View())
}

func TestView_TypingSearches(t *testing.T) {
	v, backend := newTestView(t, 0)

	typeText(t, v, "elephant")

	assert.Equal(t, "elephant", v.Query())
	require.Len(t, backend.Requests(), 1)
	assert.Equal(t, "elephant", backend.Requests()[0].Query)
	assert.Len(t, v.Results(), 3)

	view := v.View()
	assert.Contains(t, view, "Found 3 results")
	assert.Contains(t, view, "Nat Geo")
	assert.Contains(t, view, "Page 12")
	assert.NotContains(t, view, "Page 1 / 1")
}

func TestView_Pagination(t *testing.T) {
	v, backend := newTestView(t, 1)
	typeText(t, v, "elephant")
	assert.Contains(t, v.View(), "Page 1 / 3")

	press(t, v, keyPgDn)
	assert.Contains(t, v.View(), "Page 2 / 3")
	assert.Equal(t, "Wired", v.Results()[0].Result.Source)

	press(t, v, keyPgUp)
	press(t, v, keyPgUp)
	assert.Contains(t, v.View(), "Page 1 / 3")
	assert.Len(t, backend.Requests(), 3, "paging before the first page sends nothing")
}

func TestView_Filters(t *testing.T) {
	v, backend := newTestView(t, 0)
	typeText(t, v, "elephant")

	press(t, v, keyTab)
	assert.Equal(t, status.FocusFilters, v.Focus())

	press(t, v, keyRight)
	press(t, v, keyRight)
	press(t, v, keySpace)

	requests := backend.Requests()
	assert.Equal(t, []string{"Wired"}, requests[len(requests)-1].Filters)
	assert.Len(t, v.Results(), 1)

	press(t, v, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	requests = backend.Requests()
	assert.Equal(t, []string{domain.AllFilter}, requests[len(requests)-1].Filters)
	assert.Equal(t, "elephant", v.Query(), "filter keys are not typed into the query")
}

func TestView_FocusAndBack(t *testing.T) {
	v, _ := newTestView(t, 0)

	press(t, v, keyTab)
	press(t, v, keyTab)
	assert.Equal(t, status.FocusResults, v.Focus())

	press(t, v, keyEsc)
	assert.Equal(t, status.FocusInput, v.Focus())

	msgs := press(t, v, keyEsc)
	require.Len(t, msgs, 1)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, msgs[0])
}

func TestView_Preview(t *testing.T) {
	v, _ := newTestView(t, 0)
	typeText(t, v, "seals")

	press(t, v, keyEnter)
	assert.Equal(t, status.FocusResults, v.Focus())
	press(t, v, keyEnter)

	require.True(t, v.Previewing())
	assert.Contains(t, v.View(), "Page 40")

	press(t, v, keyEsc)
	assert.False(t, v.Previewing())
	assert.Equal(t, status.FocusResults, v.Focus())
}

func TestView_PreviewHighlightsQuery(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	v, _ := newTestView(t, 0)
	typeText(t, v, "seals")
	press(t, v, keyEnter)
	press(t, v, keyEnter)
	require.True(t, v.Previewing())

	assert.Contains(t, v.View(), v.styles.Highlight.Render("seals"))
}

func TestView_NoResults(t *testing.T) {
	v, _ := newTestView(t, 0)

	typeText(t, v, "giraffe")

	assert.Contains(t, v.View(), domain.NoResultsMessage)
	assert.Empty(t, v.Results())
}

func TestView_SearchError(t *testing.T) {
	v, backend := newTestView(t, 0)
	typeText(t, v, "elephant")
	require.NotEmpty(t, v.Results())

	backend.FailWith(errors.New("connection refused"))
	typeText(t, v, "s")

	assert.Contains(t, v.View(), domain.SearchErrorMessage)
	assert.Empty(t, v.Results())
}

func TestView_ApplySettings(t *testing.T) {
	v, _ := newTestView(t, 0)
	settings := domain.DefaultAppSettings()
	settings.Filters.Categories = []string{"Time"}

	v.ApplySettings(&settings)
	v.ApplySettings(nil)

	assert.Equal(t, []string{"Time"}, v.Categories())
}

func TestView_NoSession(t *testing.T) {
	v := NewView(nil, nil, nil, nil, nil)
	v.SetDimensions(80, 24)

	msgs := press(t, v, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	require.Len(t, msgs, 1)
	assert.Equal(t, messages.ErrorOccurred{Err: ErrNoSession}, msgs[0])
}
