package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// SessionCommand is deferred work produced by the session controller.
// The event loop runs it off the loop and passes the returned event
// back to SessionController.Handle. A nil event means nothing to deliver.
type SessionCommand func(ctx context.Context) domain.SessionEvent

// SessionController owns one interactive search session.
// All methods must be called from a single event loop.
// Methods that schedule work return a command, or nil when there is none.
type SessionController interface {
	// InputChanged records new query text and restarts the debounce.
	InputChanged(query string) SessionCommand

	// ToggleFilter flips one category and restarts the debounce.
	ToggleFilter(id string) SessionCommand

	// SelectAllFilters selects the "all" sentinel and restarts the debounce.
	SelectAllFilters() SessionCommand

	// NextPage requests the following page of the committed search.
	NextPage() SessionCommand

	// PrevPage requests the preceding page of the committed search.
	PrevPage() SessionCommand

	// GoToPage requests a specific page of the committed search.
	// Pages outside [1, total pages] are ignored.
	GoToPage(page int) SessionCommand

	// Handle applies an event produced by an earlier command.
	Handle(ev domain.SessionEvent) SessionCommand

	// Phase returns the current state machine phase.
	Phase() domain.SessionPhase

	// State returns a copy of the session state.
	State() domain.SessionState

	// Display returns what the session currently presents.
	Display() domain.Display

	// SelectedFilters returns the active categories, or ["All"].
	SelectedFilters() []string

	// SetDebounce changes the delay used for debounces scheduled from now on.
	SetDebounce(d time.Duration)
}
