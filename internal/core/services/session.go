package services

import (
	"context"
	"strings"
	"time"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-view/internal/logger"
)

// Ensure SessionController implements the interface.
var _ driving.SessionController = (*SessionController)(nil)

// SessionOption configures a SessionController.
type SessionOption func(*SessionController)

// WithDebounce sets the quiet period before a search is sent.
func WithDebounce(d time.Duration) SessionOption {
	return func(s *SessionController) {
		s.SetDebounce(d)
	}
}

// WithTimer replaces time.After for scheduling debounce delays.
func WithTimer(after func(time.Duration) <-chan time.Time) SessionOption {
	return func(s *SessionController) {
		if after != nil {
			s.after = after
		}
	}
}

// WithFilters sets the initial category selection.
func WithFilters(filters domain.FilterSet) SessionOption {
	return func(s *SessionController) {
		s.state.Filters = filters
	}
}

// WithSessionObserver sets the observer notified of discarded responses.
func WithSessionObserver(observer driven.SearchObserver) SessionOption {
	return func(s *SessionController) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// SessionController is the state machine behind one interactive search.
//
// It never blocks and never starts goroutines. Waiting (the debounce delay and
// the backend round trip) happens inside the commands it returns, which the
// caller's event loop runs and whose events it feeds back through Handle.
//
// Every search request carries a sequence number. Only the response to the
// most recently issued request is applied; older ones are dropped.
type SessionController struct {
	search   driving.SearchService
	observer driven.SearchObserver
	debounce time.Duration
	after    func(time.Duration) <-chan time.Time

	phase   domain.SessionPhase
	state   domain.SessionState
	display domain.Display

	// committed is the request behind the most recent search, if any.
	// Pagination reuses its query and filters.
	committed *domain.SearchRequest

	debounceSeq    uint64
	cancelDebounce chan struct{}
	searchSeq      uint64
}

// NewSessionController creates an idle session.
func NewSessionController(search driving.SearchService, opts ...SessionOption) *SessionController {
	s := &SessionController{
		search:   search,
		observer: nopObserver{},
		debounce: domain.DefaultDebounce,
		after:    time.After,
		phase:    domain.PhaseIdle,
		state: domain.SessionState{
			CurrentPage: 1,
			Filters:     domain.NewFilterSet(),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetDebounce changes the debounce delay for delays scheduled from now on.
// Negative values are treated as zero.
func (s *SessionController) SetDebounce(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.debounce = d
}

// InputChanged records new query text, resets to page 1 and restarts the debounce.
func (s *SessionController) InputChanged(query string) driving.SessionCommand {
	s.state.Query = strings.TrimSpace(query)
	s.state.CurrentPage = 1
	return s.scheduleDebounce()
}

// ToggleFilter flips one category, resets to page 1 and restarts the debounce.
func (s *SessionController) ToggleFilter(id string) driving.SessionCommand {
	s.state.Filters.Toggle(id)
	s.state.CurrentPage = 1
	return s.scheduleDebounce()
}

// SelectAllFilters clears individual categories, resets to page 1 and
// restarts the debounce.
func (s *SessionController) SelectAllFilters() driving.SessionCommand {
	s.state.Filters.SelectAll()
	s.state.CurrentPage = 1
	return s.scheduleDebounce()
}

// NextPage requests the page after the current one.
func (s *SessionController) NextPage() driving.SessionCommand {
	return s.GoToPage(s.state.CurrentPage + 1)
}

// PrevPage requests the page before the current one.
func (s *SessionController) PrevPage() driving.SessionCommand {
	return s.GoToPage(s.state.CurrentPage - 1)
}

// GoToPage requests a page of the committed search without debouncing.
// It does nothing before the first search, while a debounce is pending,
// or when page is outside [1, total pages].
func (s *SessionController) GoToPage(page int) driving.SessionCommand {
	if s.committed == nil || s.debouncing() {
		return nil
	}
	if page < 1 || page > s.state.TotalPages {
		logger.Debug("Session: page %d outside [1, %d], ignored", page, s.state.TotalPages)
		return nil
	}

	req := *s.committed
	req.Filters = append([]string(nil), req.Filters...)
	req.Page = page
	s.state.CurrentPage = page
	return s.issue(req)
}

// Handle applies an event produced by one of the session's commands.
func (s *SessionController) Handle(ev domain.SessionEvent) driving.SessionCommand {
	switch ev := ev.(type) {
	case domain.DebounceElapsed:
		return s.handleDebounceElapsed(ev)
	case domain.SearchFinished:
		s.handleSearchFinished(ev)
	}
	return nil
}

// Phase returns the current state machine phase.
func (s *SessionController) Phase() domain.SessionPhase {
	return s.phase
}

// State returns a copy of the session state.
func (s *SessionController) State() domain.SessionState {
	return s.state
}

// Display returns what the session currently presents.
func (s *SessionController) Display() domain.Display {
	d := s.display
	d.Results = append([]domain.RenderedResult(nil), s.display.Results...)
	d.Terms = append([]domain.Term(nil), s.display.Terms...)
	return d
}

// SelectedFilters returns the active categories, or ["All"].
func (s *SessionController) SelectedFilters() []string {
	return s.state.Filters.Selected()
}

func (s *SessionController) debouncing() bool {
	return s.cancelDebounce != nil
}

// scheduleDebounce cancels any pending delay and schedules a new one.
func (s *SessionController) scheduleDebounce() driving.SessionCommand {
	if s.cancelDebounce != nil {
		close(s.cancelDebounce)
	}
	s.debounceSeq++
	seq := s.debounceSeq
	cancel := make(chan struct{})
	s.cancelDebounce = cancel
	s.phase = domain.PhaseDebouncing

	delay, after := s.debounce, s.after
	return func(ctx context.Context) domain.SessionEvent {
		select {
		case <-after(delay):
			return domain.DebounceElapsed{Seq: seq}
		case <-cancel:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *SessionController) handleDebounceElapsed(ev domain.DebounceElapsed) driving.SessionCommand {
	if ev.Seq != s.debounceSeq || !s.debouncing() {
		return nil
	}
	s.cancelDebounce = nil
	// The page count belongs to the previous query until the new one answers.
	s.state.TotalPages = 0

	return s.issue(domain.SearchRequest{
		Query:   s.state.Query,
		Filters: s.state.Filters.Selected(),
		Page:    s.state.CurrentPage,
	})
}

// issue commits req and returns the command that sends it.
func (s *SessionController) issue(req domain.SearchRequest) driving.SessionCommand {
	s.searchSeq++
	seq := s.searchSeq
	committed := req
	s.committed = &committed

	s.phase = domain.PhaseSearching
	s.state.InFlight = true
	s.display.Loading = true
	logger.Debug("Session: search #%d %q filters=%v page=%d", seq, req.Query, req.Filters, req.Page)

	search := s.search
	return func(ctx context.Context) domain.SessionEvent {
		page, err := search.Search(ctx, req)
		return domain.SearchFinished{Seq: seq, Page: page, Err: err}
	}
}

func (s *SessionController) handleSearchFinished(ev domain.SearchFinished) {
	if ev.Seq != s.searchSeq {
		logger.Debug("Session: discarding stale response #%d (latest #%d)", ev.Seq, s.searchSeq)
		s.observer.StaleResponseDiscarded()
		return
	}

	s.state.InFlight = false
	generation := s.display.Generation

	switch {
	case ev.Err != nil || ev.Page == nil:
		logger.Error("search failed: %v", ev.Err)
		s.state.TotalPages = 0
		s.display = domain.Display{
			Message:    domain.SearchErrorMessage,
			Failed:     true,
			Generation: generation,
		}
		s.settle(domain.PhaseFailed)

	case ev.Page.Empty():
		s.state.TotalPages = ev.Page.Response.TotalPages
		s.display = domain.Display{
			Message:    domain.NoResultsMessage,
			Generation: generation,
		}
		s.settle(domain.PhaseDisplaying)

	default:
		resp := ev.Page.Response
		s.state.CurrentPage = resp.CurrentPage
		s.state.TotalPages = resp.TotalPages
		s.display = domain.Display{
			CountVisible: true,
			CountText:    ev.Page.CountText(),
			Pagination:   ev.Page.Pagination(),
			Results:      ev.Page.Rendered,
			Terms:        ev.Page.Terms,
			ResultsHTML:  ev.Page.HTML(),
			Generation:   generation + 1,
		}
		s.settle(domain.PhaseDisplaying)
	}
}

// settle moves to phase unless newer input is already waiting on the debounce.
func (s *SessionController) settle(phase domain.SessionPhase) {
	if s.debouncing() {
		return
	}
	s.phase = phase
}
