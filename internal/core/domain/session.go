package domain

// SessionPhase is the state of a search session.
type SessionPhase int

// Session phases.
const (
	// PhaseIdle means nothing is pending and nothing is shown.
	PhaseIdle SessionPhase = iota

	// PhaseDebouncing means input changed and a search is scheduled.
	PhaseDebouncing

	// PhaseSearching means a request is in flight.
	PhaseSearching

	// PhaseDisplaying means the latest response is shown.
	PhaseDisplaying

	// PhaseFailed means the latest request failed.
	PhaseFailed
)

// String returns the phase name.
func (p SessionPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDebouncing:
		return "debouncing"
	case PhaseSearching:
		return "searching"
	case PhaseDisplaying:
		return "displaying"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Messages shown in place of results.
const (
	NoResultsMessage   = "No results found"
	SearchErrorMessage = "An error occurred while searching"
)

// SessionState is the mutable state owned by one session controller.
type SessionState struct {
	// Query is the current (trimmed) input text.
	Query string

	// CurrentPage is the page that will be requested next, or the page shown.
	CurrentPage int

	// TotalPages comes from the latest displayed response.
	TotalPages int

	// Filters is the current category selection.
	Filters FilterSet

	// InFlight is true while a request the session still cares about is pending.
	InFlight bool
}

// Display is a snapshot of what the session presents.
type Display struct {
	// Loading mirrors the loading indicator.
	Loading bool

	// CountVisible and CountText describe the result count line.
	CountVisible bool
	CountText    string

	Pagination Pagination

	// Results holds the rendered results in backend order.
	Results []RenderedResult

	// Terms are the highlight terms of the query behind Results.
	Terms []Term

	// ResultsHTML is the concatenated result blocks.
	ResultsHTML string

	// Message replaces the results area when set.
	Message string

	// Failed is true when Message reports an error rather than an empty result.
	Failed bool

	// Generation increases each time new results are shown.
	// Views scroll the results back to the top when it changes.
	Generation uint64
}

// SessionEvent is delivered back to a session controller by the event loop.
type SessionEvent interface {
	sessionEvent()
}

// DebounceElapsed fires when a scheduled debounce delay ends.
type DebounceElapsed struct {
	Seq uint64
}

// SearchFinished carries the outcome of one search request.
type SearchFinished struct {
	Seq  uint64
	Page *SearchPage
	Err  error
}

func (DebounceElapsed) sessionEvent() {}
func (SearchFinished) sessionEvent()  {}
