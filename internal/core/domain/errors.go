package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBackendUnavailable indicates the search backend rejected the request,
	// could not be reached, or did not answer in time.
	ErrBackendUnavailable = errors.New("search backend unavailable")

	// ErrMalformedResponse indicates the backend answered with a body that
	// does not follow the search response contract.
	ErrMalformedResponse = errors.New("malformed search response")

	// ErrRenderFailed indicates markdown conversion failed.
	// Callers fall back to the unrendered text.
	ErrRenderFailed = errors.New("markdown render failed")

	// ErrInvalidTheme indicates a theme name other than light or dark.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrUnknownSetting indicates a settings key that is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)
