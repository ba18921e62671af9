// Package services implements the driving port interfaces.
// Services contain the core logic (tokenizing, highlighting, rendering and
// the search session state machine) and orchestrate calls to driven ports.
//
// Services are pure Go and never import adapters.
package services
