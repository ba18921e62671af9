// Package domain defines the core entities for sercha-view.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Term: A highlightable word or phrase derived from a query
//   - SearchRequest / SearchResponse: The backend wire contract
//   - FilterSet: Category selection with the "All" sentinel
//   - SearchPage: A response together with its rendered results
//   - SessionState / Display: What the session controller owns and shows
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
