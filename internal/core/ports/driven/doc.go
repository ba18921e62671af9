// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SearchBackend: The remote full-text search service (HTTP)
//   - MarkdownConverter: Markdown to HTML conversion (goldmark)
//   - ConfigStore: Application configuration (TOML)
//   - LocalStorage: Client-local key/value persistence (SQLite)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ColorSchemeDetector: Reports the terminal's colour scheme. Without it,
//     the light theme is assumed when no preference is stored.
//   - SearchObserver: Receives search, render and session events for metrics.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
