// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Loader: Resolves a source path into decoded raw texts
//   - MaterializerFactory / Materializer: Corpus layout and registry output
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - Watcher: Change notification for watch mode
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
