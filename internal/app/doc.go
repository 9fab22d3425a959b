// Package app provides the orchestration layer for the countdown application.
//
// # Overview
//
// This package wires together configuration, preferences, the reactive store,
// the page driver and the terminal UI. It is the composition root where all
// dependencies are created and connected.
//
// # Startup
//
//  1. Load the countdown configuration from ~/.config/countdown/config.toml
//  2. Either render the page once as HTML, or continue with the TUI
//  3. Route the standard logger to the configured log file, or discard it
//  4. Load UI preferences (theme, help mode)
//  5. Create the tick scheduler and the store for the configured deadline
//  6. Start the TUI, which mounts the page, and block until it exits
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Title, deadline, mount point
//	       ├─────> prefs.Load()         Theme and help mode
//	       ├─────> ui.NewScheduler()    Ticks delivered as tea messages
//	       ├─────> state.NewStore()     Deadline and remaining time
//	       └─────> ui.Run()             Mount page, tick, render (blocks)
//
// # HTML Mode
//
// RenderHTML builds the same page with a scheduler that never fires, writes
// the document and tears the page down. The output is a snapshot of the
// countdown at the moment of the call.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or not valid TOML
//   - Log file cannot be opened
//   - Strict mount with no mount point in the document
//   - A store listener failing during a tick
//
// Recoverable errors (logged):
//   - Deadline value that cannot be parsed; the countdown shows as expired
//   - Preferences file missing or unreadable; defaults are used
//   - Lenient mount with no mount point; nothing is rendered
package app
