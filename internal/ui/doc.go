// Package ui hosts the countdown page in a Bubble Tea terminal program.
//
// # Architecture Overview
//
// The page itself is built by the page and component packages into a
// dom.Document. This package supplies the two things a browser would: an
// event loop that runs repeating timers, and a renderer that turns the
// document into something visible.
//
//   - app.go: Model, Init/Update/View and the Run entry point
//   - scheduler.go: timer.Scheduler backed by tea.Tick
//   - paint.go: document to terminal text, styled by element class
//   - theme.go: colour palettes and Lipgloss styles
//   - keys.go: key bindings shown by the bubbles help footer
//
// # Event Loop
//
//	Init ──→ mountMsg ──→ page.Mount ──→ Scheduler.Every ──→ tea.Tick
//	                                                          │
//	Update(intervalMsg) ←─────────────────────────────────────┘
//	   └─→ RecomputeRemaining ─→ card re-renders ─→ re-arm tick
//
// Every tick callback runs inside Update, so store mutation and listener
// notification never overlap. A cancelled handle's pending tick is dropped
// when it arrives. A tick whose callback fails stops the program and Run
// returns the error.
//
// # Key Bindings
//
//   - q / esc / ctrl+c: tear the page down and quit
//   - T: cycle theme (saved to prefs)
//   - ? / h: toggle full help (saved to prefs)
package ui
