// Package state provides the reactive store behind the countdown display.
//
// # Overview
//
// The store decouples the ticking clock from the document elements that show
// the remaining time. The page driver's timer writes into the store; bindings
// subscribe to the fields they render and rebuild when those fields change.
//
//	Producer (timer tick):          Consumer (card binding):
//	┌──────────────────────┐        ┌────────────────────────┐
//	│ RecomputeRemaining() │        │ SubscribeTimeLeft(fn)  │
//	│        ↓             │        │        ↑               │
//	│ SetState(TimeLeft)   │───────→│ fn(newValue)           │
//	└──────────────────────┘        └────────────────────────┘
//
// # Core Types
//
// Value:
//   - One observable field with an equality function
//   - Listeners are called in subscription order, only when the value changes
//   - The first listener error stops notification and is returned to the setter
//
// Store:
//   - Three fixed fields: LastDate, TimeLeft and ActiveTimer
//   - Typed subscriptions per field instead of string keys
//   - Timer bookkeeping (RecordTimer, ReplaceTimer, Cleanup) through a
//     timer.Scheduler
//
// # Lifecycle
//
//	NewStore ──→ Running ──(TimeLeft <= 0)──→ Expired
//	                │                            │
//	                └──────── Cleanup() ─────────┴──→ TornDown
//
// TornDown is terminal. Recording a timer afterwards cancels the timer that
// was passed in and returns ErrTornDown, so a late mount cannot leak a ticker.
// Cleanup clears only the timer handle; the deadline, remaining time and
// subscriptions stay as they were.
//
// # Concurrency Model
//
// The countdown runs on a single event loop, so ticks never interleave. Each
// Value still guards its fields with a mutex and releases it before calling
// listeners, which lets a listener read the store it is subscribed to.
package state
