// Package timer defines the repeating-timer and clock contracts the countdown
// relies on, plus manual implementations for driving them by hand.
package timer

import "time"

// Handle identifies a repeating timer. NoHandle means no timer.
type Handle uint64

// NoHandle is the absent handle.
const NoHandle Handle = 0

// Scheduler runs repeating callbacks, the setInterval/clearInterval pair of
// the host the countdown is mounted in.
type Scheduler interface {
	// Every schedules fn to run each d until the returned handle is cancelled.
	Every(d time.Duration, fn func() error) Handle
	// Cancel stops the timer behind h. Unknown or absent handles are ignored.
	Cancel(h Handle)
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }
