package timer

import (
	"slices"
	"sync"
	"time"
)

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a clock frozen at now.
func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

// Now returns the frozen time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type entry struct {
	every time.Duration
	fn    func() error
}

// Manual is a Scheduler whose timers fire only through Tick or Fire. It records
// every cancellation so callers can assert on timer bookkeeping.
type Manual struct {
	mu        sync.Mutex
	next      Handle
	live      map[Handle]entry
	cancelled []Handle
}

// NewManual returns an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{live: make(map[Handle]entry)}
}

// Every registers fn and returns its handle. Handles start at 1.
func (m *Manual) Every(d time.Duration, fn func() error) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	m.live[m.next] = entry{every: d, fn: fn}
	return m.next
}

// Cancel records the call and stops h if it is live.
func (m *Manual) Cancel(h Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelled = append(m.cancelled, h)
	delete(m.live, h)
}

// Fire runs the callback of h once. It reports false when h is not live.
func (m *Manual) Fire(h Handle) (bool, error) {
	m.mu.Lock()
	e, ok := m.live[h]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, e.fn()
}

// Tick fires every live timer once, oldest first, stopping at the first error.
func (m *Manual) Tick() error {
	for _, h := range m.Live() {
		if _, err := m.Fire(h); err != nil {
			return err
		}
	}
	return nil
}

// Live returns the live handles in ascending order.
func (m *Manual) Live() []Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Handle, 0, len(m.live))
	for h := range m.live {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}

// Interval returns the period h was scheduled with.
func (m *Manual) Interval(h Handle) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live[h]
	return e.every, ok
}

// Cancelled returns every handle passed to Cancel, in call order.
func (m *Manual) Cancelled() []Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.cancelled)
}
