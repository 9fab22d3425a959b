package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/five82/countdown/internal/timefmt"
	"github.com/five82/countdown/internal/timer"
)

// ErrTornDown is returned when a timer is recorded after Cleanup.
var ErrTornDown = errors.New("countdown store is torn down")

// Field names an observable field of the countdown state.
type Field int

const (
	FieldLastDate Field = iota
	FieldTimeLeft
	FieldActiveTimer
)

func (f Field) String() string {
	switch f {
	case FieldLastDate:
		return "lastDate"
	case FieldTimeLeft:
		return "timeleft"
	case FieldActiveTimer:
		return "activeTimer"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Phase is the lifecycle position of a Store.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseExpired
	PhaseTornDown
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseExpired:
		return "expired"
	case PhaseTornDown:
		return "torn down"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is a snapshot of the countdown fields.
type State struct {
	LastDate    time.Time
	TimeLeft    int64 // milliseconds until LastDate, non-positive once expired
	ActiveTimer timer.Handle
}

// Patch is a partial update. Nil fields are left alone.
type Patch struct {
	LastDate    *time.Time
	TimeLeft    *int64
	ActiveTimer *timer.Handle
}

// Store holds the state of one mounted countdown.
type Store struct {
	clock     timer.Clock
	scheduler timer.Scheduler

	lastDate    *Value[time.Time]
	timeLeft    *Value[int64]
	activeTimer *Value[timer.Handle]

	mu       sync.Mutex
	tornDown bool
}

// NewStore returns a running store counting down to deadline. The scheduler
// cancels recorded timers; a nil clock uses the wall clock.
func NewStore(deadline time.Time, clock timer.Clock, scheduler timer.Scheduler) *Store {
	if clock == nil {
		clock = timer.RealClock{}
	}
	return &Store{
		clock:       clock,
		scheduler:   scheduler,
		lastDate:    NewValueFunc(deadline, time.Time.Equal),
		timeLeft:    NewValue(remaining(deadline, clock.Now())),
		activeTimer: NewValue(timer.NoHandle),
	}
}

func remaining(deadline, now time.Time) int64 {
	return deadline.Sub(now).Milliseconds()
}

// GetState returns a snapshot of every field.
func (s *Store) GetState() State {
	return State{
		LastDate:    s.lastDate.Get(),
		TimeLeft:    s.timeLeft.Get(),
		ActiveTimer: s.activeTimer.Get(),
	}
}

// Get returns the current value of one field.
func (s *Store) Get(f Field) any {
	switch f {
	case FieldLastDate:
		return s.lastDate.Get()
	case FieldTimeLeft:
		return s.timeLeft.Get()
	case FieldActiveTimer:
		return s.activeTimer.Get()
	default:
		return nil
	}
}

// LastDate returns the deadline.
func (s *Store) LastDate() time.Time { return s.lastDate.Get() }

// TimeLeft returns the last computed remaining milliseconds.
func (s *Store) TimeLeft() int64 { return s.timeLeft.Get() }

// ActiveTimer returns the recorded timer handle, or timer.NoHandle.
func (s *Store) ActiveTimer() timer.Handle { return s.activeTimer.Get() }

// SetState applies p field by field. Each changed field notifies its
// listeners before the next field is applied; the first listener error
// aborts the update.
func (s *Store) SetState(p Patch) error {
	if p.LastDate != nil {
		if _, err := s.lastDate.Set(*p.LastDate); err != nil {
			return fmt.Errorf("notify %s: %w", FieldLastDate, err)
		}
	}
	if p.TimeLeft != nil {
		if _, err := s.timeLeft.Set(*p.TimeLeft); err != nil {
			return fmt.Errorf("notify %s: %w", FieldTimeLeft, err)
		}
	}
	if p.ActiveTimer != nil {
		if _, err := s.activeTimer.Set(*p.ActiveTimer); err != nil {
			return fmt.Errorf("notify %s: %w", FieldActiveTimer, err)
		}
	}
	return nil
}

// SubscribeLastDate calls fn whenever the deadline changes.
func (s *Store) SubscribeLastDate(fn Listener[time.Time]) Unsubscribe {
	return s.lastDate.Subscribe(fn)
}

// SubscribeTimeLeft calls fn whenever the remaining time changes.
func (s *Store) SubscribeTimeLeft(fn Listener[int64]) Unsubscribe {
	return s.timeLeft.Subscribe(fn)
}

// SubscribeActiveTimer calls fn whenever the recorded timer handle changes.
func (s *Store) SubscribeActiveTimer(fn Listener[timer.Handle]) Unsubscribe {
	return s.activeTimer.Subscribe(fn)
}

// Listeners returns the number of listeners registered on f.
func (s *Store) Listeners(f Field) int {
	switch f {
	case FieldLastDate:
		return s.lastDate.Listeners()
	case FieldTimeLeft:
		return s.timeLeft.Listeners()
	case FieldActiveTimer:
		return s.activeTimer.Listeners()
	default:
		return 0
	}
}

// LastDateParsed decomposes the deadline for display.
func (s *Store) LastDateParsed() timefmt.ParsedDate {
	return timefmt.Decompose(s.LastDate())
}

// RecomputeRemaining sets TimeLeft to the deadline minus the current time.
func (s *Store) RecomputeRemaining() error {
	left := remaining(s.LastDate(), s.clock.Now())
	return s.SetState(Patch{TimeLeft: &left})
}

// RecordTimer stores h as the active timer without touching the previous one.
// After Cleanup the handle is cancelled and ErrTornDown returned.
func (s *Store) RecordTimer(h timer.Handle) error {
	if s.isTornDown() {
		s.cancel(h)
		return ErrTornDown
	}
	return s.SetState(Patch{ActiveTimer: &h})
}

// ReplaceTimer cancels the recorded timer, records h and returns the handle it
// replaced.
func (s *Store) ReplaceTimer(h timer.Handle) (timer.Handle, error) {
	if s.isTornDown() {
		s.cancel(h)
		return timer.NoHandle, ErrTornDown
	}
	old := s.activeTimer.Get()
	if old == h {
		return old, nil
	}
	s.cancel(old)
	return old, s.SetState(Patch{ActiveTimer: &h})
}

// Cleanup cancels the active timer and clears the handle. Other fields and
// subscriptions are kept. It is safe to call repeatedly.
func (s *Store) Cleanup() error {
	s.mu.Lock()
	s.tornDown = true
	s.mu.Unlock()

	h := s.activeTimer.Get()
	if h == timer.NoHandle {
		return nil
	}
	s.cancel(h)
	none := timer.NoHandle
	return s.SetState(Patch{ActiveTimer: &none})
}

// Phase reports where the store is in its lifecycle.
func (s *Store) Phase() Phase {
	if s.isTornDown() {
		return PhaseTornDown
	}
	if s.TimeLeft() <= 0 {
		return PhaseExpired
	}
	return PhaseRunning
}

func (s *Store) isTornDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tornDown
}

func (s *Store) cancel(h timer.Handle) {
	if h == timer.NoHandle || s.scheduler == nil {
		return
	}
	s.scheduler.Cancel(h)
}
