package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/countdown/internal/timer"
)

// intervalMsg is one tick of a repeating timer.
type intervalMsg struct {
	handle timer.Handle
	at     time.Time
}

type interval struct {
	every time.Duration
	fn    func() error
}

// Scheduler runs repeating timers on the Bubble Tea event loop. Every queues a
// tea.Tick that the model collects with Flush; each tick runs its callback
// inside Update and re-arms itself until cancelled. Ticks that arrive for a
// cancelled handle are dropped.
type Scheduler struct {
	mu      sync.Mutex
	next    timer.Handle
	live    map[timer.Handle]interval
	pending []tea.Cmd
}

// NewScheduler returns a scheduler with no timers.
func NewScheduler() *Scheduler {
	return &Scheduler{live: make(map[timer.Handle]interval)}
}

// Every implements timer.Scheduler.
func (s *Scheduler) Every(d time.Duration, fn func() error) timer.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	h := s.next
	s.live[h] = interval{every: d, fn: fn}
	s.pending = append(s.pending, tickCmd(h, d))
	return h
}

// Cancel implements timer.Scheduler.
func (s *Scheduler) Cancel(h timer.Handle) {
	s.mu.Lock()
	delete(s.live, h)
	s.mu.Unlock()
}

// Flush returns the ticks queued since the last call.
func (s *Scheduler) Flush() tea.Cmd {
	s.mu.Lock()
	cmds := s.pending
	s.pending = nil
	s.mu.Unlock()

	return batch(cmds)
}

// Live reports whether h is still scheduled.
func (s *Scheduler) Live(h timer.Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.live[h]
	return ok
}

// fire runs the callback behind msg and returns the command for its next tick.
// No drift correction: the next tick is armed a full period after this one.
func (s *Scheduler) fire(msg intervalMsg) (tea.Cmd, error) {
	s.mu.Lock()
	iv, ok := s.live[msg.handle]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	err := iv.fn()

	var cmds []tea.Cmd
	if s.Live(msg.handle) {
		cmds = append(cmds, tickCmd(msg.handle, iv.every))
	}
	if queued := s.Flush(); queued != nil {
		cmds = append(cmds, queued)
	}
	return batch(cmds), err
}

func batch(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func tickCmd(h timer.Handle, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return intervalMsg{handle: h, at: t}
	})
}
