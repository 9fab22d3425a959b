package page

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/five82/countdown/internal/component"
	"github.com/five82/countdown/internal/dom"
	"github.com/five82/countdown/internal/state"
	"github.com/five82/countdown/internal/timer"
)

var testNow = time.Date(2026, time.October, 10, 9, 30, 0, 0, time.Local)

type fixture struct {
	store *state.Store
	clock *timer.ManualClock
	sched *timer.Manual
}

func newFixture(t *testing.T, left time.Duration) fixture {
	t.Helper()
	clock := timer.NewManualClock(testNow)
	sched := timer.NewManual()
	return fixture{
		store: state.NewStore(testNow.Add(left), clock, sched),
		clock: clock,
		sched: sched,
	}
}

func TestCountdownPage_StartsOneSecondTimer(t *testing.T) {
	f := newFixture(t, 5*24*time.Hour)
	p, err := CountdownPage(Options{Title: "OLD IPHONE GIVEAWAY"}, f.store, f.sched)
	if err != nil {
		t.Fatalf("CountdownPage: %v", err)
	}
	defer p.Cleanup()

	live := f.sched.Live()
	if len(live) != 1 || f.store.ActiveTimer() != live[0] {
		t.Fatalf("live=%v active=%d, want one recorded timer", live, f.store.ActiveTimer())
	}
	if d, _ := f.sched.Interval(live[0]); d != time.Second {
		t.Fatalf("interval = %v, want 1s", d)
	}
	if p.Root.Tag() != "main" || !p.Root.HasClass("page") {
		t.Fatalf("root = %s", p.Root)
	}
	if !strings.Contains(p.Root.Text(), "OLD IPHONE GIVEAWAY") {
		t.Fatalf("page text missing title")
	}
}

func TestCountdownPage_TickUpdatesBuckets(t *testing.T) {
	f := newFixture(t, 2*time.Minute)
	p, err := CountdownPage(Options{}, f.store, f.sched)
	if err != nil {
		t.Fatalf("CountdownPage: %v", err)
	}
	defer p.Cleanup()

	f.clock.Advance(61 * time.Second)
	if err := f.sched.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	mins := p.Root.QueryID("mins").Children()[0].Text()
	secs := p.Root.QueryID("secs").Children()[0].Text()
	if mins != "00" || secs != "59" {
		t.Fatalf("mins=%q secs=%q, want 00 59", mins, secs)
	}
}

func TestCountdownPage_ExpiryStopsTimer(t *testing.T) {
	f := newFixture(t, time.Second)
	p, err := CountdownPage(Options{}, f.store, f.sched)
	if err != nil {
		t.Fatalf("CountdownPage: %v", err)
	}
	defer p.Cleanup()

	f.clock.Advance(2 * time.Second)
	if err := f.sched.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(f.sched.Live()) != 0 {
		t.Fatalf("timer still live after expiry: %v", f.sched.Live())
	}
	if !strings.Contains(p.Root.Text(), component.ExpiredMessage) {
		t.Fatalf("expired notice missing")
	}
	if f.store.Phase() != state.PhaseExpired {
		t.Fatalf("Phase = %v, want expired", f.store.Phase())
	}
}

func TestCountdownPage_ClearsPreviousTimer(t *testing.T) {
	f := newFixture(t, time.Hour)
	existing := f.sched.Every(time.Second, func() error { return nil })
	if err := f.store.RecordTimer(existing); err != nil {
		t.Fatalf("RecordTimer: %v", err)
	}

	p, err := CountdownPage(Options{}, f.store, f.sched)
	if err != nil {
		t.Fatalf("CountdownPage: %v", err)
	}
	defer p.Cleanup()

	if got := f.sched.Cancelled(); !slices.Equal(got, []timer.Handle{existing}) {
		t.Fatalf("Cancelled = %v, want [%d]", got, existing)
	}
	if len(f.sched.Live()) != 1 {
		t.Fatalf("Live = %v, want exactly one ticker", f.sched.Live())
	}
}

func TestCountdownPage_Cleanup(t *testing.T) {
	f := newFixture(t, time.Hour)
	p, err := CountdownPage(Options{}, f.store, f.sched)
	if err != nil {
		t.Fatalf("CountdownPage: %v", err)
	}

	p.Cleanup()
	p.Cleanup()

	if f.store.ActiveTimer() != timer.NoHandle {
		t.Fatalf("ActiveTimer = %d, want none", f.store.ActiveTimer())
	}
	if len(f.sched.Live()) != 0 {
		t.Fatalf("Live = %v, want none", f.sched.Live())
	}
	if n := f.store.Listeners(state.FieldTimeLeft); n != 0 {
		t.Fatalf("Listeners = %d, want 0", n)
	}
	if f.store.Phase() != state.PhaseTornDown {
		t.Fatalf("Phase = %v, want torn down", f.store.Phase())
	}
}

func TestCountdownPage_RemountAfterTeardownFails(t *testing.T) {
	f := newFixture(t, time.Hour)
	p, err := CountdownPage(Options{}, f.store, f.sched)
	if err != nil {
		t.Fatalf("CountdownPage: %v", err)
	}
	p.Cleanup()

	if _, err := CountdownPage(Options{}, f.store, f.sched); !errors.Is(err, state.ErrTornDown) {
		t.Fatalf("remount error = %v, want ErrTornDown", err)
	}
	if len(f.sched.Live()) != 0 {
		t.Fatalf("remount leaked a timer: %v", f.sched.Live())
	}
}

func TestCountdownPage_ListenerErrorCancelsNewTimer(t *testing.T) {
	f := newFixture(t, time.Hour)
	boom := errors.New("boom")
	f.store.SubscribeActiveTimer(func(timer.Handle) error { return boom })

	if _, err := CountdownPage(Options{}, f.store, f.sched); !errors.Is(err, boom) {
		t.Fatalf("CountdownPage error = %v, want boom", err)
	}
	if live := f.sched.Live(); len(live) != 0 {
		t.Fatalf("live timers = %v, want none", live)
	}
}

func TestMount(t *testing.T) {
	f := newFixture(t, time.Hour)
	build := func() (*component.Bound, error) {
		return CountdownPage(Options{Title: "t"}, f.store, f.sched)
	}

	t.Run("appends into container", func(t *testing.T) {
		doc := dom.NewDocumentWithMount("app")
		b, err := Mount(doc, "app", true, build)
		if err != nil {
			t.Fatalf("Mount: %v", err)
		}
		defer b.Cleanup()
		if doc.GetElementByID("card-wrapper") == nil {
			t.Fatalf("page not attached to #app")
		}
	})

	t.Run("strict missing container", func(t *testing.T) {
		doc := dom.NewDocument()
		b, err := Mount(doc, "app", true, build)
		if !errors.Is(err, ErrNoMountPoint) || b != nil {
			t.Fatalf("Mount = %v, %v, want ErrNoMountPoint", b, err)
		}
	})

	t.Run("lenient missing container", func(t *testing.T) {
		doc := dom.NewDocument()
		called := false
		b, err := Mount(doc, "app", false, func() (*component.Bound, error) {
			called = true
			return nil, nil
		})
		if err != nil || b != nil || called {
			t.Fatalf("Mount = %v, %v called=%v, want silent no-op", b, err, called)
		}
	})
}
