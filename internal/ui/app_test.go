package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/countdown/internal/component"
	"github.com/five82/countdown/internal/dom"
	"github.com/five82/countdown/internal/page"
	"github.com/five82/countdown/internal/prefs"
	"github.com/five82/countdown/internal/state"
	"github.com/five82/countdown/internal/timer"
)

var testNow = time.Date(2026, time.October, 10, 9, 30, 0, 0, time.Local)

type harness struct {
	model Model
	store *state.Store
	clock *timer.ManualClock
	sched *Scheduler
	prefs string
}

func newHarness(t *testing.T, left time.Duration, doc *dom.Document) *harness {
	t.Helper()
	clock := timer.NewManualClock(testNow)
	sched := NewScheduler()
	store := state.NewStore(testNow.Add(left), clock, sched)
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")

	m := New(Options{
		Store:       store,
		Scheduler:   sched,
		Document:    doc,
		Page:        page.Options{Title: "old iphone giveaway", Image: "/images/cell.png"},
		MountID:     "app",
		StrictMount: true,
		ThemeName:   "Slate",
		PrefsPath:   prefsPath,
	})
	return &harness{model: m, store: store, clock: clock, sched: sched, prefs: prefsPath}
}

func (h *harness) update(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_MountStartsTicker(t *testing.T) {
	h := newHarness(t, 2*time.Minute, nil)
	if got := h.model.View(); got == "" || strings.Contains(got, "Days") {
		t.Fatalf("View before mount = %q, want loading text", got)
	}

	if cmd := h.update(t, mountMsg{}); cmd == nil {
		t.Fatalf("mount returned no tick command")
	}
	active := h.store.ActiveTimer()
	if active == timer.NoHandle || !h.sched.Live(active) {
		t.Fatalf("ActiveTimer = %d, want live handle", active)
	}

	view := h.model.View()
	for _, want := range []string{"OLD IPHONE GIVEAWAY", "Days", "Hours", "Mins", "Secs", "/images/cell.png"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q:\n%s", want, view)
		}
	}

	h.update(t, mountMsg{})
	if h.store.ActiveTimer() != active {
		t.Fatalf("second mount replaced the timer")
	}
}

func TestModel_TickRecomputesRemaining(t *testing.T) {
	h := newHarness(t, 2*time.Minute, nil)
	h.update(t, mountMsg{})
	active := h.store.ActiveTimer()

	h.clock.Advance(61 * time.Second)
	if cmd := h.update(t, intervalMsg{handle: active}); cmd == nil {
		t.Fatalf("tick did not re-arm")
	}
	if got := h.store.TimeLeft(); got != 59000 {
		t.Fatalf("TimeLeft = %d, want 59000", got)
	}
	if !strings.Contains(h.model.View(), "59") {
		t.Fatalf("View does not show 59 seconds")
	}
}

func TestModel_ExpiryShowsNoticeAndStopsTicker(t *testing.T) {
	h := newHarness(t, time.Second, nil)
	h.update(t, mountMsg{})
	active := h.store.ActiveTimer()

	h.clock.Advance(time.Second)
	if cmd := h.update(t, intervalMsg{handle: active}); cmd != nil {
		t.Fatalf("expired tick re-armed the ticker")
	}
	if h.sched.Live(active) {
		t.Fatalf("ticker still live after expiry")
	}
	view := h.model.View()
	if !strings.Contains(view, component.ExpiredMessage) || strings.Contains(view, "Hours") {
		t.Fatalf("View = %q, want only the expired notice", view)
	}
}

func TestModel_QuitTearsDown(t *testing.T) {
	h := newHarness(t, time.Hour, nil)
	h.update(t, mountMsg{})
	active := h.store.ActiveTimer()

	if cmd := h.update(t, runeKey('q')); !isQuit(cmd) {
		t.Fatalf("q did not quit")
	}
	if h.store.Phase() != state.PhaseTornDown || h.sched.Live(active) {
		t.Fatalf("Phase=%v live=%v, want torn down and cancelled", h.store.Phase(), h.sched.Live(active))
	}
	if n := h.store.Listeners(state.FieldTimeLeft); n != 0 {
		t.Fatalf("Listeners = %d, want 0", n)
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	h := newHarness(t, time.Hour, nil)
	h.update(t, mountMsg{})

	h.update(t, runeKey('T'))
	if h.model.theme.Name != "Nightfox" {
		t.Fatalf("theme = %q, want Nightfox", h.model.theme.Name)
	}
	h.update(t, runeKey('?'))

	p := prefs.Load(h.prefs)
	if p.Theme != "Nightfox" || !p.FullHelp {
		t.Fatalf("saved prefs = %+v, want Nightfox with full help", p)
	}
}

func TestModel_StrictMountWithoutContainerQuits(t *testing.T) {
	h := newHarness(t, time.Hour, dom.NewDocument())

	if cmd := h.update(t, mountMsg{}); !isQuit(cmd) {
		t.Fatalf("missing mount point did not quit")
	}
	if !errors.Is(h.model.Err(), page.ErrNoMountPoint) {
		t.Fatalf("Err = %v, want ErrNoMountPoint", h.model.Err())
	}
	if h.store.ActiveTimer() != timer.NoHandle {
		t.Fatalf("timer started without a mount point")
	}
}

func TestModel_LenientMountWithoutContainer(t *testing.T) {
	h := newHarness(t, time.Hour, dom.NewDocument())
	h.model.strictMount = false

	if cmd := h.update(t, mountMsg{}); isQuit(cmd) {
		t.Fatalf("lenient missing mount point quit")
	}
	if h.model.Err() != nil {
		t.Fatalf("Err = %v, want nil", h.model.Err())
	}
	if got := h.model.View(); !strings.Contains(got, "Nothing mounted: #app not found.") {
		t.Fatalf("View = %q, want nothing-mounted notice", got)
	}
	if h.store.ActiveTimer() != timer.NoHandle {
		t.Fatalf("timer started without a mount point")
	}
}

func TestModel_ListenerErrorStopsProgram(t *testing.T) {
	h := newHarness(t, time.Hour, nil)
	h.update(t, mountMsg{})
	boom := errors.New("boom")
	h.store.SubscribeTimeLeft(func(int64) error { return boom })

	h.clock.Advance(time.Second)
	if cmd := h.update(t, intervalMsg{handle: h.store.ActiveTimer()}); !isQuit(cmd) {
		t.Fatalf("failing tick did not quit")
	}
	if !errors.Is(h.model.Err(), boom) {
		t.Fatalf("Err = %v, want boom", h.model.Err())
	}
	if h.store.Phase() != state.PhaseTornDown {
		t.Fatalf("Phase = %v, want torn down", h.store.Phase())
	}
}
