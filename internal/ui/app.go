package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/countdown/internal/component"
	"github.com/five82/countdown/internal/dom"
	"github.com/five82/countdown/internal/page"
	"github.com/five82/countdown/internal/prefs"
	"github.com/five82/countdown/internal/state"
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Scheduler   *Scheduler
	Document    *dom.Document
	Page        page.Options
	MountID     string
	StrictMount bool
	ThemeName   string
	FullHelp    bool
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	store       *state.Store
	sched       *Scheduler
	doc         *dom.Document
	pageOpts    page.Options
	mountID     string
	strictMount bool
	prefsPath   string

	bound   *component.Bound
	mounted bool
	err     error

	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
}

// mountMsg is delivered on the first loop turn, once the document is ready.
type mountMsg struct{}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	sched := opts.Scheduler
	if sched == nil {
		sched = NewScheduler()
	}
	doc := opts.Document
	if doc == nil {
		doc = dom.NewDocumentWithMount(opts.MountID)
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		store:       opts.Store,
		sched:       sched,
		doc:         doc,
		pageOpts:    opts.Page,
		mountID:     opts.MountID,
		strictMount: opts.StrictMount,
		prefsPath:   prefsPath,
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}
	m.help.ShowAll = opts.FullHelp
	m.setTheme(GetTheme(opts.ThemeName))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return mountMsg{} }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mountMsg:
		return m.mount()

	case intervalMsg:
		cmd, err := m.sched.fire(msg)
		if err != nil {
			m.err = fmt.Errorf("countdown tick: %w", err)
			log.Printf("%v", m.err)
			m.cleanup()
			return m, tea.Quit
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) mount() (tea.Model, tea.Cmd) {
	if m.mounted || m.store == nil {
		return m, nil
	}
	m.mounted = true
	b, err := page.Mount(m.doc, m.mountID, m.strictMount, func() (*component.Bound, error) {
		return page.CountdownPage(m.pageOpts, m.store, m.sched)
	})
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.bound = b
	return m, m.sched.Flush()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cleanup()
		return m, tea.Quit

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.savePrefs()
	}
	return m, nil
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	st := t.Styles()
	m.help.Styles.ShortKey = st.HelpKey
	m.help.Styles.ShortDesc = st.HelpDesc
	m.help.Styles.ShortSeparator = st.HelpSep
	m.help.Styles.FullKey = st.HelpKey
	m.help.Styles.FullDesc = st.HelpDesc
	m.help.Styles.FullSeparator = st.HelpSep
	m.help.Styles.Ellipsis = st.HelpSep
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, FullHelp: m.help.ShowAll}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// cleanup tears the page down; the bound cleanup is idempotent.
func (m Model) cleanup() {
	m.bound.Cleanup()
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// View implements tea.Model.
func (m Model) View() string {
	st := m.theme.Styles()
	canvas := NewBgStyle(m.theme.Background)
	if !m.mounted {
		return canvas.FillLine(st.Footer.Render("Loading..."), m.width)
	}
	if m.bound == nil {
		return canvas.FillLine(st.Error.Render(fmt.Sprintf("Nothing mounted: #%s not found.", m.mountID)), m.width)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		paint(st, m.doc.Body()),
		st.Footer.Render(m.help.View(m.keys)),
	)
	if m.width <= 0 || m.height <= 0 {
		return st.Page.Render(body)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)))
}

// Run starts the Bubble Tea program and blocks until the user quits, the
// context is cancelled or a tick fails.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.cleanup()
		if err == nil {
			err = fm.Err()
		}
	}
	return err
}
