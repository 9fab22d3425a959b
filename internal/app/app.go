package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/countdown/internal/component"
	"github.com/five82/countdown/internal/config"
	"github.com/five82/countdown/internal/dom"
	"github.com/five82/countdown/internal/page"
	"github.com/five82/countdown/internal/prefs"
	"github.com/five82/countdown/internal/state"
	"github.com/five82/countdown/internal/timer"
	"github.com/five82/countdown/internal/ui"
)

// Options configure the countdown application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/countdown/prefs.toml
	LogPath    string // overrides log_file from the config
	HTML       io.Writer
}

// Run boots the countdown TUI until the context is cancelled or the user
// quits. With Options.HTML set it renders the page once as HTML instead.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if opts.HTML != nil {
		return RenderHTML(opts.HTML, cfg, timer.RealClock{})
	}

	logPath := cfg.LogFile
	if opts.LogPath != "" {
		logPath = opts.LogPath
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "countdown")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	sched := ui.NewScheduler()
	store := state.NewStore(cfg.Deadline, timer.RealClock{}, sched)
	log.Printf("countdown to %s, %s", cfg.Deadline.Format(time.RFC3339), store.Phase())

	uiOpts := ui.Options{
		Context:     ctx,
		Store:       store,
		Scheduler:   sched,
		Document:    dom.NewDocumentWithMount(cfg.MountID),
		Page:        pageOptions(cfg),
		MountID:     cfg.MountID,
		StrictMount: cfg.StrictMount,
		ThemeName:   userPrefs.Theme,
		FullHelp:    userPrefs.FullHelp,
		PrefsPath:   opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// RenderHTML mounts the page once with a scheduler that never fires, writes
// the document and tears the page down again.
func RenderHTML(w io.Writer, cfg config.Config, clock timer.Clock) error {
	return renderDocument(w, dom.NewDocumentWithMount(cfg.MountID), cfg, clock)
}

func renderDocument(w io.Writer, doc *dom.Document, cfg config.Config, clock timer.Clock) error {
	sched := timer.NewManual()
	store := state.NewStore(cfg.Deadline, clock, sched)

	b, err := page.Mount(doc, cfg.MountID, cfg.StrictMount, func() (*component.Bound, error) {
		return page.CountdownPage(pageOptions(cfg), store, sched)
	})
	if err != nil {
		return err
	}
	defer b.Cleanup()

	if err := doc.Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func pageOptions(cfg config.Config) page.Options {
	return page.Options{Title: cfg.Title, Image: cfg.Image, Interval: page.DefaultInterval}
}
