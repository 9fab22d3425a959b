// Package page drives the countdown: it owns the repeating tick, builds the
// page around the card and mounts it into the document.
package page

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/five82/countdown/internal/component"
	"github.com/five82/countdown/internal/dom"
	"github.com/five82/countdown/internal/state"
	"github.com/five82/countdown/internal/timer"
)

// DefaultInterval is the tick period.
const DefaultInterval = time.Second

// ErrNoMountPoint is returned by a strict Mount when the container is missing.
var ErrNoMountPoint = errors.New("you must render a container to mount the app")

// Options configure the countdown page.
type Options struct {
	Title    string
	Image    string
	Interval time.Duration // zero uses DefaultInterval
}

// CountdownPage starts the tick that recomputes the remaining time, replacing
// any timer the store already tracks, and renders the page around the card.
// Cleanup unsubscribes the card first and then tears the store down.
func CountdownPage(opts Options, store *state.Store, sched timer.Scheduler) (*component.Bound, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	h := sched.Every(interval, store.RecomputeRemaining)
	old, err := store.ReplaceTimer(h)
	if err != nil {
		sched.Cancel(h)
		return nil, fmt.Errorf("record countdown timer: %w", err)
	}
	if old != timer.NoHandle {
		log.Printf("replaced countdown timer %d with %d", old, h)
	}

	root := dom.NewElement("main").SetClass("page")
	wrapper := dom.NewElement("section").SetClass("card-wrapper").SetID("card-wrapper")
	root.Append(wrapper)

	card := component.Card(component.CardProps{Title: opts.Title, Image: opts.Image}, store, sched)
	wrapper.Append(card.Root)

	return component.NewBound(root, func() {
		card.Cleanup()
		if err := store.Cleanup(); err != nil {
			log.Printf("countdown store cleanup: %v", err)
		}
	}), nil
}

// Mount builds the page into the element with the given id. When the element
// is missing a strict mount fails with ErrNoMountPoint; otherwise it logs and
// returns a nil Bound without calling build, so no timer is started.
func Mount(doc *dom.Document, id string, strict bool, build func() (*component.Bound, error)) (*component.Bound, error) {
	target := doc.GetElementByID(id)
	if target == nil {
		if strict {
			return nil, fmt.Errorf("mount #%s: %w", id, ErrNoMountPoint)
		}
		log.Printf("mount point #%s not found, countdown not rendered", id)
		return nil, nil
	}

	b, err := build()
	if err != nil {
		return nil, err
	}
	target.Append(b.Root)
	return b, nil
}
