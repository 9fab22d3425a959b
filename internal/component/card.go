package component

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/countdown/internal/dom"
	"github.com/five82/countdown/internal/state"
	"github.com/five82/countdown/internal/timefmt"
	"github.com/five82/countdown/internal/timer"
)

// Bound is a rendered fragment plus the teardown for its subscriptions.
type Bound struct {
	Root    *dom.Element
	cleanup func()
}

// NewBound pairs root with cleanup. Cleanup runs fn at most once.
func NewBound(root *dom.Element, fn func()) *Bound {
	var once sync.Once
	return &Bound{Root: root, cleanup: func() {
		if fn != nil {
			once.Do(fn)
		}
	}}
}

// Cleanup releases the fragment's subscriptions. Repeated calls are no-ops.
func (b *Bound) Cleanup() {
	if b == nil || b.cleanup == nil {
		return
	}
	b.cleanup()
}

// CardProps configure the promotion card.
type CardProps struct {
	Title string
	Image string // used verbatim as the img src
}

var titleCaser = cases.Upper(language.Und)

// Card renders the promotion card and keeps its countdown region in sync with
// the store's remaining time. Once the remaining time is non-positive the
// recorded timer is cancelled and the expired notice replaces the buckets.
func Card(props CardProps, store *state.Store, sched timer.Scheduler) *Bound {
	ends := store.LastDateParsed()

	root := dom.NewElement("div").SetClass(ClassCard)
	root.Append(dom.NewElement("img").
		SetClass(ClassCardImage).
		SetAttr("src", props.Image).
		SetAttr("alt", "iphone"))

	countdowns := dom.NewElement("div").SetClass(ClassCountdowns).SetID(CountdownsRegion)
	panel := dom.NewElement("div").SetClass(ClassCardPanel).Append(
		dom.NewElement("div").SetClass(ClassCardInfo).Append(
			dom.NewElement("h2").SetClass(ClassCardTitle).SetText(titleCaser.String(props.Title)),
			dom.NewElement("h4").SetClass(ClassCardEndsOn).SetText("Giveaway Ends On "+ends.String()),
		),
		countdowns,
	)
	root.Append(panel)

	renderCountdowns(countdowns, store.TimeLeft(), store.ActiveTimer(), sched)

	unsubscribe := store.SubscribeTimeLeft(func(timeleft int64) error {
		renderCountdowns(countdowns, timeleft, store.ActiveTimer(), sched)
		return nil
	})
	return NewBound(root, unsubscribe)
}

func renderCountdowns(region *dom.Element, timeleft int64, active timer.Handle, sched timer.Scheduler) {
	region.ReplaceChildren()

	if timeleft <= 0 {
		if active != timer.NoHandle && sched != nil {
			sched.Cancel(active)
		}
		region.Append(dom.NewElement("p").SetClass(ClassExpired).SetText(ExpiredMessage))
		return
	}

	days, hours, mins, secs := timefmt.Breakdown(timeleft).Strings()
	region.Append(
		Countdown("days", days, "Days"),
		Countdown("hours", hours, "Hours"),
		Countdown("mins", mins, "Mins"),
		Countdown("secs", secs, "Secs"),
	)
}
