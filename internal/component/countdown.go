// Package component builds the countdown card and keeps it bound to the store.
package component

import "github.com/five82/countdown/internal/dom"

// Class names the terminal painter styles.
const (
	ClassCard       = "card"
	ClassCardImage  = "card-image"
	ClassCardPanel  = "card-panel"
	ClassCardInfo   = "info-center"
	ClassCardTitle  = "card-title"
	ClassCardEndsOn = "card-subtitle"
	ClassCountdowns = "countdowns"
	ClassCountdown  = "countdown"
	ClassCount      = "countdown-count"
	ClassCountLabel = "countdown-label"
	ClassExpired    = "expired"
)

// CountdownsRegion is the id of the region rebuilt on every tick.
const CountdownsRegion = "countdowns"

// ExpiredMessage replaces the buckets once the deadline has passed.
const ExpiredMessage = "The time to claim the offer has expired"

// Countdown returns one time bucket: the count above its label.
func Countdown(id, count, title string) *dom.Element {
	root := dom.NewElement("div").SetClass(ClassCountdown).SetID(id)
	root.Append(
		dom.NewElement("h4").SetClass(ClassCount).SetText(count),
		dom.NewElement("span").SetClass(ClassCountLabel).SetText(title),
	)
	return root
}
