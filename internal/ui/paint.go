package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/countdown/internal/component"
	"github.com/five82/countdown/internal/dom"
)

// paint renders an element tree as terminal text. Elements are styled by their
// first known class; anything else stacks its children vertically.
func paint(st Styles, el *dom.Element) string {
	if el == nil {
		return ""
	}

	switch {
	case el.HasClass(component.ClassCard):
		return st.Card.Render(paintChildren(st, el))

	case el.HasClass(component.ClassCardImage):
		src, _ := el.Attr("src")
		alt, _ := el.Attr("alt")
		return st.Image.Render("[" + alt + "] " + src)

	case el.HasClass(component.ClassCardTitle):
		return st.Surface.Render(el.Text(), st.Title)

	case el.HasClass(component.ClassCardEndsOn):
		return st.Surface.Render(el.Text(), st.Subtitle)

	case el.HasClass(component.ClassCountdowns):
		var parts []string
		for _, c := range el.Children() {
			parts = append(parts, paint(st, c))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	case el.HasClass(component.ClassCountdown):
		count, label := bucketParts(el)
		return st.BucketBox.Render(lipgloss.JoinVertical(lipgloss.Center,
			st.BucketCount.Render(count),
			st.BucketLabel.Render(label),
		))

	case el.HasClass(component.ClassExpired):
		return st.Expired.Render(el.Text())
	}

	if len(el.Children()) == 0 {
		text := strings.TrimSpace(el.Text())
		if text == "" {
			return ""
		}
		return st.Surface.Render(text, st.Text)
	}
	return paintChildren(st, el)
}

func paintChildren(st Styles, el *dom.Element) string {
	var parts []string
	for _, c := range el.Children() {
		if out := paint(st, c); out != "" {
			parts = append(parts, out)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func bucketParts(el *dom.Element) (count, label string) {
	for _, c := range el.Children() {
		switch {
		case c.HasClass(component.ClassCount):
			count = c.Text()
		case c.HasClass(component.ClassCountLabel):
			label = c.Text()
		}
	}
	return count, label
}
