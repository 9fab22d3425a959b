// Package dom is the host document the countdown renders into: a small element
// API over golang.org/x/net/html nodes.
package dom

import (
	"bytes"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element wraps an element node.
type Element struct {
	n *html.Node
}

// NewElement creates a detached element.
func NewElement(tag string) *Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return &Element{n: &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}}
}

func wrap(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{n: n}
}

// Node exposes the underlying node.
func (e *Element) Node() *html.Node { return e.n }

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.n.Data }

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the named attribute.
func (e *Element) SetAttr(name, value string) *Element {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr[i].Val = value
			return e
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
	return e
}

// ID returns the id attribute.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// SetID sets the id attribute.
func (e *Element) SetID(id string) *Element { return e.SetAttr("id", id) }

// SetClass replaces the class list.
func (e *Element) SetClass(classes ...string) *Element {
	return e.SetAttr("class", strings.Join(classes, " "))
}

// Classes returns the class list.
func (e *Element) Classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

// HasClass reports whether class is in the class list.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.Classes(), class)
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(text string) *Element {
	e.removeAll()
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return e
}

// Text returns the concatenated text of all descendants.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return b.String()
}

// Append adds children at the end, detaching them from any previous parent.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c == nil {
			continue
		}
		if p := c.n.Parent; p != nil {
			p.RemoveChild(c.n)
		}
		e.n.AppendChild(c.n)
	}
	return e
}

// ReplaceChildren removes every child node and appends children.
func (e *Element) ReplaceChildren(children ...*Element) *Element {
	e.removeAll()
	return e.Append(children...)
}

func (e *Element) removeAll() {
	for c := e.n.FirstChild; c != nil; c = e.n.FirstChild {
		e.n.RemoveChild(c)
	}
}

// Children returns the element children in order.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if el := wrap(c); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element { return wrap(e.n.Parent) }

// QueryID returns the first descendant with the given id, depth first.
func (e *Element) QueryID(id string) *Element {
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		el := wrap(c)
		if el == nil {
			continue
		}
		if el.ID() == id {
			return el
		}
		if found := el.QueryID(id); found != nil {
			return found
		}
	}
	return nil
}

// QueryTag returns every descendant with the given tag, depth first.
func (e *Element) QueryTag(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children() {
		if c.Tag() == tag {
			out = append(out, c)
		}
		out = append(out, c.QueryTag(tag)...)
	}
	return out
}

// Render writes the element as HTML.
func (e *Element) Render(w io.Writer) error {
	return html.Render(w, e.n)
}

// String returns the element as HTML.
func (e *Element) String() string {
	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}
