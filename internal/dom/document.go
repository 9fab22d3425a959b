package dom

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a page with a doctype, an html element and a body.
type Document struct {
	root *html.Node
	body *Element
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := &html.Node{Type: html.ElementNode, DataAtom: atom.Html, Data: "html"}
	root.AppendChild(htmlEl)

	body := NewElement("body")
	htmlEl.AppendChild(body.n)

	return &Document{root: root, body: body}
}

// NewDocumentWithMount returns a document whose body holds an empty div with
// the given id.
func NewDocumentWithMount(id string) *Document {
	d := NewDocument()
	d.body.Append(NewElement("div").SetID(id))
	return d
}

// Body returns the body element.
func (d *Document) Body() *Element { return d.body }

// GetElementByID searches the body for id.
func (d *Document) GetElementByID(id string) *Element {
	if d.body.ID() == id {
		return d.body
	}
	return d.body.QueryID(id)
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}
