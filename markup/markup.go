// Package markup implements the element tree behind the view
// materialization boundary.
//
// A render function produces a markup string (a declarative HTML
// fragment). Parse turns that string into an Element tree; the builder
// helpers go the other way, assembling a tree that String serializes
// back to markup. Event-binding markers are plain attributes
// (data-onclick, data-onkeypress) whose value is the symbolic name of
// a handler; see Bindings.
package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attribute is a single element attribute. Attribute order is
// preserved from the source markup so serialization is deterministic.
type Attribute struct {
	Key string
	Val string
}

// Element is a node in the element tree. Text holds the element's
// direct text content; element children follow it in Children.
type Element struct {
	Tag      string
	Attrs    []Attribute
	Text     string
	Children []*Element
}

// Parse parses a markup fragment. The returned element is a synthetic
// container (empty tag) holding the fragment's top-level elements,
// standing in for the host container whose contents the fragment
// replaces.
func Parse(s string) (*Element, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return nil, fmt.Errorf("markup: parse: %w", err)
	}
	root := &Element{}
	for _, n := range nodes {
		switch n.Type {
		case html.ElementNode:
			root.Children = append(root.Children, convert(n))
		case html.TextNode:
			root.Text += n.Data
		}
	}
	root.Text = strings.TrimSpace(root.Text)
	return root, nil
}

func convert(n *html.Node) *Element {
	el := &Element{Tag: n.Data}
	for _, a := range n.Attr {
		el.Attrs = append(el.Attrs, Attribute{Key: a.Key, Val: a.Val})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			el.Text += c.Data
		case html.ElementNode:
			el.Children = append(el.Children, convert(c))
		}
	}
	el.Text = strings.TrimSpace(el.Text)
	return el
}

// Attr returns the value of the named attribute, or "" if absent.
func (e *Element) Attr(key string) string {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(key string) bool {
	for _, a := range e.Attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}

// ID returns the element's id attribute.
func (e *Element) ID() string { return e.Attr("id") }

// ByID returns the first element in the subtree (depth-first, in
// document order) whose id attribute equals id, or nil.
func (e *Element) ByID(id string) *Element {
	var found *Element
	e.Walk(func(el *Element) {
		if found == nil && el.Attr("id") == id {
			found = el
		}
	})
	return found
}

// ByTag returns every element in the subtree with the given tag, in
// document order.
func (e *Element) ByTag(tag string) []*Element {
	var out []*Element
	e.Walk(func(el *Element) {
		if el.Tag == tag {
			out = append(out, el)
		}
	})
	return out
}

// Walk visits e and every descendant in document order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// voidTags are serialized without a closing tag and may not carry
// content.
var voidTags = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
}

// String serializes the element back to markup. A synthetic container
// (empty tag) serializes as its contents only.
func (e *Element) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e *Element) write(b *strings.Builder) {
	if e.Tag == "" {
		if e.Text != "" {
			b.WriteString(html.EscapeString(e.Text))
		}
		for _, c := range e.Children {
			c.write(b)
		}
		return
	}
	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if voidTags[e.Tag] {
		return
	}
	if e.Text != "" {
		b.WriteString(html.EscapeString(e.Text))
	}
	for _, c := range e.Children {
		c.write(b)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}
