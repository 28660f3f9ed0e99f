// Package xmlnode is a small labeled tree that renders itself into an
// XML element tree.
package xmlnode

import "github.com/beevik/etree"

// TextTag is the tag of nodes that always carry a text payload, even an
// empty one.
const TextTag = "text"

// Attr is a single attribute. Attributes render in insertion order.
type Attr struct {
	Key   string
	Value string
}

// Node is a labeled tree element with ordered attributes, an optional
// text payload and ordered children.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node

	// Text is emitted as the first child of the element when Tag is
	// TextTag or Text is non-empty.
	Text string

	// CData wraps a non-empty Text in a CDATA section instead of
	// escaped character data.
	CData bool
}

// New returns an empty node with the given tag.
func New(tag string, children ...*Node) *Node {
	n := &Node{
		Tag:      tag,
		Attrs:    make([]Attr, 0, 1),
		Children: make([]*Node, 0, len(children)),
	}
	return n.Append(children...)
}

// NewValue returns a node whose only payload is plain text, e.g.
// <penalty>1</penalty>.
func NewValue(tag, text string) *Node {
	n := New(tag)
	n.Text = text
	return n
}

// NewText returns a <text> node holding plain text.
func NewText(text string) *Node {
	return NewValue(TextTag, text)
}

// NewCData returns a <text> node whose content is written as CDATA.
func NewCData(text string) *Node {
	n := NewText(text)
	n.CData = true
	return n
}

// SetAttr sets key to value. An existing key keeps its position.
func (n *Node) SetAttr(key, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

// Attr returns the value stored for key.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds children after the existing ones. Nil children are skipped.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// HasText reports whether the rendered element carries a text token.
func (n *Node) HasText() bool {
	return n.Tag == TextTag || len(n.Text) > 0
}

// IsCData reports whether the text token is a CDATA section.
func (n *Node) IsCData() bool {
	return n.CData && len(n.Text) > 0
}

// Element renders the node. See Render.
func (n *Node) Element() *etree.Element {
	return Render(n)
}
