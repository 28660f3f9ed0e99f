package xmlnode

import (
	"strings"

	"github.com/beevik/etree"
)

// cdataEnd terminates a CDATA section and cannot appear inside one.
const cdataEnd = "]]>"

// Render converts n into a detached element tree. The element is
// adopted by whichever document or element it is later added to.
//
// Tag names and attribute values are not validated.
func Render(n *Node) *etree.Element {
	el := etree.NewElement(n.Tag)
	for _, a := range n.Attrs {
		el.CreateAttr(a.Key, a.Value)
	}
	if n.HasText() {
		if n.IsCData() {
			for _, section := range CDataSections(n.Text) {
				el.CreateCData(section)
			}
		} else {
			el.CreateText(n.Text)
		}
	}
	for _, c := range n.Children {
		el.AddChild(Render(c))
	}
	return el
}

// CDataSections splits s into consecutive CDATA payloads so that none
// contains "]]>". Each occurrence ends one section with "]]" and starts
// the next with ">"; concatenated, the sections equal s.
func CDataSections(s string) []string {
	parts := strings.Split(s, cdataEnd)
	if len(parts) == 1 {
		return parts
	}
	sections := make([]string, len(parts))
	for i, p := range parts {
		if i > 0 {
			p = ">" + p
		}
		if i < len(parts)-1 {
			p += "]]"
		}
		sections[i] = p
	}
	return sections
}

// RenderAll renders each node in order.
func RenderAll(nodes []*Node) []*etree.Element {
	out := make([]*etree.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Render(n))
	}
	return out
}
