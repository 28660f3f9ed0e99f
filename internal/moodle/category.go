package moodle

import (
	"strings"

	"github.com/abhisek/moodlexml/internal/xmlnode"
	"github.com/beevik/etree"
)

// CourseSegment is the mandatory first segment of every category path.
const CourseSegment = "$course$"

// PathSeparator joins category path segments.
const PathSeparator = "/"

// Category is a course-relative question category and the questions
// filed under it.
type Category struct {
	path      []string
	questions []*Question
}

// NewCategory returns a category at the course root.
func NewCategory() *Category {
	return &Category{path: []string{CourseSegment}}
}

// Path returns a copy of the path segments.
func (c *Category) Path() []string {
	return append([]string(nil), c.path...)
}

// SetPath replaces the path. The first segment must be CourseSegment;
// on error the current path is kept.
func (c *Category) SetPath(segments []string) error {
	if len(segments) == 0 || segments[0] != CourseSegment {
		return ErrInvalidCategoryPath
	}
	c.path = append([]string(nil), segments...)
	return nil
}

// PathString returns the segments joined with PathSeparator.
func (c *Category) PathString() string {
	return strings.Join(c.path, PathSeparator)
}

// ParsePath splits a slash-delimited path, dropping empty segments and
// prefixing CourseSegment unless it is already the first non-empty one.
func ParsePath(s string) []string {
	segments := []string{CourseSegment}
	first := true
	for _, part := range strings.Split(s, PathSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if first {
			first = false
			if part == CourseSegment {
				continue
			}
		}
		segments = append(segments, part)
	}
	return segments
}

// AddQuestion appends q.
func (c *Category) AddQuestion(q *Question) {
	c.questions = append(c.questions, q)
}

// Questions returns the questions in insertion order.
func (c *Category) Questions() []*Question {
	return c.questions
}

// Nodes returns the category marker followed by every question.
func (c *Category) Nodes() ([]*xmlnode.Node, error) {
	nodes := make([]*xmlnode.Node, 0, len(c.questions)+1)
	nodes = append(nodes, c.markerNode())
	for _, q := range c.questions {
		n, err := q.Node()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Elements renders Nodes.
func (c *Category) Elements() ([]*etree.Element, error) {
	nodes, err := c.Nodes()
	if err != nil {
		return nil, err
	}
	return xmlnode.RenderAll(nodes), nil
}

func (c *Category) markerNode() *xmlnode.Node {
	return xmlnode.New("question",
		xmlnode.New("category", xmlnode.NewText(c.PathString())),
	).SetAttr("type", string(kindCategory))
}
