package moodle

import (
	"fmt"
	"io"
	"slices"

	"github.com/beevik/etree"
)

// RootTag is the document element of a Moodle XML file.
const RootTag = "quiz"

// DefaultIndent is the number of spaces used by Write when
// WriteOptions.Indent is zero.
const DefaultIndent = 4

// File is an ordered list of categories rendered into one <quiz>.
type File struct {
	categories []*Category
}

// NewFile returns an empty file.
func NewFile() *File {
	return &File{}
}

// Categories returns the categories in document order.
func (f *File) Categories() []*Category {
	return f.categories
}

// AddCategory appends c.
func (f *File) AddCategory(c *Category) {
	f.categories = append(f.categories, c)
}

// AddCategoryAt inserts c before index; index may equal the length.
func (f *File) AddCategoryAt(c *Category, index int) error {
	if index < 0 || index > len(f.categories) {
		return &IndexError{Op: "insert", Index: index, Len: len(f.categories)}
	}
	f.categories = slices.Insert(f.categories, index, c)
	return nil
}

// RemoveCategoryAt removes the category at index.
func (f *File) RemoveCategoryAt(index int) error {
	if index < 0 || index >= len(f.categories) {
		return &IndexError{Op: "remove", Index: index, Len: len(f.categories)}
	}
	f.categories = slices.Delete(f.categories, index, index+1)
	return nil
}

// Stats summarizes a file.
type Stats struct {
	Categories int
	Questions  int
}

// Stats counts categories and questions.
func (f *File) Stats() Stats {
	s := Stats{Categories: len(f.categories)}
	for _, c := range f.categories {
		s.Questions += len(c.questions)
	}
	return s
}

// Document builds a document whose <quiz> root holds every category's
// elements in order: each category marker followed by its questions.
// The document starts with a UTF-8 XML declaration.
func (f *File) Document() (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	quiz := doc.CreateElement(RootTag)
	for i, c := range f.categories {
		els, err := c.Elements()
		if err != nil {
			return nil, fmt.Errorf("category %d (%s): %w", i, c.PathString(), err)
		}
		for _, el := range els {
			quiz.AddChild(el)
		}
	}
	return doc, nil
}

// WriteOptions controls serialization.
type WriteOptions struct {
	// Indent is the number of spaces per level. Zero means DefaultIndent,
	// a negative value disables indentation.
	Indent int
}

// Write writes the file as UTF-8 XML with a declaration.
func (f *File) Write(w io.Writer, opts WriteOptions) (int64, error) {
	doc, err := f.Document()
	if err != nil {
		return 0, err
	}

	switch {
	case opts.Indent == 0:
		doc.Indent(DefaultIndent)
	case opts.Indent > 0:
		doc.Indent(opts.Indent)
	}
	doc.WriteSettings.CanonicalEndTags = true
	return doc.WriteTo(w)
}
