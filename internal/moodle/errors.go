package moodle

import (
	"errors"
	"fmt"
)

// ErrInvalidCategoryPath is returned when a category path does not start
// with CourseSegment.
var ErrInvalidCategoryPath = errors.New("category path must start with " + CourseSegment)

// ErrIndexOutOfRange is wrapped by every IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError describes a rejected positional mutation on a File.
type IndexError struct {
	Op    string // "insert" or "remove"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s category at %d: %v (have %d)", e.Op, e.Index, ErrIndexOutOfRange, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// FieldError reports a question field that cannot be rendered.
type FieldError struct {
	Question string // question name
	Field    string
	Value    string
	Message  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("question %q: field %s=%q: %s", e.Question, e.Field, e.Value, e.Message)
}
