package moodle

import (
	"github.com/abhisek/moodlexml/internal/xmlnode"
	"github.com/beevik/etree"
)

// Kind identifies a question type in the Moodle XML "type" attribute.
type Kind string

const (
	// KindTrueFalse is a two-answer true/false question.
	KindTrueFalse Kind = "truefalse"

	// kindCategory marks the pseudo-question that opens a category.
	kindCategory Kind = "category"
)

// TextFormat is the format attribute of <questiontext>.
type TextFormat string

const (
	FormatMoodleAuto TextFormat = "moodle_auto_format"
	FormatHTML       TextFormat = "html"
	FormatPlainText  TextFormat = "plain_text"
	FormatMarkdown   TextFormat = "markdown"
)

// Valid reports whether f is one of the formats Moodle accepts.
func (f TextFormat) Valid() bool {
	switch f {
	case FormatMoodleAuto, FormatHTML, FormatPlainText, FormatMarkdown:
		return true
	}
	return false
}

// TextFormats lists the accepted formats in documentation order.
func TextFormats() []TextFormat {
	return []TextFormat{FormatMoodleAuto, FormatHTML, FormatPlainText, FormatMarkdown}
}

// Default field values applied by the constructors.
const (
	DefaultGrade          = "1"
	DefaultPenalty        = "1"
	DefaultHidden         = "0"
	DefaultShuffleAnswers = "0"
)

// Question holds the fields shared by every question type plus the
// payload of its Kind. Fields are rendered verbatim; grades and flags
// stay strings because that is how the import format carries them.
type Question struct {
	Kind Kind

	Name               string
	QuestionText       string
	QuestionTextFormat TextFormat
	GeneralFeedback    string
	DefaultGrade       string
	Penalty            string
	Hidden             string
	ShuffleAnswers     string

	// TrueFalse is set when Kind is KindTrueFalse.
	TrueFalse *TrueFalse
}

func newQuestion(kind Kind, name string) *Question {
	return &Question{
		Kind:               kind,
		Name:               name,
		QuestionTextFormat: FormatMoodleAuto,
		DefaultGrade:       DefaultGrade,
		Penalty:            DefaultPenalty,
		Hidden:             DefaultHidden,
		ShuffleAnswers:     DefaultShuffleAnswers,
	}
}

// Node assembles the <question> tree: the common fields in fixed order
// followed by the answer section of the question's Kind. It can be
// called any number of times and always reflects the current fields.
func (q *Question) Node() (*xmlnode.Node, error) {
	if !q.QuestionTextFormat.Valid() {
		return nil, &FieldError{
			Question: q.Name,
			Field:    "questiontext format",
			Value:    string(q.QuestionTextFormat),
			Message:  "unsupported text format",
		}
	}

	answers, err := q.answerNodes()
	if err != nil {
		return nil, err
	}

	n := xmlnode.New("question").SetAttr("type", string(q.Kind))
	n.Append(q.commonNodes()...)
	n.Append(answers...)
	return n, nil
}

// Element renders Node.
func (q *Question) Element() (*etree.Element, error) {
	n, err := q.Node()
	if err != nil {
		return nil, err
	}
	return n.Element(), nil
}

// commonNodes returns name, questiontext, image, generalfeedback,
// defaultgrade, penalty, hidden and shuffleanswers.
func (q *Question) commonNodes() []*xmlnode.Node {
	return []*xmlnode.Node{
		xmlnode.New("name", xmlnode.NewText(q.Name)),
		xmlnode.New("questiontext", xmlnode.NewCData(q.QuestionText)).
			SetAttr("format", string(q.QuestionTextFormat)),
		// Images are not supported; Moodle still expects the element.
		xmlnode.New("image"),
		xmlnode.New("generalfeedback", xmlnode.NewCData(q.GeneralFeedback)),
		xmlnode.NewValue("defaultgrade", q.DefaultGrade),
		xmlnode.NewValue("penalty", q.Penalty),
		xmlnode.NewValue("hidden", q.Hidden),
		xmlnode.NewValue("shuffleanswers", q.ShuffleAnswers),
	}
}

func (q *Question) answerNodes() ([]*xmlnode.Node, error) {
	switch q.Kind {
	case KindTrueFalse:
		if q.TrueFalse == nil {
			return nil, &FieldError{Question: q.Name, Field: "truefalse", Message: "missing true/false answers"}
		}
		return q.TrueFalse.answerNodes(), nil
	default:
		return nil, &FieldError{
			Question: q.Name,
			Field:    "type",
			Value:    string(q.Kind),
			Message:  "unsupported question type",
		}
	}
}

// answerNode builds <answer fraction=".."><text>..</text><feedback>..</feedback></answer>.
func answerNode(fraction, text, feedback string) *xmlnode.Node {
	return xmlnode.New("answer",
		xmlnode.NewText(text),
		xmlnode.New("feedback", xmlnode.NewCData(feedback)),
	).SetAttr("fraction", fraction)
}
