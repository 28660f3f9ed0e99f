package moodle

import "github.com/abhisek/moodlexml/internal/xmlnode"

// Answer fractions: percentage credit carried as text.
const (
	FractionCorrect   = "100"
	FractionIncorrect = "0"
)

// TrueFalse is the answer payload of a true/false question.
type TrueFalse struct {
	CorrectAnswer bool
	TrueFeedback  string
	FalseFeedback string
}

// NewTrueFalse returns a true/false question with default grade, penalty
// and flags. The correct answer has no default.
func NewTrueFalse(name string, correct bool) *Question {
	q := newQuestion(KindTrueFalse, name)
	q.TrueFalse = &TrueFalse{CorrectAnswer: correct}
	return q
}

// answerNodes returns the "true" answer then the "false" answer. Exactly
// one of them carries FractionCorrect.
func (tf *TrueFalse) answerNodes() []*xmlnode.Node {
	trueFrac, falseFrac := FractionIncorrect, FractionCorrect
	if tf.CorrectAnswer {
		trueFrac, falseFrac = FractionCorrect, FractionIncorrect
	}
	return []*xmlnode.Node{
		answerNode(trueFrac, "true", tf.TrueFeedback),
		answerNode(falseFrac, "false", tf.FalseFeedback),
	}
}
