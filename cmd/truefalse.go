package cmd

import (
	"fmt"

	"github.com/abhisek/moodlexml/internal/logging"
	"github.com/abhisek/moodlexml/internal/moodle"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type trueFalseFlags struct {
	name            string
	correct         bool
	text            string
	format          string
	generalFeedback string
	trueFeedback    string
	falseFeedback   string
	grade           string
	penalty         string
	hidden          bool
	category        string
}

func newTrueFalseCmd(opts *options) *cobra.Command {
	tf := &trueFalseFlags{}

	cmd := &cobra.Command{
		Use:   "truefalse",
		Short: "Export a single true/false question",
		Long: `Build one true/false question from flags and export it in Moodle XML.

Unset --format, --grade and --category fall back to the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := tf.build(cmd, opts)
			if err != nil {
				return err
			}
			return writeQuiz(cmd.Context(), f, writeTarget{
				path:   opts.cfg.Output,
				indent: opts.cfg.Indent,
				stdout: cmd.OutOrStdout(),
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&tf.name, "name", "", "Question name (required)")
	flags.BoolVar(&tf.correct, "correct", false, "Whether \"true\" is the correct answer")
	flags.StringVar(&tf.text, "text", "", "Question text")
	flags.StringVar(&tf.format, "format", "", "Question text format: moodle_auto_format, html, plain_text or markdown")
	flags.StringVar(&tf.generalFeedback, "general-feedback", "", "Feedback shown after any answer")
	flags.StringVar(&tf.trueFeedback, "true-feedback", "", "Feedback for the answer \"true\"")
	flags.StringVar(&tf.falseFeedback, "false-feedback", "", "Feedback for the answer \"false\"")
	flags.StringVar(&tf.grade, "grade", "", "Default grade")
	flags.StringVar(&tf.penalty, "penalty", moodle.DefaultPenalty, "Penalty")
	flags.BoolVar(&tf.hidden, "hidden", false, "Hide the question in the question bank")
	flags.StringVar(&tf.category, "category", "", "Slash-delimited category path, e.g. $course$/Unit1")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (tf *trueFalseFlags) build(cmd *cobra.Command, opts *options) (*moodle.File, error) {
	flags := cmd.Flags()
	format, grade, category := opts.cfg.QuestionTextFormat, opts.cfg.DefaultGrade, opts.cfg.Category
	if flags.Changed("format") {
		format = tf.format
	}
	if flags.Changed("grade") {
		grade = tf.grade
	}
	if flags.Changed("category") {
		category = tf.category
	}

	q := moodle.NewTrueFalse(tf.name, tf.correct)
	q.QuestionText = tf.text
	q.QuestionTextFormat = moodle.TextFormat(format)
	q.GeneralFeedback = tf.generalFeedback
	q.DefaultGrade = grade
	q.Penalty = tf.penalty
	if tf.hidden {
		q.Hidden = "1"
	}
	q.TrueFalse.TrueFeedback = tf.trueFeedback
	q.TrueFalse.FalseFeedback = tf.falseFeedback

	if !q.QuestionTextFormat.Valid() {
		return nil, fmt.Errorf("invalid format %q: must be one of %v", format, moodle.TextFormats())
	}

	c := moodle.NewCategory()
	if err := c.SetPath(moodle.ParsePath(category)); err != nil {
		return nil, fmt.Errorf("category %q: %w", category, err)
	}
	c.AddQuestion(q)

	f := moodle.NewFile()
	f.AddCategory(c)

	logging.FromContext(cmd.Context()).WithFields(logrus.Fields{
		"name":     q.Name,
		"category": c.PathString(),
		"correct":  tf.correct,
	}).Debug("Built true/false question")
	return f, nil
}
