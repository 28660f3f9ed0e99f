package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/moodlexml/internal/logging"
	"github.com/abhisek/moodlexml/internal/moodle"
	"github.com/spf13/cobra"
)

// sampleHTML is the body used for every sample question field.
const sampleHTML = "<div>This is on the first line.</div>\n" +
	"<div>This is on a second line.</div>\n" +
	"<div>&nbsp;</div>\n" +
	"<div><strong>This is on the fourth line, and bold.</strong></div>"

// sampleCategory is the category the sample question is filed under.
const sampleCategory = "CS196TestQuestionsGenerated"

func newSampleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sample <file>",
		Short: "Write a sample true/false quiz",
		Long: `Write a one-question sample quiz in Moodle XML.

<file> must exist and be readable; its contents are not used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			in.Close()

			f, err := buildSampleFile()
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).WithField("input", args[0]).Debug("Built sample quiz")

			return writeQuiz(cmd.Context(), f, writeTarget{
				path:   opts.cfg.Output,
				indent: opts.cfg.Indent,
				stdout: cmd.OutOrStdout(),
			})
		},
	}
}

// buildSampleFile returns the TestAF question, false being correct, in
// $course$/CS196TestQuestionsGenerated.
func buildSampleFile() (*moodle.File, error) {
	q := moodle.NewTrueFalse("TestAF", false)
	q.QuestionText = "<div>Just doing some testing</div>\n<div>&nbsp;</div>\n<div><strong>asdfasdf</strong></div>"
	q.GeneralFeedback = sampleHTML
	q.TrueFalse.TrueFeedback = sampleHTML
	q.TrueFalse.FalseFeedback = sampleHTML

	c := moodle.NewCategory()
	if err := c.SetPath(append(c.Path(), sampleCategory)); err != nil {
		return nil, err
	}
	c.AddQuestion(q)

	f := moodle.NewFile()
	f.AddCategory(c)
	return f, nil
}
