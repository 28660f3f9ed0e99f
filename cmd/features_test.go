package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/cucumber/godog"
)

func TestFeatures(t *testing.T) {
	isolateEnv(t)

	suite := godog.TestSuite{
		Name:                "moodlexml-features",
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:    "progress",
			Paths:     []string{filepath.Join("testdata", "features")},
			Output:    io.Discard,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("feature scenarios failed")
	}
}

// featureState holds one scenario's working directory and results.
type featureState struct {
	dir    string
	prevWD string
	stdout bytes.Buffer
	stderr bytes.Buffer
	err    error
	quiz   []*etree.Element
}

func initializeScenario(ctx *godog.ScenarioContext) {
	s := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, s.setup()
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		s.cleanup()
		return ctx, nil
	})

	ctx.Step(`^an input file "([^"]+)"$`, s.anInputFile)
	ctx.Step(`^I run "([^"]+)"$`, s.iRun)
	ctx.Step(`^the command succeeds$`, s.theCommandSucceeds)
	ctx.Step(`^the command fails with "([^"]+)"$`, s.theCommandFailsWith)
	ctx.Step(`^the file "([^"]+)" holds a quiz with (\d+) entries$`, s.theFileHoldsAQuiz)
	ctx.Step(`^stdout holds a quiz with (\d+) entries$`, s.stdoutHoldsAQuiz)
	ctx.Step(`^entry (\d+) is the category "([^"]+)"$`, s.entryIsTheCategory)
	ctx.Step(`^entry (\d+) is a "([^"]+)" question with (\d+) parts$`, s.entryIsAQuestion)
	ctx.Step(`^the "(true|false)" answer of entry (\d+) has fraction "([^"]+)"$`, s.answerHasFraction)
}

func (s *featureState) setup() error {
	dir, err := os.MkdirTemp("", "moodlexml-feature-")
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	s.dir, s.prevWD = dir, wd
	s.stdout.Reset()
	s.stderr.Reset()
	s.err = nil
	s.quiz = nil
	return os.Chdir(dir)
}

func (s *featureState) cleanup() {
	if s.prevWD != "" {
		_ = os.Chdir(s.prevWD)
	}
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
}

func (s *featureState) anInputFile(name string) error {
	return os.WriteFile(name, []byte("placeholder\n"), 0o644)
}

func (s *featureState) iRun(line string) error {
	root := newRootCmd()
	root.SetArgs(strings.Fields(line))
	root.SetOut(&s.stdout)
	root.SetErr(&s.stderr)
	s.err = root.Execute()
	return nil
}

func (s *featureState) theCommandSucceeds() error {
	if s.err != nil {
		return fmt.Errorf("command failed: %v\n%s", s.err, s.stderr.String())
	}
	return nil
}

func (s *featureState) theCommandFailsWith(want string) error {
	if s.err == nil {
		return fmt.Errorf("command succeeded, want error containing %q", want)
	}
	if !strings.Contains(s.err.Error(), want) {
		return fmt.Errorf("error %q does not contain %q", s.err, want)
	}
	return nil
}

func (s *featureState) theFileHoldsAQuiz(name string, entries int) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	return s.loadQuiz(data, entries)
}

func (s *featureState) stdoutHoldsAQuiz(entries int) error {
	return s.loadQuiz(s.stdout.Bytes(), entries)
}

func (s *featureState) loadQuiz(data []byte, entries int) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("parse output: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "quiz" {
		return fmt.Errorf("root element is not <quiz>")
	}
	s.quiz = root.ChildElements()
	if len(s.quiz) != entries {
		return fmt.Errorf("got %d entries, want %d", len(s.quiz), entries)
	}
	return nil
}

func (s *featureState) entry(i int) (*etree.Element, error) {
	if i < 1 || i > len(s.quiz) {
		return nil, fmt.Errorf("no entry %d (have %d)", i, len(s.quiz))
	}
	return s.quiz[i-1], nil
}

func (s *featureState) entryIsTheCategory(i int, path string) error {
	e, err := s.entry(i)
	if err != nil {
		return err
	}
	if typ := e.SelectAttrValue("type", ""); typ != "category" {
		return fmt.Errorf("entry %d has type %q", i, typ)
	}
	text := e.FindElement("category/text")
	if text == nil || text.Text() != path {
		return fmt.Errorf("entry %d is not category %q", i, path)
	}
	return nil
}

func (s *featureState) entryIsAQuestion(i int, kind string, parts int) error {
	e, err := s.entry(i)
	if err != nil {
		return err
	}
	if typ := e.SelectAttrValue("type", ""); typ != kind {
		return fmt.Errorf("entry %d has type %q, want %q", i, typ, kind)
	}
	if n := len(e.ChildElements()); n != parts {
		return fmt.Errorf("entry %d has %d parts, want %d", i, n, parts)
	}
	return nil
}

func (s *featureState) answerHasFraction(answer string, i int, fraction string) error {
	e, err := s.entry(i)
	if err != nil {
		return err
	}
	for _, a := range e.SelectElements("answer") {
		text := a.FindElement("text")
		if text == nil || text.Text() != answer {
			continue
		}
		if got := a.SelectAttrValue("fraction", ""); got != fraction {
			return fmt.Errorf("answer %q has fraction %q, want %q", answer, got, fraction)
		}
		return nil
	}
	return fmt.Errorf("entry %d has no %q answer", i, answer)
}
