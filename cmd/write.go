package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/moodlexml/internal/logging"
	"github.com/abhisek/moodlexml/internal/moodle"
	"github.com/sirupsen/logrus"
)

// stdoutPath selects standard output as the destination.
const stdoutPath = "-"

type writeTarget struct {
	path   string
	indent int // 0 disables pretty printing
	stdout io.Writer
}

// writeQuiz serializes f to the target and logs a summary.
func writeQuiz(ctx context.Context, f *moodle.File, t writeTarget) error {
	log := logging.FromContext(ctx)

	opts := moodle.WriteOptions{Indent: t.indent}
	if t.indent == 0 {
		opts.Indent = -1
	}

	var (
		n   int64
		err error
	)
	if t.path == stdoutPath {
		n, err = f.Write(t.stdout, opts)
	} else {
		n, err = writeFile(t.path, f, opts)
	}
	if err != nil {
		log.WithError(err).WithField("output", t.path).Error("Failed to write quiz")
		return fmt.Errorf("write quiz: %w", err)
	}

	stats := f.Stats()
	log.WithFields(logrus.Fields{
		"output":     t.path,
		"categories": stats.Categories,
		"questions":  stats.Questions,
		"bytes":      n,
	}).Info("Wrote quiz")
	return nil
}

// writeFile renders f completely before creating path, so a render
// error leaves no partial output behind.
func writeFile(path string, f *moodle.File, opts moodle.WriteOptions) (int64, error) {
	var buf bytes.Buffer
	n, err := f.Write(&buf, opts)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	return n, nil
}
