// Package logging configures logrus and carries a run-scoped logger
// through a context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Options selects the logger's level, format and destination.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	Out    io.Writer
}

// New returns a logger configured from opts. An empty Out means stderr.
func New(opts Options) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		l, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}

	logger := logrus.New()
	logger.SetLevel(level)
	if opts.Out != nil {
		logger.SetOutput(opts.Out)
	} else {
		logger.SetOutput(os.Stderr)
	}

	switch opts.Format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("log format %q: must be text or json", opts.Format)
	}
	return logger, nil
}

type ctxKey struct{}

// WithRun returns a context carrying an entry tagged with a fresh run_id.
func WithRun(ctx context.Context, logger logrus.FieldLogger) context.Context {
	entry := logger.WithField("run_id", uuid.NewString())
	return context.WithValue(ctx, ctxKey{}, entry)
}

// FromContext returns the run-scoped logger, or the standard logger when
// ctx carries none.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(logrus.FieldLogger); ok {
			return l
		}
	}
	return logrus.StandardLogger()
}
