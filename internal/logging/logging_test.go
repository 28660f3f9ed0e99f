package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantLevel logrus.Level
		wantErr   bool
	}{
		{"defaults", Options{}, logrus.InfoLevel, false},
		{"debug text", Options{Level: "debug", Format: "text"}, logrus.DebugLevel, false},
		{"warn json", Options{Level: "warn", Format: "json"}, logrus.WarnLevel, false},
		{"bad level", Options{Level: "loud"}, 0, true},
		{"bad format", Options{Format: "xml"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, l.GetLevel())
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Format: "json", Out: &buf})
	require.NoError(t, err)

	l.WithField("questions", 2).Info("wrote quiz")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "wrote quiz", entry["msg"])
	assert.Equal(t, float64(2), entry["questions"])
}

func TestWithRun(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ctx := WithRun(context.Background(), logger)

	FromContext(ctx).Info("first")
	FromContext(ctx).Info("second")

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	id, ok := entries[0].Data["run_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, entries[1].Data["run_id"])

	other := WithRun(context.Background(), logger)
	FromContext(other).Info("third")
	assert.NotEqual(t, id, hook.LastEntry().Data["run_id"])
}

func TestFromContext_Fallback(t *testing.T) {
	assert.Equal(t, logrus.StandardLogger(), FromContext(context.Background()))
}
