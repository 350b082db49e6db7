package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturedLogger() (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.JSONFormatter{})
	return NewLogrusAdapterFromLogger(base), &buf
}

func TestLogrusAdapter_Fields(t *testing.T) {
	logger, buf := newCapturedLogger()

	logger.Info("training summary", Field{Key: "examples", Value: 10})

	output := buf.String()
	assert.Contains(t, output, "training summary")
	assert.Contains(t, output, `"examples":10`)
}

func TestLogrusAdapter_WithField(t *testing.T) {
	logger, buf := newCapturedLogger()

	logger.WithField("file", "corpus.yaml").Warn("corpus file not found")

	output := buf.String()
	assert.Contains(t, output, `"file":"corpus.yaml"`)
	assert.Contains(t, output, "corpus file not found")
}

func TestLogrusAdapter_WithError(t *testing.T) {
	logger, buf := newCapturedLogger()

	logger.WithError(errors.New("boom")).Error("training failed")

	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLogrusAdapter_WithDoesNotMutateParent(t *testing.T) {
	logger, buf := newCapturedLogger()

	_ = logger.WithField("key", "value")
	logger.Info("plain message")

	assert.NotContains(t, buf.String(), `"key":"value"`)
}

func TestNewLogrusAdapter_InvalidLevelFallsBack(t *testing.T) {
	logger := NewLogrusAdapter("loud", "text")
	require.NotNil(t, logger)
}
