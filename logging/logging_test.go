package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewDefaultLoggerTo(&stdout, &stderr), &stdout, &stderr
}

func TestDefaultLogger_LevelFiltering(t *testing.T) {
	logger, stdout, stderr := newBufferedLogger()

	logger.Debug("hidden")
	assert.Empty(t, stdout.String())

	logger.SetLevel(DebugLevel)
	logger.Debug("shown")
	assert.Contains(t, stdout.String(), "[DEBUG] shown")

	logger.SetLevel(ErrorLevel)
	logger.Warn("dropped")
	assert.Empty(t, stderr.String())
}

func TestDefaultLogger_Streams(t *testing.T) {
	logger, stdout, stderr := newBufferedLogger()

	logger.Info("to stdout")
	logger.Warn("to stderr")
	logger.Error(errors.New("boom"), "failed")

	assert.Contains(t, stdout.String(), "[INFO] to stdout")
	assert.NotContains(t, stdout.String(), "to stderr")
	assert.Contains(t, stderr.String(), "[WARN] to stderr")
	assert.Contains(t, stderr.String(), "[ERROR] failed: boom")
}

func TestDefaultLogger_Fields(t *testing.T) {
	logger, stdout, _ := newBufferedLogger()

	child := logger.WithFields(Fields{"component": "setting"})
	child.Info("generated", Fields{"root": "C"})

	assert.Contains(t, stdout.String(), "generated map[component:setting root:C]")

	// parent is unchanged
	stdout.Reset()
	logger.Info("plain")
	assert.NotContains(t, stdout.String(), "component")
}

func TestDefaultLogger_WithContext(t *testing.T) {
	logger, stdout, _ := newBufferedLogger()

	ctx := ContextWithFields(context.Background(), Fields{"request": 7})
	logger.WithContext(ctx).Info("from context")
	assert.Contains(t, stdout.String(), "map[request:7]")

	assert.Same(t, logger, logger.WithContext(context.Background()))
}

func TestDefaultLogger_FatalExits(t *testing.T) {
	logger, _, stderr := newBufferedLogger()
	code := -1
	logger.exit = func(c int) { code = c }

	logger.Fatal(errors.New("bad"), "giving up")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "[FATAL] giving up: bad")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, DebugLevel, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSetGlobalLogger_NilDisables(t *testing.T) {
	previous := GetGlobalLogger()
	defer SetGlobalLogger(previous)

	SetGlobalLogger(nil)
	assert.IsType(t, &NoOpLogger{}, GetGlobalLogger())
	assert.IsType(t, &NoOpLogger{}, WithFields(Fields{"a": 1}))
}
