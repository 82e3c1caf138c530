package logger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/gridstats/internal/logger"
)

func newBufferLogger(level logger.Level) (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(level),
		logger.WithColors(false),
	), &buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.DEBUG, logger.ParseLevel("debug"))
	assert.Equal(t, logger.WARN, logger.ParseLevel("WARNING"))
	assert.Equal(t, logger.ERROR, logger.ParseLevel("error"))
	assert.Equal(t, logger.INFO, logger.ParseLevel("nonsense"))
}

func TestLogger_FiltersByLevel(t *testing.T) {
	log, buf := newBufferLogger(logger.WARN)

	log.Info("hidden")
	log.Warn("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown 1")
}

func TestLogger_PrefixAndSortedFields(t *testing.T) {
	log, buf := newBufferLogger(logger.DEBUG)

	log.WithPrefix("statsapi").
		WithFields(map[string]any{"year": 2023, "player_id": 4433}).
		Debug("fetching")

	line := buf.String()
	assert.Contains(t, line, "[statsapi]")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "fetching player_id=4433 year=2023"), line)
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(logger.DEBUG)

	_ = parent.WithField("child", true)
	parent.Info("parent line")

	assert.NotContains(t, buf.String(), "child=")
}

func TestContext(t *testing.T) {
	log, buf := newBufferLogger(logger.DEBUG)
	ctx := logger.NewContext(context.Background(), log.WithField("request_id", "abc"))

	logger.FromContext(ctx).Info("handled")

	assert.Contains(t, buf.String(), "request_id=abc")
	assert.Equal(t, logger.Default(), logger.FromContext(context.Background()))
}
