package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel(" WARN "))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("whatever"))
}

func TestCLIHandler_Enabled(t *testing.T) {
	h := NewCLIHandler(&bytes.Buffer{}, slog.LevelInfo)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestCLIHandler_WritesMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Info("analysis complete", "total", 3, "pareto", 2)

	out := buf.String()
	assert.Contains(t, out, "analysis complete")
	assert.Contains(t, out, "total=3")
	assert.Contains(t, out, "pareto=2")
}

func TestCLIHandler_ErrorIsColored(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Error("boom")
	assert.Contains(t, buf.String(), colorRed)
}

func TestCLIHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := NewCLIHandler(&buf, slog.LevelInfo)
	logger := slog.New(base).With("run", 7)

	logger.Info("saved")
	require.Contains(t, buf.String(), "run=7")
}
