// Package logging provides a compact slog handler for CLI output: one
// colored line per record on stderr, keeping stdout free for the encoded
// result documents.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	colorDim   = "\033[2m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// CLIHandler is a custom slog.Handler for terminal output.
type CLIHandler struct {
	writer io.Writer
	level  slog.Level
	attrs  []slog.Attr
}

func NewCLIHandler(w io.Writer, level slog.Level) *CLIHandler {
	return &CLIHandler{writer: w, level: level}
}

func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	parts := make([]string, 0, 1+len(h.attrs)+r.NumAttrs())
	parts = append(parts, r.Message)
	for _, a := range h.attrs {
		parts = append(parts, fmt.Sprintf("%s=%v", a.Key, a.Value))
	}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, fmt.Sprintf("%s=%v", a.Key, a.Value))
		return true
	})

	line := strings.Join(parts, " ")
	switch {
	case r.Level >= slog.LevelError:
		line = colorRed + line + colorReset
	case r.Level <= slog.LevelDebug:
		line = colorDim + line + colorReset
	}

	_, err := fmt.Fprintln(h.writer, line)
	return err
}

func (h *CLIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &CLIHandler{writer: h.writer, level: h.level, attrs: merged}
}

func (h *CLIHandler) WithGroup(_ string) slog.Handler {
	return h
}

// SetDefaultCLILogger installs a CLI logger on stderr at the given level.
func SetDefaultCLILogger(level string) {
	slog.SetDefault(slog.New(NewCLIHandler(os.Stderr, ParseLogLevel(level))))
}

// ParseLogLevel converts a string log level to slog.Level, defaulting to
// info for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
