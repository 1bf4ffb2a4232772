// Package logging builds the structured logger used by termbg.
//
// Probes put the terminal into raw mode and own stderr while they run, so
// logs never go to the terminal. They are written to a rotating file when one
// is configured and discarded otherwise.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file.
const (
	DefaultMaxSizeMB  = 5
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
)

// Options configures New.
type Options struct {
	// File is the log file path. Empty disables logging.
	File string
	// Level is one of debug, info, warn, error.
	Level string
	// MaxSizeMB and MaxBackups override the rotation defaults when positive.
	MaxSizeMB  int
	MaxBackups int
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q (expected debug, info, warn, error)", s)
	}
}

// New returns a logger and a closer for its output. The closer must be called
// before exit to flush the file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	if opts.File == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    positiveOr(opts.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: positiveOr(opts.MaxBackups, DefaultMaxBackups),
		MaxAge:     DefaultMaxAgeDays,
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("subsystem", "termbg"), w, nil
}

func positiveOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
