package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	wlog "github.com/sandbot-io/wifimgr/pkg/log"
)

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// newLogger builds the operational logger. Validate has already checked
// level and format.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	lvl, _ := parseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if strings.ToLower(format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// newTraceLogger returns the trace sink and a close function. Trace events
// are mirrored to the operational logger at debug level.
func newTraceLogger(path string, logger *slog.Logger) (wlog.Logger, func() error, error) {
	adapter := wlog.NewSlogAdapter(logger)
	if path == "" {
		return adapter, func() error { return nil }, nil
	}

	file, err := wlog.NewFileLogger(path)
	if err != nil {
		return nil, nil, fmt.Errorf("trace file: %w", err)
	}
	return wlog.NewMultiLogger(file, adapter), file.Close, nil
}
