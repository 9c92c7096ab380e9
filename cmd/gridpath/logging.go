package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation, size in megabytes
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
)

// parseLevel resolves a -log-level value
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level: %s", s)
}

// setupLogger builds the CLI logger
// Without a path logs go to stderr as text, with one they are appended to the file as JSON
// The returned closer is nil when logging to stderr
func setupLogger(level, path string, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if path == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), nil, nil
	}

	// lumberjack creates the directory and rotates on write once the size is exceeded
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
	}
	return slog.New(slog.NewJSONHandler(w, opts)), w, nil
}
