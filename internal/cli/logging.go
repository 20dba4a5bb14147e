package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogEnv names the file the logger writes to. The terminal UI owns stdout, so
// without it nothing is logged.
const LogEnv = "PLUQQY_CV_LOG"

// LogLevelEnv sets the minimum level: debug, info, warn or error.
const LogLevelEnv = "PLUQQY_CV_LOG_LEVEL"

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger opens the JSON log file named by LogEnv. The returned close
// function must be called on exit.
func NewLogger() (*slog.Logger, func() error, error) {
	path := os.Getenv(LogEnv)
	if path == "" {
		return DiscardLogger(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: parseLevel(os.Getenv(LogLevelEnv))})
	return slog.New(handler), f.Close, nil
}

var logger = DiscardLogger()

// SetLogger sets the logger handed to every command context.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = DiscardLogger()
	}
	logger = l
}

// Logger returns the logger set with SetLogger.
func Logger() *slog.Logger {
	return logger
}
