package cmd

import (
	"io"
	"log/slog"
	"strings"
)

// logLevelEnv names the environment variable selecting the log level.
const logLevelEnv = "STAKE_CONVERTER_LOG_LEVEL"

// newLogger returns a text logger writing to w. Only warnings and errors
// are shown unless level asks for more.
func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

// parseLevel maps debug, info, warn and error to slog levels. Anything else
// yields slog.LevelWarn.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
