package utils

import (
	"log/slog"
	"os"
)

// NewLogger returns the process-wide logger. format "json" is meant for
// deployed environments behind stackdriver-style log collection, anything
// else falls back to a human-readable text handler.
func NewLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			ReplaceAttr: GCPLoggerAttributeReplacer,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// GCPLoggerAttributeReplacer renames slog attributes so that stackdriver
// logging parses the message and severity correctly.
func GCPLoggerAttributeReplacer(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "msg" {
		a.Key = "message"
		return a
	}

	if a.Key == slog.LevelKey {
		a.Key = "severity"

		level := a.Value.Any().(slog.Level)
		switch {
		case level < slog.LevelInfo:
			a.Value = slog.StringValue("DEBUG")
		case level < slog.LevelWarn:
			a.Value = slog.StringValue("INFO")
		case level < slog.LevelError:
			a.Value = slog.StringValue("WARNING")
		default:
			a.Value = slog.StringValue("ERROR")
		}
	}

	return a
}
