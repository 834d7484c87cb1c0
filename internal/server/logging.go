package server

import (
	"io"
	"log/slog"
)

// CreateECSLogger returns a JSON logger using Elastic Common Schema names
// for the standard fields.
func CreateECSLogger(level slog.Level, out io.Writer) *slog.Logger {
	convertToECSNaming := func(groups []string, a slog.Attr) slog.Attr {
		switch a.Key {
		case slog.TimeKey:
			return slog.Attr{Key: "@timestamp", Value: a.Value}
		case slog.LevelKey:
			return slog.Attr{Key: "log.level", Value: a.Value}
		case slog.MessageKey:
			return slog.Attr{Key: "message", Value: a.Value}
		}
		return a
	}

	handler := slog.NewJSONHandler(
		out,
		&slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: convertToECSNaming,
		},
	)

	return slog.New(handler)
}
