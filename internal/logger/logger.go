package logger

import (
	"io"
	"log/slog"
)

// New builds the process logger. format "json" selects the JSON handler,
// anything else the text handler. Debug records are kept outside prod.
func New(w io.Writer, format, env string) *slog.Logger {
	level := slog.LevelDebug
	if env == "prod" {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
