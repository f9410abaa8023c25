package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured JSON logger with the given level. Logs go to
// stderr; stdout is reserved for the trial results.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(slog.String("app", "box-annotator"))
}
