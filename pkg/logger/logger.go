package logger

import (
	"log/slog"
	"os"
)

// Log defaults to a plain JSON logger so packages can log before Init
// runs (and so tests never hit a nil logger).
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
