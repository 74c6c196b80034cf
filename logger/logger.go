// ABOUTME: This file configures the service-wide structured logger
// ABOUTME: Emits JSON records with lowercase level names and service metadata
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide logger, initialized by Init.
var Logger *slog.Logger

// Init configures the global slog logger from LOG_LEVEL and SERVICE_NAME.
func Init() *slog.Logger {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "news-remix"
	}

	Logger = New(os.Stdout, serviceName, os.Getenv("LOG_LEVEL"))
	slog.SetDefault(Logger)
	return Logger
}

// New builds a JSON slog logger writing to output with the given level.
func New(output io.Writer, serviceName, level string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn", "warning":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	options := &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: false,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Lowercase level names for the log forwarder
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: "level", Value: slog.StringValue(strings.ToLower(lvl.String()))}
				}
			}
			return a
		},
	}

	handler := slog.NewJSONHandler(output, options)
	return slog.New(handler).With("service", serviceName, "version", "1.0.0")
}
