package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

//go:generate mockgen -destination=../../../gen/mocks/logging/logger.go -package=mocks . Logger

type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

var StdoutLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

// New builds a slog logger writing to w. Unknown levels fall back to info,
// unknown formats to text.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	if strings.EqualFold(format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
