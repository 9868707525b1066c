package errors

import (
	"log/slog"
	"os"
)

// LogHandler is a Handler that logs errors through log/slog.
type LogHandler struct {
	// Logger receives the error records. Defaults to a text handler on
	// stderr when nil.
	Logger *slog.Logger
}

// HandleError logs a structured Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	h.logger().Error("ember error",
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("err", err.Err),
	)
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return defaultLogger
}

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))
