// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr, slog.String("service", "greeter"))
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "rendered greeting")
//
// Application services log failures with the operation name, identifying
// attributes of the input and the error chain:
//
//	logger.WarnContext(ctx, "rejected greeting",
//	    slog.String("operation", "Hello"),
//	    slog.Int("name_length", n),
//	    slog.Any("error", err),
//	)
//
// Behind the logging middleware the context logger already carries
// request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// Supported output formats. Anything other than FormatText logs JSON.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// New creates a logger writing to w.
//
// level is one of "debug", "info", "warn" or "error", case-insensitive;
// unknown values log at info. Debug loggers also record the source location.
// attrs are attached to every record. All output passes through the masq
// redaction in this package.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if strings.EqualFold(format, FormatText) {
		handler = slog.NewTextHandler(w, opts)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger stored by WithLogger, or fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return fallback
}

// ParseLevel maps a level name to its slog.Level. Unknown names map to info.
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
