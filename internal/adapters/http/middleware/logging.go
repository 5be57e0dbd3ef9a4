package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/greeter/internal/platform/logging"
)

// Logging returns middleware that gives each request its own logger and logs
// the outcome.
//
// The request logger carries request_id and correlation_id, so it must run
// after RequestID and CorrelationID. It is stored with logging.WithLogger for
// handlers and services downstream. At debug level the request line and its
// redacted headers are logged on arrival. Completion is logged at info,
// at warn for 4xx and at error for 5xx.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx := logging.WithLogger(r.Context(), reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					headersAttr(r.Header),
				)
			}

			sr := recordResponse(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			status := sr.Status()
			route := routePattern(r)
			if route == "" {
				route = r.URL.Path
			}

			reqLogger.LogAttrs(ctx, completionLevel(status), "request completed",
				slog.String("method", r.Method),
				slog.String("route", route),
				slog.Int("status", status),
				slog.Int64("bytes", sr.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
