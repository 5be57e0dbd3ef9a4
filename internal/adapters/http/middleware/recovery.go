package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/greeter/internal/adapters/http/dto"
)

// Recovery returns middleware that turns a panic in a downstream handler into
// an RFC 9457 500 response and an error log with the stack trace. The panic
// value stays in the log. If the header has already been sent only the log
// is written.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection
// the way the handler asked.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := recordResponse(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !sr.Wrote() {
					dto.WriteProblem(sr, r, fmt.Errorf("panic: %v", v))
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
