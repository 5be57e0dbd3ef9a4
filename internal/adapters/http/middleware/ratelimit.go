package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/greeter/internal/adapters/http/dto"
	"github.com/jsamuelsen11/greeter/internal/domain"
	"github.com/jsamuelsen11/greeter/internal/platform/logging"
)

// retryAfterSeconds is the Retry-After value sent with every 429.
const retryAfterSeconds = "1"

// RateLimit returns middleware that throttles inbound requests with a single
// token bucket shared by all clients. requestsPerSecond is the refill rate and
// burst the bucket size. Requests that find the bucket empty are rejected
// with an RFC 9457 429 response and a Retry-After header.
//
// A requestsPerSecond of zero or less disables limiting and returns next
// unchanged.
func RateLimit(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	if requestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), max(burst, 1))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "request throttled",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("Retry-After", retryAfterSeconds)
				dto.WriteProblem(w, r, domain.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
