// Package middleware provides the HTTP middleware of the inbound pipeline.
// cmd/server installs them on the router in this order, outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → RateLimit → Timeout → handler
//
// Each middleware is a func(http.Handler) http.Handler.
package middleware

import "net/http"

// statusRecorder wraps an http.ResponseWriter and remembers the status code
// and body size sent through it. Recovery, OpenTelemetry and Logging all
// need these, so an existing recorder is reused instead of wrapped again.
type statusRecorder struct {
	http.ResponseWriter
	status int // zero until the header is sent
	bytes  int64
}

func recordResponse(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w}
}

// WriteHeader sends the header once; later calls are ignored.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status != 0 {
		return
	}
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Status returns the status code sent, or 200 if nothing was written yet.
func (sr *statusRecorder) Status() int {
	if sr.status == 0 {
		return http.StatusOK
	}
	return sr.status
}

// Wrote reports whether the header has gone out.
func (sr *statusRecorder) Wrote() bool {
	return sr.status != 0
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
