package middleware

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/greeter/internal/adapters/http/dto"
	"github.com/jsamuelsen11/greeter/internal/domain"
)

// Timeout returns middleware that bounds each request to d. The handler's
// context carries the deadline. A handler still running when it passes is
// abandoned: the client receives an RFC 9457 504 response and anything the
// handler writes afterwards is discarded.
//
// The handler runs on its own goroutine against a buffered writer. A panic
// there is re-raised on the serving goroutine so Recovery still sees it.
// Install it after routing (in a chi Group or With) so the route is
// resolved on the serving goroutine. The handler goroutine reads URL
// params from its own copy of the route context, since chi recycles the
// original once the serving goroutine returns.
//
// A d of zero or less disables the deadline.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	if d <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			ctx = detachRouteContext(ctx)

			bw := &bufferedWriter{header: make(http.Header)}
			finished := make(chan any, 1)

			go func() {
				defer func() { finished <- recover() }()
				next.ServeHTTP(bw, r.WithContext(ctx))
			}()

			select {
			case p := <-finished:
				if p != nil {
					panic(p)
				}
				// A handler that returns only once the deadline fires lost
				// the race too.
				if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
					bw.flushTo(w)
					return
				}
			case <-ctx.Done():
				if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
					// Client went away; nothing to answer.
					bw.abandon()
					return
				}
			}
			bw.abandon()
			dto.WriteProblem(w, r, domain.ErrTimeout)
		})
	}
}

// detachRouteContext replaces the chi route context in ctx with a copy
// that shares no slices with the pooled original.
func detachRouteContext(ctx context.Context) context.Context {
	orig := chi.RouteContext(ctx)
	if orig == nil {
		return ctx
	}

	rc := chi.NewRouteContext()
	rc.Routes = orig.Routes
	rc.RoutePath = orig.RoutePath
	rc.RouteMethod = orig.RouteMethod
	rc.URLParams.Keys = slices.Clone(orig.URLParams.Keys)
	rc.URLParams.Values = slices.Clone(orig.URLParams.Values)
	rc.RoutePatterns = slices.Clone(orig.RoutePatterns)
	return context.WithValue(ctx, chi.RouteCtxKey, rc)
}

// bufferedWriter holds the handler's response until Timeout decides whether
// it reaches the client. The mutex guards against a handler that keeps
// writing after being abandoned.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      []byte
	status    int
	abandoned bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.header
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.abandoned || bw.status != 0 {
		return
	}
	bw.status = code
}

func (bw *bufferedWriter) abandon() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.abandoned = true
}

func (bw *bufferedWriter) flushTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
