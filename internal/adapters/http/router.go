// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/greeter/internal/adapters/http/dto"
	"github.com/jsamuelsen11/greeter/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/greeter/internal/domain"
)

// StaticMount describes where static resources are served. A nil Handler
// leaves the mount out of the router.
type StaticMount struct {
	Prefix  string
	Handler http.Handler
}

// Middlewares splits the chain around routing. Global runs before chi
// resolves the route; Route runs once URL params and the route pattern are
// known. Middleware that moves the handler onto another goroutine, such as
// Timeout, belongs in Route.
type Middlewares struct {
	Global []func(http.Handler) http.Handler
	Route  []func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
func NewRouter(
	greetingHandler *handlers.GreetingHandler,
	healthHandler *handlers.HealthHandler,
	static StaticMount,
	mw Middlewares,
) http.Handler {
	r := chi.NewRouter()
	r.Use(mw.Global...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, domain.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, dto.ErrMethodNotAllowed)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.Route...)

		// Health endpoints.
		r.Get("/health/live", healthHandler.Liveness)
		r.Get("/health/ready", healthHandler.Readiness)

		// Greetings.
		r.Get("/hello/{name}", greetingHandler.Hello)
		r.Get("/hi", greetingHandler.Hi)

		// API v1. Registered flat so no sub-router resolves paths behind
		// the route middleware.
		r.Post("/api/v1/capitalize", greetingHandler.Capitalize)

		if static.Handler != nil {
			mountStatic(r, static)
		}
	})

	return r
}

// mountStatic serves static.Handler under static.Prefix. The bare prefix
// redirects to its trailing-slash form so relative links resolve.
func mountStatic(r chi.Router, static StaticMount) {
	prefix := strings.TrimSuffix(static.Prefix, "/")
	fs := http.StripPrefix(prefix, static.Handler)

	r.Get(prefix, http.RedirectHandler(prefix+"/", http.StatusMovedPermanently).ServeHTTP)
	r.Get(prefix+"/*", fs.ServeHTTP)
	r.Head(prefix+"/*", fs.ServeHTTP)
}
