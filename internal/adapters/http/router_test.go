package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/greeter/internal/adapters/http"
	"github.com/jsamuelsen11/greeter/internal/adapters/http/dto"
	"github.com/jsamuelsen11/greeter/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/greeter/internal/domain/greeting"
	"github.com/jsamuelsen11/greeter/mocks"
)

func newTestRouter(t *testing.T, static adapthttp.StaticMount) (http.Handler, *mocks.MockGreetingService) {
	t.Helper()
	svc := mocks.NewMockGreetingService(t)
	registry := mocks.NewMockHealthRegistry(t)

	gh := handlers.NewGreetingHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(gh, hh, static, adapthttp.Middlewares{})
	return router, svc
}

func newStaticMount(t *testing.T) adapthttp.StaticMount {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte("h1 { color: teal; }\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return adapthttp.StaticMount{Prefix: "/res", Handler: handlers.NewStaticHandler(dir)}
}

func registeredRoutes(t *testing.T, router http.Handler) map[string]bool {
	t.Helper()

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}
	return registered
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, newStaticMount(t))
	registered := registeredRoutes(t, router)

	expected := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /hello/{name}",
		"GET /hi",
		"POST /api/v1/capitalize",
		"GET /res",
		"GET /res/*",
		"HEAD /res/*",
	}

	for _, key := range expected {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_StaticMountOptional(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.StaticMount{Prefix: "/res"})
	registered := registeredRoutes(t, router)

	if registered["GET /res/*"] {
		t.Error("static route registered without a handler")
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockGreetingService(t)
	registry := mocks.NewMockHealthRegistry(t)

	gh := handlers.NewGreetingHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(gh, hh, adapthttp.StaticMount{}, adapthttp.Middlewares{
		Global: []func(http.Handler) http.Handler{testMW},
	})

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationHello(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t, adapthttp.StaticMount{})

	svc.EXPECT().Hello(mock.Anything, "what a wonderful world").
		Return(greeting.Hello("what a wonderful world"), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hello/what%20a%20wonderful%20world", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "Hello, What A Wonderful World" {
		t.Errorf("body = %q, want %q", got, "Hello, What A Wonderful World")
	}
}

func TestRouter_IntegrationHelloEscapedSlash(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t, adapthttp.StaticMount{})

	svc.EXPECT().Hello(mock.Anything, "either/or").Return(greeting.Hello("either/or"), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hello/either%2For", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "Hello, Either/or" {
		t.Errorf("body = %q, want %q", got, "Hello, Either/or")
	}
}

func TestRouter_IntegrationStatic(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, newStaticMount(t))

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "file", path: "/res/style.css", wantStatus: http.StatusOK},
		{name: "missing file", path: "/res/missing.css", wantStatus: http.StatusNotFound},
		{name: "directory listing", path: "/res/", wantStatus: http.StatusNotFound},
		{name: "bare prefix redirects", path: "/res", wantStatus: http.StatusMovedPermanently},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_NotFoundReturnsProblem(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.StaticMount{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.StaticMount{})

	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/api/v1/capitalize"},
		{method: http.MethodPut, path: "/hi"},
		{method: http.MethodDelete, path: "/hello/ada"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
			}

			var problem dto.Problem
			if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
				t.Fatalf("decoding problem: %v", err)
			}
			if problem.Status != http.StatusMethodNotAllowed {
				t.Errorf("problem status = %d, want %d", problem.Status, http.StatusMethodNotAllowed)
			}
		})
	}
}

func TestRouter_RouteMiddlewareRunsAfterRouting(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockGreetingService(t)
	gh := handlers.NewGreetingHandler(svc)
	hh := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	var pattern, name string
	routeSpy := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pattern = chi.RouteContext(r.Context()).RoutePattern()
			name = chi.URLParam(r, "name")
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(gh, hh, adapthttp.StaticMount{}, adapthttp.Middlewares{
		Route: []func(http.Handler) http.Handler{routeSpy},
	})

	svc.EXPECT().Hello(mock.Anything, "ada").Return(greeting.Hello("ada"), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello/ada", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if pattern != "/hello/{name}" {
		t.Errorf("route pattern = %q, want %q", pattern, "/hello/{name}")
	}
	if name != "ada" {
		t.Errorf("name param = %q, want %q", name, "ada")
	}
}
