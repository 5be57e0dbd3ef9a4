package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsamuelsen11/greeter/internal/adapters/http/handlers"
)

func newStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"style.css":           "body { margin: 0; }\n",
		"docs/index.html":     "<h1>docs</h1>\n",
		"images/.placeholder": "",
	}
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return dir
}

func TestStaticHandler(t *testing.T) {
	t.Parallel()

	h := handlers.NewStaticHandler(newStaticDir(t))

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "file", path: "/style.css", wantStatus: http.StatusOK, wantBody: "margin"},
		{name: "directory with index", path: "/docs/", wantStatus: http.StatusOK, wantBody: "<h1>docs</h1>"},
		{name: "directory without index", path: "/images/", wantStatus: http.StatusNotFound},
		{name: "missing file", path: "/nope.js", wantStatus: http.StatusNotFound},
		{name: "root without index", path: "/", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			h.ServeHTTP(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantStatus == http.StatusNotFound {
				if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
					t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
				}
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
