package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"path"

	"github.com/jsamuelsen11/greeter/internal/adapters/http/dto"
	"github.com/jsamuelsen11/greeter/internal/domain"
)

// NewStaticHandler returns a handler serving the files under dir. Requests
// for a directory are answered with its index.html; directories without
// one are reported as not found instead of being listed. Missing files get
// the same problem+json 404 as unknown routes.
//
// The handler expects paths relative to dir, so mount it behind
// http.StripPrefix.
func NewStaticHandler(dir string) http.Handler {
	fsys := noListingFS{http.Dir(dir)}
	files := http.FileServer(fsys)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, err := fsys.Open(path.Clean("/" + r.URL.Path))
		if errors.Is(err, fs.ErrNotExist) {
			dto.WriteProblem(w, r, domain.ErrNotFound)
			return
		}
		if err == nil {
			_ = f.Close()
		}
		files.ServeHTTP(w, r)
	})
}

// noListingFS hides directories that have no index.html.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}

	index, err := n.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		_ = f.Close()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fs.ErrNotExist
		}
		return nil, err
	}
	_ = index.Close()

	return f, nil
}
