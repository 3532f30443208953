package http

import (
	"errors"
	"io/fs"
	"net/http"
	"strings"
)

const indexFileSuffix = "/index.html"

// staticHandler serves files from root for GET and HEAD.
//
// http.FileServer redirects any path ending in /index.html to its directory,
// so those requests are answered with the file itself through
// http.ServeContent. Everything else goes to the file server.
type staticHandler struct {
	root  http.Dir
	files http.Handler
}

func newStaticHandler(root string) *staticHandler {
	dir := http.Dir(root)
	return &staticHandler{
		root:  dir,
		files: http.FileServer(dir),
	}
}

func (s *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD, OPTIONS")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if strings.HasSuffix(r.URL.Path, indexFileSuffix) && s.serveIndexFile(w, r) {
		return
	}

	s.files.ServeHTTP(w, r)
}

// serveIndexFile writes the index file named by the request path, or the
// matching error status when it cannot be opened. It reports false, without
// writing, when the path is a directory, leaving it to the file server.
func (s *staticHandler) serveIndexFile(w http.ResponseWriter, r *http.Request) bool {
	f, err := s.root.Open(r.URL.Path)
	if err != nil {
		writeOpenError(w, err)
		return true
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		writeOpenError(w, err)
		return true
	}
	if info.IsDir() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

// writeOpenError maps a file open failure the way http.FileServer does.
func writeOpenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		http.Error(w, "404 page not found", http.StatusNotFound)
	case errors.Is(err, fs.ErrPermission):
		http.Error(w, "403 Forbidden", http.StatusForbidden)
	default:
		http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
	}
}
