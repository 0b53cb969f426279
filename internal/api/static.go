package api

import (
	"io/fs"
	"net/http"
	"strings"
)

// StaticHandler serves the embedded single-page UI. Unknown paths get the
// static 404 page (API paths never reach this handler).
func StaticHandler(fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if name == "" {
			name = "index.html"
		}

		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			serveNotFoundPage(w, fsys)
			return
		}

		http.ServeFileFS(w, r, fsys, name)
	})
}

func serveNotFoundPage(w http.ResponseWriter, fsys fs.FS) {
	page, err := fs.ReadFile(fsys, "404.html")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(page)
}
