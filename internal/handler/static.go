// internal/handler/static.go
package handler

import (
	"net/http"
	"os"
	"path/filepath"
)

// StaticHandler serves files from dir and falls back to index.html for
// any path that does not exist on disk, so client-side routes resolve
// after a hard refresh.
func StaticHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
