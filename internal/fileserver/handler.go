// Package fileserver serves a directory tree over HTTP with client-side
// caching disabled on every response.
package fileserver

import (
	"net/http"
	"strings"
)

// Handler returns the request handler for a root directory.
//
// Files, directory listings and the index.html convention come from the
// standard library file handler. Every response, errors included,
// carries headers telling clients to revalidate on each request.
func Handler(root string) http.Handler {
	fs := http.FileServer(http.Dir(root))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		h.Set("Expires", "0")

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			h.Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if containsDotDot(r.URL.Path) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		if strings.HasSuffix(r.URL.Path, ".wasm") {
			// Not every Go version ships a mime table entry for wasm.
			h.Set("Content-Type", "application/wasm")
		}

		fs.ServeHTTP(w, r)
	})
}

// containsDotDot reports whether any segment of the path is "..".
// http.Dir never escapes the root on its own; a literal ".." earns a
// 403 instead of being silently cleaned away.
func containsDotDot(p string) bool {
	if !strings.Contains(p, "..") {
		return false
	}
	for _, seg := range strings.FieldsFunc(p, isSlashRune) {
		if seg == ".." {
			return true
		}
	}
	return false
}

func isSlashRune(r rune) bool { return r == '/' || r == '\\' }
