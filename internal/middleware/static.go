package middleware

import (
	"net/http"
	"os"
	"path/filepath"
)

const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 240"><rect width="200" height="240" fill="#f4f1ee"/><path d="M70 40l30 20 30-20 40 30-20 30-15-10v110H65V90l-15 10-20-30z" fill="#cfc6bd"/><text x="100" y="225" text-anchor="middle" font-family="Arial" font-size="14" fill="#8a7f75">NO PHOTO</text></svg>`

// StaticFileServer serves item photos from dir, falling back to a placeholder
// garment for missing files (including the default.png listings start with).
func StaticFileServer(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			w.Header().Set("Cache-Control", "public, max-age=2592000")
			http.ServeFile(w, r, path)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Write([]byte(placeholderSVG))
	})
}
