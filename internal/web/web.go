// Package web serves the embedded browser frontend.
package web

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed index.html
var indexHTML []byte

//go:embed app.js
var appJS []byte

//go:embed style.css
var styleCSS []byte

// RegisterRoutes mounts the frontend on the given router.
func RegisterRoutes(r chi.Router) {
	r.Get("/", serveAsset("text/html; charset=utf-8", indexHTML))
	r.Get("/static/app.js", serveAsset("application/javascript; charset=utf-8", appJS))
	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", styleCSS))
}

func serveAsset(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(body)
	}
}
