// Package web embeds the instructor monitor page. The main exam frontend is
// a separate application; only the lightweight live-monitor view ships with
// this service.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// MonitorHandler returns an http.Handler serving the embedded live monitor
// page and its assets.
func MonitorHandler() http.Handler {
	subFS, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: failed to create sub filesystem: " + err.Error())
	}

	fileServer := http.FileServer(http.FS(subFS))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/monitor" || r.URL.Path == "/monitor/" {
			r.URL.Path = "/monitor.html"
		}
		fileServer.ServeHTTP(w, r)
	})
}
