// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web embeds the static frontend: a single-page stepper that
// registers a participant, walks the served samples one at a time, and
// bulk-submits the collected ratings.
package web

import (
	"embed"
	"net/http"
)

//go:embed static
var files embed.FS

// Static returns a handler serving the embedded assets. Paths mirror the
// embedded layout, so it expects to be mounted at /static/.
func Static() http.Handler {
	return http.FileServerFS(files)
}

// ServeIndex serves the frontend entry page.
func ServeIndex(w http.ResponseWriter, r *http.Request) {
	data, err := files.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "index not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}
