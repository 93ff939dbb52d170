package handler

import "net/http"

// NewMux lays out the bridge's routes. Paths with more than one segment are
// not routable and fall through to 404.
func NewMux(bridge, manifest, health, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /{$}", bridge)
	mux.Handle("POST /{id}", bridge)
	mux.Handle("GET /{$}", health)
	mux.Handle("GET /manifest", manifest)
	mux.Handle("GET /manifest.json", manifest)
	mux.Handle("GET /metrics", metrics)
	return mux
}
