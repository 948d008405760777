package http

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/scripts/search", handler.SearchScripts)
	mux.HandleFunc("/api/scripts", handler.BrowseScripts)
	mux.HandleFunc("/api/scripts/", handler.ScriptByID)
	mux.HandleFunc("/api/trending", handler.TrendingScripts)
	mux.HandleFunc("/api/status", handler.UpstreamStatus)
	return mux
}
