package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strings"

	"scriptblox-service/internal/domain"
	"scriptblox-service/internal/poller"
	"scriptblox-service/internal/providers"
)

// Handler wires HTTP routes to the upstream catalog provider.
type Handler struct {
	provider providers.CatalogProvider
	statuses *domain.StatusService
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(provider providers.CatalogProvider, statuses *domain.StatusService, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		provider: provider,
		statuses: statuses,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service's own liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the health poller has completed a recent sweep.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
		return
	}
	status := h.statusFn()
	if !status.IsReady() {
		h.writeJSON(w, nethttp.StatusServiceUnavailable, map[string]any{
			"status":               "not_ready",
			"consecutive_failures": status.ConsecutiveFailures,
			"last_error":           status.LastError,
		})
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// SearchScripts proxies the upstream search endpoint.
func (h *Handler) SearchScripts(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := r.URL.Query().Get("q")
	opts := parseSearchOptions(r.URL.Query())

	page, err := h.provider.Search(r.Context(), query, opts)
	if err != nil {
		h.writeProviderError(w, r, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, page)
}

// BrowseScripts proxies the filtered fetch endpoint, optionally narrowed to
// one game via the game parameter.
func (h *Handler) BrowseScripts(w nethttp.ResponseWriter, r *nethttp.Request) {
	opts := parseBrowseOptions(r.URL.Query())

	page, err := h.provider.Browse(r.Context(), opts)
	if err != nil {
		h.writeProviderError(w, r, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, page)
}

// ScriptByID serves /api/scripts/{id} and /api/scripts/{id}/raw.
func (h *Handler) ScriptByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/scripts/")
	if rest == "" || rest == "scripts" {
		h.writeError(w, nethttp.StatusBadRequest, "missing script id")
		return
	}

	if id, found := strings.CutSuffix(rest, "/raw"); found {
		h.rawScript(w, r, id)
		return
	}

	if strings.Contains(rest, "/") {
		h.writeError(w, nethttp.StatusNotFound, "unknown route")
		return
	}

	script, err := h.provider.Script(r.Context(), rest)
	if err != nil {
		h.writeProviderError(w, r, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, script)
}

func (h *Handler) rawScript(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if id == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing script id")
		return
	}

	content, err := h.provider.RawScript(r.Context(), id)
	if err != nil {
		h.writeProviderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	if _, writeErr := w.Write([]byte(content)); writeErr != nil && h.logger != nil {
		h.logger.Error("failed to write raw response", "error", writeErr)
	}
}

// TrendingScripts proxies the trending endpoint.
func (h *Handler) TrendingScripts(w nethttp.ResponseWriter, r *nethttp.Request) {
	limit := intParam(r.URL.Query(), "max")

	scripts, err := h.provider.Trending(r.Context(), limit)
	if err != nil {
		h.writeProviderError(w, r, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]any{"scripts": scripts})
}

type statusResponse struct {
	Report  domain.HealthReport `json:"report"`
	Version domain.VersionInfo  `json:"version"`
	Poller  *poller.Status      `json:"poller,omitempty"`
}

// UpstreamStatus serves the latest health report, sweeping live when no
// poller cycle has completed yet.
func (h *Handler) UpstreamStatus(w nethttp.ResponseWriter, r *nethttp.Request) {
	report, ok := h.statuses.LatestReport()
	if !ok {
		live, err := h.provider.CheckHealth(r.Context())
		if err != nil {
			h.writeProviderError(w, r, err)
			return
		}
		report = live
	}

	version, ok := h.statuses.LatestVersion()
	if !ok {
		version = domain.VersionInfo{Version: "unknown"}
	}

	resp := statusResponse{Report: report, Version: version}
	if h.statusFn != nil {
		status := h.statusFn()
		resp.Poller = &status
	}
	h.writeJSON(w, nethttp.StatusOK, resp)
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
