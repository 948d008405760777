package http

import (
	"log/slog"
	nethttp "net/http"

	"scriptblox-service/internal/logging"
	"scriptblox-service/internal/providers"
)

// statusForKind maps a classified upstream failure to the status this relay
// serves. The kind string always rides along in the payload, so callers can
// tell ACCESS_BLOCKED from FORBIDDEN even though both surface as 502; the
// two have different operator remedies.
func statusForKind(kind providers.ErrorKind) int {
	switch kind {
	case providers.KindBadRequest:
		return nethttp.StatusBadRequest
	case providers.KindNotFound:
		return nethttp.StatusNotFound
	case providers.KindRateLimited:
		return nethttp.StatusTooManyRequests
	case providers.KindTransport:
		return nethttp.StatusGatewayTimeout
	default:
		return nethttp.StatusBadGateway
	}
}

func (h *Handler) writeProviderError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	logger := logging.FromContext(r.Context(), h.logger)

	apiErr, ok := providers.AsAPIError(err)
	if !ok {
		logging.Error(logger, "upstream call failed", err)
		h.writeError(w, nethttp.StatusInternalServerError, "internal error")
		return
	}

	logging.Warn(logger, "upstream call failed",
		slog.String(logging.FieldErrorKind, string(apiErr.Kind)),
		slog.Int(logging.FieldStatusCode, apiErr.StatusCode),
		"error", apiErr.Message,
	)
	h.writeJSON(w, statusForKind(apiErr.Kind), map[string]any{
		"error":          apiErr.Message,
		"kind":           string(apiErr.Kind),
		"upstreamStatus": apiErr.StatusCode,
	})
}
