package scriptblox

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"scriptblox-service/internal/providers"
)

// Marker text emitted by the blocking intermediary in front of the upstream
// API. A body carrying both markers classifies as ACCESS_BLOCKED regardless
// of the status code.
const (
	blockedVendorMarker = "Cloudflare"
	blockedVerbMarker   = "blocked"
)

// transportError wraps a failure where no response was received at all.
func transportError(err error) *providers.APIError {
	return &providers.APIError{
		Kind:    providers.KindTransport,
		Message: fmt.Sprintf("no response from %s API: %v", providerName, err),
	}
}

// classifyResponse maps a non-2xx response to exactly one error kind. The
// mapping is exhaustive over the status space: unmapped codes fall into
// UPSTREAM_ERROR_OTHER carrying the raw code and message.
func classifyResponse(status int, body []byte) *providers.APIError {
	if blockedByIntermediary(body) {
		return &providers.APIError{
			Kind:       providers.KindAccessBlocked,
			StatusCode: status,
			Message:    "upstream access blocked by Cloudflare; egress address may be blacklisted",
		}
	}

	msg := extractMessage(body)
	switch status {
	case http.StatusBadRequest:
		return apiError(providers.KindBadRequest, status, "bad request: "+msg)
	case http.StatusUnauthorized:
		return apiError(providers.KindUnauthorized, status, "invalid API key or authentication required")
	case http.StatusForbidden:
		return apiError(providers.KindForbidden, status, "access denied by the upstream application")
	case http.StatusNotFound:
		return apiError(providers.KindNotFound, status, "resource does not exist")
	case http.StatusGone, http.StatusUpgradeRequired:
		return apiError(providers.KindAPIOutdated, status, "upstream API version no longer supported; integration update required")
	case http.StatusTooManyRequests:
		return apiError(providers.KindRateLimited, status, "rate limit exceeded")
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return apiError(providers.KindUpstreamServer, status, "upstream server error: "+msg)
	default:
		return apiError(providers.KindUpstreamOther, status, msg)
	}
}

func apiError(kind providers.ErrorKind, status int, msg string) *providers.APIError {
	return &providers.APIError{Kind: kind, StatusCode: status, Message: msg}
}

// blockedByIntermediary reports whether the body is a plain string response
// (not a JSON object) carrying the blocking-intermediary markers.
func blockedByIntermediary(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || strings.HasPrefix(trimmed, "{") {
		return false
	}
	return strings.Contains(trimmed, blockedVendorMarker) && strings.Contains(trimmed, blockedVerbMarker)
}

func extractMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		if len(trimmed) > 256 {
			trimmed = trimmed[:256]
		}
		return trimmed
	}
	return "unknown error"
}
