package scriptblox

import (
	"net/http"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// clampPageSize caps list page sizes at the upstream maximum. Oversized
// requests are capped silently, never rejected.
func clampPageSize(max int) int {
	if max <= 0 {
		return defaultPageSize
	}
	if max > maxPageSize {
		return maxPageSize
	}
	return max
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
