package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable indicates a decorator was constructed without an
// inner provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrorKind is the closed set of failure classifications for upstream calls.
type ErrorKind string

const (
	// KindTransport means no response was received at all (timeout, DNS,
	// connection reset).
	KindTransport ErrorKind = "TRANSPORT_FAILURE"
	// KindAccessBlocked means an intermediary access-control system rejected
	// the request before it reached the upstream application.
	KindAccessBlocked ErrorKind = "ACCESS_BLOCKED"
	KindBadRequest    ErrorKind = "BAD_REQUEST"
	KindUnauthorized  ErrorKind = "UNAUTHORIZED"
	// KindForbidden is an explicit denial from the upstream application
	// itself, distinct from KindAccessBlocked.
	KindForbidden ErrorKind = "FORBIDDEN"
	KindNotFound  ErrorKind = "NOT_FOUND"
	// KindAPIOutdated covers 410 and 426: the integration against this API
	// version is no longer supported.
	KindAPIOutdated    ErrorKind = "API_OUTDATED"
	KindRateLimited    ErrorKind = "RATE_LIMITED"
	KindUpstreamServer ErrorKind = "UPSTREAM_SERVER_ERROR"
	KindUpstreamOther  ErrorKind = "UPSTREAM_ERROR_OTHER"
)

// APIError is the classified result of a failed upstream call. Every failure
// returned by a provider carries exactly one kind; callers branch on Kind
// rather than on message text.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream call failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Kind, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Transient reports whether the failure is worth retrying.
func (e *APIError) Transient() bool {
	switch e.Kind {
	case KindTransport, KindUpstreamServer, KindRateLimited:
		return true
	}
	return false
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
