package http

import (
	"context"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	first := generateRequestID()
	second := generateRequestID()

	if first == "" || second == "" {
		t.Fatalf("expected non-empty ids")
	}
	if first == second {
		t.Fatalf("expected unique ids, got %q twice", first)
	}
	if len(first) != 16 {
		t.Fatalf("expected 8 random bytes hex encoded, got %q", first)
	}
}

func TestRequestIDContextRoundTrip(t *testing.T) {
	ctx := withRequestID(context.Background(), "abc123")
	if got := requestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected stored id back, got %q", got)
	}

	if got := requestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id for bare context, got %q", got)
	}
	if got := requestIDFromContext(nil); got != "" { //nolint:staticcheck
		t.Fatalf("expected empty id for nil context, got %q", got)
	}
}
