package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"scriptblox-service/internal/domain"
)

func TestRateLimitedProviderSpacesDataCalls(t *testing.T) {
	inner := &sequenceProvider{page: domain.Page{Page: 1}}
	interval := 50 * time.Millisecond
	provider := NewRateLimitedProvider(inner, interval, nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := provider.Search(context.Background(), "x", SearchOptions{}); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}

	if elapsed := time.Since(start); elapsed < 2*interval {
		t.Fatalf("expected calls spaced by %v, 3 calls took %v", interval, elapsed)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 inner calls, got %d", inner.calls)
	}
}

func TestRateLimitedProviderRespectsContext(t *testing.T) {
	inner := &sequenceProvider{}
	provider := NewRateLimitedProvider(inner, time.Minute, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := provider.Trending(ctx, 5)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if inner.calls != 0 {
		t.Fatalf("inner provider must not be called after cancellation, got %d", inner.calls)
	}
}

func TestRateLimitedProviderExemptsDiagnostics(t *testing.T) {
	inner := &sequenceProvider{report: domain.HealthReport{Status: domain.StatusHealthy}}
	provider := NewRateLimitedProvider(inner, time.Hour, nil)

	start := time.Now()
	report, err := provider.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != domain.StatusHealthy {
		t.Fatalf("unexpected report: %+v", report)
	}
	if _, err := provider.Version(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("diagnostic calls must bypass the limiter, took %v", elapsed)
	}
}

func TestRateLimitedProviderNilInner(t *testing.T) {
	provider := NewRateLimitedProvider(nil, 10*time.Millisecond, nil)

	if _, err := provider.Search(context.Background(), "x", SearchOptions{}); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if _, err := provider.CheckHealth(context.Background()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
