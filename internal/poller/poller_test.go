package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"scriptblox-service/internal/domain"
	"scriptblox-service/internal/providers"
	"scriptblox-service/internal/store"
)

type stubProvider struct {
	report  domain.HealthReport
	version domain.VersionInfo
	err     error
	sweeps  atomic.Int32
}

func (s *stubProvider) Search(ctx context.Context, query string, opts providers.SearchOptions) (domain.Page, error) {
	return domain.Page{}, nil
}

func (s *stubProvider) Browse(ctx context.Context, opts providers.BrowseOptions) (domain.Page, error) {
	return domain.Page{}, nil
}

func (s *stubProvider) Script(ctx context.Context, id string) (domain.Script, error) {
	return domain.Script{}, nil
}

func (s *stubProvider) RawScript(ctx context.Context, id string) (string, error) {
	return "", nil
}

func (s *stubProvider) Trending(ctx context.Context, limit int) ([]domain.Script, error) {
	return nil, nil
}

func (s *stubProvider) CheckHealth(ctx context.Context) (domain.HealthReport, error) {
	s.sweeps.Add(1)
	return s.report, s.err
}

func (s *stubProvider) Version(ctx context.Context) (domain.VersionInfo, error) {
	return s.version, nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestPollerRecordsInitialSweep(t *testing.T) {
	provider := &stubProvider{
		report:  domain.Rollup([]domain.EndpointResult{{Name: "search", OK: true}}, time.Now()),
		version: domain.VersionInfo{Version: "1.2.0"},
	}
	statuses := domain.NewStatusService(store.NewMemoryStore())

	p := New(provider, statuses, nil, nil, time.Hour)
	p.Start(context.Background())
	defer p.Stop(context.Background())

	waitFor(t, func() bool {
		_, ok := statuses.LatestReport()
		return ok
	})

	report, _ := statuses.LatestReport()
	if report.Status != domain.StatusHealthy {
		t.Fatalf("unexpected stored report: %+v", report)
	}
	version, ok := statuses.LatestVersion()
	if !ok || version.Version != "1.2.0" {
		t.Fatalf("expected version recorded, got %+v ok=%v", version, ok)
	}

	status := p.Status()
	if !status.IsReady() {
		t.Fatalf("expected poller ready after successful sweep, got %+v", status)
	}
}

func TestPollerSweepsOnInterval(t *testing.T) {
	provider := &stubProvider{
		report: domain.Rollup([]domain.EndpointResult{{Name: "search", OK: true}}, time.Now()),
	}
	statuses := domain.NewStatusService(store.NewMemoryStore())

	p := New(provider, statuses, nil, nil, 20*time.Millisecond)
	p.Start(context.Background())
	defer p.Stop(context.Background())

	waitFor(t, func() bool { return provider.sweeps.Load() >= 3 })
}

func TestPollerTracksFailures(t *testing.T) {
	provider := &stubProvider{err: errors.New("sweep exploded")}
	statuses := domain.NewStatusService(store.NewMemoryStore())

	p := New(provider, statuses, nil, nil, 10*time.Millisecond)
	p.Start(context.Background())
	defer p.Stop(context.Background())

	waitFor(t, func() bool { return p.Status().ConsecutiveFailures >= 3 })

	status := p.Status()
	if status.IsReady() {
		t.Fatalf("expected poller not ready after repeated failures: %+v", status)
	}
	if status.LastError != "sweep exploded" {
		t.Fatalf("unexpected last error %q", status.LastError)
	}
	if _, ok := statuses.LatestReport(); ok {
		t.Fatalf("failed sweeps must not store a report")
	}
}

func TestPollerStopHaltsSweeps(t *testing.T) {
	provider := &stubProvider{
		report: domain.Rollup([]domain.EndpointResult{{Name: "search", OK: true}}, time.Now()),
	}
	p := New(provider, domain.NewStatusService(store.NewMemoryStore()), nil, nil, 10*time.Millisecond)

	ctx := context.Background()
	p.Start(ctx)
	waitFor(t, func() bool { return provider.sweeps.Load() >= 1 })

	if err := p.Stop(ctx); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
	after := provider.sweeps.Load()
	time.Sleep(50 * time.Millisecond)
	if got := provider.sweeps.Load(); got > after+1 {
		t.Fatalf("sweeps continued after stop: %d -> %d", after, got)
	}

	// Stop is idempotent.
	if err := p.Stop(ctx); err != nil {
		t.Fatalf("second stop errored: %v", err)
	}
}

func TestStatusIsReady(t *testing.T) {
	if (Status{}).IsReady() {
		t.Fatalf("zero status must not be ready")
	}
	ready := Status{LastSuccess: time.Now(), ConsecutiveFailures: 2}
	if !ready.IsReady() {
		t.Fatalf("expected ready below the failure threshold")
	}
	failing := Status{LastSuccess: time.Now(), ConsecutiveFailures: 3}
	if failing.IsReady() {
		t.Fatalf("expected not ready at the failure threshold")
	}
}
