package store

import (
	"sync"
	"testing"
	"time"

	"scriptblox-service/internal/domain"
)

func TestMemoryStoreStartsEmpty(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Report(); ok {
		t.Fatalf("expected no report in a fresh store")
	}
	if _, ok := s.Version(); ok {
		t.Fatalf("expected no version in a fresh store")
	}
}

func TestMemoryStoreKeepsLatestReport(t *testing.T) {
	s := NewMemoryStore()

	first := domain.Rollup([]domain.EndpointResult{{Name: "search", OK: false}}, time.Now())
	second := domain.Rollup([]domain.EndpointResult{{Name: "search", OK: true}}, time.Now())

	s.SetReport(first)
	s.SetReport(second)

	got, ok := s.Report()
	if !ok {
		t.Fatalf("expected a report")
	}
	if got.Status != domain.StatusHealthy {
		t.Fatalf("expected latest report to win, got %s", got.Status)
	}
}

func TestMemoryStoreKeepsLatestVersion(t *testing.T) {
	s := NewMemoryStore()
	s.SetVersion(domain.VersionInfo{Version: "1.0.0"})
	s.SetVersion(domain.VersionInfo{Version: "1.1.0"})

	got, ok := s.Version()
	if !ok || got.Version != "1.1.0" {
		t.Fatalf("expected latest version, got %+v ok=%v", got, ok)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetReport(domain.HealthReport{Status: domain.StatusHealthy})
		}()
		go func() {
			defer wg.Done()
			s.Report()
		}()
	}
	wg.Wait()

	if _, ok := s.Report(); !ok {
		t.Fatalf("expected a report after concurrent writes")
	}
}
