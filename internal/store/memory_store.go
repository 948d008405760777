package store

import (
	"sync"

	"scriptblox-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the latest upstream status
// observations in memory. Script data itself is never cached; only the
// diagnostic state an operator needs between sweeps lives here.
type MemoryStore struct {
	mu         sync.RWMutex
	report     domain.HealthReport
	hasReport  bool
	version    domain.VersionInfo
	hasVersion bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Report returns the latest health report, if one was recorded.
func (s *MemoryStore) Report() (domain.HealthReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report, s.hasReport
}

// SetReport swaps in a fresh health report.
func (s *MemoryStore) SetReport(report domain.HealthReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = report
	s.hasReport = true
}

// Version returns the latest version probe result, if one was recorded.
func (s *MemoryStore) Version() (domain.VersionInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version, s.hasVersion
}

// SetVersion swaps in a fresh version probe result.
func (s *MemoryStore) SetVersion(info domain.VersionInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version = info
	s.hasVersion = true
}
