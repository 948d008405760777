package domain

// StatusStore defines the contract for persisting and retrieving the latest
// upstream status observations.
type StatusStore interface {
	Report() (HealthReport, bool)
	SetReport(report HealthReport)
	Version() (VersionInfo, bool)
	SetVersion(info VersionInfo)
}

// StatusService coordinates status reads and writes through a StatusStore.
type StatusService struct {
	store StatusStore
}

// NewStatusService constructs a StatusService with the provided store.
func NewStatusService(store StatusStore) *StatusService {
	return &StatusService{store: store}
}

// LatestReport returns the most recent health report, if any sweep completed.
func (s *StatusService) LatestReport() (HealthReport, bool) {
	return s.store.Report()
}

// RecordReport swaps in a fresh health report.
func (s *StatusService) RecordReport(report HealthReport) {
	s.store.SetReport(report)
}

// LatestVersion returns the most recent upstream version probe result.
func (s *StatusService) LatestVersion() (VersionInfo, bool) {
	return s.store.Version()
}

// RecordVersion swaps in a fresh version probe result.
func (s *StatusService) RecordVersion(info VersionInfo) {
	s.store.SetVersion(info)
}
