package domain

import (
	"fmt"
	"time"
)

// HealthStatus mirrors the shared contract for upstream health states.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "HEALTHY"
	StatusPartial   HealthStatus = "PARTIAL"
	StatusUnhealthy HealthStatus = "UNHEALTHY"
)

// EndpointResult records the outcome of probing one upstream endpoint.
type EndpointResult struct {
	Name       string `json:"name"`
	OK         bool   `json:"ok"`
	StatusCode int    `json:"httpStatus,omitempty"`
	Error      string `json:"error,omitempty"`
}

// HealthReport aggregates a sweep of endpoint probes.
type HealthReport struct {
	Status    HealthStatus     `json:"status"`
	Message   string           `json:"message"`
	Endpoints []EndpointResult `json:"endpoints"`
	Working   int              `json:"workingCount"`
	Total     int              `json:"totalCount"`
	CheckedAt time.Time        `json:"checkedAt"`
}

// Rollup derives the overall status from the per-endpoint results. It
// tolerates results arriving in any order and any subset failing.
func Rollup(endpoints []EndpointResult, checkedAt time.Time) HealthReport {
	working := 0
	for _, ep := range endpoints {
		if ep.OK {
			working++
		}
	}

	report := HealthReport{
		Endpoints: endpoints,
		Working:   working,
		Total:     len(endpoints),
		CheckedAt: checkedAt,
	}

	switch {
	case len(endpoints) > 0 && working == len(endpoints):
		report.Status = StatusHealthy
		report.Message = "All endpoints working"
	case working > 0:
		report.Status = StatusPartial
		report.Message = fmt.Sprintf("%d/%d endpoints working", working, len(endpoints))
	default:
		report.Status = StatusUnhealthy
		report.Message = "All endpoints blocked"
	}
	return report
}

// VersionInfo captures the upstream version probe result.
type VersionInfo struct {
	Version           string `json:"version"`
	Deprecated        bool   `json:"deprecated"`
	MigrationRequired bool   `json:"migrationRequired"`
}
