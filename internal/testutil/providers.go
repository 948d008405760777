package testutil

import (
	"context"
	"sync/atomic"

	"scriptblox-service/internal/domain"
	"scriptblox-service/internal/providers"
)

// StubProvider is a configurable test double for providers.CatalogProvider.
// Each operation returns the configured value and error while counting calls.
type StubProvider struct {
	PageVal    domain.Page
	ScriptVal  domain.Script
	RawVal     string
	Scripts    []domain.Script
	ReportVal  domain.HealthReport
	VersionVal domain.VersionInfo
	Err        error

	Calls atomic.Int32
}

func (s *StubProvider) Search(ctx context.Context, query string, opts providers.SearchOptions) (domain.Page, error) {
	s.Calls.Add(1)
	return s.PageVal, s.Err
}

func (s *StubProvider) Browse(ctx context.Context, opts providers.BrowseOptions) (domain.Page, error) {
	s.Calls.Add(1)
	return s.PageVal, s.Err
}

func (s *StubProvider) Script(ctx context.Context, id string) (domain.Script, error) {
	s.Calls.Add(1)
	return s.ScriptVal, s.Err
}

func (s *StubProvider) RawScript(ctx context.Context, id string) (string, error) {
	s.Calls.Add(1)
	return s.RawVal, s.Err
}

func (s *StubProvider) Trending(ctx context.Context, limit int) ([]domain.Script, error) {
	s.Calls.Add(1)
	return s.Scripts, s.Err
}

func (s *StubProvider) CheckHealth(ctx context.Context) (domain.HealthReport, error) {
	s.Calls.Add(1)
	return s.ReportVal, s.Err
}

func (s *StubProvider) Version(ctx context.Context) (domain.VersionInfo, error) {
	s.Calls.Add(1)
	return s.VersionVal, s.Err
}
