package providers

import (
	"context"
	"log/slog"
	"time"

	"scriptblox-service/internal/domain"
)

// rateLimitedProvider wraps a CatalogProvider and enforces a minimum interval
// between upstream data calls. Diagnostic probes are exempt so the health
// poller cannot be starved by user traffic.
type rateLimitedProvider struct {
	next     CatalogProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a CatalogProvider that spaces data calls to
// the given interval. Calls block until the interval elapses to avoid
// exceeding upstream quotas.
func NewRateLimitedProvider(next CatalogProvider, interval time.Duration, logger *slog.Logger) CatalogProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

func (p *rateLimitedProvider) Search(ctx context.Context, query string, opts SearchOptions) (domain.Page, error) {
	if err := p.wait(ctx); err != nil {
		return domain.Page{}, err
	}
	return p.next.Search(ctx, query, opts)
}

func (p *rateLimitedProvider) Browse(ctx context.Context, opts BrowseOptions) (domain.Page, error) {
	if err := p.wait(ctx); err != nil {
		return domain.Page{}, err
	}
	return p.next.Browse(ctx, opts)
}

func (p *rateLimitedProvider) Script(ctx context.Context, id string) (domain.Script, error) {
	if err := p.wait(ctx); err != nil {
		return domain.Script{}, err
	}
	return p.next.Script(ctx, id)
}

func (p *rateLimitedProvider) RawScript(ctx context.Context, id string) (string, error) {
	if err := p.wait(ctx); err != nil {
		return "", err
	}
	return p.next.RawScript(ctx, id)
}

func (p *rateLimitedProvider) Trending(ctx context.Context, limit int) ([]domain.Script, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.Trending(ctx, limit)
}

func (p *rateLimitedProvider) CheckHealth(ctx context.Context) (domain.HealthReport, error) {
	if p == nil || p.next == nil {
		return domain.HealthReport{}, ErrProviderUnavailable
	}
	return p.next.CheckHealth(ctx)
}

func (p *rateLimitedProvider) Version(ctx context.Context) (domain.VersionInfo, error) {
	if p == nil || p.next == nil {
		return domain.VersionInfo{}, ErrProviderUnavailable
	}
	return p.next.Version(ctx)
}
