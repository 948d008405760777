package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"scriptblox-service/internal/domain"
	"scriptblox-service/internal/logging"
	"scriptblox-service/internal/metrics"
)

const (
	defaultInitialBackoff = 200 * time.Millisecond
	defaultMaxElapsed     = 5 * time.Second
)

// retryingProvider wraps a CatalogProvider with retry/backoff behavior for
// transient failures. Permanent classifications (bad request, not found,
// blocked, ...) are returned immediately. Diagnostic operations (CheckHealth,
// Version) are never retried so operators see real failures.
type retryingProvider struct {
	inner      CatalogProvider
	logger     *slog.Logger
	metrics    *metrics.Recorder
	maxElapsed time.Duration
}

// NewRetryingProvider wraps the given provider with retries. A maxElapsed of
// zero selects a conservative default.
func NewRetryingProvider(inner CatalogProvider, logger *slog.Logger, recorder *metrics.Recorder, maxElapsed time.Duration) CatalogProvider {
	if maxElapsed <= 0 {
		maxElapsed = defaultMaxElapsed
	}
	return &retryingProvider{
		inner:      inner,
		logger:     logger,
		metrics:    recorder,
		maxElapsed: maxElapsed,
	}
}

func (r *retryingProvider) Search(ctx context.Context, query string, opts SearchOptions) (domain.Page, error) {
	var page domain.Page
	err := r.do(ctx, "search", func() error {
		var innerErr error
		page, innerErr = r.inner.Search(ctx, query, opts)
		return innerErr
	})
	return page, err
}

func (r *retryingProvider) Browse(ctx context.Context, opts BrowseOptions) (domain.Page, error) {
	var page domain.Page
	err := r.do(ctx, "browse", func() error {
		var innerErr error
		page, innerErr = r.inner.Browse(ctx, opts)
		return innerErr
	})
	return page, err
}

func (r *retryingProvider) Script(ctx context.Context, id string) (domain.Script, error) {
	var script domain.Script
	err := r.do(ctx, "script", func() error {
		var innerErr error
		script, innerErr = r.inner.Script(ctx, id)
		return innerErr
	})
	return script, err
}

func (r *retryingProvider) RawScript(ctx context.Context, id string) (string, error) {
	var raw string
	err := r.do(ctx, "raw", func() error {
		var innerErr error
		raw, innerErr = r.inner.RawScript(ctx, id)
		return innerErr
	})
	return raw, err
}

func (r *retryingProvider) Trending(ctx context.Context, limit int) ([]domain.Script, error) {
	var scripts []domain.Script
	err := r.do(ctx, "trending", func() error {
		var innerErr error
		scripts, innerErr = r.inner.Trending(ctx, limit)
		return innerErr
	})
	return scripts, err
}

func (r *retryingProvider) CheckHealth(ctx context.Context) (domain.HealthReport, error) {
	return r.inner.CheckHealth(ctx)
}

func (r *retryingProvider) Version(ctx context.Context) (domain.VersionInfo, error) {
	return r.inner.Version(ctx)
}

func (r *retryingProvider) do(ctx context.Context, op string, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = defaultInitialBackoff
	bo.MaxElapsedTime = r.maxElapsed

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		start := time.Now()
		err := fn()
		r.metrics.RecordUpstreamAttempt(op, time.Since(start), err)
		if err == nil {
			return nil
		}

		apiErr, ok := AsAPIError(err)
		if !ok || !apiErr.Transient() {
			return backoff.Permanent(err)
		}
		if apiErr.Kind == KindRateLimited {
			r.metrics.RecordRateLimit(op, 0)
		}
		r.logWarn(ctx, "upstream call retry", "op", op, "attempt", attempt, "err", err)
		return err
	}, backoff.WithContext(bo, ctx))
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
