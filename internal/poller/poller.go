package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"scriptblox-service/internal/domain"
	"scriptblox-service/internal/logging"
	"scriptblox-service/internal/metrics"
	"scriptblox-service/internal/providers"
)

const defaultInterval = 5 * time.Minute

// Poller sweeps the upstream health battery on an interval and records the
// latest report for the status endpoint.
type Poller struct {
	provider providers.CatalogProvider
	statuses *domain.StatusService
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poll loop itself.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.CatalogProvider, statuses *domain.StatusService, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		statuses: statuses,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("health poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial sweep to warm the status endpoint on boot.
		p.sweepOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("health poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("health poller stopped")
				return
			case <-p.ticker.C:
				p.sweepOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) sweepOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	report, err := p.provider.CheckHealth(ctx)
	if p.metrics != nil {
		p.metrics.RecordPollCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("health sweep failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if p.statuses != nil {
		p.statuses.RecordReport(report)
		if version, versionErr := p.provider.Version(ctx); versionErr == nil {
			p.statuses.RecordVersion(version)
		}
	}

	// A sweep that ran is a poller success even when upstream is unhealthy;
	// readiness tracks the loop, the report tracks upstream.
	p.recordSuccess(start)
	p.logInfo("health sweep complete",
		"status", string(report.Status),
		logging.FieldCount, report.Working,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
