package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls,
// keyed by operation (search, browse, trending, ...). It is intentionally
// simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*upstreamStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*upstreamStats),
		otel:  otel,
	}
}

// RecordUpstreamAttempt increments counters for an upstream call and stores
// the last observed latency.
func (r *Recorder) RecordUpstreamAttempt(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(op)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordUpstreamAttempt(op, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and
// stores the last Retry-After when known.
func (r *Recorder) RecordRateLimit(op string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(op)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(op, retryAfter)
	}
}

// RecordHTTPRequest tracks one served request.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollCycle tracks health poll cycles and errors.
func (r *Recorder) RecordPollCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPollCycle(duration, err)
}

// Snapshot is a copy of the current stats for one operation.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// UpstreamCalls returns the total attempts recorded for an operation.
func (r *Recorder) UpstreamCalls(op string) int {
	return r.SnapshotFor(op).Calls
}

// UpstreamErrors returns the total failed attempts recorded for an operation.
func (r *Recorder) UpstreamErrors(op string) int {
	return r.SnapshotFor(op).Errors
}

// RateLimitHits returns the number of rate limit events seen for an operation.
func (r *Recorder) RateLimitHits(op string) int {
	return r.SnapshotFor(op).RateLimitHits
}

// LastCallLatency returns the last recorded latency for an operation.
func (r *Recorder) LastCallLatency(op string) time.Duration {
	return r.SnapshotFor(op).LastCallLatency
}

// SnapshotFor returns a copy of the current stats for the operation.
func (r *Recorder) SnapshotFor(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[op]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStats(op string) *upstreamStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[op]
	if !ok {
		stats = &upstreamStats{}
		r.stats[op] = stats
	}
	return stats
}
