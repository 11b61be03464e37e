package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls           int
	errors          int
	timeouts        int
	retries         int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream API calls
// and mirrors them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*operationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordUpstreamAttempt counts one attempt of an API operation and stores its latency.
func (r *Recorder) RecordUpstreamAttempt(op string, duration time.Duration, err error, timedOut bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(op)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if timedOut {
		stats.timeouts++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamAttempt(op, duration, err, timedOut)
	}
}

// RecordRetry tracks that an operation is about to be attempted again.
func (r *Recorder) RecordRetry(op string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStatsLocked(op).retries++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRetry(op)
	}
}

// UpstreamCalls returns the total attempts recorded for an operation.
func (r *Recorder) UpstreamCalls(op string) int {
	return r.Snapshot(op).Calls
}

// UpstreamErrors returns the failed attempts recorded for an operation.
func (r *Recorder) UpstreamErrors(op string) int {
	return r.Snapshot(op).Errors
}

// Retries returns how many retries were scheduled for an operation.
func (r *Recorder) Retries(op string) int {
	return r.Snapshot(op).Retries
}

// Snapshot is a copy of the current stats for one operation.
type Snapshot struct {
	Calls           int
	Errors          int
	Timeouts        int
	Retries         int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(op string) Snapshot {
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
		Timeouts:        stats.timeouts,
		Retries:         stats.retries,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordProbeCycle tracks upstream readiness probes.
func (r *Recorder) RecordProbeCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordProbe(duration, err)
}

// RecordEventLookups tracks how many event lookups a prediction view needed
// and how many of them fell back to the raw key.
func (r *Recorder) RecordEventLookups(total, failed int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordEventLookups(total, failed)
}

func (r *Recorder) ensureStatsLocked(op string) *operationStats {
	stats, ok := r.stats[op]
	if !ok {
		stats = &operationStats{}
		r.stats[op] = stats
	}
	return stats
}
