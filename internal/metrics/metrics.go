package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	unauthorized    int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about backend calls.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*endpointStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordBackendCall increments counters for a backend call and stores the last observed latency.
func (r *Recorder) RecordBackendCall(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBackendCall(endpoint, duration, err)
	}
}

// RecordUnauthorized tracks a 401 observed on a backend call.
func (r *Recorder) RecordUnauthorized(endpoint string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStats(endpoint).unauthorized++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUnauthorized(endpoint)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics for the web server.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks team-directory refresh cycles and their errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPollerCycle(duration, err)
}

// Snapshot is a copy of the current stats for one endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	Unauthorized    int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Unauthorized:    stats.unauthorized,
		LastCallLatency: stats.lastCallLatency,
	}
}

// BackendCalls returns the total attempts recorded for an endpoint.
func (r *Recorder) BackendCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// BackendErrors returns the total failed attempts recorded for an endpoint.
func (r *Recorder) BackendErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(endpoint string) *endpointStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}
