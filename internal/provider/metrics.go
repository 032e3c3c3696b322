package provider

import (
	"sync/atomic"
	"time"
)

// Metrics tracks provider call counters.
type Metrics struct {
	calls     int64
	errors    int64
	latencyNs int64
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot.
func GetMetrics() Metrics {
	return Metrics{
		calls:     atomic.LoadInt64(&globalMetrics.calls),
		errors:    atomic.LoadInt64(&globalMetrics.errors),
		latencyNs: atomic.LoadInt64(&globalMetrics.latencyNs),
	}
}

// ResetMetrics resets all counters (useful for testing).
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.calls, 0)
	atomic.StoreInt64(&globalMetrics.errors, 0)
	atomic.StoreInt64(&globalMetrics.latencyNs, 0)
}

func recordCall(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.calls, 1)
	atomic.AddInt64(&globalMetrics.latencyNs, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.errors, 1)
	}
}

func (m Metrics) Calls() int64  { return m.calls }
func (m Metrics) Errors() int64 { return m.errors }

// AverageLatency returns the average call latency in milliseconds.
func (m Metrics) AverageLatency() float64 {
	if m.calls == 0 {
		return 0
	}
	return float64(m.latencyNs) / float64(m.calls) / 1e6
}

// ErrorRate returns the error rate as a percentage.
func (m Metrics) ErrorRate() float64 {
	if m.calls == 0 {
		return 0
	}
	return float64(m.errors) / float64(m.calls) * 100
}
