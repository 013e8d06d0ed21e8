package rankgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    registerCounter prometheus.Counter
//	    topKHistogram   prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRegister(duration time.Duration, err error) {
//	    p.registerCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordRegister is called after each Register operation.
	// duration is the total time taken, err is nil if successful.
	RecordRegister(duration time.Duration, err error)

	// RecordSetScore is called after each SetScore operation.
	RecordSetScore(duration time.Duration, err error)

	// RecordReassign is called after each Reassign operation.
	RecordReassign(duration time.Duration, err error)

	// RecordTopK is called after each TopK operation.
	// k is the number of results requested, duration is the time taken,
	// err is nil if successful.
	RecordTopK(k int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRegister(time.Duration, error)  {}
func (NoopMetricsCollector) RecordSetScore(time.Duration, error)  {}
func (NoopMetricsCollector) RecordReassign(time.Duration, error)  {}
func (NoopMetricsCollector) RecordTopK(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RegisterCount      atomic.Int64
	RegisterErrors     atomic.Int64
	RegisterTotalNanos atomic.Int64
	SetScoreCount      atomic.Int64
	SetScoreErrors     atomic.Int64
	SetScoreTotalNanos atomic.Int64
	ReassignCount      atomic.Int64
	ReassignErrors     atomic.Int64
	TopKCount          atomic.Int64
	TopKErrors         atomic.Int64
	TopKTotalNanos     atomic.Int64
}

// RecordRegister implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRegister(duration time.Duration, err error) {
	b.RegisterCount.Add(1)
	b.RegisterTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RegisterErrors.Add(1)
	}
}

// RecordSetScore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSetScore(duration time.Duration, err error) {
	b.SetScoreCount.Add(1)
	b.SetScoreTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SetScoreErrors.Add(1)
	}
}

// RecordReassign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReassign(duration time.Duration, err error) {
	b.ReassignCount.Add(1)
	if err != nil {
		b.ReassignErrors.Add(1)
	}
}

// RecordTopK implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTopK(k int, duration time.Duration, err error) {
	b.TopKCount.Add(1)
	b.TopKTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TopKErrors.Add(1)
	}
}

// BasicMetricsStats is a point-in-time snapshot of a BasicMetricsCollector.
type BasicMetricsStats struct {
	RegisterCount    int64
	RegisterErrors   int64
	RegisterAvgNanos int64
	SetScoreCount    int64
	SetScoreErrors   int64
	SetScoreAvgNanos int64
	ReassignCount    int64
	ReassignErrors   int64
	TopKCount        int64
	TopKErrors       int64
	TopKAvgNanos     int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RegisterCount:    b.RegisterCount.Load(),
		RegisterErrors:   b.RegisterErrors.Load(),
		RegisterAvgNanos: avgNanos(&b.RegisterCount, &b.RegisterTotalNanos),
		SetScoreCount:    b.SetScoreCount.Load(),
		SetScoreErrors:   b.SetScoreErrors.Load(),
		SetScoreAvgNanos: avgNanos(&b.SetScoreCount, &b.SetScoreTotalNanos),
		ReassignCount:    b.ReassignCount.Load(),
		ReassignErrors:   b.ReassignErrors.Load(),
		TopKCount:        b.TopKCount.Load(),
		TopKErrors:       b.TopKErrors.Load(),
		TopKAvgNanos:     avgNanos(&b.TopKCount, &b.TopKTotalNanos),
	}
}

func avgNanos(count, total *atomic.Int64) int64 {
	c := count.Load()
	if c == 0 {
		return 0
	}
	return total.Load() / c
}
