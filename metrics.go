package annotile

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the prom
// subpackage ships a Prometheus-backed implementation.
type MetricsCollector interface {
	// RecordAdd is called after each batch add operation.
	// count is the number of points attempted, duration is the total time
	// taken, err is nil if successful.
	RecordAdd(count int, duration time.Duration, err error)

	// RecordRemove is called after each batch remove operation.
	// count is the number of IDs requested for removal.
	RecordRemove(count int, duration time.Duration)

	// RecordQuery is called after each bounds query.
	// results is the number of annotation IDs returned.
	RecordQuery(results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRemove(int, time.Duration)     {}
func (NoopMetricsCollector) RecordQuery(int, time.Duration)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount        atomic.Int64
	AddPoints       atomic.Int64
	AddErrors       atomic.Int64
	AddTotalNanos   atomic.Int64
	RemoveCount     atomic.Int64
	RemoveIDs       atomic.Int64
	QueryCount      atomic.Int64
	QueryResults    atomic.Int64
	QueryTotalNanos atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(count int, duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddErrors.Add(1)
		return
	}
	b.AddPoints.Add(int64(count))
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(count int, duration time.Duration) {
	b.RemoveCount.Add(1)
	b.RemoveIDs.Add(int64(count))
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:      b.AddCount.Load(),
		AddPoints:     b.AddPoints.Load(),
		AddErrors:     b.AddErrors.Load(),
		AddAvgNanos:   b.getAvgAddNanos(),
		RemoveCount:   b.RemoveCount.Load(),
		RemoveIDs:     b.RemoveIDs.Load(),
		QueryCount:    b.QueryCount.Load(),
		QueryResults:  b.QueryResults.Load(),
		QueryAvgNanos: b.getAvgQueryNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgAddNanos() int64 {
	count := b.AddCount.Load()
	if count == 0 {
		return 0
	}
	return b.AddTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount      int64
	AddPoints     int64
	AddErrors     int64
	AddAvgNanos   int64
	RemoveCount   int64
	RemoveIDs     int64
	QueryCount    int64
	QueryResults  int64
	QueryAvgNanos int64
}
