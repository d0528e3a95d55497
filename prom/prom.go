// Package prom adapts annotile metrics to Prometheus.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/annotile"
)

const namespace = "annotile"

// Collector exports annotile operation metrics as Prometheus series. Plug it
// into a Manager via annotile.WithMetricsCollector.
type Collector struct {
	addTotal     prometheus.Counter
	addPoints    prometheus.Counter
	addErrors    prometheus.Counter
	removeTotal  prometheus.Counter
	removeIDs    prometheus.Counter
	queryTotal   prometheus.Counter
	queryResults prometheus.Counter
	opDuration   *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		addTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "add_batches_total",
			Help:      "Number of batch add operations.",
		}),
		addPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "annotations_added_total",
			Help:      "Number of annotations added by successful batches.",
		}),
		addErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "add_errors_total",
			Help:      "Number of failed batch add operations.",
		}),
		removeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remove_batches_total",
			Help:      "Number of batch remove operations.",
		}),
		removeIDs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "annotations_removed_total",
			Help:      "Number of annotation IDs requested for removal.",
		}),
		queryTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Number of bounds queries.",
		}),
		queryResults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_results_total",
			Help:      "Number of annotation IDs returned by bounds queries.",
		}),
		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of manager operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	collectors := []prometheus.Collector{
		c.addTotal,
		c.addPoints,
		c.addErrors,
		c.removeTotal,
		c.removeIDs,
		c.queryTotal,
		c.queryResults,
		c.opDuration,
	}
	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordAdd implements annotile.MetricsCollector.
func (c *Collector) RecordAdd(count int, duration time.Duration, err error) {
	c.addTotal.Inc()
	c.opDuration.WithLabelValues("add").Observe(duration.Seconds())
	if err != nil {
		c.addErrors.Inc()
		return
	}
	c.addPoints.Add(float64(count))
}

// RecordRemove implements annotile.MetricsCollector.
func (c *Collector) RecordRemove(count int, duration time.Duration) {
	c.removeTotal.Inc()
	c.removeIDs.Add(float64(count))
	c.opDuration.WithLabelValues("remove").Observe(duration.Seconds())
}

// RecordQuery implements annotile.MetricsCollector.
func (c *Collector) RecordQuery(results int, duration time.Duration) {
	c.queryTotal.Inc()
	c.queryResults.Add(float64(results))
	c.opDuration.WithLabelValues("query").Observe(duration.Seconds())
}

var _ annotile.MetricsCollector = (*Collector)(nil)
