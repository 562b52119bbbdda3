// Package monitoring collects runtime statistics for the dashboard
// backend: a snapshot map served over the API and websocket, plus
// prometheus collectors exposed on the metrics port.
package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for the HTTP surface and the aggregation
// pipelines.
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laudure_requests_total",
		Help: "Total API requests by endpoint and status code.",
	}, []string{"endpoint", "code"})

	AggregationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "laudure_aggregation_duration_seconds",
		Help:    "Time spent running one aggregation pipeline.",
		Buckets: prometheus.DefBuckets,
	}, []string{"pipeline"})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laudure_cache_hits_total",
		Help: "Cache hits and misses by endpoint.",
	}, []string{"endpoint", "result"})
)

// Monitor collects and provides metrics for the dashboard
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// RecordPipelineRun records statistics from one aggregation pipeline
// run, prefixed by the pipeline name.
func (m *Monitor) RecordPipelineRun(pipeline string, stats map[string]interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	prefix := pipeline + "_"

	for k, v := range stats {
		m.metrics[prefix+k] = v
	}

	// Record run timestamp
	m.metrics[prefix+"last_run"] = time.Now().Format(time.RFC3339)
}
