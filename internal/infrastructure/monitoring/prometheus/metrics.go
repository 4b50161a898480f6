// Package prometheus exposes the application's metrics on a dedicated
// registry.  Metrics implements the telemetry interfaces the application and
// cache layers define, so neither layer imports the prometheus client.
package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpDurationBuckets       = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	generationDurationBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5}
	candidateCountBuckets     = []float64{1, 2, 5, 10, 25, 50, 100, 250, 500}
)

// Metrics holds all application metrics.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	generationsInFlight prometheus.Gauge
	generationsTotal    *prometheus.CounterVec
	generationDuration  prometheus.Histogram
	candidatesPerBatch  prometheus.Histogram

	vectorCacheHits   prometheus.Counter
	vectorCacheMisses prometheus.Counter
}

// NewMetrics registers all metrics under namespace on a fresh registry.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration.",
			Buckets:   httpDurationBuckets,
		}, []string{"method", "path"}),

		generationsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generations_in_flight",
			Help:      "Augmentation runs currently executing.",
		}),
		generationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Completed augmentation runs by outcome.",
		}, []string{"status", "code"}),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Augmentation run duration.",
			Buckets:   generationDurationBuckets,
		}),
		candidatesPerBatch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "candidates_per_batch",
			Help:      "Candidate utterances produced per run.",
			Buckets:   candidateCountBuckets,
		}),

		vectorCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vector_cache_hits_total",
			Help:      "Word-vector cache hits.",
		}),
		vectorCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vector_cache_misses_total",
			Help:      "Word-vector cache misses.",
		}),
	}

	registry.MustRegister(
		m.httpRequestsTotal, m.httpRequestDuration,
		m.generationsInFlight, m.generationsTotal,
		m.generationDuration, m.candidatesPerBatch,
		m.vectorCacheHits, m.vectorCacheMisses,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one handled HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// GenerationStarted marks an augmentation run as in flight.
func (m *Metrics) GenerationStarted() {
	m.generationsInFlight.Inc()
}

// GenerationSucceeded records a completed run.
func (m *Metrics) GenerationSucceeded(candidates int, elapsed time.Duration) {
	m.generationsInFlight.Dec()
	m.generationsTotal.WithLabelValues("success", "").Inc()
	m.generationDuration.Observe(elapsed.Seconds())
	m.candidatesPerBatch.Observe(float64(candidates))
}

// GenerationFailed records a failed run with its error code.
func (m *Metrics) GenerationFailed(code string) {
	m.generationsInFlight.Dec()
	m.generationsTotal.WithLabelValues("failure", code).Inc()
}

// VectorCacheHit records a word-vector cache hit.
func (m *Metrics) VectorCacheHit() {
	m.vectorCacheHits.Inc()
}

// VectorCacheMiss records a word-vector cache miss.
func (m *Metrics) VectorCacheMiss() {
	m.vectorCacheMisses.Inc()
}
