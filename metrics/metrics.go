// Package metrics instruments a Matcher's request handling: how many
// Select calls happened, how many were rejected or unmatched, how long
// parsing and matching took, and how the matcher cache performed.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives the events a Matcher emits while serving Select calls.
type Recorder interface {
	IncRequests()
	IncRejected()
	IncUnmatched()
	ObserveLatency(durationMs float64)
	IncCacheHit()
	IncCacheMiss()
}

// InMemoryRecorder is a dependency-free Recorder, useful in tests that want
// to assert on counts without standing up a Prometheus registry.
type InMemoryRecorder struct {
	Requests  int
	Rejected  int
	Unmatched int
	CacheHits int
	CacheMiss int
	LatencyMs []float64
}

func (r *InMemoryRecorder) IncRequests()  { r.Requests++ }
func (r *InMemoryRecorder) IncRejected()  { r.Rejected++ }
func (r *InMemoryRecorder) IncUnmatched() { r.Unmatched++ }
func (r *InMemoryRecorder) IncCacheHit()  { r.CacheHits++ }
func (r *InMemoryRecorder) IncCacheMiss() { r.CacheMiss++ }
func (r *InMemoryRecorder) ObserveLatency(durationMs float64) {
	r.LatencyMs = append(r.LatencyMs, durationMs)
}

// NopRecorder discards every event; it is the default so the module stays
// silent unless an embedder opts in.
type NopRecorder struct{}

func (NopRecorder) IncRequests()                {}
func (NopRecorder) IncRejected()                {}
func (NopRecorder) IncUnmatched()               {}
func (NopRecorder) IncCacheHit()                {}
func (NopRecorder) IncCacheMiss()               {}
func (NopRecorder) ObserveLatency(float64)      {}

// Config controls a PrometheusRecorder's metric names.
type Config struct {
	Namespace string
	Subsystem string
	Buckets   []float64 // latency buckets, in milliseconds
}

// DefaultConfig returns the Config a PrometheusRecorder uses when none is given.
func DefaultConfig() *Config {
	return &Config{
		Namespace: "negotiate",
		Subsystem: "matcher",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50},
	}
}

// PrometheusRecorder is a Recorder backed by Prometheus client vectors.
type PrometheusRecorder struct {
	requests  prometheus.Counter
	rejected  prometheus.Counter
	unmatched prometheus.Counter
	cacheHits prometheus.Counter
	cacheMiss prometheus.Counter
	latency   prometheus.Histogram
}

// NewPrometheusRecorder registers a PrometheusRecorder's collectors against
// reg. cfg may be nil, in which case DefaultConfig is used. A collector
// that reg reports as already registered (prometheus.AlreadyRegisteredError)
// is skipped rather than returned as an error, so registering the same
// Config twice against the same registry succeeds; the second recorder's
// own collectors for those names are then not the ones reg exports.
func NewPrometheusRecorder(reg prometheus.Registerer, cfg *Config) (*PrometheusRecorder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      name,
			Help:      help,
		})
	}

	r := &PrometheusRecorder{
		requests:  counter("requests_total", "Total Select calls"),
		rejected:  counter("rejected_total", "Total Select calls rejecting a malformed Accept header"),
		unmatched: counter("unmatched_total", "Total Select calls finding no acceptable type"),
		cacheHits: counter("cache_hits_total", "Total matcher cache hits"),
		cacheMiss: counter("cache_misses_total", "Total matcher cache misses"),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "latency_milliseconds",
			Help:      "Latency of uncached Select calls, in milliseconds",
			Buckets:   cfg.Buckets,
		}),
	}

	for _, c := range []prometheus.Collector{r.requests, r.rejected, r.unmatched, r.cacheHits, r.cacheMiss, r.latency} {
		if err := reg.Register(c); err != nil {
			var alreadyRegisteredError prometheus.AlreadyRegisteredError
			if errors.As(err, &alreadyRegisteredError) {
				continue
			}
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}

	return r, nil
}

func (r *PrometheusRecorder) IncRequests()  { r.requests.Inc() }
func (r *PrometheusRecorder) IncRejected()  { r.rejected.Inc() }
func (r *PrometheusRecorder) IncUnmatched() { r.unmatched.Inc() }
func (r *PrometheusRecorder) IncCacheHit()  { r.cacheHits.Inc() }
func (r *PrometheusRecorder) IncCacheMiss() { r.cacheMiss.Inc() }
func (r *PrometheusRecorder) ObserveLatency(durationMs float64) {
	r.latency.Observe(durationMs)
}
