package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Remote call outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeStatus   = "bad_status"
	OutcomeDecode   = "decode_error"
	OutcomeFallback = "fallback"
)

// Metrics exposes HTTP and cross-service counters of one service.
type Metrics struct {
	service        string
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	remoteTotal    *prometheus.CounterVec
	gatherer       prometheus.Gatherer
}

// New registers the service metrics on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry, service string) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		service: service,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinique",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests handled",
		}, []string{"service", "method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinique",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		remoteTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinique",
			Subsystem: "remote",
			Name:      "calls_total",
			Help:      "Calls to sibling services by outcome",
		}, []string{"service", "target", "operation", "outcome"}),
		gatherer: reg,
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency, m.remoteTotal)
	return m
}

// ObserveRequest records one handled HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(m.service, method, route).Observe(elapsed.Seconds())
}

// ObserveRemote records the outcome of one call to a sibling service.
func (m *Metrics) ObserveRemote(target, operation, outcome string) {
	if m == nil {
		return
	}
	m.remoteTotal.WithLabelValues(m.service, target, operation, outcome).Inc()
}

// RemoteCounter returns the counter behind ObserveRemote for one label set.
func (m *Metrics) RemoteCounter(target, operation, outcome string) prometheus.Counter {
	return m.remoteTotal.WithLabelValues(m.service, target, operation, outcome)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// CacheStats reports hits, misses and current size of a cache.
type CacheStats func() (hits int64, misses int64, size int)

// RegisterCache exposes a cache's statistics as gauges named clinique_<name>_cache_*.
func RegisterCache(reg *prometheus.Registry, name string, stats CacheStats) {
	reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "clinique", Subsystem: name, Name: "cache_hits",
			Help: "Cache hits since start",
		}, func() float64 { h, _, _ := stats(); return float64(h) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "clinique", Subsystem: name, Name: "cache_misses",
			Help: "Cache misses since start",
		}, func() float64 { _, m, _ := stats(); return float64(m) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "clinique", Subsystem: name, Name: "cache_items",
			Help: "Items currently cached",
		}, func() float64 { _, _, s := stats(); return float64(s) }),
	)
}
