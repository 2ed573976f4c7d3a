// Package metrics exposes what the page view controller does to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sidereusnuntius/pageview/internal/domain"
)

type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	plans           *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	renderDuration  *prometheus.HistogramVec
	requestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pageview_plans_total",
		Help: "Page views by the kind of output they produced",
	}, []string{"kind"})

	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pageview_render_cache_lookups_total",
		Help: "Render cache lookups by result",
	}, []string{"result"})

	renderDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pageview_render_duration_seconds",
		Help:    "Duration of page renders in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	registry.MustRegister(
		plans,
		cacheLookups,
		renderDuration,
		requestDuration,
		collectors.NewGoCollector(),
	)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		plans:           plans,
		cacheLookups:    cacheLookups,
		renderDuration:  renderDuration,
		requestDuration: requestDuration,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

func (m *Metrics) Plan(kind domain.PlanKind) {
	m.plans.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) Render(elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.renderDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
