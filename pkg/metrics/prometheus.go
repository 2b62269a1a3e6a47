// Package metrics provides Prometheus metrics for the naturapi service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "naturapi"

// Manager owns a private registry so tests can build as many as they like.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	entitiesCreated *prometheus.CounterVec
	entitiesDeleted *prometheus.CounterVec

	imageUploads *prometheus.CounterVec
}

func NewManager() *Manager {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Manager{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		entitiesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "entities_created_total",
			Help:      "Records created by entity type.",
		}, []string{"entity"}),
		entitiesDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "entities_deleted_total",
			Help:      "Delete requests served by entity type.",
		}, []string{"entity"}),
		imageUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "images",
			Name:      "uploads_total",
			Help:      "Image uploads by outcome.",
		}, []string{"status"}),
	}

	reg.MustRegister(m.httpRequests, m.httpRequestDuration, m.entitiesCreated, m.entitiesDeleted, m.imageUploads)
	return m
}

func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Manager) ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Manager) IncEntityCreated(entity string) {
	m.entitiesCreated.WithLabelValues(entity).Inc()
}

func (m *Manager) IncEntityDeleted(entity string) {
	m.entitiesDeleted.WithLabelValues(entity).Inc()
}

func (m *Manager) IncImageUpload(status string) {
	m.imageUploads.WithLabelValues(status).Inc()
}
