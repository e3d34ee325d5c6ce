// Package metrics exposes Prometheus metrics for the HTTP layer and the
// entity store. Each Metrics owns its registry, so tests and multiple
// routers never collide on global registration.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mrlokans/fleet/internal/entities"
)

const namespace = "fleet"

// StoreCounter reports how many entities of each type are stored.
type StoreCounter interface {
	Counts() map[string]int
}

type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	entityChanges       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		entityChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entity_changes_total",
			Help:      "Create, update and delete attempts by entity and result",
		}, []string{"entity", "event", "result"}),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.entityChanges,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// TrackStore registers one gauge per entity type backed by store.Counts.
func (m *Metrics) TrackStore(store StoreCounter) {
	for _, entity := range []string{entities.EntityUser, entities.EntityReport, entities.EntityBus, entities.EntityRoute} {
		m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "stored_entities",
			Help:        "Number of entities currently held in memory",
			ConstLabels: prometheus.Labels{"entity": entity},
		}, func() float64 {
			return float64(store.Counts()[entity])
		}))
	}
}

// ObserveHTTPRequest records an HTTP request metric.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// LogChange counts entity mutations; it plugs into the facade next to
// the audit trail.
func (m *Metrics) LogChange(event entities.AuditEventType, entityType, _ string, err error) {
	result := "success"
	if err != nil {
		result = "failed"
	}
	m.entityChanges.WithLabelValues(entityType, string(event), result).Inc()
}

// Middleware observes every request. The path label is the matched route
// template so entity ids do not explode label cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
