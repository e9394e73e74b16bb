// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"ayra/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const namespace = "ayra"

// Metrics holds the Prometheus counters and histograms for the API.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration *prometheus.HistogramVec // labels: method, route

	// CoordinateResolutions counts how new entities got their coordinate.
	CoordinateResolutions *prometheus.CounterVec // labels: outcome={reused_by_id,reused_by_proximity,inserted}
	CacheLookups          *prometheus.CounterVec // labels: kind, result={hit,miss}

	DBConnections *prometheus.GaugeVec // labels: state={open,in_use,idle}
	DBWaits       prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route template and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route template.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		CoordinateResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coordinate_resolutions_total",
			Help:      "Coordinate deduplication outcomes.",
		}, []string{"outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Marker cache lookups by kind and result.",
		}, []string{"kind", "result"}),
		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections",
			Help:      "PostgreSQL pool connections by state.",
		}, []string{"state"}),
		DBWaits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connection_waits",
			Help:      "Total number of requests that waited for a PostgreSQL connection.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.CoordinateResolutions,
		m.CacheLookups,
		m.DBConnections,
		m.DBWaits,
	)

	return m
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) CoordinateResolved(outcome service.ResolutionOutcome) {
	m.CoordinateResolutions.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) CacheLookup(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(kind, result).Inc()
}

// ObservePool records a connection pool sample.
func (m *Metrics) ObservePool(stats sql.DBStats) {
	m.DBConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.DBConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	m.DBWaits.Set(float64(stats.WaitCount))
}

// Module registers the collectors on the default registry, which /metrics serves.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		func() *Metrics { return New(prometheus.DefaultRegisterer) },
		func(m *Metrics) service.CoordinateMetrics { return m },
		func(m *Metrics) service.CacheMetrics { return m },
	),
)
