package metrics

import (
	"database/sql"
	"testing"
	"time"

	"ayra/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CoordinateResolved(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.CoordinateResolved(service.ResolutionInserted)
	m.CoordinateResolved(service.ResolutionReusedByProximity)
	m.CoordinateResolved(service.ResolutionReusedByProximity)

	assert.InDelta(t, 1, testutil.ToFloat64(m.CoordinateResolutions.WithLabelValues("inserted")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.CoordinateResolutions.WithLabelValues("reused_by_proximity")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.CoordinateResolutions.WithLabelValues("reused_by_id")), 0)
}

func TestMetrics_CacheLookup(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.CacheLookup("marker", true)
	m.CacheLookup("marker", false)
	m.CacheLookup("marker", false)

	assert.InDelta(t, 1, testutil.ToFloat64(m.CacheLookups.WithLabelValues("marker", "hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.CacheLookups.WithLabelValues("marker", "miss")), 0)
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveHTTP("GET", "/map-marker/:id", 200, 15*time.Millisecond)
	m.ObserveHTTP("GET", "/map-marker/:id", 404, time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/map-marker/:id", "200")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPDuration))

	count, err := testutil.GatherAndCount(reg, "ayra_http_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_ObservePool(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObservePool(sql.DBStats{OpenConnections: 5, InUse: 3, Idle: 2, WaitCount: 7})

	assert.InDelta(t, 5, testutil.ToFloat64(m.DBConnections.WithLabelValues("open")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.DBConnections.WithLabelValues("in_use")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.DBConnections.WithLabelValues("idle")), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(m.DBWaits), 0)
}
