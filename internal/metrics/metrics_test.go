package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/fleet/internal/entities"
	"github.com/mrlokans/fleet/internal/services"
)

var _ services.ChangeLogger = (*Metrics)(nil)

type fixedCounts map[string]int

func (f fixedCounts) Counts() map[string]int { return f }

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/v1/buses/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, id := range []string{"a", "b", "c"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/buses/"+id, nil)
		router.ServeHTTP(w, req)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/nowhere", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/buses/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestMetrics_LogChange(t *testing.T) {
	m := New()

	m.LogChange(entities.AuditEventCreate, entities.EntityBus, "b-1", nil)
	m.LogChange(entities.AuditEventCreate, entities.EntityBus, "", errors.New("Owner not found: u-1"))
	m.LogChange(entities.AuditEventCreate, entities.EntityBus, "b-2", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.entityChanges.WithLabelValues("bus", "create", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.entityChanges.WithLabelValues("bus", "create", "failed")))
}

func TestMetrics_TrackStore(t *testing.T) {
	m := New()
	m.TrackStore(fixedCounts{entities.EntityUser: 2, entities.EntityBus: 1})

	expected := `
# HELP fleet_stored_entities Number of entities currently held in memory
# TYPE fleet_stored_entities gauge
fleet_stored_entities{entity="bus"} 1
fleet_stored_entities{entity="report"} 0
fleet_stored_entities{entity="route"} 0
fleet_stored_entities{entity="user"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "fleet_stored_entities"))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.TrackStore(services.New())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	m.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fleet_stored_entities")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
