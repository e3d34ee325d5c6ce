package http

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrlokans/fleet/internal/audit"
	"github.com/mrlokans/fleet/internal/database"
	auditRepo "github.com/mrlokans/fleet/internal/database/audit"
	"github.com/mrlokans/fleet/internal/entities"
	"github.com/mrlokans/fleet/internal/services"
)

type auditPage struct {
	Data    []entities.AuditEvent `json:"data"`
	Total   int64                 `json:"total"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
	HasMore bool                  `json:"has_more"`
}

func setupAuditRouter(t *testing.T) (*gin.Engine, *audit.Service) {
	t.Helper()

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "audit.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := audit.NewService(auditRepo.NewRepository(db.DB), zap.NewNop())
	facade := services.New(services.WithChangeLogger(svc))

	router := NewRouter(RouterConfig{
		Facade:       facade,
		Database:     db,
		AuditService: svc,
	})
	return router, svc
}

func TestAuditController_GetAuditEvents(t *testing.T) {
	router, svc := setupAuditRouter(t)

	user := createUser(t, router, jane)
	svc.Wait()
	bus := createBus(t, router, validBus(nil))
	svc.Wait()
	w := doJSON(t, router, http.MethodPut, "/api/v1/buses/"+bus.ID, map[string]any{"name": "renamed"})
	require.Equal(t, http.StatusOK, w.Code)
	svc.Wait()

	t.Run("newest first", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/audit", nil)
		require.Equal(t, http.StatusOK, w.Code)

		page := decode[auditPage](t, w)
		assert.Equal(t, int64(3), page.Total)
		assert.Equal(t, defaultAuditLimit, page.Limit)
		assert.False(t, page.HasMore)
		require.Len(t, page.Data, 3)
		assert.Equal(t, entities.AuditEventUpdate, page.Data[0].EventType)
		assert.Equal(t, user.ID, page.Data[2].EntityID)
	})

	t.Run("filter by entity", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/audit?entity=bus", nil)
		require.Equal(t, http.StatusOK, w.Code)
		page := decode[auditPage](t, w)
		assert.Equal(t, int64(2), page.Total)
	})

	t.Run("filter by type", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/audit?type=create", nil)
		require.Equal(t, http.StatusOK, w.Code)
		page := decode[auditPage](t, w)
		assert.Equal(t, int64(2), page.Total)
	})

	t.Run("pagination", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/audit?limit=1&offset=1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		page := decode[auditPage](t, w)
		assert.Len(t, page.Data, 1)
		assert.True(t, page.HasMore)
	})

	t.Run("invalid limit", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/audit?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuditController_GetEntityHistory(t *testing.T) {
	router, svc := setupAuditRouter(t)

	bus := createBus(t, router, validBus(nil))
	svc.Wait()
	w := doJSON(t, router, http.MethodPut, "/api/v1/buses/"+bus.ID, map[string]any{"length": 30})
	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.Wait()

	w = doJSON(t, router, http.MethodGet, "/api/v1/audit/bus/"+bus.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	events := decode[[]entities.AuditEvent](t, w)
	require.Len(t, events, 2)
	assert.Equal(t, entities.AuditEventCreate, events[0].EventType)
	assert.Equal(t, entities.AuditStatusSuccess, events[0].Status)
	assert.Equal(t, entities.AuditStatusFailed, events[1].Status)
	assert.NotEmpty(t, events[1].ErrorMsg)

	w = doJSON(t, router, http.MethodGet, "/api/v1/audit/bus/ghost", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRouter_AuditDisabled(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/audit", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
