package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
	Stored  map[string]int    `json:"stored,omitempty"`

	NextAuditCleanup string `json:"next_audit_cleanup,omitempty"`
}

// StoreCounter reports entity counts for the health payload.
type StoreCounter interface {
	Counts() map[string]int
}

// CleanupSchedule reports when the next scheduled audit cleanup runs,
// or nil while the scheduler is stopped.
type CleanupSchedule interface {
	GetNextRunTime() *time.Time
}

type HealthController struct {
	db       Pinger
	store    StoreCounter
	schedule CleanupSchedule
	version  string
}

func NewHealthController(db Pinger, store StoreCounter, schedule CleanupSchedule, version string) *HealthController {
	return &HealthController{
		db:       db,
		store:    store,
		schedule: schedule,
		version:  version,
	}
}

// GET /health
func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}
	if h.store != nil {
		health.Stored = h.store.Counts()
	}
	if h.schedule != nil {
		if next := h.schedule.GetNextRunTime(); next != nil {
			health.NextAuditCleanup = next.Format(time.RFC3339)
		}
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

// GET /ping
func (h *HealthController) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
