package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/fleet/internal/entities"
)

const (
	defaultAuditLimit = 25
	maxAuditLimit     = 100
)

type AuditController struct {
	auditService AuditReader
}

func NewAuditController(auditService AuditReader) *AuditController {
	return &AuditController{auditService: auditService}
}

// GetAuditEvents returns audit events, newest first. Optional filters:
// type (create, update, delete) and entity (user, report, bus, route).
// GET /api/v1/audit?limit=&offset=&type=&entity=
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	limit, ok := parseIntQuery(c, "limit", defaultAuditLimit)
	if !ok {
		return
	}
	offset, ok := parseIntQuery(c, "offset", 0)
	if !ok {
		return
	}
	if limit < 1 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	eventType := c.Query("type")
	entityType := c.Query("entity")

	var events []entities.AuditEvent
	var total int64
	var err error

	if eventType != "" {
		events, total, err = ac.auditService.GetEventsByType(entities.AuditEventType(eventType), entityType, limit, offset)
	} else {
		events, total, err = ac.auditService.GetEvents(entityType, limit, offset)
	}

	if err != nil {
		respondInternalError(c, err, "get audit events")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    events,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(events)) < total,
	})
}

// GetEntityHistory returns every recorded change of one entity, oldest first.
// GET /api/v1/audit/:entity/:id
func (ac *AuditController) GetEntityHistory(c *gin.Context) {
	events, err := ac.auditService.GetEntityHistory(c.Param("entity"), c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "get entity history")
		return
	}
	if events == nil {
		events = []entities.AuditEvent{}
	}
	c.JSON(http.StatusOK, events)
}
