package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/fleet/internal/entities"
	"github.com/mrlokans/fleet/internal/services"
)

type RoutesController struct {
	store RouteStore
}

func NewRoutesController(store RouteStore) *RoutesController {
	return &RoutesController{store: store}
}

// CreateRoute links a new route to an existing user and bus.
// POST /api/v1/routes
func (rc *RoutesController) CreateRoute(c *gin.Context) {
	var req services.CreateRouteRequest
	if !bindJSON(c, &req) {
		return
	}

	route, err := rc.store.Create(req)
	if err != nil {
		respondServiceError(c, err, "Route")
		return
	}
	respondCreated(c, route.Record())
}

// GET /api/v1/routes
func (rc *RoutesController) ListRoutes(c *gin.Context) {
	routes := rc.store.GetAll()
	records := make([]entities.RouteRecord, 0, len(routes))
	for _, route := range routes {
		records = append(records, route.Record())
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/v1/routes/:id
func (rc *RoutesController) GetRoute(c *gin.Context) {
	route, ok := rc.store.Get(c.Param("id"))
	if !ok {
		respondNotFound(c, "Route")
		return
	}
	c.JSON(http.StatusOK, route.Record())
}

// PUT /api/v1/routes/:id
func (rc *RoutesController) UpdateRoute(c *gin.Context) {
	id := c.Param("id")
	if _, ok := rc.store.Get(id); !ok {
		respondNotFound(c, "Route")
		return
	}

	var req services.UpdateRouteRequest
	if !bindJSON(c, &req) {
		return
	}

	route, err := rc.store.Update(id, req)
	if err != nil {
		respondServiceError(c, err, "Route")
		return
	}
	c.JSON(http.StatusOK, route.Record())
}

// DELETE /api/v1/routes/:id
func (rc *RoutesController) DeleteRoute(c *gin.Context) {
	id := c.Param("id")
	if _, ok := rc.store.Get(id); !ok {
		respondNotFound(c, "Route")
		return
	}
	rc.store.Delete(id)
	respondSuccess(c, "Route deleted successfully")
}
