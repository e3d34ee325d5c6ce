package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/fleet/internal/entities"
	"github.com/mrlokans/fleet/internal/services"
)

type BusesController struct {
	buses   BusStore
	users   UserStore
	reports ReportStore
	routes  RouteStore
}

func NewBusesController(buses BusStore, users UserStore, reports ReportStore, routes RouteStore) *BusesController {
	return &BusesController{buses: buses, users: users, reports: reports, routes: routes}
}

type busListResponse struct {
	Buses []entities.BusRecord `json:"buses"`
}

// CreateBus registers a bus. The owner is optional; every listed report
// must exist.
// POST /api/v1/buses
func (bc *BusesController) CreateBus(c *gin.Context) {
	var req services.CreateBusRequest
	if !bindJSON(c, &req) {
		return
	}
	if !bc.checkReferences(c, req.OwnerID, req.Reports) {
		return
	}

	bus, err := bc.buses.Create(req)
	if err != nil {
		respondServiceError(c, err, "Bus")
		return
	}
	respondCreated(c, bus.Record())
}

// GET /api/v1/buses
func (bc *BusesController) ListBuses(c *gin.Context) {
	buses := bc.buses.GetAll()
	resp := busListResponse{Buses: make([]entities.BusRecord, 0, len(buses))}
	for _, bus := range buses {
		resp.Buses = append(resp.Buses, bus.Record())
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/v1/buses/:id
func (bc *BusesController) GetBus(c *gin.Context) {
	bus, ok := bc.buses.Get(c.Param("id"))
	if !ok {
		respondNotFound(c, "Bus")
		return
	}
	c.JSON(http.StatusOK, bus.Record())
}

// UpdateBus changes the fields present in the body. Owner and reports,
// when given, must exist.
// PUT /api/v1/buses/:id
func (bc *BusesController) UpdateBus(c *gin.Context) {
	id := c.Param("id")
	if _, ok := bc.buses.Get(id); !ok {
		respondNotFound(c, "Bus")
		return
	}

	var req entities.BusUpdate
	if !bindJSON(c, &req) {
		return
	}
	var reportIDs []string
	if req.ReportIDs != nil {
		reportIDs = *req.ReportIDs
	}
	if !bc.checkReferences(c, req.OwnerID, reportIDs) {
		return
	}

	bus, err := bc.buses.Update(id, req)
	if err != nil {
		respondServiceError(c, err, "Bus")
		return
	}
	c.JSON(http.StatusOK, bus.Record())
}

// DELETE /api/v1/buses/:id
func (bc *BusesController) DeleteBus(c *gin.Context) {
	id := c.Param("id")
	if _, ok := bc.buses.Get(id); !ok {
		respondNotFound(c, "Bus")
		return
	}
	bc.buses.Delete(id)
	respondSuccess(c, "Bus deleted successfully")
}

// ListBusRoutes returns the routes linked to one bus.
// GET /api/v1/buses/:id/routes
func (bc *BusesController) ListBusRoutes(c *gin.Context) {
	id := c.Param("id")
	if _, ok := bc.buses.Get(id); !ok {
		respondNotFound(c, "Bus")
		return
	}

	routes := bc.routes.GetByBus(id)
	records := make([]entities.RouteRecord, 0, len(routes))
	for _, route := range routes {
		records = append(records, route.Record())
	}
	c.JSON(http.StatusOK, records)
}

// checkReferences rejects unknown owner or report ids with a 400 before
// the facade is called.
func (bc *BusesController) checkReferences(c *gin.Context, ownerID *string, reportIDs []string) bool {
	if ownerID != nil {
		if _, ok := bc.users.Get(*ownerID); !ok {
			respondBadRequest(c, fmt.Sprintf("Owner with ID %s does not exist", *ownerID))
			return false
		}
	}
	for _, reportID := range reportIDs {
		if _, ok := bc.reports.Get(reportID); !ok {
			respondBadRequest(c, fmt.Sprintf("Report with ID %s does not exist", reportID))
			return false
		}
	}
	return true
}
