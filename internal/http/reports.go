package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/fleet/internal/entities"
)

type ReportsController struct {
	store ReportStore
}

func NewReportsController(store ReportStore) *ReportsController {
	return &ReportsController{store: store}
}

type reportRequest struct {
	Comment *string `json:"comment"`
}

// POST /api/v1/reports
func (rc *ReportsController) CreateReport(c *gin.Context) {
	var req reportRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Comment == nil {
		respondBadRequest(c, invalidInputMessage)
		return
	}

	report, err := rc.store.Create(*req.Comment)
	if err != nil {
		respondServiceError(c, err, "Report")
		return
	}
	respondCreated(c, report.Record())
}

// GET /api/v1/reports
func (rc *ReportsController) ListReports(c *gin.Context) {
	reports := rc.store.GetAll()
	records := make([]entities.ReportRecord, 0, len(reports))
	for _, report := range reports {
		records = append(records, report.Record())
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/v1/reports/:id
func (rc *ReportsController) GetReport(c *gin.Context) {
	report, ok := rc.store.Get(c.Param("id"))
	if !ok {
		respondNotFound(c, "Report")
		return
	}
	c.JSON(http.StatusOK, report.Record())
}

// UpdateReport replaces the comment, which is required.
// PUT /api/v1/reports/:id
func (rc *ReportsController) UpdateReport(c *gin.Context) {
	var req reportRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Comment == nil {
		respondBadRequest(c, invalidInputMessage)
		return
	}

	report, err := rc.store.Update(c.Param("id"), entities.ReportUpdate{Comment: req.Comment})
	if err != nil {
		respondServiceError(c, err, "Report")
		return
	}
	c.JSON(http.StatusOK, report.Record())
}

// DELETE /api/v1/reports/:id
func (rc *ReportsController) DeleteReport(c *gin.Context) {
	if _, ok := rc.store.Delete(c.Param("id")); !ok {
		respondNotFound(c, "Report")
		return
	}
	respondSuccess(c, "Report deleted")
}
