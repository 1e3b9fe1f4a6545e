package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campora/scs-api/internal/service"
	"github.com/campora/scs-api/pkg/response"
)

// DashboardHandler handles the role-specific dashboard aggregations.
type DashboardHandler struct {
	service *service.DashboardService
	exports *service.ExportService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(svc *service.DashboardService, exports *service.ExportService) *DashboardHandler {
	return &DashboardHandler{service: svc, exports: exports}
}

// AdminStats godoc
// @Summary Platform-wide statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin-dashboard/statices [get]
func (h *DashboardHandler) AdminStats(c *gin.Context) {
	stats, err := h.service.AdminStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, stats)
}

// InstructorStats godoc
// @Summary One instructor's statistics
// @Tags Dashboard
// @Produce json
// @Param email path string true "Instructor email"
// @Success 200 {object} response.Envelope
// @Router /instructor-dashboard/statices/{email} [get]
func (h *DashboardHandler) InstructorStats(c *gin.Context) {
	stats, err := h.service.InstructorStats(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, stats)
}

// StudentStats godoc
// @Summary One student's statistics
// @Tags Dashboard
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {object} response.Envelope
// @Router /student-dashboard/statices/{email} [get]
func (h *DashboardHandler) StudentStats(c *gin.Context) {
	stats, err := h.service.StudentStats(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, stats)
}

// Report godoc
// @Summary Payments report
// @Description Streams the payments report as PDF, or CSV with ?format=csv
// @Tags Dashboard
// @Produce application/pdf
// @Param format query string false "pdf or csv"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /admin-dashboard/report [get]
func (h *DashboardHandler) Report(c *gin.Context) {
	format := c.DefaultQuery("format", "pdf")
	data, contentType, err := h.exports.PaymentsReport(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payments-report.`+format+`"`)
	c.Data(http.StatusOK, contentType, data)
}
