package handlers

import (
	"net/http"

	"fitclub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles the dashboard and the Excel export endpoints.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard handles GET /api/v1/dashboard.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	summary, err := h.reportService.GetDashboardSummary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportPaymentsDay handles POST /api/v1/reports/payments/day?date=yyyy-mm-dd.
func (h *ReportHandler) ExportPaymentsDay(c *gin.Context) {
	path, err := h.reportService.ExportPaymentsDay(c.Query("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}

// ExportPaymentsMonth handles POST /api/v1/reports/payments/month?month=yyyy-mm.
func (h *ReportHandler) ExportPaymentsMonth(c *gin.Context) {
	path, err := h.reportService.ExportPaymentsMonth(c.Query("month"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}

// ExportVisitsDay handles POST /api/v1/reports/visits/day?date=yyyy-mm-dd.
func (h *ReportHandler) ExportVisitsDay(c *gin.Context) {
	path, err := h.reportService.ExportVisitsDay(c.Query("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}
