package handler

import (
	"fmt"
	"net/http"
	"time"

	reportapp "github.com/finvoice/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles financial reporting endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes. They live under the invoices
// prefix; the static segments take priority over the :id parameter route.
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.GET("/daily_stats", h.Daily)
		invoices.GET("/stats", h.Stats)
		invoices.GET("/invoices-report", h.Export)
	}
}

// Daily returns today's paid income and cost totals
func (h *ReportHandler) Daily(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stats, err := h.reportService.DailyStats(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// Stats returns the trailing-year monthly income and cost series
func (h *ReportHandler) Stats(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stats, err := h.reportService.RollingStats(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// Export streams the paid-invoice report as a CSV attachment
func (h *ReportHandler) Export(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	data, err := h.reportService.ExportCSV(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("invoices_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
