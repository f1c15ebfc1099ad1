package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	portssvc "github.com/pverdier/creance_manager_app/internal/core/ports/services"
	"github.com/pverdier/creance_manager_app/internal/dto"
	"github.com/pverdier/creance_manager_app/internal/middleware"
)

// reportingHandler handles the receivables reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/outstanding", h.outstandingReport)
		reports.GET("/dso", h.dsoReport)
	}
}

// outstandingReport godoc
// @Summary Outstanding receivables report
// @Description Lists every client with a non-zero balance, with overdue invoice counts and the grand total
// @Tags reports
// @Produce json
// @Success 200 {object} dto.OutstandingReportResponse
// @Router /reports/outstanding [get]
// @Security BearerAuth
func (h *reportingHandler) outstandingReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	now := time.Now()

	rows, err := h.reportingService.OutstandingSummary(c.Request.Context(), now)
	if err != nil {
		logger.Error("Failed to build outstanding report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build outstanding report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOutstandingReportResponse(rows, now))
}

// dsoReport godoc
// @Summary Days-sales-outstanding report
// @Description Computes the average days from issue to full payment over invoices paid inside the window
// @Tags reports
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.DSOReportResponse
// @Failure 400 {object} map[string]string "Missing or inverted window"
// @Router /reports/dso [get]
// @Security BearerAuth
func (h *reportingHandler) dsoReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.DSOReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.DSO(c.Request.Context(), params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute DSO report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute DSO report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDSOReportResponse(report))
}
