package handler

import (
	"fmt"
	"net/http"

	"daes-settlement-engine/internal/adapter/http/dto"
	"daes-settlement-engine/internal/adapter/http/middleware"
	"daes-settlement-engine/internal/core/ports"
	"daes-settlement-engine/pkg/apperror"
	"daes-settlement-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles daily settlement report endpoints.
type ReportHandler struct {
	reportSvc ports.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportSvc ports.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Daily handles GET /api/v1/reports/daily?date=YYYY-MM-DD&format=json|csv.
func (h *ReportHandler) Daily(c *gin.Context) {
	var query dto.DailyReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	format := ports.ReportFormat(query.Format)
	if format == "" {
		format = ports.ReportFormatJSON
	}

	report, err := h.reportSvc.GenerateDailyReport(c.Request.Context(), ports.DailyReportRequest{
		Date:        query.Date,
		Format:      format,
		RequestedBy: middleware.Username(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if format == ports.ReportFormatCSV {
		csv, err := h.reportSvc.RenderCSV(report)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="settlement-report-%s.csv"`, report.Date))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
		return
	}

	response.OK(c, report)
}
