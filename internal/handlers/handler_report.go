package handlers

import (
	"net/http"

	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the periodic CSV export.
type ReportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService portssvc.ReportSvcFacade) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExpenseReport godoc
// @Summary Download the expense report for a period
// @Description All expenses for (month, year) as a CSV file
// @Tags reports
// @Produce text/csv
// @Security BearerAuth
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {string} string "CSV content"
// @Router /reports/expenses [get]
func (h *ReportHandler) ExpenseReport(c *gin.Context) {
	month, year, ok := periodFromQuery(c)
	if !ok {
		return
	}

	data, filename, err := h.reportService.ExpenseReportCSV(c.Request.Context(), month, year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
