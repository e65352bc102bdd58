package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportingHandler serves the dashboard and the report projections.
type reportingHandler struct {
	dashboardService portssvc.DashboardSvcFacade
	reportService    portssvc.ReportSvcFacade
}

func newReportingHandler(ds portssvc.DashboardSvcFacade, rs portssvc.ReportSvcFacade) *reportingHandler {
	return &reportingHandler{
		dashboardService: ds,
		reportService:    rs,
	}
}

func registerReportingRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade, reportService portssvc.ReportSvcFacade) {
	h := newReportingHandler(dashboardService, reportService)

	rg.GET("/dashboard/summary", h.getDashboardSummary)

	reports := rg.Group("/reports")
	{
		reports.GET("/transactions", h.getTransactionReport)
		reports.GET("/transactions.xlsx", h.exportTransactionReport)
	}
}

// getDashboardSummary godoc
// @Summary Dashboard summary
// @Description Total balance, this month's income and expense and a trailing six-month series, all over CONFIRMED transactions
// @Tags reports
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} domain.DashboardSummary
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/dashboard/summary [get]
func (h *reportingHandler) getDashboardSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context(), tenantID(c))
	if err != nil {
		respondWithError(c, err, "Failed to build dashboard summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getTransactionReport godoc
// @Summary Transaction report
// @Description Joined transaction rows for the filter, with confirmed totals
// @Tags reports
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   type query string false "INCOME or EXPENSE"
// @Param   status query string false "PENDING or CONFIRMED"
// @Success 200 {object} dto.TransactionReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/reports/transactions [get]
func (h *reportingHandler) getTransactionReport(c *gin.Context) {
	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.GetTransactionData(c.Request.Context(), tenantID(c), filter)
	if err != nil {
		respondWithError(c, err, "Failed to build transaction report")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionReportResponse(rows))
}

// exportTransactionReport godoc
// @Summary Transaction report as a spreadsheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   tenant_id path string true "Tenant ID"
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   type query string false "INCOME or EXPENSE"
// @Param   status query string false "PENDING or CONFIRMED"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tenants/{tenant_id}/reports/transactions.xlsx [get]
func (h *reportingHandler) exportTransactionReport(c *gin.Context) {
	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}

	// Render fully before writing so a failure can still be answered with JSON.
	var buf bytes.Buffer
	if err := h.reportService.ExportTransactionsXLSX(c.Request.Context(), tenantID(c), filter, &buf); err != nil {
		respondWithError(c, err, "Failed to export transactions")
		return
	}

	filename := fmt.Sprintf("transactions-%s.xlsx", time.Now().Format("20060102"))
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction report exported", slog.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func bindReportFilter(c *gin.Context) (domain.ReportFilter, bool) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return domain.ReportFilter{}, false
	}

	var filter domain.ReportFilter
	var err error
	if filter.StartDate, err = dto.ParseOptionalDate(params.StartDate); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return filter, false
	}
	if filter.EndDate, err = dto.ParseOptionalDate(params.EndDate); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return filter, false
	}
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		filter.Type = &t
	}
	if params.Status != "" {
		s := domain.TransactionStatus(params.Status)
		filter.Status = &s
	}
	return filter, true
}
