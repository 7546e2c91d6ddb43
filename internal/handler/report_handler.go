package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/shop-admin-service/internal/export"
	"github.com/ridwanfathin/shop-admin-service/internal/metrics"
	"github.com/ridwanfathin/shop-admin-service/internal/model"
	"github.com/ridwanfathin/shop-admin-service/internal/reporting"
	"github.com/ridwanfathin/shop-admin-service/internal/service"
)

// ReportHandler handles HTTP requests for the admin reports
type ReportHandler struct {
	reportService service.ReportService
	now           func() time.Time
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		now:           time.Now,
	}
}

// GetDashboard handles the GET /v1/dashboard endpoint
// @Summary Get the admin dashboard
// @Description Invoice counts per status and the monthly revenue chart of a year
// @Tags dashboard
// @Produce json
// @Param year query int false "Year (default: current year)"
// @Success 200 {object} domain.Dashboard "Dashboard"
// @Failure 400 {object} model.ErrorResponse "Invalid parameters"
// @Failure 503 {object} model.ErrorResponse "Database unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	var params model.YearParams
	if !bindQuery(c, &params) {
		return
	}

	dashboard, err := h.reportService.Dashboard(c.Request.Context(), params.Year)
	if err != nil {
		respondReportError(c, err)
		return
	}
	respondOK(c, dashboard)
}

// GetStatusCounts handles the GET /v1/dashboard/status-counts endpoint
// @Summary Count invoices per status
// @Description Every status is present, zero when there are no invoices in it
// @Tags dashboard
// @Produce json
// @Param customer_id query int false "Only count invoices of this customer"
// @Success 200 {object} domain.StatusCounts "Status counts"
// @Failure 400 {object} model.ErrorResponse "Invalid parameters"
// @Failure 503 {object} model.ErrorResponse "Database unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard/status-counts [get]
func (h *ReportHandler) GetStatusCounts(c *gin.Context) {
	var params model.StatusCountParams
	if !bindQuery(c, &params) {
		return
	}

	counts, err := h.reportService.StatusCounts(c.Request.Context(), params.ToQuery())
	if err != nil {
		respondReportError(c, err)
		return
	}
	respondOK(c, counts)
}

// GetRevenue handles the GET /v1/dashboard/revenue endpoint
// @Summary Get the revenue series
// @Description Success invoice revenue per month or per day; empty buckets are omitted
// @Tags dashboard
// @Produce json
// @Param year query int false "Year (default: current year)"
// @Param granularity query string false "month or day (default: month)"
// @Param start_date query string false "Start date (YYYY-MM-DD), requires end_date"
// @Param end_date query string false "End date (YYYY-MM-DD), requires start_date"
// @Success 200 {array} domain.SeriesBucket "Revenue buckets"
// @Failure 400 {object} model.ErrorResponse "Invalid parameters"
// @Failure 503 {object} model.ErrorResponse "Database unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard/revenue [get]
func (h *ReportHandler) GetRevenue(c *gin.Context) {
	var params model.RevenueParams
	if !bindQuery(c, &params) {
		return
	}
	query, details := params.ToQuery()
	if !checkDetails(c, details) {
		return
	}

	series, err := h.reportService.RevenueSeries(c.Request.Context(), query)
	if err != nil {
		respondReportError(c, err)
		return
	}
	respondOK(c, series)
}

// GetTopProducts handles the GET /v1/dashboard/top-products endpoint
// @Summary Get best sellers
// @Description Products or categories ranked by quantity sold in success invoices
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum entries (default: 5)"
// @Param group_by query string false "product or category (default: product)"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} domain.RankingEntry "Ranking"
// @Failure 400 {object} model.ErrorResponse "Invalid parameters"
// @Failure 503 {object} model.ErrorResponse "Database unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard/top-products [get]
func (h *ReportHandler) GetTopProducts(c *gin.Context) {
	var params model.TopProductsParams
	if !bindQuery(c, &params) {
		return
	}
	query, details := params.ToQuery()
	if !checkDetails(c, details) {
		return
	}

	entries, err := h.reportService.TopProducts(c.Request.Context(), query)
	if err != nil {
		respondReportError(c, err)
		return
	}
	respondOK(c, entries)
}

// GetCustomerAcquisition handles the GET /v1/dashboard/customer-acquisition endpoint
// @Summary Get customer acquisition and retention
// @Description Monthly signups and monthly buyers returning more than 30 days after signup
// @Tags dashboard
// @Produce json
// @Param year query int false "Year (default: current year)"
// @Success 200 {object} domain.CohortReport "Cohorts"
// @Failure 400 {object} model.ErrorResponse "Invalid parameters"
// @Failure 503 {object} model.ErrorResponse "Database unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard/customer-acquisition [get]
func (h *ReportHandler) GetCustomerAcquisition(c *gin.Context) {
	var params model.YearParams
	if !bindQuery(c, &params) {
		return
	}

	report, err := h.reportService.Cohort(c.Request.Context(), reporting.CohortQuery{Year: params.Year})
	if err != nil {
		respondReportError(c, err)
		return
	}
	respondOK(c, report)
}

// GetSalesReport handles the GET /v1/dashboard/sales-report endpoint
// @Summary Get the sales report
// @Description Orders, revenue and average order value with daily and category breakdowns
// @Tags dashboard
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD, default: first day of this month)"
// @Param end_date query string false "End date (YYYY-MM-DD, default: today)"
// @Success 200 {object} domain.SalesReport "Sales report"
// @Failure 400 {object} model.ErrorResponse "Invalid parameters"
// @Failure 503 {object} model.ErrorResponse "Database unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard/sales-report [get]
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	var params model.SalesReportParams
	if !bindQuery(c, &params) {
		return
	}
	query, details := params.ToQuery()
	if !checkDetails(c, details) {
		return
	}

	report, err := h.reportService.RangeSummary(c.Request.Context(), query)
	if err != nil {
		respondReportError(c, err)
		return
	}
	respondOK(c, report)
}

// ExportSalesReport handles the GET /v1/dashboard/sales-report/export endpoint
// @Summary Download the sales report
// @Description Renders the sales report as an XLSX workbook or a PDF document
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Param format query string false "xlsx or pdf (default: xlsx)"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file "Report document"
// @Failure 400 {object} model.ErrorResponse "Invalid parameters"
// @Failure 503 {object} model.ErrorResponse "Database unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard/sales-report/export [get]
func (h *ReportHandler) ExportSalesReport(c *gin.Context) {
	var params model.ExportParams
	if !bindQuery(c, &params) {
		return
	}
	format, err := export.ParseFormat(params.Format)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, model.ErrorDetail{Field: "format", Message: "expected xlsx or pdf"})
		return
	}
	query, details := params.ToQuery()
	if !checkDetails(c, details) {
		return
	}

	report, err := h.reportService.RangeSummary(c.Request.Context(), query)
	if err != nil {
		respondReportError(c, err)
		return
	}

	data, err := export.BuildSalesReport(format, report, h.now())
	metrics.IncExport(string(format), err)
	if err != nil {
		logError(c, "failed_to_export_report", err)
		respondInternalServerError(c, ErrExportFailed)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName(report)))
	c.Data(http.StatusOK, format.ContentType(), data)
}

// GetDetailedStats handles the GET /v1/dashboard/stats endpoint
// @Summary Get store-wide statistics
// @Description Revenue, entity counts, latest transactions and best sellers
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DetailedStats "Statistics"
// @Failure 503 {object} model.ErrorResponse "Database unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard/stats [get]
func (h *ReportHandler) GetDetailedStats(c *gin.Context) {
	stats, err := h.reportService.DetailedStats(c.Request.Context())
	if err != nil {
		respondReportError(c, err)
		return
	}
	respondOK(c, stats)
}

// GetInvoiceStatistics handles the GET /v1/invoices/statistics endpoint
// @Summary Get invoice statistics
// @Description All-time invoice totals and a monthly breakdown of one year
// @Tags invoices
// @Produce json
// @Param year query int false "Year of the monthly breakdown (default: current year)"
// @Success 200 {object} domain.InvoiceStatistics "Invoice statistics"
// @Failure 400 {object} model.ErrorResponse "Invalid parameters"
// @Failure 503 {object} model.ErrorResponse "Database unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/statistics [get]
func (h *ReportHandler) GetInvoiceStatistics(c *gin.Context) {
	var params model.YearParams
	if !bindQuery(c, &params) {
		return
	}

	stats, err := h.reportService.InvoiceStatistics(c.Request.Context(), params.Year)
	if err != nil {
		respondReportError(c, err)
		return
	}
	respondOK(c, stats)
}

// GetCustomerStatistics handles the GET /v1/customers/statistics endpoint
// @Summary Get customer statistics
// @Description Customer totals, signups this month and top spenders
// @Tags customers
// @Produce json
// @Success 200 {object} domain.CustomerStatistics "Customer statistics"
// @Failure 503 {object} model.ErrorResponse "Database unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/customers/statistics [get]
func (h *ReportHandler) GetCustomerStatistics(c *gin.Context) {
	stats, err := h.reportService.CustomerStatistics(c.Request.Context())
	if err != nil {
		respondReportError(c, err)
		return
	}
	respondOK(c, stats)
}

// GetCategoryProductCounts handles the GET /v1/categories/product-counts endpoint
// @Summary Count products per category
// @Tags categories
// @Produce json
// @Success 200 {array} domain.CategoryProductCount "Categories with product counts"
// @Failure 503 {object} model.ErrorResponse "Database unavailable"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/categories/product-counts [get]
func (h *ReportHandler) GetCategoryProductCounts(c *gin.Context) {
	counts, err := h.reportService.CategoryProductCounts(c.Request.Context())
	if err != nil {
		respondReportError(c, err)
		return
	}
	respondOK(c, counts)
}

// RegisterRoutes registers the API routes for the report handler
func (h *ReportHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/v1")

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("", h.GetDashboard)
		dashboard.GET("/status-counts", h.GetStatusCounts)
		dashboard.GET("/revenue", h.GetRevenue)
		dashboard.GET("/top-products", h.GetTopProducts)
		dashboard.GET("/customer-acquisition", h.GetCustomerAcquisition)
		dashboard.GET("/sales-report", h.GetSalesReport)
		dashboard.GET("/sales-report/export", h.ExportSalesReport)
		dashboard.GET("/stats", h.GetDetailedStats)
	}

	api.GET("/invoices/statistics", h.GetInvoiceStatistics)
	api.GET("/customers/statistics", h.GetCustomerStatistics)
	api.GET("/categories/product-counts", h.GetCategoryProductCounts)
}
