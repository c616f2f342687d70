package handler

import (
	"strconv"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/application/service"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/response"
	"github.com/aziyanck/ita-backoffice/pkg/finance"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard aggregation HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// StatusCounts returns project counts per status
// @Summary Project status counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /dashboard/status-counts [get]
func (h *DashboardHandler) StatusCounts(c *gin.Context) {
	counts, err := h.dashboardService.GetStatusCounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Status counts retrieved", counts)
}

// MonthlyProfit returns completed-project profit per calendar month
// @Summary Monthly profit
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /dashboard/monthly-profit [get]
func (h *DashboardHandler) MonthlyProfit(c *gin.Context) {
	points, err := h.dashboardService.GetMonthlyProfit(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Monthly profit retrieved", points)
}

// MonthOverMonth compares this month with the previous one
// @Summary Month-over-month comparison
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /dashboard/month-over-month [get]
func (h *DashboardHandler) MonthOverMonth(c *gin.Context) {
	comparison, err := h.dashboardService.GetMonthOverMonth(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Month-over-month comparison retrieved", comparison)
}

// FYProfit returns profit sums for the current and previous financial
// years
// @Summary Financial-year profit sums
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /dashboard/fy-profit [get]
func (h *DashboardHandler) FYProfit(c *gin.Context) {
	sums, err := h.dashboardService.GetFYProfitSums(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Financial-year profit retrieved", sums)
}

// FYMonthlySeries returns the Apr..Mar profit series for a financial
// year. Defaults to the FY containing today.
// @Summary Financial-year monthly series
// @Tags dashboard
// @Produce json
// @Param start_year query int false "FY start year (April)"
// @Success 200 {object} response.APIResponse
// @Router /dashboard/fy-monthly [get]
func (h *DashboardHandler) FYMonthlySeries(c *gin.Context) {
	startYear := finance.FYStartYear(time.Now())
	if raw := c.Query("start_year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "start_year must be a number")
			return
		}
		startYear = parsed
	}

	points, err := h.dashboardService.GetFYMonthlySeries(c.Request.Context(), startYear)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Financial-year monthly series retrieved", gin.H{
		"start_year": startYear,
		"months":     points,
	})
}
