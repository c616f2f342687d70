package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/application/service"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/response"
	"github.com/aziyanck/ita-backoffice/pkg/finance"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams xlsx workbooks
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Projects streams the projects workbook
// @Summary Export projects
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Status filter"
// @Param date_from query string false "Start date (YYYY-MM-DD)"
// @Param date_to query string false "End date (YYYY-MM-DD)"
// @Success 200
// @Router /exports/projects [get]
func (h *ExportHandler) Projects(c *gin.Context) {
	params, err := projectFilterFromQuery(c)
	if err != nil {
		response.BadRequest(c, "Dates must be YYYY-MM-DD")
		return
	}

	f, err := h.exportService.ExportProjects(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := "projects-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// Headers are already sent, nothing sane left to return
		c.Error(err)
	}
}

// FYProfit streams the financial-year monthly profit workbook
// @Summary Export financial-year profit
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_year query int false "FY start year (April)"
// @Success 200
// @Router /exports/fy-profit [get]
func (h *ExportHandler) FYProfit(c *gin.Context) {
	startYear := finance.FYStartYear(time.Now())
	if raw := c.Query("start_year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "start_year must be a number")
			return
		}
		startYear = parsed
	}

	f, err := h.exportService.ExportFYProfit(c.Request.Context(), startYear)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("fy-%d-%d-profit.xlsx", startYear, startYear+1)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		c.Error(err)
	}
}
