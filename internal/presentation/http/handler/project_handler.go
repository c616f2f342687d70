package handler

import (
	"strconv"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/application/service"
	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	"github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/request"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/response"
	"github.com/aziyanck/ita-backoffice/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create handles a batch project create
// @Summary Create projects
// @Description Create a batch of projects under one status
// @Tags projects
// @Accept json
// @Produce json
// @Param request body request.CreateProjectsRequest true "Project rows"
// @Success 201 {object} response.APIResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req request.CreateProjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rows := make([]service.ProjectRowInput, 0, len(req.Projects))
	for _, p := range req.Projects {
		date, err := parseDate(p.ProjectDate)
		if err != nil {
			response.BadRequest(c, "Project date must be YYYY-MM-DD")
			return
		}
		rows = append(rows, service.ProjectRowInput{
			ClientName:       p.ClientName,
			ClientPhone:      p.ClientPhone,
			ProjectName:      p.ProjectName,
			Location:         p.Location,
			ProjectDate:      date,
			InvoiceNo:        p.InvoiceNo,
			FinalValue:       p.FinalValue,
			MaterialExpenses: p.MaterialExpenses,
			LabourCost:       p.LabourCost,
			TACost:           p.TACost,
		})
	}

	projects, err := h.projectService.CreateBatch(c.Request.Context(), rows, enum.ProjectStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Projects created", projects)
}

// List returns projects with optional status and date-range filters
// @Summary List projects
// @Tags projects
// @Produce json
// @Param status query string false "Status filter"
// @Param date_from query string false "Start date (YYYY-MM-DD)"
// @Param date_to query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} response.APIResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	params, err := projectFilterFromQuery(c)
	if err != nil {
		response.BadRequest(c, "Dates must be YYYY-MM-DD")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.projectService.List(c.Request.Context(), params, &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Projects retrieved", result)
}

func projectFilterFromQuery(c *gin.Context) (*repository.ProjectFilterParams, error) {
	params := &repository.ProjectFilterParams{Status: c.Query("status")}

	from, err := parseDate(c.Query("date_from"))
	if err != nil {
		return nil, err
	}
	to, err := parseDate(c.Query("date_to"))
	if err != nil {
		return nil, err
	}
	params.DateFrom = from
	params.DateTo = to
	return params, nil
}

// Get returns a single project
// @Summary Get project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.APIResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project retrieved", project)
}

// Update edits a project
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body request.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	var req request.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateProjectInput{
		ProjectName:      req.ProjectName,
		Location:         req.Location,
		InvoiceNo:        req.InvoiceNo,
		FinalValue:       req.FinalValue,
		MaterialExpenses: req.MaterialExpenses,
		LabourCost:       req.LabourCost,
		TACost:           req.TACost,
	}
	if req.ProjectDate != nil {
		date, err := parseDate(*req.ProjectDate)
		if err != nil {
			response.BadRequest(c, "Project date must be YYYY-MM-DD")
			return
		}
		input.ProjectDate = date
	}
	if req.Status != nil {
		status := enum.ProjectStatus(*req.Status)
		input.Status = &status
	}

	project, err := h.projectService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project updated", project)
}

// Delete removes a project
// @Summary Delete project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.APIResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project deleted", nil)
}
