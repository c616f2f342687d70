package handler

import (
	"github.com/aziyanck/ita-backoffice/internal/application/service"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/request"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComponentHandler handles inventory component HTTP requests
type ComponentHandler struct {
	componentService *service.ComponentService
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService *service.ComponentService) *ComponentHandler {
	return &ComponentHandler{componentService: componentService}
}

// List returns all components
// @Summary List components
// @Tags components
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /components [get]
func (h *ComponentHandler) List(c *gin.Context) {
	components, err := h.componentService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Components retrieved", components)
}

// Get returns a single component
// @Summary Get component
// @Tags components
// @Produce json
// @Param id path string true "Component ID"
// @Success 200 {object} response.APIResponse
// @Router /components/{id} [get]
func (h *ComponentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid component ID")
		return
	}

	component, err := h.componentService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Component retrieved", component)
}

// ListCategories returns all component categories
// @Summary List categories
// @Tags components
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /categories [get]
func (h *ComponentHandler) ListCategories(c *gin.Context) {
	categories, err := h.componentService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved", categories)
}

// CreateCategory creates a component category
// @Summary Create category
// @Tags components
// @Accept json
// @Produce json
// @Param request body request.CreateCategoryRequest true "Category"
// @Success 201 {object} response.APIResponse
// @Router /categories [post]
func (h *ComponentHandler) CreateCategory(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.componentService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created", category)
}
