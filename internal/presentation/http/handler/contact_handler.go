package handler

import (
	"github.com/aziyanck/ita-backoffice/internal/application/service"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/request"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles website contact form HTTP requests
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit stores a contact submission and notifies the admin address.
// Public, no auth.
// @Summary Submit contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body request.ContactRequest true "Submission"
// @Success 201 {object} response.APIResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	submission, err := h.contactService.Submit(c.Request.Context(), &service.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Submission received", submission)
}

// List returns stored contact submissions, newest first
// @Summary List contact submissions
// @Tags contact
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /contact [get]
func (h *ContactHandler) List(c *gin.Context) {
	submissions, err := h.contactService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Submissions retrieved", submissions)
}
