package handler

import (
	"time"

	"github.com/aziyanck/ita-backoffice/internal/application/service"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/request"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuotationHandler handles quotation HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// Generate builds a quotation and submits it to the PDF job queue
// @Summary Generate quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Param request body request.GenerateQuotationRequest true "Quotation"
// @Success 201 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /quotations [post]
func (h *QuotationHandler) Generate(c *gin.Context) {
	var req request.GenerateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(c, "Date must be YYYY-MM-DD")
			return
		}
	}

	items := make([]service.QuotationItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.QuotationItemInput{
			Name:      item.Name,
			HSN:       item.HSN,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
		})
	}

	quotation, err := h.quotationService.Generate(c.Request.Context(), &service.GenerateQuotationInput{
		Date:               date,
		RecipientName:      req.CustomerName,
		RecipientAddress:   req.Place,
		Email:              req.Email,
		Items:              items,
		InstallationCharge: req.InstallationCharge,
		SelectedTerms:      req.SelectedTerms,
		CustomTerms:        req.CustomTerms,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation generated", quotation)
}

// List returns stored quotations
// @Summary List quotations
// @Tags quotations
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	quotations, err := h.quotationService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quotations retrieved", quotations)
}

// Get returns a stored quotation
// @Summary Get quotation
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quotation retrieved", quotation)
}

// Terms returns the default quotation terms the form offers
// @Summary Default quotation terms
// @Tags quotations
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /quotations/terms [get]
func (h *QuotationHandler) Terms(c *gin.Context) {
	response.OK(c, "Default terms retrieved", service.DefaultTerms)
}
