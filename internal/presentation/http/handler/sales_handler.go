package handler

import (
	"time"

	"github.com/aziyanck/ita-backoffice/internal/application/service"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/request"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SalesHandler handles sales invoice HTTP requests
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// Create records a sales invoice and its stock decrements. The route
// sits behind the idempotency middleware, so duplicate submissions
// replay instead of decrementing twice.
// @Summary Create sales invoice
// @Tags sales
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body request.CreateSaleRequest true "Sales invoice"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /sales [post]
func (h *SalesHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Date must be YYYY-MM-DD")
		return
	}

	items := make([]service.SellItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		componentID, err := uuid.Parse(item.ComponentID)
		if err != nil {
			response.BadRequest(c, "Invalid component ID")
			return
		}
		items = append(items, service.SellItemInput{
			ComponentID: componentID,
			Qty:         item.Qty,
			Price:       item.Price,
			DiscountPct: item.DiscountPct,
		})
	}

	invoice, err := h.salesService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		InvoiceNo: req.InvoiceNo,
		Date:      date,
		Customer:  req.Customer,
		URL:       req.URL,
		Items:     items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sales invoice recorded", invoice)
}

// List returns one summary row per sales invoice
// @Summary List sales invoices
// @Tags sales
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	summaries, err := h.salesService.ListSummaries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales invoices retrieved", summaries)
}

// Get returns a sales invoice with its line items
// @Summary Get sales invoice
// @Tags sales
// @Produce json
// @Param invoice_no path string true "Invoice number"
// @Success 200 {object} response.APIResponse
// @Router /sales/{invoice_no} [get]
func (h *SalesHandler) Get(c *gin.Context) {
	invoice, err := h.salesService.GetInvoice(c.Request.Context(), c.Param("invoice_no"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales invoice retrieved", invoice)
}

// LatestInvoiceNo returns the most recent sales invoice number
// @Summary Latest sales invoice number
// @Tags sales
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /sales/latest-invoice-no [get]
func (h *SalesHandler) LatestInvoiceNo(c *gin.Context) {
	invoiceNo, err := h.salesService.LatestInvoiceNo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Latest sales invoice number retrieved", gin.H{"invoice_no": invoiceNo})
}
