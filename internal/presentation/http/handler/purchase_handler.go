package handler

import (
	"time"

	"github.com/aziyanck/ita-backoffice/internal/application/service"
	"github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/request"
	"github.com/aziyanck/ita-backoffice/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles purchase invoice HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create records a purchase invoice and its stock increments
// @Summary Create purchase invoice
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body request.CreatePurchaseRequest true "Purchase invoice"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /purchases [post]
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Date must be YYYY-MM-DD")
		return
	}

	items := make([]service.PurchaseItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.PurchaseItemInput{
			Name:        item.Name,
			Brand:       item.Brand,
			HSN:         item.HSN,
			Description: item.Description,
			Qty:         item.Qty,
			Price:       item.Price,
		})
	}

	invoice, err := h.purchaseService.CreatePurchase(c.Request.Context(), &service.CreatePurchaseInput{
		InvoiceNo:  req.InvoiceNo,
		Date:       date,
		DealerName: req.DealerName,
		URL:        req.URL,
		Items:      items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase invoice recorded", invoice)
}

// List returns one summary row per purchase invoice
// @Summary List purchase invoices
// @Tags purchases
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /purchases [get]
func (h *PurchaseHandler) List(c *gin.Context) {
	summaries, err := h.purchaseService.ListSummaries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Purchase invoices retrieved", summaries)
}

// Get returns a purchase invoice with its line items
// @Summary Get purchase invoice
// @Tags purchases
// @Produce json
// @Param invoice_no path string true "Invoice number"
// @Success 200 {object} response.APIResponse
// @Router /purchases/{invoice_no} [get]
func (h *PurchaseHandler) Get(c *gin.Context) {
	invoice, err := h.purchaseService.GetInvoice(c.Request.Context(), c.Param("invoice_no"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Purchase invoice retrieved", invoice)
}

// History returns filtered purchase line items
// @Summary Purchase history
// @Tags purchases
// @Produce json
// @Param invoice_no query string false "Invoice number"
// @Param product query string false "Product name"
// @Param distributor query string false "Dealer name"
// @Param hsn query string false "HSN code"
// @Param date_from query string false "Start date (YYYY-MM-DD)"
// @Param date_to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /purchases/history [get]
func (h *PurchaseHandler) History(c *gin.Context) {
	params := &repository.PurchaseItemFilterParams{
		InvoiceNo:   c.Query("invoice_no"),
		ProductName: c.Query("product"),
		Distributor: c.Query("distributor"),
		HSN:         c.Query("hsn"),
	}

	from, err := parseDate(c.Query("date_from"))
	if err != nil {
		response.BadRequest(c, "Dates must be YYYY-MM-DD")
		return
	}
	to, err := parseDate(c.Query("date_to"))
	if err != nil {
		response.BadRequest(c, "Dates must be YYYY-MM-DD")
		return
	}
	params.DateFrom = from
	params.DateTo = to

	items, err := h.purchaseService.ListHistory(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Purchase history retrieved", items)
}
