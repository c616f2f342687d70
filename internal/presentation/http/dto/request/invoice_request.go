package request

// PurchaseItemRequest is one line on an incoming purchase invoice
type PurchaseItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Brand       string  `json:"brand"`
	HSN         string  `json:"hsn"`
	Description string  `json:"description"`
	Qty         int     `json:"qty" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// CreatePurchaseRequest represents a purchase invoice submission
type CreatePurchaseRequest struct {
	InvoiceNo  string                `json:"invoice_no" binding:"required"`
	Date       string                `json:"date" binding:"required"`
	DealerName string                `json:"dealer_name"`
	URL        string                `json:"url"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SellItemRequest is one line on an outgoing sales invoice
type SellItemRequest struct {
	ComponentID string  `json:"component_id" binding:"required,uuid"`
	Qty         int     `json:"qty" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	DiscountPct float64 `json:"discount_pct" binding:"gte=0,lte=100"`
}

// CreateSaleRequest represents a sales invoice submission
type CreateSaleRequest struct {
	InvoiceNo string            `json:"invoice_no" binding:"required"`
	Date      string            `json:"date" binding:"required"`
	Customer  string            `json:"customer"`
	URL       string            `json:"url"`
	Items     []SellItemRequest `json:"items" binding:"required,min=1,dive"`
}
