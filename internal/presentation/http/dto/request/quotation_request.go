package request

// QuotationItemRequest is one line on a quotation request
type QuotationItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	HSN       string  `json:"hsn" binding:"required"`
	Qty       float64 `json:"qty" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"required,gte=0"`
}

// GenerateQuotationRequest represents a quotation generation request
type GenerateQuotationRequest struct {
	Date               string                 `json:"date"`
	CustomerName       string                 `json:"customer_name" binding:"required"`
	Place              string                 `json:"place" binding:"required"`
	Email              string                 `json:"email" binding:"omitempty,email"`
	Items              []QuotationItemRequest `json:"items" binding:"required,min=1,dive"`
	InstallationCharge float64                `json:"installation_charge" binding:"gte=0"`
	SelectedTerms      []int                  `json:"selected_terms"`
	CustomTerms        []string               `json:"custom_terms"`
}
