package repository

import (
	"context"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
)

// PurchaseSummary is a flattened row for the purchase list view
type PurchaseSummary struct {
	InvoiceNo   string    `json:"invoice_no"`
	Date        time.Time `json:"date"`
	Dealer      string    `json:"dealer"`
	TotalAmount float64   `json:"total_amount"`
}

// SellSummary is a flattened row for the sales list view
type SellSummary struct {
	InvoiceNo   string    `json:"invoice_no"`
	Date        time.Time `json:"date"`
	Customer    string    `json:"customer"`
	TotalAmount float64   `json:"total_amount"`
}

// PurchaseItemFilterParams filters the purchase line-item history
type PurchaseItemFilterParams struct {
	InvoiceNo   string
	ProductName string
	Distributor string
	HSN         string
	DateFrom    *time.Time
	DateTo      *time.Time
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByInvoiceNo returns nil, nil when no invoice of the given type
	// carries the number. Line items, components and dealer are preloaded.
	GetByInvoiceNo(ctx context.Context, invoiceNo string, invoiceType enum.InvoiceType) (*entity.Invoice, error)
	ListPurchaseSummaries(ctx context.Context) ([]PurchaseSummary, error)
	ListSellSummaries(ctx context.Context) ([]SellSummary, error)
	// LatestSellInvoiceNo returns "" when no sales invoice exists yet
	LatestSellInvoiceNo(ctx context.Context) (string, error)
	CreatePurchaseItems(ctx context.Context, items []entity.PurchaseItem) error
	CreateSellItems(ctx context.Context, items []entity.SellItem) error
	// ListPurchaseItems returns purchase line items matching the filter,
	// newest first, with component and dealer preloaded
	ListPurchaseItems(ctx context.Context, params *PurchaseItemFilterParams) ([]entity.PurchaseItem, error)
}
