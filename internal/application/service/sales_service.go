package service

import (
	"context"
	"strings"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	"github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/pkg/apperror"
	"github.com/aziyanck/ita-backoffice/pkg/finance"
	"github.com/google/uuid"
)

// SalesService handles sales invoice recording and the stock decrements
// that come with it
type SalesService struct {
	invoiceRepo   repository.InvoiceRepository
	componentRepo repository.ComponentRepository
	txManager     repository.TxManager
}

// NewSalesService creates a new sales service
func NewSalesService(
	invoiceRepo repository.InvoiceRepository,
	componentRepo repository.ComponentRepository,
	txManager repository.TxManager,
) *SalesService {
	return &SalesService{
		invoiceRepo:   invoiceRepo,
		componentRepo: componentRepo,
		txManager:     txManager,
	}
}

// SellItemInput is one line on an outgoing sales invoice
type SellItemInput struct {
	ComponentID uuid.UUID
	Qty         int
	Price       float64
	DiscountPct float64
}

// CreateSaleInput represents an incoming sales invoice
type CreateSaleInput struct {
	InvoiceNo string
	Date      time.Time
	Customer  string
	URL       string
	Items     []SellItemInput
}

// CreateSale records a sales invoice. Stock for every line is
// decremented with a conditional update inside one transaction; if any
// component lacks stock the whole request is rejected with the failing
// component names and nothing is written.
func (s *SalesService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Invoice, error) {
	if input.InvoiceNo == "" {
		return nil, apperror.NewBadRequestError("Invoice number is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("At least one item is required")
	}
	for _, item := range input.Items {
		if item.Qty <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
	}

	existing, err := s.invoiceRepo.GetByInvoiceNo(ctx, input.InvoiceNo, enum.InvoiceTypeSell)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Sales invoice number already recorded")
	}

	// Pre-check stock so the common failure case never opens a
	// transaction. The conditional decrement below still guards
	// against concurrent sales.
	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ComponentID)
	}
	components, err := s.componentRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.Component, len(components))
	for i := range components {
		byID[components[i].ID] = &components[i]
	}

	var insufficient []string
	for _, item := range input.Items {
		component, ok := byID[item.ComponentID]
		if !ok {
			return nil, apperror.NewNotFoundError("Component")
		}
		if component.Qty < item.Qty {
			insufficient = append(insufficient, component.Name)
		}
	}
	if len(insufficient) > 0 {
		return nil, apperror.NewBadRequestError("Insufficient stock for: " + strings.Join(insufficient, ", "))
	}

	var invoice *entity.Invoice
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		var subtotal float64
		items := make([]entity.SellItem, 0, len(input.Items))
		var failed []string

		for _, item := range input.Items {
			ok, err := s.componentRepo.AtomicDecrementQty(ctx, item.ComponentID, item.Qty)
			if err != nil {
				return err
			}
			if !ok {
				failed = append(failed, byID[item.ComponentID].Name)
				continue
			}

			amount := finance.LineAmount(float64(item.Qty), item.Price, item.DiscountPct)
			subtotal += amount
			items = append(items, entity.SellItem{
				InvoiceNo:   input.InvoiceNo,
				CompID:      item.ComponentID,
				Qty:         item.Qty,
				Price:       item.Price,
				DiscountPct: item.DiscountPct,
				Amount:      amount,
			})
		}

		// Returning an error rolls back the decrements already applied
		if len(failed) > 0 {
			return apperror.NewBadRequestError("Insufficient stock for: " + strings.Join(failed, ", "))
		}

		customer := input.Customer
		invoice = &entity.Invoice{
			InvoiceNo:   input.InvoiceNo,
			InvoiceType: enum.InvoiceTypeSell,
			Date:        input.Date,
			TotalAmount: finance.TotalWithSplitGST(subtotal),
			Customer:    &customer,
			URL:         input.URL,
		}
		if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
			return err
		}
		return s.invoiceRepo.CreateSellItems(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetByInvoiceNo(ctx, invoice.InvoiceNo, enum.InvoiceTypeSell)
}

// ListSummaries returns a flattened row per sales invoice
func (s *SalesService) ListSummaries(ctx context.Context) ([]repository.SellSummary, error) {
	return s.invoiceRepo.ListSellSummaries(ctx)
}

// GetInvoice returns a sales invoice with its items and components
func (s *SalesService) GetInvoice(ctx context.Context, invoiceNo string) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByInvoiceNo(ctx, invoiceNo, enum.InvoiceTypeSell)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Sales invoice")
	}
	return invoice, nil
}

// LatestInvoiceNo returns the most recently recorded sales invoice
// number, or "" when none exists. The UI uses it to suggest the next
// number.
func (s *SalesService) LatestInvoiceNo(ctx context.Context) (string, error) {
	return s.invoiceRepo.LatestSellInvoiceNo(ctx)
}
