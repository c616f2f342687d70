package service

import (
	"context"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	"github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/pkg/apperror"
	"github.com/aziyanck/ita-backoffice/pkg/finance"
)

// PurchaseService handles purchase invoice recording and the stock
// increments that come with it
type PurchaseService struct {
	invoiceRepo   repository.InvoiceRepository
	componentRepo repository.ComponentRepository
	dealerRepo    repository.DealerRepository
	txManager     repository.TxManager
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	invoiceRepo repository.InvoiceRepository,
	componentRepo repository.ComponentRepository,
	dealerRepo repository.DealerRepository,
	txManager repository.TxManager,
) *PurchaseService {
	return &PurchaseService{
		invoiceRepo:   invoiceRepo,
		componentRepo: componentRepo,
		dealerRepo:    dealerRepo,
		txManager:     txManager,
	}
}

// PurchaseItemInput is one line on an incoming purchase invoice
type PurchaseItemInput struct {
	Name        string
	Brand       string
	HSN         string
	Description string
	Qty         int
	Price       float64
}

// CreatePurchaseInput represents an incoming purchase invoice
type CreatePurchaseInput struct {
	InvoiceNo  string
	Date       time.Time
	DealerName string
	URL        string
	Items      []PurchaseItemInput
}

// CreatePurchase records a purchase invoice in a single transaction:
// the dealer is looked up or created by name, each line's component is
// resolved by name and brand (existing stock is incremented, unknown
// components are inserted), and the invoice total is the line subtotal
// grossed up by flat GST.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.Invoice, error) {
	if input.InvoiceNo == "" {
		return nil, apperror.NewBadRequestError("Invoice number is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("At least one item is required")
	}
	for _, item := range input.Items {
		if item.Name == "" {
			return nil, apperror.NewBadRequestError("Item name is required")
		}
		if item.Qty <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
	}

	existing, err := s.invoiceRepo.GetByInvoiceNo(ctx, input.InvoiceNo, enum.InvoiceTypePurchase)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Purchase invoice number already recorded")
	}

	var invoice *entity.Invoice
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		dealer, err := s.resolveDealer(ctx, input.DealerName)
		if err != nil {
			return err
		}

		var subtotal float64
		items := make([]entity.PurchaseItem, 0, len(input.Items))
		for _, item := range input.Items {
			component, err := s.resolveComponent(ctx, dealer, &item)
			if err != nil {
				return err
			}

			subtotal += float64(item.Qty) * item.Price
			items = append(items, entity.PurchaseItem{
				InvoiceNo: input.InvoiceNo,
				CompID:    component.ID,
				Qty:       item.Qty,
				Price:     item.Price,
				Date:      input.Date,
			})
		}

		invoice = &entity.Invoice{
			InvoiceNo:   input.InvoiceNo,
			InvoiceType: enum.InvoiceTypePurchase,
			Date:        input.Date,
			TotalAmount: finance.TotalWithFlatGST(subtotal),
			URL:         input.URL,
		}
		if dealer != nil {
			invoice.DealerID = &dealer.ID
		}

		if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
			return err
		}
		return s.invoiceRepo.CreatePurchaseItems(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetByInvoiceNo(ctx, invoice.InvoiceNo, enum.InvoiceTypePurchase)
}

func (s *PurchaseService) resolveDealer(ctx context.Context, name string) (*entity.Dealer, error) {
	if name == "" {
		return nil, nil
	}

	dealer, err := s.dealerRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if dealer != nil {
		return dealer, nil
	}

	dealer = &entity.Dealer{Name: name}
	if err := s.dealerRepo.Create(ctx, dealer); err != nil {
		return nil, err
	}
	return dealer, nil
}

func (s *PurchaseService) resolveComponent(ctx context.Context, dealer *entity.Dealer, item *PurchaseItemInput) (*entity.Component, error) {
	component, err := s.componentRepo.GetByNameAndBrand(ctx, item.Name, item.Brand)
	if err != nil {
		return nil, err
	}
	if component != nil {
		if err := s.componentRepo.AtomicIncrementQty(ctx, component.ID, item.Qty); err != nil {
			return nil, err
		}
		return component, nil
	}

	component = &entity.Component{
		Name:        item.Name,
		Brand:       item.Brand,
		HSN:         item.HSN,
		Description: item.Description,
		Qty:         item.Qty,
	}
	if dealer != nil {
		component.DealerID = &dealer.ID
	}
	if err := s.componentRepo.Create(ctx, component); err != nil {
		return nil, err
	}
	return component, nil
}

// ListSummaries returns a flattened row per purchase invoice
func (s *PurchaseService) ListSummaries(ctx context.Context) ([]repository.PurchaseSummary, error) {
	return s.invoiceRepo.ListPurchaseSummaries(ctx)
}

// GetInvoice returns a purchase invoice with its items, components and
// dealer
func (s *PurchaseService) GetInvoice(ctx context.Context, invoiceNo string) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByInvoiceNo(ctx, invoiceNo, enum.InvoiceTypePurchase)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Purchase invoice")
	}
	return invoice, nil
}

// ListHistory returns purchase line items matching the filter
func (s *PurchaseService) ListHistory(ctx context.Context, params *repository.PurchaseItemFilterParams) ([]entity.PurchaseItem, error) {
	return s.invoiceRepo.ListPurchaseItems(ctx, params)
}
