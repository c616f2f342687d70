package repository

import (
	"context"
	"errors"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	domainRepo "github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return conn(ctx, r.db).Create(invoice).Error
}

func (r *invoiceRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string, invoiceType enum.InvoiceType) (*entity.Invoice, error) {
	var invoice entity.Invoice

	query := conn(ctx, r.db).Preload("Dealer")
	switch invoiceType {
	case enum.InvoiceTypePurchase:
		query = query.Preload("PurchaseItems.Component")
	case enum.InvoiceTypeSell:
		query = query.Preload("SellItems.Component")
	}

	err := query.First(&invoice, "invoice_no = ? AND invoice_type = ?", invoiceNo, invoiceType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) ListPurchaseSummaries(ctx context.Context) ([]domainRepo.PurchaseSummary, error) {
	var summaries []domainRepo.PurchaseSummary
	err := conn(ctx, r.db).Model(&entity.Invoice{}).
		Select("invoices.invoice_no, invoices.date, COALESCE(dealers.name, '') AS dealer, invoices.total_amount").
		Joins("LEFT JOIN dealers ON dealers.id = invoices.dealer_id").
		Where("invoices.invoice_type = ?", enum.InvoiceTypePurchase).
		Order("invoices.date DESC").
		Scan(&summaries).Error
	return summaries, err
}

func (r *invoiceRepository) ListSellSummaries(ctx context.Context) ([]domainRepo.SellSummary, error) {
	var summaries []domainRepo.SellSummary
	err := conn(ctx, r.db).Model(&entity.Invoice{}).
		Select("invoice_no, date, COALESCE(customer, '') AS customer, total_amount").
		Where("invoice_type = ?", enum.InvoiceTypeSell).
		Order("date DESC").
		Scan(&summaries).Error
	return summaries, err
}

func (r *invoiceRepository) LatestSellInvoiceNo(ctx context.Context) (string, error) {
	var invoice entity.Invoice
	err := conn(ctx, r.db).
		Where("invoice_type = ?", enum.InvoiceTypeSell).
		Order("created_at DESC").
		First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return invoice.InvoiceNo, nil
}

func (r *invoiceRepository) CreatePurchaseItems(ctx context.Context, items []entity.PurchaseItem) error {
	if len(items) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&items).Error
}

func (r *invoiceRepository) CreateSellItems(ctx context.Context, items []entity.SellItem) error {
	if len(items) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&items).Error
}

func (r *invoiceRepository) ListPurchaseItems(ctx context.Context, params *domainRepo.PurchaseItemFilterParams) ([]entity.PurchaseItem, error) {
	var items []entity.PurchaseItem

	query := conn(ctx, r.db).Model(&entity.PurchaseItem{}).
		Joins("JOIN components ON components.id = purchase_items.comp_id").
		Joins("JOIN invoices ON invoices.invoice_no = purchase_items.invoice_no").
		Joins("LEFT JOIN dealers ON dealers.id = invoices.dealer_id")

	if params != nil {
		if params.InvoiceNo != "" {
			query = query.Where("purchase_items.invoice_no LIKE ?", "%"+params.InvoiceNo+"%")
		}
		if params.ProductName != "" {
			query = query.Where("components.name LIKE ?", "%"+params.ProductName+"%")
		}
		if params.Distributor != "" {
			query = query.Where("dealers.name LIKE ?", "%"+params.Distributor+"%")
		}
		if params.HSN != "" {
			query = query.Where("components.hsn LIKE ?", "%"+params.HSN+"%")
		}
		if params.DateFrom != nil {
			query = query.Where("purchase_items.date >= ?", *params.DateFrom)
		}
		if params.DateTo != nil {
			query = query.Where("purchase_items.date <= ?", *params.DateTo)
		}
	}

	err := query.
		Preload("Component.Dealer").
		Order("purchase_items.date DESC").
		Find(&items).Error
	return items, err
}
