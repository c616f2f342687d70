package service

import (
	"context"
	"testing"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSalesService(t *testing.T) (*SalesService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewSalesService(
		repository.NewInvoiceRepository(db),
		repository.NewComponentRepository(db),
		repository.NewTxManager(db),
	)
	return svc, db
}

func seedComponent(t *testing.T, db *gorm.DB, name string, qty int) *entity.Component {
	t.Helper()
	component := &entity.Component{Name: name, Brand: "Hikvision", Qty: qty}
	require.NoError(t, db.Create(component).Error)
	return component
}

func TestCreateSaleDecrementsStock(t *testing.T) {
	svc, db := newSalesService(t)
	ctx := context.Background()
	component := seedComponent(t, db, "Dome Camera", 10)

	invoice, err := svc.CreateSale(ctx, &CreateSaleInput{
		InvoiceNo: "S-001",
		Date:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Customer:  "Ravi",
		Items: []SellItemInput{
			{ComponentID: component.ID, Qty: 2, Price: 50, DiscountPct: 10},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, invoice)

	// 2 * 50 less 10% = 90, grossed up with 9% + 9% GST
	assert.InDelta(t, 90.0*1.18, invoice.TotalAmount, 1e-9)
	require.Len(t, invoice.SellItems, 1)
	assert.InDelta(t, 90.0, invoice.SellItems[0].Amount, 1e-9)

	var stored entity.Component
	require.NoError(t, db.First(&stored, "id = ?", component.ID).Error)
	assert.Equal(t, 8, stored.Qty)
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	svc, db := newSalesService(t)
	ctx := context.Background()
	component := seedComponent(t, db, "NVR 8ch", 3)

	_, err := svc.CreateSale(ctx, &CreateSaleInput{
		InvoiceNo: "S-002",
		Date:      time.Now(),
		Customer:  "Ravi",
		Items: []SellItemInput{
			{ComponentID: component.ID, Qty: 5, Price: 100},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NVR 8ch")

	// Nothing may be written on rejection
	var stored entity.Component
	require.NoError(t, db.First(&stored, "id = ?", component.ID).Error)
	assert.Equal(t, 3, stored.Qty)

	var invoiceCount int64
	require.NoError(t, db.Model(&entity.Invoice{}).Count(&invoiceCount).Error)
	assert.Equal(t, int64(0), invoiceCount)
}

func TestCreateSalePartialShortageRejectsWholeInvoice(t *testing.T) {
	svc, db := newSalesService(t)
	ctx := context.Background()
	plenty := seedComponent(t, db, "Cat6 Cable", 100)
	scarce := seedComponent(t, db, "PoE Switch", 1)

	_, err := svc.CreateSale(ctx, &CreateSaleInput{
		InvoiceNo: "S-003",
		Date:      time.Now(),
		Items: []SellItemInput{
			{ComponentID: plenty.ID, Qty: 10, Price: 20},
			{ComponentID: scarce.ID, Qty: 2, Price: 300},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PoE Switch")
	assert.NotContains(t, err.Error(), "Cat6 Cable")

	var stored entity.Component
	require.NoError(t, db.First(&stored, "id = ?", plenty.ID).Error)
	assert.Equal(t, 100, stored.Qty)
}

func TestCreateSaleDuplicateInvoiceNo(t *testing.T) {
	svc, db := newSalesService(t)
	ctx := context.Background()
	component := seedComponent(t, db, "Dome Camera", 10)

	input := &CreateSaleInput{
		InvoiceNo: "S-004",
		Date:      time.Now(),
		Items:     []SellItemInput{{ComponentID: component.ID, Qty: 1, Price: 50}},
	}
	_, err := svc.CreateSale(ctx, input)
	require.NoError(t, err)

	_, err = svc.CreateSale(ctx, input)
	assert.Error(t, err)
}

func TestLatestInvoiceNo(t *testing.T) {
	svc, db := newSalesService(t)
	ctx := context.Background()

	latest, err := svc.LatestInvoiceNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", latest)

	component := seedComponent(t, db, "Dome Camera", 10)
	_, err = svc.CreateSale(ctx, &CreateSaleInput{
		InvoiceNo: "S-010",
		Date:      time.Now(),
		Items:     []SellItemInput{{ComponentID: component.ID, Qty: 1, Price: 50}},
	})
	require.NoError(t, err)

	latest, err = svc.LatestInvoiceNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "S-010", latest)
}
