package service

import (
	"context"
	"testing"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	domainRepo "github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPurchaseService(t *testing.T) (*PurchaseService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewPurchaseService(
		repository.NewInvoiceRepository(db),
		repository.NewComponentRepository(db),
		repository.NewDealerRepository(db),
		repository.NewTxManager(db),
	)
	return svc, db
}

func TestCreatePurchaseNewComponentAndDealer(t *testing.T) {
	svc, db := newPurchaseService(t)
	ctx := context.Background()

	invoice, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
		InvoiceNo:  "P-001",
		Date:       time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		DealerName: "Prime Distributors",
		Items: []PurchaseItemInput{
			{Name: "Bullet Camera", Brand: "CP Plus", HSN: "8525", Qty: 4, Price: 250},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, invoice)

	// 4 * 250 = 1000, grossed up with flat 18% GST
	assert.InDelta(t, 1180.0, invoice.TotalAmount, 1e-9)
	require.NotNil(t, invoice.Dealer)
	assert.Equal(t, "Prime Distributors", invoice.Dealer.Name)

	var component entity.Component
	require.NoError(t, db.First(&component, "name = ? AND brand = ?", "Bullet Camera", "CP Plus").Error)
	assert.Equal(t, 4, component.Qty)
	require.NotNil(t, component.DealerID)
}

func TestCreatePurchaseIncrementsExistingComponent(t *testing.T) {
	svc, db := newPurchaseService(t)
	ctx := context.Background()
	existing := seedComponent(t, db, "Dome Camera", 6)

	_, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
		InvoiceNo: "P-002",
		Date:      time.Now(),
		Items: []PurchaseItemInput{
			{Name: "Dome Camera", Brand: "Hikvision", Qty: 5, Price: 200},
		},
	})
	require.NoError(t, err)

	var stored entity.Component
	require.NoError(t, db.First(&stored, "id = ?", existing.ID).Error)
	assert.Equal(t, 11, stored.Qty)

	// Matching by name and brand must not create a second row
	var count int64
	require.NoError(t, db.Model(&entity.Component{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreatePurchaseReusesDealerByName(t *testing.T) {
	svc, db := newPurchaseService(t)
	ctx := context.Background()

	for _, no := range []string{"P-003", "P-004"} {
		_, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
			InvoiceNo:  no,
			Date:       time.Now(),
			DealerName: "Prime Distributors",
			Items:      []PurchaseItemInput{{Name: "Adapter", Brand: "Generic", Qty: 1, Price: 30}},
		})
		require.NoError(t, err)
	}

	var dealerCount int64
	require.NoError(t, db.Model(&entity.Dealer{}).Count(&dealerCount).Error)
	assert.Equal(t, int64(1), dealerCount)
}

func TestCreatePurchaseWithoutDealer(t *testing.T) {
	svc, _ := newPurchaseService(t)

	invoice, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		InvoiceNo: "P-005",
		Date:      time.Now(),
		Items:     []PurchaseItemInput{{Name: "Adapter", Brand: "Generic", Qty: 2, Price: 30}},
	})
	require.NoError(t, err)
	assert.Nil(t, invoice.DealerID)
}

func TestCreatePurchaseDuplicateInvoiceNo(t *testing.T) {
	svc, _ := newPurchaseService(t)
	ctx := context.Background()

	input := &CreatePurchaseInput{
		InvoiceNo: "P-006",
		Date:      time.Now(),
		Items:     []PurchaseItemInput{{Name: "Adapter", Brand: "Generic", Qty: 1, Price: 30}},
	}
	_, err := svc.CreatePurchase(ctx, input)
	require.NoError(t, err)

	_, err = svc.CreatePurchase(ctx, input)
	assert.Error(t, err)
}

func TestListHistoryFilters(t *testing.T) {
	svc, _ := newPurchaseService(t)
	ctx := context.Background()

	_, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
		InvoiceNo:  "P-100",
		Date:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		DealerName: "Prime Distributors",
		Items: []PurchaseItemInput{
			{Name: "Bullet Camera", Brand: "CP Plus", HSN: "8525", Qty: 4, Price: 250},
			{Name: "Cat6 Cable", Brand: "D-Link", HSN: "8544", Qty: 10, Price: 20},
		},
	})
	require.NoError(t, err)
	_, err = svc.CreatePurchase(ctx, &CreatePurchaseInput{
		InvoiceNo:  "P-101",
		Date:       time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC),
		DealerName: "Metro Traders",
		Items: []PurchaseItemInput{
			{Name: "PoE Switch", Brand: "TP-Link", HSN: "8517", Qty: 2, Price: 900},
		},
	})
	require.NoError(t, err)

	all, err := svc.ListHistory(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byProduct, err := svc.ListHistory(ctx, &domainRepo.PurchaseItemFilterParams{ProductName: "Camera"})
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	assert.Equal(t, "Bullet Camera", byProduct[0].Component.Name)

	byDealer, err := svc.ListHistory(ctx, &domainRepo.PurchaseItemFilterParams{Distributor: "Metro"})
	require.NoError(t, err)
	require.Len(t, byDealer, 1)
	assert.Equal(t, "P-101", byDealer[0].InvoiceNo)

	byHSN, err := svc.ListHistory(ctx, &domainRepo.PurchaseItemFilterParams{HSN: "8544"})
	require.NoError(t, err)
	require.Len(t, byHSN, 1)
	assert.Equal(t, "Cat6 Cable", byHSN[0].Component.Name)
}

func TestCreatePurchaseRejectsEmptyItems(t *testing.T) {
	svc, _ := newPurchaseService(t)

	_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		InvoiceNo: "P-007",
		Date:      time.Now(),
	})
	assert.Error(t, err)
}
