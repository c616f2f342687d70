package service

import (
	"fmt"
	"testing"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory database per test and migrates
// the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Client{},
		&entity.Project{},
		&entity.Dealer{},
		&entity.Category{},
		&entity.Component{},
		&entity.Invoice{},
		&entity.PurchaseItem{},
		&entity.SellItem{},
		&entity.Quotation{},
		&entity.QuotationItem{},
		&entity.ContactSubmission{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
