package entity

import (
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice represents a purchase or sales invoice. Purchase invoices
// carry a dealer, sales invoices a customer name. The stored total is
// already grossed up with GST.
type Invoice struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo   string           `gorm:"size:100;uniqueIndex;not null" json:"invoice_no"`
	InvoiceType enum.InvoiceType `gorm:"size:20;not null;index" json:"invoice_type"`
	Date        time.Time        `gorm:"type:date;not null;index" json:"date"`
	TotalAmount float64          `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	Customer    *string          `gorm:"size:255" json:"customer,omitempty"`
	URL         string           `gorm:"size:512;column:url" json:"url"`
	DealerID    *uuid.UUID       `gorm:"type:uuid;index" json:"dealer_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Dealer        *Dealer        `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
	PurchaseItems []PurchaseItem `gorm:"foreignKey:InvoiceNo;references:InvoiceNo" json:"purchase_items,omitempty"`
	SellItems     []SellItem     `gorm:"foreignKey:InvoiceNo;references:InvoiceNo" json:"sell_items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// PurchaseItem represents a line on a purchase invoice
type PurchaseItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo string    `gorm:"size:100;not null;index" json:"invoice_no"`
	CompID    uuid.UUID `gorm:"type:uuid;not null;index;column:comp_id" json:"comp_id"`
	Qty       int       `gorm:"not null" json:"qty"`
	Price     float64   `gorm:"type:decimal(15,2);not null" json:"price"`
	Date      time.Time `gorm:"type:date" json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Component Component `gorm:"foreignKey:CompID" json:"component,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase item
func (p *PurchaseItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseItem model
func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// SellItem represents a line on a sales invoice. Amount is the line
// total after the discount percentage is applied.
type SellItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo   string    `gorm:"size:100;not null;index" json:"invoice_no"`
	CompID      uuid.UUID `gorm:"type:uuid;not null;index;column:comp_id" json:"comp_id"`
	Qty         int       `gorm:"not null" json:"qty"`
	Price       float64   `gorm:"type:decimal(15,2);not null" json:"price"`
	DiscountPct float64   `gorm:"type:decimal(5,2);default:0" json:"discount_pct"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Component Component `gorm:"foreignKey:CompID" json:"component,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sell item
func (s *SellItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SellItem model
func (SellItem) TableName() string {
	return "sell_items"
}
