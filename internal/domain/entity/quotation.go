package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quotation is the stored record of a generated quotation. The PDF
// itself is rendered by the external job-queue service; URL holds
// whatever link it returned.
type Quotation struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuotationNo        string         `gorm:"size:100;uniqueIndex;not null" json:"quotation_no"`
	Date               time.Time      `gorm:"type:date;not null" json:"date"`
	RecipientName      string         `gorm:"size:255;not null" json:"recipient_name"`
	RecipientAddress   string         `gorm:"size:512;not null" json:"recipient_address"`
	Email              string         `gorm:"size:255" json:"email"`
	InstallationCharge float64        `gorm:"type:decimal(15,2);default:0" json:"installation_charge"`
	UntaxedAmount      float64        `gorm:"type:decimal(15,2);default:0" json:"untaxed_amount"`
	SGST               float64        `gorm:"type:decimal(15,2);default:0;column:sgst" json:"sgst"`
	CGST               float64        `gorm:"type:decimal(15,2);default:0;column:cgst" json:"cgst"`
	Total              float64        `gorm:"type:decimal(15,2);default:0" json:"total"`
	TotalInWords       string         `gorm:"size:512" json:"total_in_words"`
	URL                string         `gorm:"size:512;column:url" json:"url"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []QuotationItem `gorm:"foreignKey:QuotationID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// QuotationItem represents a line item on a quotation
type QuotationItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID uuid.UUID `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	HSN         string    `gorm:"size:50;column:hsn" json:"hsn"`
	Qty         float64   `gorm:"not null" json:"qty"`
	UnitPrice   float64   `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new quotation item
func (qi *QuotationItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationItem model
func (QuotationItem) TableName() string {
	return "quotation_items"
}
