package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dealer represents a supplier the business purchases components from,
// identified by name
type Dealer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Components []Component `gorm:"foreignKey:DealerID" json:"-"`
	Invoices   []Invoice   `gorm:"foreignKey:DealerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new dealer
func (d *Dealer) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Dealer model
func (Dealer) TableName() string {
	return "dealers"
}
