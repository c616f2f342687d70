package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Component represents an inventory item. Quantity moves up on
// purchases and down on sales through conditional updates only.
type Component struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null;index:idx_components_name_brand" json:"name"`
	HSN         string         `gorm:"size:50;column:hsn" json:"hsn"`
	Brand       string         `gorm:"size:255;index:idx_components_name_brand" json:"brand"`
	Description string         `gorm:"type:text" json:"description"`
	Qty         int            `gorm:"default:0" json:"qty"`
	DealerID    *uuid.UUID     `gorm:"type:uuid;index" json:"dealer_id,omitempty"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Dealer   *Dealer   `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new component
func (c *Component) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Component model
func (Component) TableName() string {
	return "components"
}

// Category represents a component category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Components []Component `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "category"
}
