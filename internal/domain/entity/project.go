package entity

import (
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a systems-integration job tracked by the business.
// Profit is always derived from the final value and expense heads and
// persisted alongside them.
type Project struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ClientID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"client_id"`
	ProjectName      string             `gorm:"size:255;not null" json:"project_name"`
	Location         string             `gorm:"size:255" json:"location"`
	ProjectDate      *time.Time         `gorm:"type:date;index" json:"project_date,omitempty"`
	InvoiceNo        string             `gorm:"size:100" json:"invoice_no"`
	QuotedValue      float64            `gorm:"type:decimal(15,2);default:0" json:"quoted_value"`
	FinalValue       float64            `gorm:"type:decimal(15,2);default:0" json:"final_value"`
	MaterialExpenses float64            `gorm:"type:decimal(15,2);default:0" json:"material_expenses"`
	LabourCost       float64            `gorm:"type:decimal(15,2);default:0" json:"labour_cost"`
	TACost           float64            `gorm:"type:decimal(15,2);default:0;column:ta_cost" json:"ta_cost"`
	Profit           float64            `gorm:"type:decimal(15,2);default:0" json:"profit"`
	Status           enum.ProjectStatus `gorm:"size:50;index" json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	DeletedAt        gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate generates a UUID before creating a new project
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Project model
func (Project) TableName() string {
	return "projects"
}
