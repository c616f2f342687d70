package repository

import (
	"context"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
)

// ContactRepository defines the interface for contact submission data
// operations
type ContactRepository interface {
	Create(ctx context.Context, submission *entity.ContactSubmission) error
	// List returns submissions newest first
	List(ctx context.Context) ([]entity.ContactSubmission, error)
}
