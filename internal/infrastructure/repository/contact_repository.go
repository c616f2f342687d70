package repository

import (
	"context"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	domainRepo "github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact submission repository
func NewContactRepository(db *gorm.DB) domainRepo.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	return conn(ctx, r.db).Create(submission).Error
}

func (r *contactRepository) List(ctx context.Context) ([]entity.ContactSubmission, error) {
	var submissions []entity.ContactSubmission
	err := conn(ctx, r.db).Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}
