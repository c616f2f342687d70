package repository

import (
	"context"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/pkg/pagination"
	"github.com/google/uuid"
)

// ProjectFilterParams contains filtering parameters for project queries
type ProjectFilterParams struct {
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	CreateBatch(ctx context.Context, projects []entity.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns projects with their client preloaded, filtered by params
	List(ctx context.Context, params *ProjectFilterParams) ([]entity.Project, error)
	// ListPage returns one page of filtered projects plus the total
	// matching count
	ListPage(ctx context.Context, params *ProjectFilterParams, page *pagination.PaginationParams) ([]entity.Project, int64, error)
}
