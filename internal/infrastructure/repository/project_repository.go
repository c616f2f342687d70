package repository

import (
	"context"
	"errors"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	domainRepo "github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) domainRepo.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	return conn(ctx, r.db).Create(project).Error
}

func (r *projectRepository) CreateBatch(ctx context.Context, projects []entity.Project) error {
	if len(projects) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&projects).Error
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var project entity.Project
	err := conn(ctx, r.db).
		Preload("Client").
		First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &project, err
}

func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	return conn(ctx, r.db).Save(project).Error
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.Project{}, "id = ?", id).Error
}

func applyProjectFilter(query *gorm.DB, params *domainRepo.ProjectFilterParams) *gorm.DB {
	if params == nil {
		return query
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.DateFrom != nil {
		query = query.Where("project_date >= ?", *params.DateFrom)
	}
	if params.DateTo != nil {
		query = query.Where("project_date <= ?", *params.DateTo)
	}
	return query
}

func (r *projectRepository) List(ctx context.Context, params *domainRepo.ProjectFilterParams) ([]entity.Project, error) {
	var projects []entity.Project

	query := applyProjectFilter(conn(ctx, r.db).Model(&entity.Project{}), params)

	err := query.
		Preload("Client").
		Order("project_date DESC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) ListPage(ctx context.Context, params *domainRepo.ProjectFilterParams, page *pagination.PaginationParams) ([]entity.Project, int64, error) {
	var projects []entity.Project
	var total int64

	query := applyProjectFilter(conn(ctx, r.db).Model(&entity.Project{}), params)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page.Validate()
	err := query.Offset(page.Offset()).Limit(page.PerPage).
		Preload("Client").
		Order("project_date DESC").
		Find(&projects).Error
	return projects, total, err
}
