package service

import (
	"context"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/pkg/apperror"
	"github.com/google/uuid"
)

// ComponentService handles inventory component operations
type ComponentService struct {
	componentRepo repository.ComponentRepository
	categoryRepo  repository.CategoryRepository
}

// NewComponentService creates a new component service
func NewComponentService(
	componentRepo repository.ComponentRepository,
	categoryRepo repository.CategoryRepository,
) *ComponentService {
	return &ComponentService{
		componentRepo: componentRepo,
		categoryRepo:  categoryRepo,
	}
}

// List returns all components with dealer and category preloaded
func (s *ComponentService) List(ctx context.Context) ([]entity.Component, error) {
	return s.componentRepo.List(ctx)
}

// Get returns a single component
func (s *ComponentService) Get(ctx context.Context, id uuid.UUID) (*entity.Component, error) {
	component, err := s.componentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, apperror.NewNotFoundError("Component")
	}
	return component, nil
}

// ListCategories returns all component categories
func (s *ComponentService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateCategory creates a category if the name is not taken
func (s *ComponentService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
