package repository

import (
	"context"
	"errors"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	domainRepo "github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type componentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) domainRepo.ComponentRepository {
	return &componentRepository{db: db}
}

func (r *componentRepository) Create(ctx context.Context, component *entity.Component) error {
	return conn(ctx, r.db).Create(component).Error
}

func (r *componentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Component, error) {
	var component entity.Component
	err := conn(ctx, r.db).
		Preload("Dealer").Preload("Category").
		First(&component, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &component, err
}

// GetByIDs retrieves multiple components by their IDs in a single query
func (r *componentRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Component, error) {
	if len(ids) == 0 {
		return []entity.Component{}, nil
	}
	var components []entity.Component
	err := conn(ctx, r.db).
		Where("id IN ?", ids).
		Find(&components).Error
	return components, err
}

func (r *componentRepository) GetByNameAndBrand(ctx context.Context, name, brand string) (*entity.Component, error) {
	var component entity.Component
	err := conn(ctx, r.db).First(&component, "name = ? AND brand = ?", name, brand).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &component, err
}

func (r *componentRepository) List(ctx context.Context) ([]entity.Component, error) {
	var components []entity.Component
	err := conn(ctx, r.db).
		Preload("Dealer").Preload("Category").
		Order("name ASC").
		Find(&components).Error
	return components, err
}

// AtomicIncrementQty adds amount to a component's stock
func (r *componentRepository) AtomicIncrementQty(ctx context.Context, id uuid.UUID, amount int) error {
	return conn(ctx, r.db).Model(&entity.Component{}).
		Where("id = ?", id).
		Update("qty", gorm.Expr("qty + ?", amount)).Error
}

// AtomicDecrementQty subtracts stock only if sufficient quantity exists.
// Uses: UPDATE components SET qty = qty - amount WHERE id = ? AND qty >= amount
func (r *componentRepository) AtomicDecrementQty(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	result := conn(ctx, r.db).Model(&entity.Component{}).
		Where("id = ? AND qty >= ?", id, amount).
		Update("qty", gorm.Expr("qty - ?", amount))

	if result.Error != nil {
		return false, result.Error
	}

	// If no rows were affected, insufficient stock
	return result.RowsAffected > 0, nil
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return conn(ctx, r.db).Create(category).Error
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	var category entity.Category
	err := conn(ctx, r.db).First(&category, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := conn(ctx, r.db).Order("name ASC").Find(&categories).Error
	return categories, err
}
