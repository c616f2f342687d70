package repository

import (
	"context"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/google/uuid"
)

// ComponentRepository defines the interface for inventory component
// data operations
type ComponentRepository interface {
	Create(ctx context.Context, component *entity.Component) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Component, error)
	// GetByIDs retrieves multiple components in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Component, error)
	// GetByNameAndBrand returns nil, nil when no component matches
	GetByNameAndBrand(ctx context.Context, name, brand string) (*entity.Component, error)
	// List returns all components ordered by name with dealer and
	// category preloaded
	List(ctx context.Context) ([]entity.Component, error)
	// AtomicIncrementQty adds amount to a component's stock
	AtomicIncrementQty(ctx context.Context, id uuid.UUID, amount int) error
	// AtomicDecrementQty subtracts amount from a component's stock only
	// if enough remains. Returns (true, nil) on success and (false, nil)
	// when stock was insufficient.
	AtomicDecrementQty(ctx context.Context, id uuid.UUID, amount int) (bool, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	// GetByName returns nil, nil when no category carries the name
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
}
