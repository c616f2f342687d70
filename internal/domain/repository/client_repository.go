package repository

import (
	"context"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/google/uuid"
)

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	// GetByPhone returns nil, nil when no client carries the phone number
	GetByPhone(ctx context.Context, phone string) (*entity.Client, error)
	// ListWithProjects returns all clients with their projects preloaded
	ListWithProjects(ctx context.Context) ([]entity.Client, error)
}

// DealerRepository defines the interface for dealer data operations
type DealerRepository interface {
	Create(ctx context.Context, dealer *entity.Dealer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Dealer, error)
	// GetByName returns nil, nil when no dealer carries the name
	GetByName(ctx context.Context, name string) (*entity.Dealer, error)
	List(ctx context.Context) ([]entity.Dealer, error)
}
