package service

import (
	"context"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/repository"
)

// ClientService handles client directory operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// List returns all clients with their projects nested
func (s *ClientService) List(ctx context.Context) ([]entity.Client, error) {
	return s.clientRepo.ListWithProjects(ctx)
}

// DealerService handles dealer directory operations
type DealerService struct {
	dealerRepo repository.DealerRepository
}

// NewDealerService creates a new dealer service
func NewDealerService(dealerRepo repository.DealerRepository) *DealerService {
	return &DealerService{dealerRepo: dealerRepo}
}

// List returns all dealers
func (s *DealerService) List(ctx context.Context) ([]entity.Dealer, error) {
	return s.dealerRepo.List(ctx)
}
