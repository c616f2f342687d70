package repository

import (
	"context"
	"errors"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	domainRepo "github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return conn(ctx, r.db).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := conn(ctx, r.db).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) GetByPhone(ctx context.Context, phone string) (*entity.Client, error) {
	var client entity.Client
	err := conn(ctx, r.db).First(&client, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) ListWithProjects(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client
	err := conn(ctx, r.db).
		Preload("Projects").
		Order("name ASC").
		Find(&clients).Error
	return clients, err
}

type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository creates a new dealer repository
func NewDealerRepository(db *gorm.DB) domainRepo.DealerRepository {
	return &dealerRepository{db: db}
}

func (r *dealerRepository) Create(ctx context.Context, dealer *entity.Dealer) error {
	return conn(ctx, r.db).Create(dealer).Error
}

func (r *dealerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Dealer, error) {
	var dealer entity.Dealer
	err := conn(ctx, r.db).First(&dealer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dealer, err
}

func (r *dealerRepository) GetByName(ctx context.Context, name string) (*entity.Dealer, error) {
	var dealer entity.Dealer
	err := conn(ctx, r.db).First(&dealer, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dealer, err
}

func (r *dealerRepository) List(ctx context.Context) ([]entity.Dealer, error) {
	var dealers []entity.Dealer
	err := conn(ctx, r.db).Order("name ASC").Find(&dealers).Error
	return dealers, err
}
