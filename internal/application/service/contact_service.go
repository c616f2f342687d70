package service

import (
	"context"
	"log"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/pkg/apperror"
	"github.com/aziyanck/ita-backoffice/pkg/email"
)

// ContactService handles website contact form submissions
type ContactService struct {
	contactRepo  repository.ContactRepository
	emailService *email.EmailService
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repository.ContactRepository, emailService *email.EmailService) *ContactService {
	return &ContactService{
		contactRepo:  contactRepo,
		emailService: emailService,
	}
}

// SubmitContactInput represents a contact form submission
type SubmitContactInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
}

// Submit stores the submission and then notifies the admin address. A
// failed notification does not fail the request, the submission is
// already stored.
func (s *ContactService) Submit(ctx context.Context, input *SubmitContactInput) (*entity.ContactSubmission, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, apperror.NewBadRequestError("Name, email and message are required")
	}

	submission := &entity.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Message: input.Message,
	}
	if err := s.contactRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	if err := s.emailService.SendContactNotification(email.ContactNotification{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Message: input.Message,
	}); err != nil {
		log.Printf("Warning: contact notification email failed: %v", err)
	}

	return submission, nil
}

// List returns stored submissions, newest first
func (s *ContactService) List(ctx context.Context) ([]entity.ContactSubmission, error) {
	return s.contactRepo.List(ctx)
}
