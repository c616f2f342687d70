package service

import (
	"context"
	"testing"

	"github.com/aziyanck/ita-backoffice/internal/infrastructure/repository"
	"github.com/aziyanck/ita-backoffice/pkg/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactService(t *testing.T) *ContactService {
	db := setupTestDB(t)
	// Unconfigured SMTP: the notification fails but the submission
	// must still be stored.
	return NewContactService(repository.NewContactRepository(db), email.NewEmailService(email.EmailConfig{}))
}

func TestSubmitContactStoresDespiteEmailFailure(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	submission, err := svc.Submit(ctx, &SubmitContactInput{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Phone:   "9876500001",
		Message: "Need a quote for 8 cameras",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, submission.ID)

	stored, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Ravi", stored[0].Name)
}

func TestSubmitContactValidation(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, &SubmitContactInput{Email: "ravi@example.com", Message: "hi"})
	assert.Error(t, err)

	_, err = svc.Submit(ctx, &SubmitContactInput{Name: "Ravi", Message: "hi"})
	assert.Error(t, err)

	_, err = svc.Submit(ctx, &SubmitContactInput{Name: "Ravi", Email: "ravi@example.com"})
	assert.Error(t, err)
}
