package service

import (
	"context"
	"testing"

	"github.com/aziyanck/ita-backoffice/internal/infrastructure/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComponentService(t *testing.T) *ComponentService {
	db := setupTestDB(t)
	return NewComponentService(
		repository.NewComponentRepository(db),
		repository.NewCategoryRepository(db),
	)
}

func TestCreateCategoryConflict(t *testing.T) {
	svc := newComponentService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, "Cameras")
	require.NoError(t, err)
	assert.Equal(t, "Cameras", created.Name)

	_, err = svc.CreateCategory(ctx, "Cameras")
	assert.Error(t, err)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestGetMissingComponent(t *testing.T) {
	svc := newComponentService(t)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.Error(t, err)
}
