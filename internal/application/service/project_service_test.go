package service

import (
	"context"
	"testing"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/repository"
	"github.com/aziyanck/ita-backoffice/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProjectService(t *testing.T) (*ProjectService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewClientRepository(db),
		repository.NewTxManager(db),
	)
	return svc, db
}

func TestCreateBatchDerivesProfit(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateBatch(ctx, []ProjectRowInput{
		{
			ClientName:       "Asha",
			ClientPhone:      "9876500001",
			ProjectName:      "Office CCTV",
			Location:         "Kochi",
			ProjectDate:      &date,
			FinalValue:       10000,
			MaterialExpenses: 2000,
			LabourCost:       1000,
			TACost:           500,
		},
	}, enum.ProjectStatusCompleted)
	require.NoError(t, err)
	require.Len(t, created, 1)

	assert.Equal(t, 6500.0, created[0].Profit)
	assert.Equal(t, 10000.0, created[0].QuotedValue)
	assert.Equal(t, enum.ProjectStatusCompleted, created[0].Status)
}

func TestCreateBatchReusesClientByPhone(t *testing.T) {
	svc, db := newProjectService(t)
	ctx := context.Background()

	rows := []ProjectRowInput{
		{ClientName: "Asha", ClientPhone: "9876500001", ProjectName: "Job A", FinalValue: 1000},
		{ClientName: "Asha K", ClientPhone: "9876500001", ProjectName: "Job B", FinalValue: 2000},
		{ClientName: "Biju", ClientPhone: "9876500002", ProjectName: "Job C", FinalValue: 3000},
	}
	created, err := svc.CreateBatch(ctx, rows, enum.ProjectStatusUpcoming)
	require.NoError(t, err)
	require.Len(t, created, 3)

	// Same phone resolves to the same client, regardless of name
	assert.Equal(t, created[0].ClientID, created[1].ClientID)
	assert.NotEqual(t, created[0].ClientID, created[2].ClientID)

	var clientCount int64
	require.NoError(t, db.Model(&entity.Client{}).Count(&clientCount).Error)
	assert.Equal(t, int64(2), clientCount)
}

func TestCreateBatchRejectsInvalidStatus(t *testing.T) {
	svc, _ := newProjectService(t)

	_, err := svc.CreateBatch(context.Background(), []ProjectRowInput{
		{ClientName: "Asha", ClientPhone: "9876500001", ProjectName: "Job A"},
	}, enum.ProjectStatus("Done"))
	assert.Error(t, err)
}

func TestCreateBatchRequiresPhone(t *testing.T) {
	svc, db := newProjectService(t)

	_, err := svc.CreateBatch(context.Background(), []ProjectRowInput{
		{ClientName: "Asha", ProjectName: "Job A"},
	}, enum.ProjectStatusOngoing)
	assert.Error(t, err)

	// The batch is transactional, nothing may be written
	var projectCount int64
	require.NoError(t, db.Model(&entity.Project{}).Count(&projectCount).Error)
	assert.Equal(t, int64(0), projectCount)
}

func TestUpdateRederivesProfit(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	created, err := svc.CreateBatch(ctx, []ProjectRowInput{
		{ClientName: "Asha", ClientPhone: "9876500001", ProjectName: "Job A", FinalValue: 10000, MaterialExpenses: 2000},
	}, enum.ProjectStatusOngoing)
	require.NoError(t, err)

	newFinal := 12000.0
	newLabour := 1500.0
	updated, err := svc.Update(ctx, created[0].ID, &UpdateProjectInput{
		FinalValue: &newFinal,
		LabourCost: &newLabour,
	})
	require.NoError(t, err)

	assert.Equal(t, 12000.0-2000.0-1500.0, updated.Profit)
	assert.Equal(t, newFinal, updated.QuotedValue)
}

func TestListPaginates(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	rows := make([]ProjectRowInput, 0, 3)
	for i, name := range []string{"Job A", "Job B", "Job C"} {
		date := time.Date(2025, 6, 10+i, 0, 0, 0, 0, time.UTC)
		rows = append(rows, ProjectRowInput{
			ClientName:  "Asha",
			ClientPhone: "9876500001",
			ProjectName: name,
			ProjectDate: &date,
			FinalValue:  1000,
		})
	}
	_, err := svc.CreateBatch(ctx, rows, enum.ProjectStatusOngoing)
	require.NoError(t, err)

	first, err := svc.List(ctx, nil, &pagination.PaginationParams{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, first.Items, 2)
	assert.Equal(t, int64(3), first.Pagination.Total)
	assert.Equal(t, 2, first.Pagination.TotalPages)
	assert.True(t, first.Pagination.HasNext)
	assert.False(t, first.Pagination.HasPrev)
	// Newest project date first
	assert.Equal(t, "Job C", first.Items[0].ProjectName)

	second, err := svc.List(ctx, nil, &pagination.PaginationParams{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, second.Items, 1)
	assert.True(t, second.Pagination.HasPrev)
	assert.False(t, second.Pagination.HasNext)

	// Nil params fall back to the defaults
	all, err := svc.List(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)
}

func TestDeleteMissingProject(t *testing.T) {
	svc, _ := newProjectService(t)

	err := svc.Delete(context.Background(), uuid.New())
	assert.Error(t, err)
}
