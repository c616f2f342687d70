package service

import (
	"context"
	"testing"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExportService(t *testing.T) (*ExportService, *DashboardService, *ProjectService) {
	db := setupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	dashboard := NewDashboardService(repository.NewAnalyticsRepository(db))
	projects := NewProjectService(projectRepo, repository.NewClientRepository(db), repository.NewTxManager(db))
	return NewExportService(projectRepo, dashboard), dashboard, projects
}

func TestExportProjectsLayout(t *testing.T) {
	svc, _, projects := newExportService(t)
	ctx := context.Background()

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	_, err := projects.CreateBatch(ctx, []ProjectRowInput{
		{
			ClientName:       "Asha",
			ClientPhone:      "9876500001",
			ProjectName:      "Office CCTV",
			Location:         "Kochi",
			ProjectDate:      &date,
			InvoiceNo:        "INV-9",
			FinalValue:       10000,
			MaterialExpenses: 2000,
			LabourCost:       1000,
			TACost:           500,
		},
	}, enum.ProjectStatusCompleted)
	require.NoError(t, err)

	f, err := svc.ExportProjects(ctx, nil)
	require.NoError(t, err)

	for col, want := range projectExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		got, err := f.GetCellValue("Projects", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	name, err := f.GetCellValue("Projects", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Office CCTV", name)

	client, err := f.GetCellValue("Projects", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Asha", client)

	profit, err := f.GetCellValue("Projects", "N2")
	require.NoError(t, err)
	assert.Equal(t, "6500", profit)
}

func TestExportFYProfitLayout(t *testing.T) {
	svc, dashboard, projects := newExportService(t)
	ctx := context.Background()
	dashboard.now = func() time.Time {
		return time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	}

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	_, err := projects.CreateBatch(ctx, []ProjectRowInput{
		{ClientName: "Asha", ClientPhone: "9876500001", ProjectName: "Job", ProjectDate: &date, FinalValue: 2500},
	}, enum.ProjectStatusCompleted)
	require.NoError(t, err)

	f, err := svc.ExportFYProfit(ctx, 2025)
	require.NoError(t, err)

	sheet := "FY 2025-2026"
	month, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "April", month)

	juneProfit, err := f.GetCellValue(sheet, "C4")
	require.NoError(t, err)
	assert.Equal(t, "2500", juneProfit)

	// Twelve data rows, Apr..Mar
	lastMonth, err := f.GetCellValue(sheet, "B13")
	require.NoError(t, err)
	assert.Equal(t, "March", lastMonth)
}
