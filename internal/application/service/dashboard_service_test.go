package service

import (
	"context"
	"testing"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(t *testing.T) (*DashboardService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewDashboardService(repository.NewAnalyticsRepository(db))
	svc.now = func() time.Time {
		return time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	}
	return svc, db
}

func seedProject(t *testing.T, db *gorm.DB, status enum.ProjectStatus, date time.Time, profit float64) {
	t.Helper()
	client := &entity.Client{Name: "Seed", Phone: "seed-" + date.Format("20060102150405.000000000")}
	require.NoError(t, db.FirstOrCreate(client, entity.Client{Phone: client.Phone}).Error)
	require.NoError(t, db.Create(&entity.Project{
		ClientID:    client.ID,
		ProjectName: "Seeded",
		ProjectDate: &date,
		Profit:      profit,
		Status:      status,
	}).Error)
}

func TestStatusCountsBucketsUnknown(t *testing.T) {
	svc, db := newDashboardService(t)
	ctx := context.Background()
	now := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	seedProject(t, db, enum.ProjectStatusUpcoming, now, 0)
	seedProject(t, db, enum.ProjectStatusOngoing, now, 0)
	seedProject(t, db, enum.ProjectStatusCompleted, now, 100)
	seedProject(t, db, enum.ProjectStatus("Archived"), now, 0)

	counts, err := svc.GetStatusCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Upcoming)
	assert.Equal(t, int64(1), counts.Ongoing)
	assert.Equal(t, int64(1), counts.Completed)
	assert.Equal(t, int64(1), counts.Unknown)
	assert.Equal(t, int64(4), counts.Total)
}

func TestMonthlyProfitGroupsAndSorts(t *testing.T) {
	svc, db := newDashboardService(t)
	ctx := context.Background()

	seedProject(t, db, enum.ProjectStatusCompleted, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), 1000)
	seedProject(t, db, enum.ProjectStatusCompleted, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), 500)
	seedProject(t, db, enum.ProjectStatusCompleted, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 200)
	// Non-completed profit never counts
	seedProject(t, db, enum.ProjectStatusOngoing, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), 9999)

	points, err := svc.GetMonthlyProfit(ctx)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2025-01", points[0].Month)
	assert.Equal(t, 200.0, points[0].Profit)
	assert.Equal(t, "2025-03", points[1].Month)
	assert.Equal(t, 1500.0, points[1].Profit)
}

func TestMonthOverMonth(t *testing.T) {
	svc, db := newDashboardService(t)
	ctx := context.Background()

	// now is pinned to 2025-08-20
	seedProject(t, db, enum.ProjectStatusCompleted, time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC), 3000)
	seedProject(t, db, enum.ProjectStatusCompleted, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), 1000)
	seedProject(t, db, enum.ProjectStatusCompleted, time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC), 1000)

	cmp, err := svc.GetMonthOverMonth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cmp.CurrentCount)
	assert.Equal(t, int64(2), cmp.PreviousCount)
	assert.InDelta(t, -50.0, cmp.CountChangePct, 1e-9)
	assert.InDelta(t, 3000.0, cmp.CurrentProfit, 1e-9)
	assert.InDelta(t, 2000.0, cmp.PreviousProfit, 1e-9)
	assert.InDelta(t, 50.0, cmp.ProfitChangePct, 1e-9)
}

func TestFYProfitSums(t *testing.T) {
	svc, db := newDashboardService(t)
	ctx := context.Background()

	// FY 2025 runs April 2025 through March 2026
	seedProject(t, db, enum.ProjectStatusCompleted, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 4000)
	seedProject(t, db, enum.ProjectStatusCompleted, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 1000)
	// FY 2024: March 2025 is still the previous financial year
	seedProject(t, db, enum.ProjectStatusCompleted, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), 700)

	sums, err := svc.GetFYProfitSums(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2025, sums.ThisFYStartYear)
	assert.InDelta(t, 5000.0, sums.ThisFY, 1e-9)
	assert.InDelta(t, 700.0, sums.LastFY, 1e-9)
}

func TestFYMonthlySeriesZeroFilled(t *testing.T) {
	svc, db := newDashboardService(t)
	ctx := context.Background()

	seedProject(t, db, enum.ProjectStatusCompleted, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 2500)

	points, err := svc.GetFYMonthlySeries(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, points, 12)

	assert.Equal(t, "April", points[0].Month)
	assert.Equal(t, "March", points[11].Month)
	for _, p := range points {
		if p.Month == "June" {
			assert.Equal(t, 2500.0, p.Profit)
		} else {
			assert.Equal(t, 0.0, p.Profit)
		}
	}
}
