package repository

import (
	"context"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	domainRepo "github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) StatusCounts(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	err := conn(ctx, r.db).Model(&entity.Project{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *analyticsRepository) SumCompletedProfitBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := conn(ctx, r.db).Model(&entity.Project{}).
		Select("COALESCE(SUM(profit), 0)").
		Where("status = ? AND project_date >= ? AND project_date < ?", enum.ProjectStatusCompleted, from, to).
		Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) CountCompletedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.Project{}).
		Where("status = ? AND project_date >= ? AND project_date < ?", enum.ProjectStatusCompleted, from, to).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CompletedProfitRowsBetween(ctx context.Context, from, to time.Time) ([]domainRepo.ProfitRow, error) {
	var rows []domainRepo.ProfitRow
	err := conn(ctx, r.db).Model(&entity.Project{}).
		Select("project_date, profit").
		Where("status = ? AND project_date >= ? AND project_date < ?", enum.ProjectStatusCompleted, from, to).
		Order("project_date ASC").
		Scan(&rows).Error
	return rows, err
}
