package repository

import (
	"context"
	"time"
)

// ProfitRow carries the date and profit of a completed project, the
// raw material for monthly and financial-year series.
type ProfitRow struct {
	ProjectDate time.Time
	Profit      float64
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// StatusCounts returns project counts grouped by raw status value
	StatusCounts(ctx context.Context) (map[string]int64, error)

	// SumCompletedProfitBetween sums profit of completed projects whose
	// project date falls in [from, to)
	SumCompletedProfitBetween(ctx context.Context, from, to time.Time) (float64, error)

	// CountCompletedBetween counts completed projects whose project
	// date falls in [from, to)
	CountCompletedBetween(ctx context.Context, from, to time.Time) (int64, error)

	// CompletedProfitRowsBetween returns date/profit pairs of completed
	// projects whose project date falls in [from, to)
	CompletedProfitRowsBetween(ctx context.Context, from, to time.Time) ([]ProfitRow, error)
}
