package service

import (
	"context"
	"sort"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	"github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/pkg/finance"
)

// DashboardService aggregates project data for the admin dashboard
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

// StatusCounts represents project tallies per lifecycle stage. Rows
// carrying a value outside the known statuses land in Unknown.
type StatusCounts struct {
	Upcoming  int64 `json:"upcoming"`
	Ongoing   int64 `json:"ongoing"`
	Completed int64 `json:"completed"`
	Unknown   int64 `json:"unknown"`
	Total     int64 `json:"total"`
}

// GetStatusCounts tallies projects by status
func (s *DashboardService) GetStatusCounts(ctx context.Context) (*StatusCounts, error) {
	raw, err := s.analyticsRepo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	counts := &StatusCounts{}
	for status, n := range raw {
		switch enum.ProjectStatus(status) {
		case enum.ProjectStatusUpcoming:
			counts.Upcoming += n
		case enum.ProjectStatusOngoing:
			counts.Ongoing += n
		case enum.ProjectStatusCompleted:
			counts.Completed += n
		default:
			counts.Unknown += n
		}
		counts.Total += n
	}
	return counts, nil
}

// MonthlyProfitPoint is one month's summed profit
type MonthlyProfitPoint struct {
	Month  string  `json:"month"`
	Profit float64 `json:"profit"`
}

// GetMonthlyProfit groups completed-project profit by calendar month,
// keys ascending with no duplicates
func (s *DashboardService) GetMonthlyProfit(ctx context.Context) ([]MonthlyProfitPoint, error) {
	// Wide window: everything up to a year past now
	rows, err := s.analyticsRepo.CompletedProfitRowsBetween(ctx, time.Time{}, s.now().AddDate(1, 0, 0))
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]float64)
	for _, row := range rows {
		byMonth[finance.MonthKey(row.ProjectDate)] += row.Profit
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]MonthlyProfitPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, MonthlyProfitPoint{Month: k, Profit: byMonth[k]})
	}
	return points, nil
}

// MonthOverMonth compares the current month against the previous one
type MonthOverMonth struct {
	CurrentCount    int64   `json:"current_count"`
	PreviousCount   int64   `json:"previous_count"`
	CountChangePct  float64 `json:"count_change_pct"`
	CurrentProfit   float64 `json:"current_profit"`
	PreviousProfit  float64 `json:"previous_profit"`
	ProfitChangePct float64 `json:"profit_change_pct"`
}

// GetMonthOverMonth compares completed-project counts and profit for
// the current and previous calendar months
func (s *DashboardService) GetMonthOverMonth(ctx context.Context) (*MonthOverMonth, error) {
	now := s.now()
	curFrom, curTo := finance.MonthWindow(now)
	prevFrom, prevTo := finance.PreviousMonthWindow(now)

	curCount, err := s.analyticsRepo.CountCompletedBetween(ctx, curFrom, curTo)
	if err != nil {
		return nil, err
	}
	prevCount, err := s.analyticsRepo.CountCompletedBetween(ctx, prevFrom, prevTo)
	if err != nil {
		return nil, err
	}
	curProfit, err := s.analyticsRepo.SumCompletedProfitBetween(ctx, curFrom, curTo)
	if err != nil {
		return nil, err
	}
	prevProfit, err := s.analyticsRepo.SumCompletedProfitBetween(ctx, prevFrom, prevTo)
	if err != nil {
		return nil, err
	}

	return &MonthOverMonth{
		CurrentCount:    curCount,
		PreviousCount:   prevCount,
		CountChangePct:  finance.PercentChange(float64(curCount), float64(prevCount)),
		CurrentProfit:   curProfit,
		PreviousProfit:  prevProfit,
		ProfitChangePct: finance.PercentChange(curProfit, prevProfit),
	}, nil
}

// FYProfitSums carries the completed-project profit for the current and
// previous financial years
type FYProfitSums struct {
	ThisFYStartYear int     `json:"this_fy_start_year"`
	ThisFY          float64 `json:"this_fy"`
	LastFY          float64 `json:"last_fy"`
}

// GetFYProfitSums sums completed-project profit for the financial year
// containing now and the one before it
func (s *DashboardService) GetFYProfitSums(ctx context.Context) (*FYProfitSums, error) {
	now := s.now()
	startYear := finance.FYStartYear(now)

	thisFrom, thisTo := finance.FYWindow(startYear, now.Location())
	lastFrom, lastTo := finance.FYWindow(startYear-1, now.Location())

	thisFY, err := s.analyticsRepo.SumCompletedProfitBetween(ctx, thisFrom, thisTo)
	if err != nil {
		return nil, err
	}
	lastFY, err := s.analyticsRepo.SumCompletedProfitBetween(ctx, lastFrom, lastTo)
	if err != nil {
		return nil, err
	}

	return &FYProfitSums{
		ThisFYStartYear: startYear,
		ThisFY:          thisFY,
		LastFY:          lastFY,
	}, nil
}

// GetFYMonthlySeries returns completed-project profit per month of the
// financial year beginning April of startYear, in fixed Apr..Mar order
// with zero-filled months
func (s *DashboardService) GetFYMonthlySeries(ctx context.Context, startYear int) ([]MonthlyProfitPoint, error) {
	from, to := finance.FYWindow(startYear, s.now().Location())
	rows, err := s.analyticsRepo.CompletedProfitRowsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[time.Month]float64, 12)
	for _, row := range rows {
		byMonth[row.ProjectDate.Month()] += row.Profit
	}

	points := make([]MonthlyProfitPoint, 0, 12)
	for _, m := range finance.FYMonths {
		points = append(points, MonthlyProfitPoint{
			Month:  m.String(),
			Profit: byMonth[m],
		})
	}
	return points, nil
}
