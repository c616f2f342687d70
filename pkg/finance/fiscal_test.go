package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFYStartYear(t *testing.T) {
	assert.Equal(t, 2023, FYStartYear(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2024, FYStartYear(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2024, FYStartYear(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, FYStartYear(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestFYWindow(t *testing.T) {
	from, to := FYWindow(2024, time.UTC)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestMonthWindowYearRollover(t *testing.T) {
	now := time.Date(2025, time.January, 20, 13, 45, 0, 0, time.UTC)

	from, to := MonthWindow(now)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), to)

	from, to = PreviousMonthWindow(now)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-08", MonthKey(time.Date(2025, time.August, 9, 0, 0, 0, 0, time.UTC)))
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 0.0, PercentChange(500, 0))
	assert.Equal(t, 0.0, PercentChange(0, 0))
	assert.Equal(t, 0.0, PercentChange(-42, 0))
	assert.InDelta(t, 100.0, PercentChange(200, 100), 1e-9)
	assert.InDelta(t, -50.0, PercentChange(50, 100), 1e-9)
}

func TestFYMonthsOrder(t *testing.T) {
	assert.Equal(t, time.April, FYMonths[0])
	assert.Equal(t, time.December, FYMonths[8])
	assert.Equal(t, time.March, FYMonths[11])
}
