package finance

import "time"

// FYMonths lists the months of an Indian financial year in order,
// April first.
var FYMonths = [12]time.Month{
	time.April, time.May, time.June, time.July,
	time.August, time.September, time.October, time.November,
	time.December, time.January, time.February, time.March,
}

// FYStartYear returns the calendar year in which the financial year
// containing t begins. January through March belong to the FY that
// started the previous April.
func FYStartYear(t time.Time) int {
	if t.Month() < time.April {
		return t.Year() - 1
	}
	return t.Year()
}

// FYWindow returns the half-open [from, to) range for the financial
// year beginning April 1 of startYear.
func FYWindow(startYear int, loc *time.Location) (from, to time.Time) {
	from = time.Date(startYear, time.April, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(1, 0, 0)
}

// MonthWindow returns the half-open range covering the calendar month
// containing t.
func MonthWindow(t time.Time) (from, to time.Time) {
	from = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}

// PreviousMonthWindow returns the window for the month before the one
// containing t, rolling over year boundaries.
func PreviousMonthWindow(t time.Time) (from, to time.Time) {
	to, _ = MonthWindow(t)
	return to.AddDate(0, -1, 0), to
}

// MonthKey formats t as a YYYY-MM grouping key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// PercentChange returns the percentage change from previous to current.
// A zero previous value yields zero rather than a division error.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
