package calculation

import (
	"math"

	"github.com/rpgo/projection-calculator/internal/domain"
)

// AnnualInflationForYear resolves the inflation rate for a one-based year
// index. With no schedule it returns the default rate; past the end of the
// schedule the last entry holds indefinitely.
func AnnualInflationForYear(year int, defaultRate float64, schedule []float64) float64 {
	if len(schedule) == 0 {
		return domain.ClampRate(defaultRate)
	}
	if year < 1 {
		year = 1
	}
	if year <= len(schedule) {
		return domain.ClampRate(schedule[year-1])
	}
	return domain.ClampRate(schedule[len(schedule)-1])
}

// MonthlyInflationForMonth resolves the annual inflation for the year a
// one-based month falls in (months 1-12 are year 1, 13-24 year 2, ...) and
// converts it to the equivalent monthly rate.
func MonthlyInflationForMonth(month int, defaultRate float64, schedule []float64) float64 {
	if month < 1 {
		month = 1
	}
	year := (month + 11) / 12
	return annualToMonthlyRate(AnnualInflationForYear(year, defaultRate, schedule))
}

// annualToMonthlyRate converts an annual rate to the monthly rate that
// compounds to it over twelve months.
func annualToMonthlyRate(annual float64) float64 {
	return math.Pow(1+domain.ClampRate(annual), 1.0/12) - 1
}
