package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualInflationForYear(t *testing.T) {
	schedule := []float64{0.05, 0.03, 0.02}

	tests := []struct {
		name        string
		year        int
		defaultRate float64
		schedule    []float64
		expected    float64
	}{
		{"no schedule uses default", 3, 0.025, nil, 0.025},
		{"empty schedule uses default", 1, 0.04, []float64{}, 0.04},
		{"first year", 1, 0.025, schedule, 0.05},
		{"second year", 2, 0.025, schedule, 0.03},
		{"last scheduled year", 3, 0.025, schedule, 0.02},
		{"past the schedule holds last value", 10, 0.025, schedule, 0.02},
		{"year below one resolves as year one", 0, 0.025, schedule, 0.05},
		{"default below floor is clamped", 1, -5, nil, -0.99},
		{"schedule entry below floor is clamped", 1, 0.025, []float64{-3}, -0.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnualInflationForYear(tt.year, tt.defaultRate, tt.schedule)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestMonthlyInflationForMonthYearBoundaries(t *testing.T) {
	schedule := []float64{0.05, 0.03}

	tests := []struct {
		name           string
		month          int
		expectedAnnual float64
	}{
		{"month 1 is year 1", 1, 0.05},
		{"month 12 is still year 1", 12, 0.05},
		{"month 13 is year 2", 13, 0.03},
		{"month 24 is still year 2", 24, 0.03},
		{"month 25 extrapolates year 2", 25, 0.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := math.Pow(1+tt.expectedAnnual, 1.0/12) - 1
			got := MonthlyInflationForMonth(tt.month, 0.10, schedule)
			assert.InDelta(t, expected, got, 1e-15)
		})
	}
}

func TestMonthlyRateCompoundsToAnnual(t *testing.T) {
	monthly := annualToMonthlyRate(0.07)
	assert.InEpsilon(t, 1.07, math.Pow(1+monthly, 12), 1e-12)
}

func TestMonthlyRateZeroAnnualIsZero(t *testing.T) {
	assert.Zero(t, annualToMonthlyRate(0))
}
