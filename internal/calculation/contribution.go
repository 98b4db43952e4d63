package calculation

import (
	"math"

	"github.com/rpgo/projection-calculator/internal/domain"
)

// ContributionForMonth computes the contribution due in a one-based month
// under the given policy. Annual policies step up at the adjustment-year
// boundary, floor(month/12): months 1-11 pay the unadjusted amount and the
// first step lands exactly on month 12. Unknown policy kinds behave as
// constant so the evaluator is total.
func ContributionForMonth(month int, base float64, policy domain.ContributionPolicy, defaultInflation float64, schedule []float64) float64 {
	if month < 1 {
		month = 1
	}
	adjustmentYears := month / 12

	switch policy.Kind {
	case domain.PolicyMonthlyGrowth:
		growth := domain.ClampRate(policy.GrowthRate)
		return base * math.Pow(1+growth, float64(month-1))

	case domain.PolicyAnnualGrowth:
		growth := domain.ClampRate(policy.GrowthRate)
		return base * math.Pow(1+growth, float64(adjustmentYears))

	case domain.PolicyInflationLinked:
		factor := 1.0
		for year := 1; year <= adjustmentYears; year++ {
			factor *= 1 + AnnualInflationForYear(year, defaultInflation, schedule)
		}
		return base * factor

	case domain.PolicyRealLinked:
		extra := domain.ClampRate(policy.ExtraRate)
		factor := 1.0
		for year := 1; year <= adjustmentYears; year++ {
			factor *= (1 + AnnualInflationForYear(year, defaultInflation, schedule)) * (1 + extra)
		}
		return base * factor

	default:
		return base
	}
}
