package calculation

import (
	"github.com/rpgo/projection-calculator/internal/domain"
)

// monthlyStep advances the balance by one month. With start-of-month timing
// the contribution is added before growth and earns the month's return; with
// end-of-month timing growth applies first and the contribution earns
// nothing that month. Shared by the simulator and the rate solver.
func monthlyStep(balance, rate, contribution float64, contributeAtStart bool) float64 {
	if contributeAtStart {
		return (balance + contribution) * (1 + rate)
	}
	return balance*(1+rate) + contribution
}

// Project runs the month-by-month simulation and returns the full series.
//
// Record 0 seeds the series with the initial amount counted as a
// contribution; if the seed already meets the target, the target month is 0.
// Each subsequent month resolves inflation, derives the effective monthly
// rate (inflation-discounted when UseRealRate is set, otherwise the constant
// nominal monthly rate), evaluates the contribution policy, and applies
// growth and contribution in the configured order. The first month whose
// post-update balance meets the target is recorded and never overwritten.
func (ce *CalculationEngine) Project(params domain.SimulationParameters) *domain.ProjectionResult {
	p := params.Normalize()
	months := p.HorizonMonths()

	target := p.Target.InexactFloat64()
	base := p.BaseContribution.InexactFloat64()
	nominalMonthly := annualToMonthlyRate(p.AnnualReturnRate)

	balance := p.InitialAmount.InexactFloat64()
	cumulativeContributions := balance

	series := make([]domain.MonthlyRecord, 0, months+1)
	series = append(series, newRecord(0, balance, cumulativeContributions, 0))

	var reached *int
	if balance >= target {
		seed := 0
		reached = &seed
	}

	var inflationSum float64
	for month := 1; month <= months; month++ {
		monthlyInflation := MonthlyInflationForMonth(month, p.DefaultAnnualInflation, p.InflationSchedule)
		inflationSum += monthlyInflation

		rate := nominalMonthly
		if p.UseRealRate {
			rate = (1+nominalMonthly)/(1+monthlyInflation) - 1
		}

		contribution := ContributionForMonth(month, base, p.ContributionPolicy, p.DefaultAnnualInflation, p.InflationSchedule)
		balance = monthlyStep(balance, rate, contribution, p.ContributeAtStart)
		cumulativeContributions += contribution

		series = append(series, newRecord(month, balance, cumulativeContributions, contribution))
		if reached == nil && balance >= target {
			m := month
			reached = &m
		}
	}

	return &domain.ProjectionResult{
		Series:                  series,
		TargetReachedMonth:      reached,
		NominalMonthlyRate:      nominalMonthly,
		AverageMonthlyInflation: inflationSum / float64(months),
	}
}

func newRecord(month int, balance, cumulativeContributions, contribution float64) domain.MonthlyRecord {
	return domain.MonthlyRecord{
		Month:                   month,
		Balance:                 dec(balance),
		CumulativeContributions: dec(cumulativeContributions),
		CumulativeGains:         dec(balance - cumulativeContributions),
		Contribution:            dec(contribution),
	}
}
