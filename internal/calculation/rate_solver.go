package calculation

import (
	"math"

	"github.com/rpgo/projection-calculator/internal/domain"
)

const (
	rateSearchMin  = -0.9
	rateSearchMax  = 1.0
	rateBisections = 160
)

// RequiredRate finds the smallest annual return rate at which the configured
// contribution reaches the target within the horizon, or nil when no monthly
// rate in [-0.9, 1.0] suffices. The configured AnnualReturnRate is ignored.
//
// Candidates are monthly rates applied directly as the growth rate of an
// inline month loop; UseRealRate plays no part inside the loop and is
// handled only by the final conversion. A candidate whose balance turns
// non-finite stops its loop early and is judged on that value. The found
// monthly rate is annualized, and when UseRealRate is set it is further
// compounded with the average annual inflation — the unweighted arithmetic
// mean of the schedule (or the flat default), not the per-year compounding
// average used by the schedule lookups.
func (ce *CalculationEngine) RequiredRate(params domain.SimulationParameters) *float64 {
	p := params.Normalize()
	months := p.HorizonMonths()
	initial := p.InitialAmount.InexactFloat64()
	base := p.BaseContribution.InexactFloat64()
	target := p.Target.InexactFloat64()

	finalBalance := func(monthlyRate float64) float64 {
		balance := initial
		for month := 1; month <= months; month++ {
			contribution := ContributionForMonth(month, base, p.ContributionPolicy, p.DefaultAnnualInflation, p.InflationSchedule)
			balance = monthlyStep(balance, monthlyRate, contribution, p.ContributeAtStart)
			if math.IsInf(balance, 0) || math.IsNaN(balance) {
				break
			}
		}
		return balance
	}

	lo, hi := rateSearchMin, rateSearchMax
	var monthly float64
	solved := false
	for i := 0; i < rateBisections; i++ {
		mid := (lo + hi) / 2
		if finalBalance(mid) >= target {
			monthly = mid
			solved = true
			hi = mid
		} else {
			lo = mid
		}
	}
	if !solved {
		ce.Logger.Debugf("required-rate search exhausted [%v, %v] without reaching the target", rateSearchMin, rateSearchMax)
		return nil
	}

	annual := math.Pow(1+monthly, 12) - 1
	if p.UseRealRate {
		annual = (1+annual)*(1+averageAnnualInflation(p)) - 1
	}
	return &annual
}

// averageAnnualInflation is the unweighted mean of the schedule, or the flat
// default rate when no schedule is supplied.
func averageAnnualInflation(p domain.SimulationParameters) float64 {
	if len(p.InflationSchedule) == 0 {
		return p.DefaultAnnualInflation
	}
	sum := 0.0
	for _, rate := range p.InflationSchedule {
		sum += rate
	}
	return sum / float64(len(p.InflationSchedule))
}
