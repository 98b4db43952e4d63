package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rpgo/projection-calculator/internal/domain"
)

const (
	maxDoublingSteps      = 50
	contributionBoundCap  = 1e9
	contributionBisection = 80
)

// RequiredContribution finds a base contribution sufficient to reach the
// target within the horizon, with the simulator as oracle. The configured
// BaseContribution is ignored.
//
// The search doubles an upper bound from max(100, target/horizonMonths) until
// a sufficient amount is found, then bisects between zero and that bound. The
// returned value is the final bracket's upper bound, a deliberate
// over-approximation of the minimal sufficient amount. If doubling never
// finds a sufficient bound the bisection still runs against the bound
// reached, and the result is approximate.
func (ce *CalculationEngine) RequiredContribution(params domain.SimulationParameters) decimal.Decimal {
	p := params.Normalize()
	months := p.HorizonMonths()
	target := p.Target.InexactFloat64()

	reachesTarget := func(amount float64) bool {
		trial := p
		trial.BaseContribution = decimal.NewFromFloat(amount)
		result := ce.Project(trial)
		if result.TargetReachedMonth != nil && *result.TargetReachedMonth <= months {
			return true
		}
		idx := months
		if idx >= len(result.Series) {
			idx = len(result.Series) - 1
		}
		return result.Series[idx].Balance.InexactFloat64() >= target
	}

	upper := math.Max(100, target/float64(months))
	found := reachesTarget(upper)
	for i := 0; i < maxDoublingSteps && !found && upper <= contributionBoundCap; i++ {
		upper *= 2
		found = reachesTarget(upper)
	}
	if !found {
		ce.Logger.Warnf("required-contribution search found no sufficient bound below %.2f; result is approximate", upper)
	}

	lo, hi := 0.0, upper
	for i := 0; i < contributionBisection; i++ {
		mid := (lo + hi) / 2
		if reachesTarget(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	ce.Logger.Debugf("required-contribution bracket after %d bisections: [%.6f, %.6f]", contributionBisection, lo, hi)
	return decimal.NewFromFloat(hi)
}
