package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rpgo/projection-calculator/internal/domain"
)

// CalculationEngine runs projections and the inverse solvers. It holds no
// mutable state beyond the logger; every method is pure given its inputs and
// safe to call concurrently across independent parameter sets.
//
// Monetary inputs and outputs are decimal at the domain boundary; the
// iterative math inside runs on float64, which the root searches and the
// fractional-exponent rate conversions require.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates an engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Plan answers the "plan by horizon" question for a parameter set: the base
// contribution sufficient to reach the target within the horizon, and the
// annual return rate required at the configured contribution (nil when no
// rate in the search window suffices).
func (ce *CalculationEngine) Plan(params domain.SimulationParameters) *domain.PlanSummary {
	p := params.Normalize()
	return &domain.PlanSummary{
		HorizonMonths:        p.HorizonMonths(),
		RequiredContribution: ce.RequiredContribution(p),
		RequiredAnnualRate:   ce.RequiredRate(p),
	}
}

// dec converts an engine-internal float to a decimal for the domain
// boundary. Decimals cannot carry non-finite values, so divergent balances
// saturate instead of panicking.
func dec(v float64) decimal.Decimal {
	switch {
	case math.IsNaN(v):
		return decimal.Zero
	case math.IsInf(v, 1):
		return decimal.NewFromFloat(math.MaxFloat64)
	case math.IsInf(v, -1):
		return decimal.NewFromFloat(-math.MaxFloat64)
	}
	return decimal.NewFromFloat(v)
}
