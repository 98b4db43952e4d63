package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyRecord is one point of the simulated series. Record 0 is the seed
// state before any contribution; records are strictly increasing by Month.
type MonthlyRecord struct {
	Month                   int             `json:"month"`
	Balance                 decimal.Decimal `json:"balance"`
	CumulativeContributions decimal.Decimal `json:"cumulative_contributions"`
	CumulativeGains         decimal.Decimal `json:"cumulative_gains"`
	Contribution            decimal.Decimal `json:"contribution"`
}

// ProjectionResult is the complete output of a simulation run.
// TargetReachedMonth is nil when the target was not met within the horizon;
// that is an ordinary outcome, not an error.
type ProjectionResult struct {
	Series                  []MonthlyRecord `json:"series"`
	TargetReachedMonth      *int            `json:"target_reached_month,omitempty"`
	NominalMonthlyRate      float64         `json:"nominal_monthly_rate"`
	AverageMonthlyInflation float64         `json:"average_monthly_inflation"`
}

// TargetReached reports whether the target was met within the horizon.
func (pr *ProjectionResult) TargetReached() bool {
	return pr.TargetReachedMonth != nil
}

// FinalRecord returns the last record of the series.
func (pr *ProjectionResult) FinalRecord() MonthlyRecord {
	return pr.Series[len(pr.Series)-1]
}

// PlanSummary is the answer to "what does it take to reach the target within
// the horizon": the sufficient base contribution at the configured return
// rate, and the required annual return rate at the configured contribution.
// RequiredAnnualRate is nil when no rate in the search window suffices.
type PlanSummary struct {
	HorizonMonths        int             `json:"horizon_months"`
	RequiredContribution decimal.Decimal `json:"required_contribution"`
	RequiredAnnualRate   *float64        `json:"required_annual_rate,omitempty"`
}

// ProjectionReport bundles a run's inputs and outputs for the formatters.
type ProjectionReport struct {
	Parameters SimulationParameters `json:"parameters"`
	Result     *ProjectionResult    `json:"result"`
	Plan       *PlanSummary         `json:"plan,omitempty"`
}

// SensitivityRequest describes the perturbation grid: each rate offset is
// added to the annual return rate, each scale multiplies the base
// contribution, and the projection is re-run for every combination.
type SensitivityRequest struct {
	RateOffsets        []float64 `yaml:"rate_offsets" json:"rate_offsets"`
	ContributionScales []float64 `yaml:"contribution_scales" json:"contribution_scales"`
}

// DefaultSensitivityRequest covers return rates +/- two points around the
// base and contributions from 50% to 150% of the base.
func DefaultSensitivityRequest() SensitivityRequest {
	return SensitivityRequest{
		RateOffsets:        []float64{-0.02, -0.01, 0, 0.01, 0.02},
		ContributionScales: []float64{0.5, 0.75, 1.0, 1.25, 1.5},
	}
}

// SensitivityCell is a single perturbed outcome.
type SensitivityCell struct {
	AnnualReturnRate   float64         `json:"annual_return_rate"`
	BaseContribution   decimal.Decimal `json:"base_contribution"`
	FinalBalance       decimal.Decimal `json:"final_balance"`
	TargetReachedMonth *int            `json:"target_reached_month,omitempty"`
}

// SensitivityGrid holds every perturbed outcome, one row per rate offset and
// one column per contribution scale, in request order.
type SensitivityGrid struct {
	Request SensitivityRequest  `json:"request"`
	Cells   [][]SensitivityCell `json:"cells"`
}
