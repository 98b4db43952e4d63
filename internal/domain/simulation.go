package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MinRate is the floor applied to every rate input so that 1+rate stays
// strictly positive.
const MinRate = -0.99

// PolicyKind names a contribution growth policy.
type PolicyKind string

const (
	// PolicyConstant keeps the base contribution unchanged for the whole run.
	PolicyConstant PolicyKind = "constant"
	// PolicyMonthlyGrowth compounds the contribution by a fixed rate every month.
	PolicyMonthlyGrowth PolicyKind = "monthly_growth"
	// PolicyAnnualGrowth steps the contribution up by a fixed rate once per elapsed year.
	PolicyAnnualGrowth PolicyKind = "annual_growth"
	// PolicyInflationLinked steps the contribution up by the resolved inflation rate once per elapsed year.
	PolicyInflationLinked PolicyKind = "inflation_linked"
	// PolicyRealLinked compounds inflation plus an extra real growth rate once per elapsed year.
	PolicyRealLinked PolicyKind = "real_linked"
)

// ContributionPolicy is the tagged variant selecting how the monthly
// contribution evolves. GrowthRate applies to the monthly_growth and
// annual_growth kinds; ExtraRate applies to real_linked.
type ContributionPolicy struct {
	Kind       PolicyKind `yaml:"kind" json:"kind"`
	GrowthRate float64    `yaml:"growth_rate,omitempty" json:"growth_rate,omitempty"`
	ExtraRate  float64    `yaml:"extra_rate,omitempty" json:"extra_rate,omitempty"`
}

// Validate rejects unknown policy kinds. An empty kind is accepted and means
// constant. The calculation engine itself never calls this; it treats unknown
// kinds as constant so that every parameter set simulates.
func (p ContributionPolicy) Validate() error {
	switch p.Kind {
	case "", PolicyConstant, PolicyMonthlyGrowth, PolicyAnnualGrowth, PolicyInflationLinked, PolicyRealLinked:
		return nil
	}
	return fmt.Errorf("unknown contribution policy kind %q", p.Kind)
}

// SimulationParameters is the full input to a projection run. Out-of-range
// values are clamped by Normalize rather than rejected; a negative initial
// amount or target is simulated literally.
type SimulationParameters struct {
	InitialAmount          decimal.Decimal    `yaml:"initial_amount" json:"initial_amount"`
	BaseContribution       decimal.Decimal    `yaml:"base_contribution" json:"base_contribution"`
	AnnualReturnRate       float64            `yaml:"annual_return_rate" json:"annual_return_rate"`
	Target                 decimal.Decimal    `yaml:"target" json:"target"`
	HorizonYears           float64            `yaml:"horizon_years" json:"horizon_years"`
	ContributeAtStart      bool               `yaml:"contribute_at_start" json:"contribute_at_start"`
	UseRealRate            bool               `yaml:"use_real_rate" json:"use_real_rate"`
	DefaultAnnualInflation float64            `yaml:"default_annual_inflation" json:"default_annual_inflation"`
	InflationSchedule      []float64          `yaml:"inflation_schedule,omitempty" json:"inflation_schedule,omitempty"`
	ContributionPolicy     ContributionPolicy `yaml:"contribution_policy" json:"contribution_policy"`
}

// ClampRate floors a rate at MinRate.
func ClampRate(rate float64) float64 {
	if rate < MinRate {
		return MinRate
	}
	return rate
}

// Normalize returns a copy with every rate floored at MinRate. The schedule
// is copied, so the result does not alias the receiver's slice.
func (p SimulationParameters) Normalize() SimulationParameters {
	p.AnnualReturnRate = ClampRate(p.AnnualReturnRate)
	p.DefaultAnnualInflation = ClampRate(p.DefaultAnnualInflation)
	p.ContributionPolicy.GrowthRate = ClampRate(p.ContributionPolicy.GrowthRate)
	p.ContributionPolicy.ExtraRate = ClampRate(p.ContributionPolicy.ExtraRate)
	if len(p.InflationSchedule) > 0 {
		schedule := make([]float64, len(p.InflationSchedule))
		for i, rate := range p.InflationSchedule {
			schedule[i] = ClampRate(rate)
		}
		p.InflationSchedule = schedule
	}
	return p
}

// HorizonMonths converts the horizon to whole months, never fewer than one.
func (p SimulationParameters) HorizonMonths() int {
	months := int(math.Floor(p.HorizonYears * 12))
	if months < 1 {
		months = 1
	}
	return months
}
