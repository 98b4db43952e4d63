package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/projection-calculator/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parameters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
initial_amount: 25000
base_contribution: 1000
annual_return_rate: 0.07
target: 1000000
horizon_years: 20
contribute_at_start: true
use_real_rate: false
default_annual_inflation: 0.025
inflation_schedule: [0.032, 0.028]
contribution_policy:
  kind: annual_growth
  growth_rate: 0.03
`)

	params, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "25000", params.InitialAmount.String())
	assert.Equal(t, "1000", params.BaseContribution.String())
	assert.Equal(t, 0.07, params.AnnualReturnRate)
	assert.Equal(t, 20.0, params.HorizonYears)
	assert.True(t, params.ContributeAtStart)
	assert.Equal(t, []float64{0.032, 0.028}, params.InflationSchedule)
	assert.Equal(t, domain.PolicyAnnualGrowth, params.ContributionPolicy.Kind)
	assert.Equal(t, 0.03, params.ContributionPolicy.GrowthRate)
}

func TestLoadFromFileClampsRates(t *testing.T) {
	path := writeConfig(t, `
annual_return_rate: -3
default_annual_inflation: -2
inflation_schedule: [-5, 0.02]
contribution_policy:
  kind: constant
`)

	params, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.MinRate, params.AnnualReturnRate)
	assert.Equal(t, domain.MinRate, params.DefaultAnnualInflation)
	assert.Equal(t, []float64{domain.MinRate, 0.02}, params.InflationSchedule)
}

func TestLoadFromFileScheduleText(t *testing.T) {
	path := writeConfig(t, `
target: 50000
horizon_years: 5
inflation_schedule_text: "2.5%; 3% 2,8%"
contribution_policy:
  kind: inflation_linked
`)

	params, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, params.InflationSchedule, 3)
	assert.InDelta(t, 0.025, params.InflationSchedule[0], 1e-12)
	assert.InDelta(t, 0.03, params.InflationSchedule[1], 1e-12)
	assert.InDelta(t, 0.028, params.InflationSchedule[2], 1e-12)
}

func TestLoadFromFileExplicitScheduleWinsOverText(t *testing.T) {
	path := writeConfig(t, `
inflation_schedule: [0.01]
inflation_schedule_text: "9%"
contribution_policy:
  kind: constant
`)

	params, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.01}, params.InflationSchedule)
}

func TestLoadFromFileUnknownPolicyKind(t *testing.T) {
	path := writeConfig(t, `
contribution_policy:
  kind: quarterly_growth
`)

	_, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestExampleConfigRoundTrips(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.WriteExampleConfig(path))

	params, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	example := parser.CreateExampleParameters()
	assert.True(t, params.InitialAmount.Equal(example.InitialAmount))
	assert.Equal(t, example.HorizonYears, params.HorizonYears)
	assert.Equal(t, example.InflationSchedule, params.InflationSchedule)
	assert.Equal(t, example.ContributionPolicy.Kind, params.ContributionPolicy.Kind)
}
