package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/projection-calculator/internal/domain"
)

// InputParser handles parsing of parameter files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// fileParameters is the on-disk shape: the domain parameters plus an
// optional free-text schedule that takes effect when no explicit schedule is
// given.
type fileParameters struct {
	domain.SimulationParameters `yaml:",inline"`

	InflationScheduleText string `yaml:"inflation_schedule_text,omitempty"`
}

// LoadFromFile loads simulation parameters from a YAML file. Out-of-range
// numeric values are clamped, not rejected; only structurally broken YAML
// and unknown policy kinds are errors. A free-text inflation schedule is
// tokenized when no explicit schedule is present.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file fileParameters
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := file.ContributionPolicy.Validate(); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	params := file.SimulationParameters
	if len(params.InflationSchedule) == 0 && file.InflationScheduleText != "" {
		params.InflationSchedule = ParseScheduleText(file.InflationScheduleText)
	}
	params = params.Normalize()
	return &params, nil
}

// CreateExampleParameters returns a parameter set suitable as a starting
// config: a 20-year run toward a million with inflation-linked contributions.
func (ip *InputParser) CreateExampleParameters() domain.SimulationParameters {
	return domain.SimulationParameters{
		InitialAmount:          decimal.NewFromInt(25000),
		BaseContribution:       decimal.NewFromInt(1000),
		AnnualReturnRate:       0.07,
		Target:                 decimal.NewFromInt(1000000),
		HorizonYears:           20,
		ContributeAtStart:      true,
		UseRealRate:            false,
		DefaultAnnualInflation: 0.025,
		InflationSchedule:      []float64{0.032, 0.028, 0.025},
		ContributionPolicy: domain.ContributionPolicy{
			Kind: domain.PolicyInflationLinked,
		},
	}
}

// WriteExampleConfig writes the example parameter set as YAML.
func (ip *InputParser) WriteExampleConfig(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleParameters())
	if err != nil {
		return fmt.Errorf("failed to marshal example parameters: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
