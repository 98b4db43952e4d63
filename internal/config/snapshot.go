package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/projection-calculator/internal/domain"
)

// Snapshot keys. The snapshot is the flat key-value form in which a caller
// persists the last-used parameter set.
const (
	keyInitialAmount          = "initial_amount"
	keyBaseContribution       = "base_contribution"
	keyAnnualReturnRate       = "annual_return_rate"
	keyTarget                 = "target"
	keyHorizonYears           = "horizon_years"
	keyContributeAtStart      = "contribute_at_start"
	keyUseRealRate            = "use_real_rate"
	keyDefaultAnnualInflation = "default_annual_inflation"
	keyInflationSchedule      = "inflation_schedule"
	keyPolicyKind             = "policy_kind"
	keyPolicyGrowthRate       = "policy_growth_rate"
	keyPolicyExtraRate        = "policy_extra_rate"
)

// Snapshot flattens a parameter set to a string map.
func Snapshot(p domain.SimulationParameters) map[string]string {
	kv := map[string]string{
		keyInitialAmount:          p.InitialAmount.String(),
		keyBaseContribution:       p.BaseContribution.String(),
		keyAnnualReturnRate:       formatFloat(p.AnnualReturnRate),
		keyTarget:                 p.Target.String(),
		keyHorizonYears:           formatFloat(p.HorizonYears),
		keyContributeAtStart:      strconv.FormatBool(p.ContributeAtStart),
		keyUseRealRate:            strconv.FormatBool(p.UseRealRate),
		keyDefaultAnnualInflation: formatFloat(p.DefaultAnnualInflation),
		keyPolicyKind:             string(p.ContributionPolicy.Kind),
		keyPolicyGrowthRate:       formatFloat(p.ContributionPolicy.GrowthRate),
		keyPolicyExtraRate:        formatFloat(p.ContributionPolicy.ExtraRate),
	}
	if len(p.InflationSchedule) > 0 {
		rates := make([]string, len(p.InflationSchedule))
		for i, rate := range p.InflationSchedule {
			rates[i] = formatFloat(rate)
		}
		kv[keyInflationSchedule] = strings.Join(rates, ",")
	}
	return kv
}

// FromSnapshot restores a parameter set from a flat string map. Missing keys
// leave zero values and unparseable values are ignored; the caller gets a
// usable parameter set from whatever was stored.
func FromSnapshot(kv map[string]string) domain.SimulationParameters {
	var p domain.SimulationParameters
	p.InitialAmount = snapshotMoney(kv, keyInitialAmount)
	p.BaseContribution = snapshotMoney(kv, keyBaseContribution)
	p.Target = snapshotMoney(kv, keyTarget)
	p.AnnualReturnRate = snapshotFloat(kv, keyAnnualReturnRate)
	p.HorizonYears = snapshotFloat(kv, keyHorizonYears)
	p.DefaultAnnualInflation = snapshotFloat(kv, keyDefaultAnnualInflation)
	p.ContributeAtStart, _ = strconv.ParseBool(kv[keyContributeAtStart])
	p.UseRealRate, _ = strconv.ParseBool(kv[keyUseRealRate])
	if text, ok := kv[keyInflationSchedule]; ok {
		p.InflationSchedule = ParseScheduleText(text)
	}
	p.ContributionPolicy = domain.ContributionPolicy{
		Kind:       domain.PolicyKind(kv[keyPolicyKind]),
		GrowthRate: snapshotFloat(kv, keyPolicyGrowthRate),
		ExtraRate:  snapshotFloat(kv, keyPolicyExtraRate),
	}
	return p
}

// SaveSnapshot writes the flattened parameter set to a YAML file.
func SaveSnapshot(filename string, p domain.SimulationParameters) error {
	data, err := yaml.Marshal(Snapshot(p))
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", filename, err)
	}
	return nil
}

// LoadSnapshot reads a flattened parameter set back from a YAML file.
func LoadSnapshot(filename string) (*domain.SimulationParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", filename, err)
	}
	var kv map[string]string
	if err := yaml.Unmarshal(data, &kv); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	p := FromSnapshot(kv)
	return &p, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func snapshotFloat(kv map[string]string, key string) float64 {
	v, err := strconv.ParseFloat(kv[key], 64)
	if err != nil {
		return 0
	}
	return v
}

func snapshotMoney(kv map[string]string, key string) decimal.Decimal {
	d, err := decimal.NewFromString(kv[key])
	if err != nil {
		return decimal.Zero
	}
	return d
}
