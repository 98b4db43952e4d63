package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/projection-calculator/internal/domain"
)

// ConsoleFormatter renders a human-readable summary: the input highlights,
// the outcome, the plan when present, and one series row per elapsed year.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	params := report.Parameters
	result := report.Result

	fmt.Fprintln(buf, "PROJECTION")
	fmt.Fprintf(buf, "  Initial amount:      %s\n", FormatCurrency(params.InitialAmount))
	fmt.Fprintf(buf, "  Base contribution:   %s (%s)\n", FormatCurrency(params.BaseContribution), policyLabel(params.ContributionPolicy))
	fmt.Fprintf(buf, "  Annual return:       %s\n", FormatPercent(params.AnnualReturnRate))
	fmt.Fprintf(buf, "  Target:              %s over %s\n", FormatCurrency(params.Target), FormatMonths(params.HorizonMonths()))
	if params.UseRealRate {
		fmt.Fprintln(buf, "  Rates are inflation-adjusted (real)")
	}
	fmt.Fprintln(buf)

	final := result.FinalRecord()
	if result.TargetReached() {
		fmt.Fprintf(buf, "  Target reached after %s\n", FormatMonths(*result.TargetReachedMonth))
	} else {
		fmt.Fprintln(buf, "  Target not reached within the horizon")
	}
	fmt.Fprintf(buf, "  Final balance:       %s\n", FormatCurrency(final.Balance))
	fmt.Fprintf(buf, "  Contributions:       %s\n", FormatCurrency(final.CumulativeContributions))
	fmt.Fprintf(buf, "  Gains:               %s\n", FormatCurrency(final.CumulativeGains))

	if plan := report.Plan; plan != nil {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "PLAN BY HORIZON")
		fmt.Fprintf(buf, "  Sufficient contribution: %s/month\n", FormatCurrency(plan.RequiredContribution.Round(2)))
		if plan.RequiredAnnualRate != nil {
			fmt.Fprintf(buf, "  Required annual rate:    %s\n", FormatPercent(*plan.RequiredAnnualRate))
		} else {
			fmt.Fprintln(buf, "  Required annual rate:    no rate found")
		}
	}

	fmt.Fprintln(buf)
	w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "month\tcontribution\tbalance\tcontributed\tgains\t")
	for _, record := range result.Series {
		if record.Month%12 != 0 && record.Month != len(result.Series)-1 {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
			record.Month,
			FormatCurrency(record.Contribution),
			FormatCurrency(record.Balance),
			FormatCurrency(record.CumulativeContributions),
			FormatCurrency(record.CumulativeGains),
		)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func policyLabel(policy domain.ContributionPolicy) string {
	switch policy.Kind {
	case domain.PolicyMonthlyGrowth:
		return fmt.Sprintf("growing %s monthly", FormatPercent(policy.GrowthRate))
	case domain.PolicyAnnualGrowth:
		return fmt.Sprintf("growing %s yearly", FormatPercent(policy.GrowthRate))
	case domain.PolicyInflationLinked:
		return "inflation-linked"
	case domain.PolicyRealLinked:
		return fmt.Sprintf("inflation-linked +%s", FormatPercent(policy.ExtraRate))
	default:
		return "constant"
	}
}
