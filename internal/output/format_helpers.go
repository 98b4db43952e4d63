package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	moneydec "github.com/rpgo/projection-calculator/pkg/decimal"
)

// FormatCurrency renders a decimal amount as grouped currency ("$1,234.56").
func FormatCurrency(d decimal.Decimal) string {
	return moneydec.NewMoneyFromDecimal(d).Format()
}

// FormatPercent renders a fractional rate as a percentage with two decimals
// ("0.0725" -> "7.25%").
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// FormatMonths renders a month count as years and months ("27" -> "2y 3m").
func FormatMonths(months int) string {
	if months < 12 {
		return fmt.Sprintf("%dm", months)
	}
	if months%12 == 0 {
		return fmt.Sprintf("%dy", months/12)
	}
	return fmt.Sprintf("%dy %dm", months/12, months%12)
}
