package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/projection-calculator/internal/domain"
)

// CSVFormatter emits the monthly series, one row per record including the
// seed: month, contribution, balance, cumulative contributions, cumulative
// gains.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"month", "contribution", "balance", "cumulative_contributions", "cumulative_gains"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, record := range report.Result.Series {
		row := []string{
			strconv.Itoa(record.Month),
			record.Contribution.StringFixed(2),
			record.Balance.StringFixed(2),
			record.CumulativeContributions.StringFixed(2),
			record.CumulativeGains.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
