package output

import (
	json "github.com/goccy/go-json"

	"github.com/rpgo/projection-calculator/internal/domain"
)

// JSONFormatter emits the whole report as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
