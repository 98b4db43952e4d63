package calculation

import (
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/rpgo/projection-calculator/internal/domain"
)

// SensitivityGrid re-runs the projection across perturbations of the annual
// return rate and the base contribution. Rows follow the request's rate
// offsets; columns follow its contribution scales. An empty request falls
// back to the default grid. Rows are independent simulations and run
// concurrently.
func (ce *CalculationEngine) SensitivityGrid(params domain.SimulationParameters, req domain.SensitivityRequest) *domain.SensitivityGrid {
	p := params.Normalize()
	if len(req.RateOffsets) == 0 || len(req.ContributionScales) == 0 {
		req = domain.DefaultSensitivityRequest()
	}

	cells := make([][]domain.SensitivityCell, len(req.RateOffsets))
	var g errgroup.Group
	for i, offset := range req.RateOffsets {
		i, offset := i, offset
		g.Go(func() error {
			row := make([]domain.SensitivityCell, len(req.ContributionScales))
			for j, scale := range req.ContributionScales {
				trial := p
				trial.AnnualReturnRate = domain.ClampRate(p.AnnualReturnRate + offset)
				trial.BaseContribution = p.BaseContribution.Mul(decimal.NewFromFloat(scale))
				result := ce.Project(trial)
				row[j] = domain.SensitivityCell{
					AnnualReturnRate:   trial.AnnualReturnRate,
					BaseContribution:   trial.BaseContribution,
					FinalBalance:       result.FinalRecord().Balance,
					TargetReachedMonth: result.TargetReachedMonth,
				}
			}
			cells[i] = row
			return nil
		})
	}
	// The workers never fail; Wait only synchronizes them.
	_ = g.Wait()

	return &domain.SensitivityGrid{Request: req, Cells: cells}
}
