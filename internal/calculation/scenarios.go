package calculation

import (
	"context"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/pkg/decimal"
	stddec "github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// SuccessRate is the two-valued heuristic: 95 when money is left at the end
// of the plan, 45 otherwise.
func SuccessRate(finalBalance decimal.Money) stddec.Decimal {
	if finalBalance.IsPositive() {
		return domain.SuccessRatePositive
	}
	return domain.SuccessRateNegative
}

// BuildScenario runs the projection for one set of market assumptions and
// attaches the summary metrics.
func BuildScenario(profile domain.FinancialProfile, params domain.ScenarioParameters) domain.Scenario {
	projections := GenerateProjections(profile, params.ReturnRate, params.InflationRate)

	finalBalance := decimal.Zero()
	if n := len(projections); n > 0 {
		finalBalance = projections[n-1].Balance
	}

	return domain.Scenario{
		ScenarioParameters: params,
		Projections:        projections,
		FinalBalance:       finalBalance,
		SuccessRate:        SuccessRate(finalBalance),
	}
}

// GenerateScenarios builds one scenario per catalog entry. Entries are
// computed concurrently; the result keeps catalog order. The only error is
// ctx being done before the work finished.
func (ce *CalculationEngine) GenerateScenarios(ctx context.Context, profile domain.FinancialProfile) ([]domain.Scenario, error) {
	scenarios := make([]domain.Scenario, len(ce.Catalog))

	g, gctx := errgroup.WithContext(ctx)
	for i, params := range ce.Catalog {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scenarios[i] = BuildScenario(profile, params)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, sc := range scenarios {
		ce.Logger.Debugf("scenario %s: %d years, final balance %s, success rate %s%%",
			sc.ID, len(sc.Projections), sc.FinalBalance, sc.SuccessRate)
	}
	return scenarios, nil
}
