package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/retirement-planner/internal/config"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// Validator checks a profile before it is simulated.
type Validator interface {
	Validate(profile domain.FinancialProfile) domain.ValidationErrors
}

// CalculationEngine orchestrates all retirement calculations
type CalculationEngine struct {
	Catalog   []domain.ScenarioParameters
	Validator Validator
	Logger    Logger
}

// NewCalculationEngine creates a new calculation engine over the standard scenario catalog
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Catalog:   domain.ScenarioCatalog(),
		Validator: config.ProfileValidator{},
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Validate runs the configured validator against a profile.
func (ce *CalculationEngine) Validate(profile domain.FinancialProfile) domain.ValidationErrors {
	if ce.Validator == nil {
		return config.ValidateProfile(profile)
	}
	return ce.Validator.Validate(profile)
}

// CalculateFutureValue exposes the accumulator through the engine.
func (ce *CalculationEngine) CalculateFutureValue(principal, monthlyContribution decimal.Money, annualReturnRate stddec.Decimal, years int) decimal.Money {
	return CalculateFutureValue(principal, monthlyContribution, annualReturnRate, years)
}

// GenerateProjections runs the projection engine for an ad-hoc return/inflation pair.
func (ce *CalculationEngine) GenerateProjections(profile domain.FinancialProfile, annualReturnRate, inflationRate stddec.Decimal) []domain.YearlyProjection {
	projections := GenerateProjections(profile, annualReturnRate, inflationRate)
	ce.Logger.Debugf("projected %d years at %s%% return, %s%% inflation", len(projections), annualReturnRate, inflationRate)
	return projections
}

// RunPlan validates the profile, generates every scenario and derives the
// dashboard metrics for the requested scenario. An invalid profile yields a
// domain.ValidationErrors error.
func (ce *CalculationEngine) RunPlan(ctx context.Context, profile domain.FinancialProfile, scenarioID string) (*domain.PlanResult, error) {
	if errs := ce.Validate(profile); !errs.Valid() {
		return nil, errs
	}

	scenarios, err := ce.GenerateScenarios(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("generate scenarios: %w", err)
	}

	selected, ok := SelectScenario(scenarios, scenarioID)
	if !ok {
		return nil, fmt.Errorf("no scenarios generated for profile")
	}

	return &domain.PlanResult{
		Profile:            profile,
		Scenarios:          scenarios,
		SelectedScenarioID: selected.ID,
		Metrics:            CalculateMetrics(profile, selected),
	}, nil
}
