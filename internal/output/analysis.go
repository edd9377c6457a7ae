package output

import (
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// ScenarioAnalysis compares one scenario against the selected scenario of a plan.
type ScenarioAnalysis struct {
	ScenarioID          string
	Label               string
	BalanceAtRetirement decimal.Money
	FinalBalance        decimal.Money
	// DepletionAge is the first age whose reported balance is zero, or 0 when
	// the money lasts through the plan.
	DepletionAge      int
	DeltaVsSelected   decimal.Money
	PercentVsSelected stddec.Decimal
}

var decimalHundred = stddec.NewFromInt(100)

// AnalyzeScenarios summarizes every scenario in catalog order relative to the
// selected scenario. Extracted from the console formatter for testability.
func AnalyzeScenarios(result *domain.PlanResult) []ScenarioAnalysis {
	baseline := decimal.Zero()
	if sel, ok := result.SelectedScenario(); ok {
		baseline = sel.FinalBalance
	}

	analyses := make([]ScenarioAnalysis, 0, len(result.Scenarios))
	for _, sc := range result.Scenarios {
		delta := sc.FinalBalance.Sub(baseline)
		pct := stddec.Zero
		if !baseline.IsZero() {
			pct = delta.Decimal.Div(baseline.Decimal).Mul(decimalHundred)
		}
		analyses = append(analyses, ScenarioAnalysis{
			ScenarioID:          sc.ID,
			Label:               sc.Label,
			BalanceAtRetirement: balanceAtRetirement(result.Profile, sc),
			FinalBalance:        sc.FinalBalance,
			DepletionAge:        depletionAge(result.Profile, sc),
			DeltaVsSelected:     delta,
			PercentVsSelected:   pct,
		})
	}
	return analyses
}

// balanceAtRetirement is the opening balance of the first retired year.
func balanceAtRetirement(profile domain.FinancialProfile, sc domain.Scenario) decimal.Money {
	for _, yr := range sc.Projections {
		if yr.Age >= profile.RetirementAge {
			return yr.OpeningBalance
		}
	}
	return sc.FinalBalance
}

func depletionAge(profile domain.FinancialProfile, sc domain.Scenario) int {
	for _, yr := range sc.Projections {
		if yr.Age >= profile.RetirementAge && yr.Balance.IsZero() {
			return yr.Age
		}
	}
	return 0
}
