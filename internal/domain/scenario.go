package domain

import (
	"github.com/rpgo/retirement-planner/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// ScenarioParameters describes one set of market assumptions. Rates are
// annual percentages (7 means 7%).
type ScenarioParameters struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	Label         string         `json:"label" yaml:"label"`
	ReturnRate    stddec.Decimal `json:"returnRate" yaml:"return_rate"`
	InflationRate stddec.Decimal `json:"inflationRate" yaml:"inflation_rate"`
}

// YearlyProjection is the snapshot emitted at the first month of each
// simulated year. Contribution, InvestmentReturn and Withdrawal are that
// month's values scaled by twelve, not twelve-month sums. OpeningBalance and
// Balance are clamped at zero for display only.
type YearlyProjection struct {
	Year             int           `json:"year" yaml:"year"`
	Age              int           `json:"age" yaml:"age"`
	OpeningBalance   decimal.Money `json:"openingBalance" yaml:"opening_balance"`
	Balance          decimal.Money `json:"balance" yaml:"balance"`
	Contribution     decimal.Money `json:"contribution" yaml:"contribution"`
	InvestmentReturn decimal.Money `json:"investment_return" yaml:"investment_return"`
	Withdrawal       decimal.Money `json:"withdrawal" yaml:"withdrawal"`
}

// Scenario is one catalog entry together with its projection and summary.
type Scenario struct {
	ScenarioParameters `yaml:",inline"`
	Projections        []YearlyProjection `json:"projections" yaml:"projections"`
	FinalBalance       decimal.Money      `json:"finalBalance" yaml:"final_balance"`
	SuccessRate        stddec.Decimal     `json:"successRate" yaml:"success_rate"`
}

// DashboardMetrics is a read-only summary of a profile under one scenario.
type DashboardMetrics struct {
	CurrentBalance             decimal.Money  `json:"currentBalance" yaml:"current_balance"`
	MonthlyContribution        decimal.Money  `json:"monthlyContribution" yaml:"monthly_contribution"`
	ProjectedRetirementBalance decimal.Money  `json:"projectedRetirementBalance" yaml:"projected_retirement_balance"`
	YearsToRetirement          int            `json:"yearsToRetirement" yaml:"years_to_retirement"`
	RetirementDuration         int            `json:"retirementDuration" yaml:"retirement_duration"`
	SuccessProbability         stddec.Decimal `json:"successProbability" yaml:"success_probability"`
}

// PlanResult bundles everything produced for one profile submission.
type PlanResult struct {
	Profile            FinancialProfile `json:"profile" yaml:"profile"`
	Scenarios          []Scenario       `json:"scenarios" yaml:"scenarios"`
	SelectedScenarioID string           `json:"selectedScenarioId" yaml:"selected_scenario_id"`
	Metrics            DashboardMetrics `json:"metrics" yaml:"metrics"`
}

// SelectedScenario returns the scenario named by SelectedScenarioID.
func (pr *PlanResult) SelectedScenario() (Scenario, bool) {
	for _, sc := range pr.Scenarios {
		if sc.ID == pr.SelectedScenarioID {
			return sc, true
		}
	}
	return Scenario{}, false
}
