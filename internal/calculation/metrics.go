package calculation

import "github.com/rpgo/retirement-planner/internal/domain"

// CalculateMetrics derives the dashboard summary of a profile under one scenario.
func CalculateMetrics(profile domain.FinancialProfile, scenario domain.Scenario) domain.DashboardMetrics {
	return domain.DashboardMetrics{
		CurrentBalance:             profile.CurrentSavings,
		MonthlyContribution:        profile.MonthlyContribution,
		ProjectedRetirementBalance: scenario.FinalBalance,
		YearsToRetirement:          profile.YearsToRetirement(),
		RetirementDuration:         profile.YearsInRetirement(),
		SuccessProbability:         scenario.SuccessRate,
	}
}

// SelectScenario finds a scenario by id. An unknown or empty id falls back to
// the default catalog position, then to the first scenario.
func SelectScenario(scenarios []domain.Scenario, id string) (domain.Scenario, bool) {
	for _, sc := range scenarios {
		if sc.ID == id {
			return sc, true
		}
	}
	switch {
	case len(scenarios) > domain.DefaultScenarioIndex:
		return scenarios[domain.DefaultScenarioIndex], true
	case len(scenarios) > 0:
		return scenarios[0], true
	}
	return domain.Scenario{}, false
}
