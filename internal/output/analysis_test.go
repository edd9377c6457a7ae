package output

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/pkg/decimal"
)

func TestAnalyzeScenarios_RelativeToSelected(t *testing.T) {
	analyses := AnalyzeScenarios(buildTestPlan(t))
	require.Len(t, analyses, 3)

	assert.Equal(t, "conservative", analyses[0].ScenarioID)
	assert.Equal(t, "-3626965.5360690620157144716865823856", analyses[0].DeltaVsSelected.Exact())
	assert.Equal(t, "-72.31%", FormatPercentage(analyses[0].PercentVsSelected))

	assert.True(t, analyses[1].DeltaVsSelected.IsZero())
	assert.Equal(t, "2437445.6170798741162401617474687864", analyses[1].BalanceAtRetirement.Exact())

	assert.Equal(t, "12198221.9884777055326438941087098156", analyses[2].DeltaVsSelected.Exact())
	assert.Equal(t, "243.21%", FormatPercentage(analyses[2].PercentVsSelected))

	for _, a := range analyses {
		assert.Zero(t, a.DepletionAge, a.ScenarioID)
	}
}

func TestAnalyzeScenarios_DepletionAge(t *testing.T) {
	profile := domain.FinancialProfile{
		CurrentAge:     60,
		RetirementAge:  61,
		LifeExpectancy: 110,
		CurrentSavings: decimal.NewMoneyFromInt(100000),
	}
	sc := calculation.BuildScenario(profile, domain.ScenarioParameters{
		ID:            "stagnant",
		ReturnRate:    stddec.NewFromInt(1),
		InflationRate: stddec.NewFromInt(3),
	})
	result := &domain.PlanResult{Profile: profile, Scenarios: []domain.Scenario{sc}, SelectedScenarioID: "stagnant"}

	analyses := AnalyzeScenarios(result)
	require.Len(t, analyses, 1)
	assert.Equal(t, 82, analyses[0].DepletionAge)
	// zero baseline: no percentage
	assert.True(t, analyses[0].PercentVsSelected.IsZero())
}

func TestAnalyzeScenarios_Empty(t *testing.T) {
	assert.Empty(t, AnalyzeScenarios(&domain.PlanResult{}))
}
