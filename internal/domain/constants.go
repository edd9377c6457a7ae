package domain

import "github.com/shopspring/decimal"

const (
	// MonthsPerYear is the number of simulation steps per projected year.
	MonthsPerYear = 12

	// PercentDivisor converts a percentage (7 for 7%) into a fraction.
	PercentDivisor = 100

	// SimulationScale is the number of fractional digits carried by every
	// value that feeds the monthly simulation state.
	SimulationScale int32 = 28
)

// Age validation constraints.
const (
	MinCurrentAge     = 18
	MaxCurrentAge     = 100
	MaxRetirementAge  = 100
	MaxLifeExpectancy = 120
)

var (
	// WithdrawalRate is the 4% rule used to size the first retirement draw.
	WithdrawalRate = decimal.New(4, -2)

	// SuccessRatePositive is reported when a scenario ends with money left.
	SuccessRatePositive = decimal.NewFromInt(95)

	// SuccessRateNegative is reported when a scenario ends depleted.
	SuccessRateNegative = decimal.NewFromInt(45)
)

// Scenario identifiers in catalog order.
const (
	ScenarioConservative = "conservative"
	ScenarioModerate     = "moderate"
	ScenarioAggressive   = "aggressive"
)

// DefaultScenarioIndex is the catalog position selected when no scenario is requested.
const DefaultScenarioIndex = 1

// ScenarioCatalog returns the predefined market assumptions in display order.
// A fresh slice is returned on every call so callers cannot mutate the catalog.
func ScenarioCatalog() []ScenarioParameters {
	return []ScenarioParameters{
		{
			ID:            ScenarioConservative,
			Name:          "Conservative",
			Label:         "Conservative (5% return, 2.5% inflation)",
			ReturnRate:    decimal.NewFromInt(5),
			InflationRate: decimal.New(25, -1),
		},
		{
			ID:            ScenarioModerate,
			Name:          "Moderate",
			Label:         "Moderate (7% return, 3% inflation)",
			ReturnRate:    decimal.NewFromInt(7),
			InflationRate: decimal.NewFromInt(3),
		},
		{
			ID:            ScenarioAggressive,
			Name:          "Aggressive",
			Label:         "Aggressive (9% return, 3% inflation)",
			ReturnRate:    decimal.NewFromInt(9),
			InflationRate: decimal.NewFromInt(3),
		},
	}
}
