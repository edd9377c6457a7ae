package calculation

import (
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

var (
	monthsPerYear = stddec.NewFromInt(domain.MonthsPerYear)
	// annual percent to monthly fraction
	monthlyPercentDivisor = stddec.NewFromInt(domain.MonthsPerYear * domain.PercentDivisor)
)

// MonthlyRate converts an annual percentage (7 for 7%) into a monthly
// fraction rounded to domain.SimulationScale digits.
func MonthlyRate(annualRatePct stddec.Decimal) stddec.Decimal {
	return annualRatePct.DivRound(monthlyPercentDivisor, domain.SimulationScale)
}

// CalculateFutureValue compounds principal monthly for the given number of
// years, adding monthlyContribution after each month's growth. The month by
// month iteration must round exactly like GenerateProjections.
func CalculateFutureValue(principal, monthlyContribution decimal.Money, annualReturnRate stddec.Decimal, years int) decimal.Money {
	growth := stddec.NewFromInt(1).Add(MonthlyRate(annualReturnRate))
	months := years * domain.MonthsPerYear

	balance := principal
	for i := 0; i < months; i++ {
		balance = balance.Mul(growth).Add(monthlyContribution).RoundTo(domain.SimulationScale)
	}

	return balance
}
