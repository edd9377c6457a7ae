package calculation

import (
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// SustainableMonthlyWithdrawal sizes the first retirement draw with the 4% rule
// applied to the balance projected at retirement.
func SustainableMonthlyWithdrawal(profile domain.FinancialProfile, annualReturnRate stddec.Decimal) decimal.Money {
	atRetirement := CalculateFutureValue(
		profile.CurrentSavings,
		profile.MonthlyContribution,
		annualReturnRate,
		profile.YearsToRetirement(),
	)
	return atRetirement.Mul(domain.WithdrawalRate).DivRound(monthsPerYear, domain.SimulationScale)
}

// GenerateProjections simulates the profile month by month under one return
// and inflation assumption and emits a row at the first month of every year.
//
// Row values:
//   - a row's contribution, return and withdrawal are that month's values × 12;
//   - the emitted balances are floored at zero while the running balance is not,
//     so a depleted plan keeps accruing negative returns internally.
//
// A profile whose horizon is not positive produces no rows.
func GenerateProjections(profile domain.FinancialProfile, annualReturnRate, inflationRate stddec.Decimal) []domain.YearlyProjection {
	totalMonths := profile.TotalMonths()
	if totalMonths <= 0 {
		return []domain.YearlyProjection{}
	}

	monthlyRate := MonthlyRate(annualReturnRate)
	inflationGrowth := stddec.NewFromInt(1).Add(MonthlyRate(inflationRate))
	monthlyWithdrawal := SustainableMonthlyWithdrawal(profile, annualReturnRate)

	projections := make([]domain.YearlyProjection, 0, totalMonths/domain.MonthsPerYear)
	balance := profile.CurrentSavings
	// (1 + monthly inflation)^k where k counts months since retirement began.
	// A profile already past retirement age starts k above zero.
	withdrawalFactor := compoundFactor(inflationGrowth, -profile.YearsToRetirement()*domain.MonthsPerYear)

	for month := 0; month < totalMonths; month++ {
		year := month / domain.MonthsPerYear
		age := profile.CurrentAge + year
		isRetired := age >= profile.RetirementAge

		contribution := decimal.Zero()
		withdrawal := decimal.Zero()
		if !isRetired {
			contribution = profile.MonthlyContribution
		} else {
			withdrawal = monthlyWithdrawal.Mul(withdrawalFactor).RoundTo(domain.SimulationScale)
			withdrawalFactor = withdrawalFactor.Mul(inflationGrowth).Round(domain.SimulationScale)
		}

		opening := balance
		investmentReturn := balance.Mul(monthlyRate).RoundTo(domain.SimulationScale)
		balance = balance.Add(investmentReturn).Add(contribution).Sub(withdrawal)

		if month%domain.MonthsPerYear != 0 {
			continue
		}
		row := domain.YearlyProjection{
			Year:             year,
			Age:              age,
			OpeningBalance:   opening.FloorZero(),
			Balance:          balance.FloorZero(),
			Contribution:     decimal.Zero(),
			InvestmentReturn: investmentReturn.Annual(),
			Withdrawal:       decimal.Zero(),
		}
		if isRetired {
			row.Withdrawal = withdrawal.Annual()
		} else {
			row.Contribution = contribution.Annual()
		}
		projections = append(projections, row)
	}

	return projections
}

// compoundFactor returns growth^n built one rounded step at a time, or 1 when
// n is not positive.
func compoundFactor(growth stddec.Decimal, n int) stddec.Decimal {
	factor := stddec.NewFromInt(1)
	for i := 0; i < n; i++ {
		factor = factor.Mul(growth).Round(domain.SimulationScale)
	}
	return factor
}
