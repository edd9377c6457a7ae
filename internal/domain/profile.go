package domain

import (
	"strings"

	"github.com/rpgo/retirement-planner/pkg/decimal"
)

// RiskTolerance is the investor's self-declared appetite for market risk.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Normalize lower-cases the tolerance so comparisons are case-insensitive.
// Surrounding whitespace is kept and makes the value invalid.
func (r RiskTolerance) Normalize() RiskTolerance {
	return RiskTolerance(strings.ToLower(string(r)))
}

// IsValid reports whether the tolerance names one of the three known levels.
func (r RiskTolerance) IsValid() bool {
	switch r.Normalize() {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// FinancialProfile holds the inputs driving a single calculation.
// Values are treated as immutable once handed to the engine.
type FinancialProfile struct {
	CurrentAge          int           `json:"currentAge" yaml:"current_age"`
	RetirementAge       int           `json:"retirementAge" yaml:"retirement_age"`
	LifeExpectancy      int           `json:"lifeExpectancy" yaml:"life_expectancy"`
	CurrentSalary       decimal.Money `json:"currentSalary" yaml:"current_salary"`
	CurrentSavings      decimal.Money `json:"currentSavings" yaml:"current_savings"`
	MonthlyContribution decimal.Money `json:"monthlyContribution" yaml:"monthly_contribution"`
	RiskTolerance       RiskTolerance `json:"riskTolerance" yaml:"risk_tolerance"`
}

// YearsToRetirement returns the whole years until the retirement age.
func (p FinancialProfile) YearsToRetirement() int {
	return p.RetirementAge - p.CurrentAge
}

// YearsInRetirement returns the whole years between retirement and life expectancy.
func (p FinancialProfile) YearsInRetirement() int {
	return p.LifeExpectancy - p.RetirementAge
}

// TotalMonths is the length of the monthly simulation. It can be zero or
// negative for profiles that bypassed validation.
func (p FinancialProfile) TotalMonths() int {
	return (p.YearsToRetirement() + p.YearsInRetirement()) * MonthsPerYear
}

// DefaultProfile returns the starter profile offered to new users.
func DefaultProfile() FinancialProfile {
	return FinancialProfile{
		CurrentAge:          35,
		RetirementAge:       65,
		LifeExpectancy:      90,
		CurrentSalary:       decimal.NewMoneyFromInt(75000),
		CurrentSavings:      decimal.NewMoneyFromInt(150000),
		MonthlyContribution: decimal.NewMoneyFromInt(1000),
		RiskTolerance:       RiskModerate,
	}
}
