package config

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// ProfileValidator checks a financial profile against the domain constraints.
// It never fails on well-typed input; every problem is reported as data.
type ProfileValidator struct{}

// Validate implements the field-keyed validation rules.
func (ProfileValidator) Validate(profile domain.FinancialProfile) domain.ValidationErrors {
	return ValidateProfile(profile)
}

// ValidateProfile returns one message per invalid field. Rules are evaluated
// independently; when two rules target the same field the later one wins.
func ValidateProfile(p domain.FinancialProfile) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	if p.CurrentAge < domain.MinCurrentAge {
		errs[domain.FieldCurrentAge] = fmt.Sprintf("Current age must be at least %d.", domain.MinCurrentAge)
	}
	if p.CurrentAge > domain.MaxCurrentAge {
		errs[domain.FieldCurrentAge] = fmt.Sprintf("Current age cannot exceed %d.", domain.MaxCurrentAge)
	}

	if p.RetirementAge <= p.CurrentAge {
		errs[domain.FieldRetirementAge] = "Retirement age must be greater than current age."
	}
	if p.RetirementAge > domain.MaxRetirementAge {
		errs[domain.FieldRetirementAge] = fmt.Sprintf("Retirement age cannot exceed %d.", domain.MaxRetirementAge)
	}

	if p.LifeExpectancy <= p.RetirementAge {
		errs[domain.FieldLifeExpectancy] = "Life expectancy must be greater than retirement age."
	}
	if p.LifeExpectancy > domain.MaxLifeExpectancy {
		errs[domain.FieldLifeExpectancy] = fmt.Sprintf("Life expectancy cannot exceed %d.", domain.MaxLifeExpectancy)
	}

	if p.CurrentSalary.IsNegative() {
		errs[domain.FieldCurrentSalary] = "Salary cannot be negative."
	}
	if p.CurrentSavings.IsNegative() {
		errs[domain.FieldCurrentSavings] = "Current savings cannot be negative."
	}
	if p.MonthlyContribution.IsNegative() {
		errs[domain.FieldMonthlyContribution] = "Monthly contribution cannot be negative."
	}

	if !p.RiskTolerance.IsValid() {
		errs[domain.FieldRiskTolerance] = "Risk tolerance must be one of: conservative, moderate, aggressive."
	}

	return errs
}
