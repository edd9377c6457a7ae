package domain

import (
	"sort"
	"strings"
)

// Field keys used in validation results. They match the JSON names of
// FinancialProfile so clients can attach messages to form inputs.
const (
	FieldCurrentAge          = "currentAge"
	FieldRetirementAge       = "retirementAge"
	FieldLifeExpectancy      = "lifeExpectancy"
	FieldCurrentSalary       = "currentSalary"
	FieldCurrentSavings      = "currentSavings"
	FieldMonthlyContribution = "monthlyContribution"
	FieldRiskTolerance       = "riskTolerance"
)

// ValidationErrors maps a profile field to the message describing why it is
// invalid. An empty map means the profile is valid.
type ValidationErrors map[string]string

// Valid reports whether no field errors were recorded.
func (ve ValidationErrors) Valid() bool { return len(ve) == 0 }

// Fields returns the offending field names in sorted order.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (ve ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve))
	for _, f := range ve.Fields() {
		parts = append(parts, f+": "+ve[f])
	}
	return "invalid financial profile: " + strings.Join(parts, "; ")
}
