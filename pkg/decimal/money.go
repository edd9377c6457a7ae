// Package decimal provides the Money type used for balances and cash flows.
//
// Money embeds shopspring's Decimal, so it marshals to JSON as a quoted exact
// string and to YAML as plain text, and decodes from either numbers or strings.
package decimal

import (
	"github.com/shopspring/decimal"
)

// CentPlaces is the number of fractional digits shown for a currency amount.
const CentPlaces int32 = 2

var periodsPerYear = decimal.NewFromInt(12)

// Money is an exact monetary amount. Arithmetic never rounds except where
// the underlying Div does; rounding is applied explicitly by callers.
type Money struct {
	decimal.Decimal
}

// NewMoney converts a float64. Use it for literals and test fixtures only.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromInt returns a whole-dollar amount
func NewMoneyFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewMoneyFromDecimal wraps an existing decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// ParseMoney parses a decimal string such as "150000.50".
func ParseMoney(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RequireMoney is ParseMoney that panics on malformed input.
func RequireMoney(value string) Money {
	return Money{decimal.RequireFromString(value)}
}

// Zero returns a zero amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Round rounds to cents, half away from zero.
func (m Money) Round() Money {
	return m.RoundTo(CentPlaces)
}

// RoundTo rounds to the given number of fractional digits, half away from zero.
func (m Money) RoundTo(places int32) Money {
	return Money{m.Decimal.Round(places)}
}

// Annual scales a monthly amount by twelve.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(periodsPerYear)}
}

// Monthly divides an annual amount by twelve.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(periodsPerYear)}
}

func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul scales the amount by a rate or factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by factor using decimal's default division precision.
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// DivRound divides by factor and rounds the quotient to places digits, half
// away from zero.
func (m Money) DivRound(factor decimal.Decimal, places int32) Money {
	return Money{m.Decimal.DivRound(factor, places)}
}

func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Equal compares by value, so 1.50 equals 1.5. go-cmp picks this method up.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// FloorZero clamps negative amounts to zero.
func (m Money) FloorZero() Money {
	if m.Decimal.IsNegative() {
		return Zero()
	}
	return m
}

// Exact returns every significant digit, without trailing zeros.
func (m Money) Exact() string {
	return m.Decimal.String()
}

// String renders the amount in cents, e.g. "1234.50".
func (m Money) String() string {
	return m.Decimal.StringFixed(CentPlaces)
}

// Format is String with a dollar sign.
func (m Money) Format() string {
	return "$" + m.String()
}
