// Package money formats amounts the way the shop prints them.
package money

import "github.com/shopspring/decimal"

const Currency = "Rs."

// Format renders d with two decimal places and the currency prefix, e.g. "Rs.1050.00".
func Format(d decimal.Decimal) string {
	return Currency + d.StringFixed(2)
}

// Percent renders a rate such as 0.15 as a whole percentage ("15").
func Percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(0)
}
