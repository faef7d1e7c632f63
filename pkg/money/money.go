// Package money converts between the decimal amounts exchanged with the UI
// and the integer cent values kept in storage. All arithmetic goes through
// shopspring/decimal so binary floating point never touches an amount.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ToCents converts a decimal amount (e.g. 12.34) to cents (1234)
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(hundred).Round(0).IntPart()
}

// FromCents converts cents to a decimal amount for display
func FromCents(cents int64) float64 {
	f, _ := decimal.NewFromInt(cents).Div(hundred).Float64()
	return f
}

// LineTotal returns quantity times the unit price, in cents
func LineTotal(quantity int, unitPriceCents int64) int64 {
	return decimal.NewFromInt(unitPriceCents).
		Mul(decimal.NewFromInt(int64(quantity))).
		IntPart()
}
