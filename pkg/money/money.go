// Package money provides kobo-safe monetary helpers for the statement
// engine. All amounts move through the system as signed integer kobo
// (hundredths of a naira); this package owns the conversions in and out
// of that representation so floating point never touches a balance.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Naira is the only currency the engine handles (ISO-4217).
const Naira = "NGN"

// FromKobo wraps an integer kobo amount as a go-money value.
func FromKobo(kobo int64) *money.Money {
	return money.New(kobo, Naira)
}

// FormatKobo renders a signed kobo amount with the naira symbol and
// thousands separators, e.g. 5000000 -> "₦50,000.00".
func FormatKobo(kobo int64) string {
	return FromKobo(kobo).Display()
}

// KoboFromDecimal converts a major-unit decimal amount to kobo, rounding
// to the nearest minor unit.
func KoboFromDecimal(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// DecimalFromKobo converts kobo back to a major-unit decimal, for display
// and reconciliation arithmetic.
func DecimalFromKobo(kobo int64) decimal.Decimal {
	return decimal.New(kobo, -2)
}
