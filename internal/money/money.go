// Package money holds the monetary rounding conventions shared by every
// Dividi computation: amounts are decimal, all results land on whole cents,
// and rounding is half away from zero except where a policy explicitly
// floors and redistributes the residual.
package money

import "github.com/shopspring/decimal"

// Cent is the smallest representable amount. The calculator treats any
// balance within one cent of zero as settled.
var Cent = decimal.New(1, -2)

// RoundCents rounds to two decimal places, half away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FloorCents truncates toward zero at two decimal places. Split policies
// use it to compute the "greedy base" share before residual cents are
// handed out.
func FloorCents(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(2)
}

// WithinCent reports whether d is within one cent of zero.
func WithinCent(d decimal.Decimal) bool {
	return d.Abs().LessThan(Cent)
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// FormatAmount renders an amount with exactly two decimals, the fixed
// format every payment payload uses.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
