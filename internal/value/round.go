package value

import "github.com/shopspring/decimal"

// Rounding scales. Percentages keep their full precision while stored and
// are only rounded at the point they are combined with a currency amount;
// currency amounts are rounded to cents. Both use round-half-to-even so
// long chains of discounts and surcharges do not drift in one direction.
const (
	percentScale  = 4
	currencyScale = 2
)

// RoundPercent rounds a percentage fraction to its combination scale using
// round-half-to-even.
func RoundPercent(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(percentScale)
}

// RoundCurrency rounds a monetary amount to cents using round-half-to-even.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(currencyScale)
}

// PercentOfCurrency applies a percentage fraction to a currency amount.
// The fraction is rounded to the percent scale first, then the product is
// rounded to cents. This is the single place where percentages and
// currency meet.
func PercentOfCurrency(amount, fraction decimal.Decimal) decimal.Decimal {
	return RoundCurrency(amount.Mul(RoundPercent(fraction)))
}
