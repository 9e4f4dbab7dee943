package derive

import (
	"fmt"

	"github.com/vinetrade/pricecore/internal/value"
)

// WineCase returns the derivation registry for the shipped wine-case
// catalog (catalogs/v1). The formulas:
//
//	subtotal       = caseQuantity * unitPrice
//	discountAmount = subtotal * discountPct
//	dutyAmount     = subtotal * dutyRate
//	total          = subtotal - discountAmount + dutyAmount + logisticsFee
//
// Percentages are combined with currency through value.PercentOfCurrency,
// which is where the round-half-to-even rounding happens.
func WineCase() *Registry {
	r := NewRegistry()

	r.Register("subtotal", func(in Inputs) (value.Value, error) {
		qty, err := in.Decimal("caseQuantity")
		if err != nil {
			return value.Value{}, err
		}
		if qty.IsNegative() {
			return value.Value{}, fmt.Errorf("case quantity must not be negative, got %s", qty)
		}
		price, err := in.Decimal("unitPrice")
		if err != nil {
			return value.Value{}, err
		}
		return value.NewCurrency(value.RoundCurrency(qty.Mul(price))), nil
	})

	r.Register("discountAmount", func(in Inputs) (value.Value, error) {
		subtotal, err := in.Decimal("subtotal")
		if err != nil {
			return value.Value{}, err
		}
		pct, err := in.Decimal("discountPct")
		if err != nil {
			return value.Value{}, err
		}
		return value.NewCurrency(value.PercentOfCurrency(subtotal, pct)), nil
	})

	r.Register("dutyAmount", func(in Inputs) (value.Value, error) {
		subtotal, err := in.Decimal("subtotal")
		if err != nil {
			return value.Value{}, err
		}
		rate, err := in.Decimal("dutyRate")
		if err != nil {
			return value.Value{}, err
		}
		return value.NewCurrency(value.PercentOfCurrency(subtotal, rate)), nil
	})

	r.Register("total", func(in Inputs) (value.Value, error) {
		subtotal, err := in.Decimal("subtotal")
		if err != nil {
			return value.Value{}, err
		}
		discount, err := in.Decimal("discountAmount")
		if err != nil {
			return value.Value{}, err
		}
		duty, err := in.Decimal("dutyAmount")
		if err != nil {
			return value.Value{}, err
		}
		logistics, err := in.Decimal("logisticsFee")
		if err != nil {
			return value.Value{}, err
		}
		total := subtotal.Sub(discount).Add(duty).Add(logistics)
		if total.IsNegative() {
			return value.Value{}, fmt.Errorf("total is negative (%s); discount exceeds subtotal", total)
		}
		return value.NewCurrency(value.RoundCurrency(total)), nil
	})

	return r
}
