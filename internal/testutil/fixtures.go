package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/derive"
	"github.com/vinetrade/pricecore/internal/value"
)

// ScenarioHCL is the five-variable scenario catalog as a manifest:
// a case quantity input, an overridable unit price and discount, and a
// computed subtotal and total.
const ScenarioHCL = `
catalog "test" {
  currency = "EUR"
  total    = "total"
}

variable "caseQuantity" {
  type       = integer
  resolution = "input"
}

variable "unitPrice" {
  type       = currency
  resolution = "overridable"
  default    = 100.00
}

variable "discountPct" {
  type       = percentage
  resolution = "overridable"
  default    = 0
}

variable "subtotal" {
  type       = currency
  resolution = "computed"
  depends_on = ["caseQuantity", "unitPrice"]
}

variable "total" {
  type       = currency
  resolution = "computed"
  depends_on = ["subtotal", "discountPct"]
}
`

// ScenarioVersion builds the same scenario catalog programmatically, for
// tests that do not want to go through the HCL loader.
func ScenarioVersion(t *testing.T) *catalog.Version {
	t.Helper()

	unitPrice := value.NewCurrency(decimal.RequireFromString("100.00"))
	discount := value.NewPercentage(decimal.Zero)

	v, err := catalog.NewVersion("test", "EUR", "total", []*catalog.VariableDefinition{
		{ID: "caseQuantity", Type: value.TypeInteger, Resolution: catalog.ResolutionInput},
		{ID: "unitPrice", Type: value.TypeCurrency, Resolution: catalog.ResolutionOverridable, Default: &unitPrice},
		{ID: "discountPct", Type: value.TypePercentage, Resolution: catalog.ResolutionOverridable, Default: &discount},
		{ID: "subtotal", Type: value.TypeCurrency, Resolution: catalog.ResolutionComputed, DependsOn: []string{"caseQuantity", "unitPrice"}},
		{ID: "total", Type: value.TypeCurrency, Resolution: catalog.ResolutionComputed, DependsOn: []string{"subtotal", "discountPct"}},
	})
	require.NoError(t, err)
	return v
}

// ScenarioRegistry returns the derivation handlers matching the scenario
// catalog: subtotal = caseQuantity * unitPrice and
// total = subtotal * (1 - discountPct).
func ScenarioRegistry() *derive.Registry {
	r := derive.NewRegistry()

	r.Register("subtotal", func(in derive.Inputs) (value.Value, error) {
		qty, err := in.Decimal("caseQuantity")
		if err != nil {
			return value.Value{}, err
		}
		price, err := in.Decimal("unitPrice")
		if err != nil {
			return value.Value{}, err
		}
		return value.NewCurrency(value.RoundCurrency(qty.Mul(price))), nil
	})

	r.Register("total", func(in derive.Inputs) (value.Value, error) {
		subtotal, err := in.Decimal("subtotal")
		if err != nil {
			return value.Value{}, err
		}
		pct, err := in.Decimal("discountPct")
		if err != nil {
			return value.Value{}, err
		}
		return value.NewCurrency(subtotal.Sub(value.PercentOfCurrency(subtotal, pct))), nil
	})

	return r
}
