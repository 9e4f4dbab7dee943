package derive

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/value"
)

func TestRegistry(t *testing.T) {
	t.Run("register and lookup", func(t *testing.T) {
		r := NewRegistry()
		r.Register("x", func(in Inputs) (value.Value, error) {
			return value.NewInteger(1), nil
		})

		fn, ok := r.Lookup("x")
		require.True(t, ok)
		got, err := fn(nil)
		require.NoError(t, err)
		assert.True(t, got.Equal(value.NewInteger(1)))

		_, ok = r.Lookup("y")
		assert.False(t, ok)
	})

	t.Run("double register panics", func(t *testing.T) {
		r := NewRegistry()
		fn := func(in Inputs) (value.Value, error) { return value.Value{}, nil }
		r.Register("x", fn)
		assert.PanicsWithValue(t, `derive: handler for "x" registered twice`, func() {
			r.Register("x", fn)
		})
	})

	t.Run("ids are sorted", func(t *testing.T) {
		r := NewRegistry()
		fn := func(in Inputs) (value.Value, error) { return value.Value{}, nil }
		r.Register("zeta", fn)
		r.Register("alpha", fn)
		assert.Equal(t, []string{"alpha", "zeta"}, r.IDs())
	})
}

func TestInputsDecimal(t *testing.T) {
	in := Inputs{
		"qty":    value.NewInteger(12),
		"format": value.NewEnum("750ml"),
	}

	d, err := in.Decimal("qty")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(12)))

	_, err = in.Decimal("missing")
	assert.ErrorContains(t, err, "was not resolved")

	_, err = in.Decimal("format")
	assert.ErrorContains(t, err, "no numeric payload")
}

func TestValidateHandlers(t *testing.T) {
	ctx := context.Background()

	newVersion := func(t *testing.T) *catalog.Version {
		t.Helper()
		defaultPrice := value.NewCurrency(decimal.NewFromInt(100))
		v, err := catalog.NewVersion("test", "EUR", "total", []*catalog.VariableDefinition{
			{ID: "qty", Type: value.TypeInteger, Resolution: catalog.ResolutionInput},
			{ID: "price", Type: value.TypeCurrency, Resolution: catalog.ResolutionOverridable, Default: &defaultPrice},
			{ID: "total", Type: value.TypeCurrency, Resolution: catalog.ResolutionComputed, DependsOn: []string{"qty", "price"}},
		})
		require.NoError(t, err)
		return v
	}
	noop := func(in Inputs) (value.Value, error) { return value.Value{}, nil }

	t.Run("exact parity passes", func(t *testing.T) {
		r := NewRegistry()
		r.Register("total", noop)
		require.NoError(t, ValidateHandlers(ctx, r, newVersion(t)))
	})

	t.Run("missing handler", func(t *testing.T) {
		err := ValidateHandlers(ctx, NewRegistry(), newVersion(t))
		assert.ErrorContains(t, err, `computed variable "total" but no derivation handler`)
	})

	t.Run("extra handler", func(t *testing.T) {
		r := NewRegistry()
		r.Register("total", noop)
		r.Register("ghost", noop)
		err := ValidateHandlers(ctx, r, newVersion(t))
		assert.ErrorContains(t, err, `handler "ghost" has no variable in the catalog`)
	})

	t.Run("handler bound to non-computed variable", func(t *testing.T) {
		r := NewRegistry()
		r.Register("total", noop)
		r.Register("price", noop)
		err := ValidateHandlers(ctx, r, newVersion(t))
		assert.ErrorContains(t, err, `handler "price" is bound to a overridable variable`)
	})
}

func TestWineCase(t *testing.T) {
	r := WineCase()

	run := func(t *testing.T, id string, in Inputs) value.Value {
		t.Helper()
		fn, ok := r.Lookup(id)
		require.True(t, ok)
		got, err := fn(in)
		require.NoError(t, err)
		return got
	}

	t.Run("subtotal", func(t *testing.T) {
		got := run(t, "subtotal", Inputs{
			"caseQuantity": value.NewInteger(12),
			"unitPrice":    value.NewCurrency(decimal.RequireFromString("100.00")),
		})
		assert.Equal(t, "1200.00", got.String())
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		fn, _ := r.Lookup("subtotal")
		_, err := fn(Inputs{
			"caseQuantity": value.NewInteger(-1),
			"unitPrice":    value.NewCurrency(decimal.NewFromInt(100)),
		})
		assert.ErrorContains(t, err, "must not be negative")
	})

	t.Run("discount amount", func(t *testing.T) {
		got := run(t, "discountAmount", Inputs{
			"subtotal":    value.NewCurrency(decimal.RequireFromString("1200.00")),
			"discountPct": value.NewPercentage(decimal.RequireFromString("0.10")),
		})
		assert.Equal(t, "120.00", got.String())
	})

	t.Run("total", func(t *testing.T) {
		got := run(t, "total", Inputs{
			"subtotal":       value.NewCurrency(decimal.RequireFromString("1200.00")),
			"discountAmount": value.NewCurrency(decimal.RequireFromString("120.00")),
			"dutyAmount":     value.NewCurrency(decimal.RequireFromString("30.00")),
			"logisticsFee":   value.NewCurrency(decimal.RequireFromString("15.50")),
		})
		assert.Equal(t, "1125.50", got.String())
	})

	t.Run("discount cannot push total negative", func(t *testing.T) {
		fn, _ := r.Lookup("total")
		_, err := fn(Inputs{
			"subtotal":       value.NewCurrency(decimal.NewFromInt(100)),
			"discountAmount": value.NewCurrency(decimal.NewFromInt(150)),
			"dutyAmount":     value.NewCurrency(decimal.Zero),
			"logisticsFee":   value.NewCurrency(decimal.Zero),
		})
		assert.ErrorContains(t, err, "total is negative")
	})
}
