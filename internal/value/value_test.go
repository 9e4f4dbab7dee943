package value

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "integer", TypeInteger.String())
	assert.Equal(t, "percentage", TypePercentage.String())
	assert.Equal(t, "currency", TypeCurrency.String())
	assert.Equal(t, "enum", TypeEnum.String())
	assert.Equal(t, "bool", TypeBool.String())
}

func TestNumericPayloads(t *testing.T) {
	t.Run("integer round trip", func(t *testing.T) {
		v := NewInteger(12)
		d, err := v.Decimal()
		require.NoError(t, err)
		assert.True(t, d.Equal(decimal.NewFromInt(12)))
	})

	t.Run("enum has no numeric payload", func(t *testing.T) {
		v := NewEnum("750ml")
		_, err := v.Decimal()
		assert.ErrorContains(t, err, "no numeric payload")
	})

	t.Run("bool has no enum payload", func(t *testing.T) {
		v := NewBool(true)
		_, err := v.Enum()
		assert.ErrorContains(t, err, "no enum payload")
	})

	t.Run("NewNumeric rejects fractional integer", func(t *testing.T) {
		_, err := NewNumeric(TypeInteger, decimal.RequireFromString("1.5"))
		assert.ErrorContains(t, err, "no fractional part")
	})

	t.Run("NewNumeric rejects non-numeric type", func(t *testing.T) {
		_, err := NewNumeric(TypeEnum, decimal.NewFromInt(1))
		assert.Error(t, err)
	})
}

func TestEqual(t *testing.T) {
	t.Run("numeric equality ignores scale", func(t *testing.T) {
		a := NewCurrency(decimal.RequireFromString("1200"))
		b := NewCurrency(decimal.RequireFromString("1200.00"))
		assert.True(t, a.Equal(b))
	})

	t.Run("different types are never equal", func(t *testing.T) {
		a := NewCurrency(decimal.NewFromInt(1))
		b := NewDecimal(decimal.NewFromInt(1))
		assert.False(t, a.Equal(b))
	})

	t.Run("enum equality", func(t *testing.T) {
		assert.True(t, NewEnum("750ml").Equal(NewEnum("750ml")))
		assert.False(t, NewEnum("750ml").Equal(NewEnum("1500ml")))
	})
}

func TestCheckType(t *testing.T) {
	v := NewPercentage(decimal.RequireFromString("0.1"))
	assert.NoError(t, v.CheckType(TypePercentage))
	assert.ErrorContains(t, v.CheckType(TypeCurrency), "expected currency, got percentage")
}

func TestParse(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		v, err := Parse(TypeInteger, "12")
		require.NoError(t, err)
		assert.True(t, v.Equal(NewInteger(12)))
	})

	t.Run("fractional integer rejected", func(t *testing.T) {
		_, err := Parse(TypeInteger, "12.5")
		assert.Error(t, err)
	})

	t.Run("currency keeps exact decimal form", func(t *testing.T) {
		v, err := Parse(TypeCurrency, "99.95")
		require.NoError(t, err)
		d, err := v.Decimal()
		require.NoError(t, err)
		assert.Equal(t, "99.95", d.String())
	})

	t.Run("bool", func(t *testing.T) {
		v, err := Parse(TypeBool, "true")
		require.NoError(t, err)
		b, err := v.Bool()
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("enum passes through", func(t *testing.T) {
		v, err := Parse(TypeEnum, "750ml")
		require.NoError(t, err)
		s, err := v.Enum()
		require.NoError(t, err)
		assert.Equal(t, "750ml", s)
	})

	t.Run("garbage number", func(t *testing.T) {
		_, err := Parse(TypeCurrency, "twelve")
		assert.Error(t, err)
	})
}

func TestRounding(t *testing.T) {
	t.Run("percent of currency rounds half to even", func(t *testing.T) {
		// 100.25 * 0.1 = 10.025; banker's rounding gives 10.02, not 10.03.
		got := PercentOfCurrency(decimal.RequireFromString("100.25"), decimal.RequireFromString("0.1"))
		assert.Equal(t, "10.02", got.String())
	})

	t.Run("fraction is rounded before combining", func(t *testing.T) {
		// 0.33335 rounds half-to-even to 0.3334 at the percent scale.
		got := PercentOfCurrency(decimal.NewFromInt(1000), decimal.RequireFromString("0.33335"))
		assert.Equal(t, "333.4", got.String())
	})

	t.Run("currency rounds to cents", func(t *testing.T) {
		assert.Equal(t, "10.02", RoundCurrency(decimal.RequireFromString("10.025")).String())
		assert.Equal(t, "10.04", RoundCurrency(decimal.RequireFromString("10.035")).String())
	})
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "input", InputSource().String())
	assert.Equal(t, "override:P", OverrideSource("P").String())
	assert.Equal(t, "default:org", OrgDefaultSource().String())
	assert.Equal(t, "default:global", GlobalDefaultSource().String())
	assert.Equal(t, "computed", ComputedSource().String())
}
