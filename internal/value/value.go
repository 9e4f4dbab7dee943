// Package value defines the closed set of value types that participate in a
// price computation, and the tagged variant type that carries them.
//
// Every variable in a pricing catalog is declared with exactly one of these
// types. Keeping the set closed (rather than accepting arbitrary dynamic
// values) means every consumption site — override resolution, derivation
// functions, serialization — can handle the variants exhaustively, turning
// "unexpected shape" runtime failures into ordinary type errors at the
// boundary where a value enters the system.
//
// All numeric variants are backed by fixed-point decimals
// (github.com/shopspring/decimal), never binary floating point, so repeated
// evaluation of the same inputs is bit-identical and currency math does not
// drift.
package value

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Type identifies which variant a Value carries.
type Type int

const (
	// TypeInteger is a whole-number quantity, e.g. cases per order.
	TypeInteger Type = iota
	// TypeDecimal is an arbitrary fixed-point number.
	TypeDecimal
	// TypePercentage is a fractional rate stored as a decimal fraction
	// (0.10 means ten percent, not 10).
	TypePercentage
	// TypeCurrency is a monetary amount in the catalog's currency.
	TypeCurrency
	// TypeEnum is one of a closed set of strings declared by the catalog.
	TypeEnum
	// TypeBool is a flag.
	TypeBool
)

// String returns the catalog keyword for the type, as written in manifests.
func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeDecimal:
		return "decimal"
	case TypePercentage:
		return "percentage"
	case TypeCurrency:
		return "currency"
	case TypeEnum:
		return "enum"
	case TypeBool:
		return "bool"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Numeric reports whether values of this type are backed by a decimal.
func (t Type) Numeric() bool {
	switch t {
	case TypeInteger, TypeDecimal, TypePercentage, TypeCurrency:
		return true
	default:
		return false
	}
}

// Value is the tagged variant carried by every variable in a breakdown.
// The zero Value is an integer zero.
type Value struct {
	typ  Type
	num  decimal.Decimal
	str  string
	flag bool
}

// NewInteger returns an integer Value.
func NewInteger(n int64) Value {
	return Value{typ: TypeInteger, num: decimal.NewFromInt(n)}
}

// NewDecimal returns a decimal Value.
func NewDecimal(d decimal.Decimal) Value {
	return Value{typ: TypeDecimal, num: d}
}

// NewPercentage returns a percentage Value. The argument is a fraction,
// so a ten percent discount is decimal "0.1".
func NewPercentage(d decimal.Decimal) Value {
	return Value{typ: TypePercentage, num: d}
}

// NewCurrency returns a currency Value.
func NewCurrency(d decimal.Decimal) Value {
	return Value{typ: TypeCurrency, num: d}
}

// NewEnum returns an enum Value. Membership in the catalog's declared set
// is checked where the value enters the system, not here.
func NewEnum(s string) Value {
	return Value{typ: TypeEnum, str: s}
}

// NewBool returns a bool Value.
func NewBool(b bool) Value {
	return Value{typ: TypeBool, flag: b}
}

// NewNumeric builds a Value of the given numeric type from a decimal.
// It returns an error for non-numeric types.
func NewNumeric(t Type, d decimal.Decimal) (Value, error) {
	if !t.Numeric() {
		return Value{}, fmt.Errorf("type %s does not carry a numeric value", t)
	}
	if t == TypeInteger && !d.IsInteger() {
		return Value{}, fmt.Errorf("integer value must have no fractional part, got %s", d)
	}
	return Value{typ: t, num: d}, nil
}

// Type returns the variant tag of the value.
func (v Value) Type() Type {
	return v.typ
}

// Decimal returns the numeric payload. It errors for enum and bool values,
// which have no numeric interpretation.
func (v Value) Decimal() (decimal.Decimal, error) {
	if !v.typ.Numeric() {
		return decimal.Decimal{}, fmt.Errorf("%s value has no numeric payload", v.typ)
	}
	return v.num, nil
}

// Enum returns the string payload of an enum value.
func (v Value) Enum() (string, error) {
	if v.typ != TypeEnum {
		return "", fmt.Errorf("%s value has no enum payload", v.typ)
	}
	return v.str, nil
}

// Bool returns the payload of a bool value.
func (v Value) Bool() (bool, error) {
	if v.typ != TypeBool {
		return false, fmt.Errorf("%s value has no bool payload", v.typ)
	}
	return v.flag, nil
}

// Equal reports whether two values have the same type and payload.
// Numeric comparison is by decimal equality, so "1200" and "1200.00"
// are equal.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeEnum:
		return v.str == o.str
	case TypeBool:
		return v.flag == o.flag
	default:
		return v.num.Equal(o.num)
	}
}

// String renders the payload for logs and breakdown display.
func (v Value) String() string {
	switch v.typ {
	case TypeEnum:
		return v.str
	case TypeBool:
		if v.flag {
			return "true"
		}
		return "false"
	case TypeCurrency:
		return v.num.StringFixedBank(2)
	default:
		return v.num.String()
	}
}

// CheckType returns an error if the value does not carry the wanted type.
func (v Value) CheckType(want Type) error {
	if v.typ != want {
		return fmt.Errorf("expected %s, got %s", want, v.typ)
	}
	return nil
}
