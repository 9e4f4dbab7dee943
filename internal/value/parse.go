package value

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Parse converts raw text (a CLI argument or form field) into a Value of
// the wanted type. Enum membership is not checked here; that requires the
// catalog definition and happens during input validation.
func Parse(t Type, raw string) (Value, error) {
	switch t {
	case TypeEnum:
		return NewEnum(raw), nil
	case TypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parsing %q as bool: %w", raw, err)
		}
		return NewBool(b), nil
	default:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parsing %q as %s: %w", raw, t, err)
		}
		return NewNumeric(t, d)
	}
}
