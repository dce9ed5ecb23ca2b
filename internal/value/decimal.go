package value

import (
	"github.com/ericlagergren/decimal"

	"github.com/marcin-radoszewski/ren/internal/core"
)

// DecimalValue is a high-precision decimal, IEEE 754 decimal128
// semantics: 34 digits of precision, banker's rounding.
type DecimalValue struct {
	Magnitude *decimal.Big
	Context   *decimal.Context
}

// DecimalContext is the shared arithmetic context for decimal values.
var DecimalContext = decimal.Context{
	Precision:    34,
	RoundingMode: decimal.ToNearestEven,
}

// NewDecimalValue wraps a decimal magnitude.
func NewDecimalValue(magnitude *decimal.Big) *DecimalValue {
	return &DecimalValue{Magnitude: magnitude, Context: &DecimalContext}
}

// NewDecimalFromString parses a decimal literal. Reports ok=false on a
// malformed literal.
func NewDecimalFromString(s string) (*DecimalValue, bool) {
	mag, ok := new(decimal.Big).SetString(s)
	if !ok || mag.Context.Err() != nil || mag.IsNaN(0) {
		return nil, false
	}
	return NewDecimalValue(mag), true
}

// NewDecimalFromInt promotes an integer.
func NewDecimalFromInt(i int64) *DecimalValue {
	return NewDecimalValue(new(decimal.Big).SetMantScale(i, 0))
}

func (d *DecimalValue) GetType() core.ValueType { return TypeDecimal }
func (d *DecimalValue) GetPayload() any         { return d.Magnitude }

func (d *DecimalValue) String() string {
	if d.Magnitude == nil {
		return "0.0"
	}
	s := d.Magnitude.String()
	// Keep a decimal point so the literal round-trips as decimal!.
	if !hasDecimalMark(s) {
		s += ".0"
	}
	return s
}

func hasDecimalMark(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'e' || s[i] == 'E' {
			return true
		}
	}
	return false
}

func (d *DecimalValue) Mold() string { return d.String() }
func (d *DecimalValue) Form() string { return d.String() }

func (d *DecimalValue) Equals(other core.Value) bool {
	od, ok := other.(*DecimalValue)
	if !ok {
		return false
	}
	return d.Magnitude.Cmp(od.Magnitude) == 0
}

// Cmp orders two decimals: -1, 0, or 1.
func (d *DecimalValue) Cmp(other *DecimalValue) int {
	return d.Magnitude.Cmp(other.Magnitude)
}
