// Constructor functions and type assertion helpers. Constructors are
// the only way to create values; As* helpers return (payload, ok) and
// never panic on a kind mismatch.
package value

import (
	"github.com/marcin-radoszewski/ren/internal/core"
)

var (
	noneSingleton  = &NoneValue{}
	blankSingleton = &BlankValue{}
	trueSingleton  = &LogicValue{value: true}
	falseSingleton = &LogicValue{value: false}
)

// NoneVal creates the none value (absence).
func NoneVal() core.Value { return noneSingleton }

// BlankVal creates the blank placeholder value.
func BlankVal() core.Value { return blankSingleton }

// LogicVal creates a logic value.
func LogicVal(b bool) core.Value {
	if b {
		return trueSingleton
	}
	return falseSingleton
}

// IntVal creates an integer value (64-bit signed).
func IntVal(i int64) core.Value { return &IntValue{value: i} }

// CharVal creates a char value from a Unicode scalar.
func CharVal(r rune) core.Value { return &CharValue{value: r} }

// TextVal creates a text value from a Go string.
func TextVal(s string) core.Value { return NewTextValue(s) }

// BinaryVal creates a binary value from a byte slice.
func BinaryVal(data []byte) core.Value { return NewBinaryValue(data) }

// BlockVal creates a block value.
func BlockVal(cells []core.Value) core.Value { return NewBlockValue(cells) }

// GroupVal creates a group value (evaluated by default).
func GroupVal(cells []core.Value) core.Value {
	return NewBlockValueWithType(cells, TypeGroup)
}

// GetGroupVal creates a get-group value (:( ... )).
func GetGroupVal(cells []core.Value) core.Value {
	return NewBlockValueWithType(cells, TypeGetGroup)
}

// WordVal creates a word value.
func WordVal(symbol string) core.Value { return &WordValue{symbol: symbol} }

// SetWordVal creates a set-word value.
func SetWordVal(symbol string) core.Value { return &SetWordValue{symbol: symbol} }

// GetWordVal creates a get-word value.
func GetWordVal(symbol string) core.Value { return &GetWordValue{symbol: symbol} }

// LitWordVal creates a lit-word value.
func LitWordVal(symbol string) core.Value { return &LitWordValue{symbol: symbol} }

// RefinementVal creates a refinement value.
func RefinementVal(symbol string) core.Value { return &RefinementValue{symbol: symbol} }

// IssueVal creates an issue value.
func IssueVal(symbol string) core.Value { return &IssueValue{symbol: symbol} }

// TagVal creates a tag value from its undelimited text.
func TagVal(text string) core.Value { return &TagValue{text: text} }

// DatatypeVal creates a datatype value, e.g. DatatypeVal("integer!").
func DatatypeVal(name string) core.Value { return &DatatypeValue{name: name} }

// DecimalVal creates a decimal value from a literal; ok=false when the
// literal is malformed.
func DecimalVal(s string) (core.Value, bool) {
	d, ok := NewDecimalFromString(s)
	if !ok {
		return NoneVal(), false
	}
	return d, true
}

// FuncVal creates a function value.
func FuncVal(fn *FunctionValue) core.Value { return fn }

// QuotedVal wraps v at the given quote level.
func QuotedVal(v core.Value, level int) core.Value { return NewQuotedValue(v, level) }

// AsInteger extracts the integer payload.
func AsInteger(v core.Value) (int64, bool) {
	if iv, ok := v.(*IntValue); ok {
		return iv.value, true
	}
	return 0, false
}

// AsLogic extracts the boolean payload.
func AsLogic(v core.Value) (bool, bool) {
	if lv, ok := v.(*LogicValue); ok {
		return lv.value, true
	}
	return false, false
}

// AsChar extracts the scalar payload.
func AsChar(v core.Value) (rune, bool) {
	if cv, ok := v.(*CharValue); ok {
		return cv.value, true
	}
	return 0, false
}

// AsText extracts a TextValue view.
func AsText(v core.Value) (*TextValue, bool) {
	tv, ok := v.(*TextValue)
	return tv, ok
}

// AsBinary extracts a BinaryValue view.
func AsBinary(v core.Value) (*BinaryValue, bool) {
	bv, ok := v.(*BinaryValue)
	return bv, ok
}

// AsBlock extracts a BlockValue view for any block variant.
func AsBlock(v core.Value) (*BlockValue, bool) {
	bv, ok := v.(*BlockValue)
	return bv, ok
}

// AsWord extracts the spelling of any word variant.
func AsWord(v core.Value) (string, bool) {
	switch wv := v.(type) {
	case *WordValue:
		return wv.symbol, true
	case *SetWordValue:
		return wv.symbol, true
	case *GetWordValue:
		return wv.symbol, true
	case *LitWordValue:
		return wv.symbol, true
	case *RefinementValue:
		return wv.symbol, true
	case *IssueValue:
		return wv.symbol, true
	default:
		return "", false
	}
}

// AsTag extracts a TagValue.
func AsTag(v core.Value) (*TagValue, bool) {
	tv, ok := v.(*TagValue)
	return tv, ok
}

// AsDatatype extracts the datatype spelling.
func AsDatatype(v core.Value) (string, bool) {
	if dv, ok := v.(*DatatypeValue); ok {
		return dv.name, true
	}
	return "", false
}

// AsBitset extracts a BitsetValue.
func AsBitset(v core.Value) (*BitsetValue, bool) {
	bv, ok := v.(*BitsetValue)
	return bv, ok
}

// AsDecimal extracts a DecimalValue.
func AsDecimal(v core.Value) (*DecimalValue, bool) {
	dv, ok := v.(*DecimalValue)
	return dv, ok
}

// AsFunction extracts a FunctionValue.
func AsFunction(v core.Value) (*FunctionValue, bool) {
	fv, ok := v.(*FunctionValue)
	return fv, ok
}

// AsPath extracts a PathValue for any path variant.
func AsPath(v core.Value) (*PathValue, bool) {
	pv, ok := v.(*PathValue)
	return pv, ok
}

// IsTruthy reports whether v counts as true in conditional contexts:
// none and false are falsy, everything else (0, "", []) is truthy.
func IsTruthy(v core.Value) bool {
	switch v.GetType() {
	case TypeNone:
		return false
	case TypeLogic:
		b, _ := AsLogic(v)
		return b
	}
	return true
}
