package native

import (
	"github.com/ericlagergren/decimal"

	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/value"
	"github.com/marcin-radoszewski/ren/internal/verror"
)

func mathNatives() []spec {
	return []spec{
		{name: "add", arity: 2, fn: NativeAdd},
		{name: "subtract", arity: 2, fn: NativeSubtract},
		{name: "multiply", arity: 2, fn: NativeMultiply},
		{name: "divide", arity: 2, fn: NativeDivide},
		{name: "+", arity: 2, infix: true, fn: NativeAdd},
		{name: "-", arity: 2, infix: true, fn: NativeSubtract},
		{name: "*", arity: 2, infix: true, fn: NativeMultiply},
		{name: "/", arity: 2, infix: true, fn: NativeDivide},
		{name: "negate", arity: 1, fn: NativeNegate},
	}
}

type mathOp uint8

const (
	opAdd mathOp = iota
	opSubtract
	opMultiply
	opDivide
)

// arith dispatches integer-fast paths with decimal promotion when
// either operand is a decimal (or when integer division is inexact).
func arith(name string, op mathOp, args []core.Value) (core.Value, error) {
	if len(args) != 2 {
		return value.NoneVal(), arityError(name, 2, len(args))
	}
	ai, aIsInt := value.AsInteger(args[0])
	bi, bIsInt := value.AsInteger(args[1])
	if aIsInt && bIsInt {
		switch op {
		case opAdd:
			return value.IntVal(ai + bi), nil
		case opSubtract:
			return value.IntVal(ai - bi), nil
		case opMultiply:
			return value.IntVal(ai * bi), nil
		case opDivide:
			if bi == 0 {
				return value.NoneVal(), verror.NewMathError(verror.ErrIDDivByZero, [3]string{})
			}
			if ai%bi == 0 {
				return value.IntVal(ai / bi), nil
			}
			// Inexact: fall through to decimal division.
		}
	}

	ad, aOK := toDecimal(args[0])
	bd, bOK := toDecimal(args[1])
	if !aOK {
		return value.NoneVal(), typeError(name, "integer! decimal!", args[0])
	}
	if !bOK {
		return value.NoneVal(), typeError(name, "integer! decimal!", args[1])
	}

	out := new(decimal.Big)
	ctx := value.DecimalContext
	switch op {
	case opAdd:
		ctx.Add(out, ad.Magnitude, bd.Magnitude)
	case opSubtract:
		ctx.Sub(out, ad.Magnitude, bd.Magnitude)
	case opMultiply:
		ctx.Mul(out, ad.Magnitude, bd.Magnitude)
	case opDivide:
		if bd.Magnitude.Sign() == 0 {
			return value.NoneVal(), verror.NewMathError(verror.ErrIDDivByZero, [3]string{})
		}
		ctx.Quo(out, ad.Magnitude, bd.Magnitude)
	}
	return value.NewDecimalValue(out), nil
}

func toDecimal(v core.Value) (*value.DecimalValue, bool) {
	if d, ok := value.AsDecimal(v); ok {
		return d, true
	}
	if i, ok := value.AsInteger(v); ok {
		return value.NewDecimalFromInt(i), true
	}
	return nil, false
}

func NativeAdd(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	return arith("add", opAdd, args)
}

func NativeSubtract(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	return arith("subtract", opSubtract, args)
}

func NativeMultiply(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	return arith("multiply", opMultiply, args)
}

func NativeDivide(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	return arith("divide", opDivide, args)
}

func NativeNegate(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("negate", 1, len(args))
	}
	if i, ok := value.AsInteger(args[0]); ok {
		return value.IntVal(-i), nil
	}
	if d, ok := value.AsDecimal(args[0]); ok {
		out := new(decimal.Big).Copy(d.Magnitude)
		out.Neg(out)
		return value.NewDecimalValue(out), nil
	}
	return value.NoneVal(), typeError("negate", "integer! decimal!", args[0])
}
